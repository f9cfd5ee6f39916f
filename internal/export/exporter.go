// Package export produces the downloadable artifacts: it rasterizes
// the rendered A4 surface in a headless browser at a high
// supersampling factor, then either embeds the bitmap full-bleed in a
// single exact-A4 PDF page or encodes it as a PNG with a white
// background. At most one export runs at a time; two independent busy
// flags gate both triggers while either is active.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cvstudio/internal/metrics"
)

// Kind selects the artifact type.
type Kind string

const (
	KindPDF Kind = "pdf"
	KindPNG Kind = "png"
)

// Scale is the supersampling factor applied during rasterization.
// Zoom in the preview never changes it.
const Scale = 4.0

// Filename returns the fixed download name for the artifact kind.
func (k Kind) Filename() string {
	if k == KindPNG {
		return "cv.png"
	}
	return "cv.pdf"
}

// ContentType returns the MIME type for the artifact kind.
func (k Kind) ContentType() string {
	if k == KindPNG {
		return "image/png"
	}
	return "application/pdf"
}

// ErrBusy is returned when an export is refused because one is
// already in flight.
var ErrBusy = errors.New("an export is already in progress")

// Rasterizer turns a rendered HTML surface into PNG bytes at the given
// device scale factor.
type Rasterizer interface {
	Capture(ctx context.Context, html string, scale float64) ([]byte, error)
}

// Status reports the two busy flags the UI shows.
type Status struct {
	Downloading bool `json:"downloading"`
	SavingImage bool `json:"savingImage"`
}

// Busy reports whether any export is in flight.
func (s Status) Busy() bool { return s.Downloading || s.SavingImage }

// Exporter runs the clone-render-rasterize-encode sequence.
type Exporter struct {
	logger *slog.Logger
	ras    Rasterizer

	mu          sync.Mutex
	downloading bool
	savingImage bool
}

// New builds an exporter around a rasterizer.
func New(logger *slog.Logger, ras Rasterizer) *Exporter {
	return &Exporter{logger: logger, ras: ras}
}

// Status returns the current busy flags.
func (e *Exporter) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{Downloading: e.downloading, SavingImage: e.savingImage}
}

// acquire sets the busy flag for kind, refusing when either flag is
// already set. Both triggers are disabled while any export runs.
func (e *Exporter) acquire(kind Kind) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.downloading || e.savingImage {
		return ErrBusy
	}
	if kind == KindPNG {
		e.savingImage = true
	} else {
		e.downloading = true
	}
	return nil
}

// release clears the busy flag for kind unconditionally.
func (e *Exporter) release(kind Kind) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if kind == KindPNG {
		e.savingImage = false
	} else {
		e.downloading = false
	}
}

// Export rasterizes the surface and encodes the requested artifact.
// The busy flag is cleared on every path; failures are logged and
// terminal, the caller must re-trigger.
func (e *Exporter) Export(ctx context.Context, kind Kind, surfaceHTML string) (_ []byte, err error) {
	if surfaceHTML == "" {
		// Nothing was rendered; abort before any side effect.
		e.logger.Error("export aborted, rendered surface is empty", slog.String("kind", string(kind)))
		return nil, errors.New("rendered surface is empty")
	}

	if err := e.acquire(kind); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		e.release(kind)
		status := "ok"
		if err != nil {
			status = "error"
			e.logger.Error("export failed",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
		metrics.ObserveExport(string(kind), status, time.Since(start))
	}()

	png, err := e.ras.Capture(ctx, surfaceHTML, Scale)
	if err != nil {
		return nil, fmt.Errorf("rasterize surface: %w", err)
	}

	switch kind {
	case KindPNG:
		flattened, err := flattenWhite(png)
		if err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return flattened, nil
	default:
		pdf, err := encodePDF(png)
		if err != nil {
			return nil, fmt.Errorf("encode pdf: %w", err)
		}
		return pdf, nil
	}
}
