package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"cvstudio/internal/cv"
)

// BrowserRasterizer renders a surface in headless Chromium and
// captures the page element as a PNG. A fresh browser is launched per
// capture so a crashed render can never poison the next one.
type BrowserRasterizer struct {
	logger *slog.Logger
	// binPath overrides browser discovery when non-empty.
	binPath string
	// settle is the fixed delay between load and capture, giving the
	// browser time to finish layout, font loading and image decoding.
	// A constant timeout rather than a readiness signal; known to be
	// imprecise on slow machines.
	settle time.Duration
}

// NewBrowserRasterizer builds a rasterizer. A negative settle falls
// back to the 300ms default.
func NewBrowserRasterizer(logger *slog.Logger, binPath string, settle time.Duration) *BrowserRasterizer {
	if settle < 0 {
		settle = 300 * time.Millisecond
	}
	return &BrowserRasterizer{logger: logger, binPath: binPath, settle: settle}
}

// Capture implements Rasterizer.
func (r *BrowserRasterizer) Capture(ctx context.Context, html string, scale float64) ([]byte, error) {
	launch := launcher.New().
		Headless(true).
		NoSandbox(true)

	switch {
	case r.binPath != "":
		launch = launch.Bin(r.binPath)
	default:
		if path, ok := launcher.LookPath(); ok {
			launch = launch.Bin(path)
		}
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(browserURL).Context(ctx).Timeout(90 * time.Second)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	// Size the viewport to the native A4 surface; the scale factor
	// provides the supersampling, not the viewport.
	override := &proto.EmulationSetDeviceMetricsOverride{
		Width:             cv.A4WidthPx,
		Height:            cv.A4HeightPx,
		DeviceScaleFactor: scale,
	}
	if err := override.Call(page); err != nil {
		return nil, fmt.Errorf("set device metrics: %w", err)
	}

	page = page.Timeout(30 * time.Second)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	// Fixed settle delay before sampling pixels.
	select {
	case <-time.After(r.settle):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Best-effort wait for web fonts so fallback metrics do not shift
	// the layout between preview and export.
	if _, evalErr := page.Timeout(5 * time.Second).Eval(`() => {
	  if (document && document.fonts && document.fonts.ready) {
	    return Promise.race([
	      document.fonts.ready.then(() => true),
	      new Promise((resolve) => setTimeout(() => resolve(true), 3000))
	    ]);
	  }
	  return true;
	}`); evalErr != nil {
		r.logger.Warn("document.fonts.ready wait failed, continue", slog.Any("error", evalErr))
	}

	element, err := page.Timeout(5 * time.Second).Element("#cv-page")
	if err != nil {
		return nil, fmt.Errorf("locate page element: %w", err)
	}

	data, err := element.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("capture page element: %w", err)
	}
	return data, nil
}
