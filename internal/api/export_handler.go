package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvstudio/internal/api/middleware"
	"cvstudio/internal/export"
	"cvstudio/internal/i18n"
	"cvstudio/internal/render"
	"cvstudio/internal/store"
)

// Exporter is the slice of the export pipeline the handler needs;
// tests substitute a fake.
type Exporter interface {
	Export(ctx context.Context, kind export.Kind, surfaceHTML string) ([]byte, error)
	Status() export.Status
}

// ExportHandler triggers artifact generation and reports the busy
// flags the UI disables its buttons on.
type ExportHandler struct {
	store    *store.Store
	renderer *render.Renderer
	exporter Exporter
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(st *store.Store, renderer *render.Renderer, exporter Exporter) *ExportHandler {
	return &ExportHandler{store: st, renderer: renderer, exporter: exporter}
}

// DownloadPDF renders the current document and streams cv.pdf.
func (h *ExportHandler) DownloadPDF(c *gin.Context) {
	h.download(c, export.KindPDF)
}

// DownloadPNG renders the current document and streams cv.png.
func (h *ExportHandler) DownloadPNG(c *gin.Context) {
	h.download(c, export.KindPNG)
}

func (h *ExportHandler) download(c *gin.Context, kind export.Kind) {
	log := middleware.LoggerFromContext(c)

	snap := h.store.Snapshot()
	surface, err := h.renderer.Render(
		snap.Document,
		snap.Preferences.Template,
		snap.Preferences.AccentColor,
		snap.Preferences.Language,
	)
	if err != nil {
		log.Error("render export surface failed", slog.Any("error", err))
		Internal(c, "failed to render the page")
		return
	}

	data, err := h.exporter.Export(c.Request.Context(), kind, surface)
	if err != nil {
		if errors.Is(err, export.ErrBusy) {
			Conflict(c, "an export is already in progress")
			return
		}
		log.Error("export failed", slog.String("kind", string(kind)), slog.Any("error", err))
		Internal(c, "export failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kind.Filename()))
	c.Data(http.StatusOK, kind.ContentType(), data)
}

// GetStatus reports the two busy flags, each paired with its
// localized in-progress label.
func (h *ExportHandler) GetStatus(c *gin.Context) {
	lang := h.store.Preferences().Language
	status := h.exporter.Status()
	c.JSON(http.StatusOK, gin.H{
		"downloading": status.Downloading,
		"savingImage": status.SavingImage,
		"busy":        status.Busy(),
		"labels": gin.H{
			"downloading": i18n.T(lang, "downloading"),
			"savingImage": i18n.T(lang, "saving_image"),
		},
	})
}
