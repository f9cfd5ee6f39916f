package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvstudio/internal/api/middleware"
	"cvstudio/internal/preview"
	"cvstudio/internal/render"
	"cvstudio/internal/store"
)

// PreviewHandler serves the rendered template surface and the zoom
// arithmetic backing the on-screen preview.
type PreviewHandler struct {
	store    *store.Store
	renderer *render.Renderer
}

// NewPreviewHandler constructs a PreviewHandler.
func NewPreviewHandler(st *store.Store, renderer *render.Renderer) *PreviewHandler {
	return &PreviewHandler{store: st, renderer: renderer}
}

// GetPreview renders the current document through the selected
// template and returns the A4 HTML surface.
func (h *PreviewHandler) GetPreview(c *gin.Context) {
	snap := h.store.Snapshot()
	html, err := h.renderer.Render(
		snap.Document,
		snap.Preferences.Template,
		snap.Preferences.AccentColor,
		snap.Preferences.Language,
	)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render preview failed", slog.Any("error", err))
		Internal(c, "failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetScale computes the fit scale for a viewport, together with the
// zoom bounds the client enforces on manual steps.
func (h *PreviewHandler) GetScale(c *gin.Context) {
	w, errW := strconv.ParseFloat(c.Query("w"), 64)
	height, errH := strconv.ParseFloat(c.Query("h"), 64)
	if errW != nil || errH != nil {
		BadRequest(c, "w and h must be numbers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fitScale": preview.FitScale(w, height),
		"minScale": preview.MinScale,
		"maxScale": preview.MaxScale,
		"step":     preview.ZoomStep,
	})
}

// ListTemplates returns the selectable template variants.
func (h *PreviewHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": render.Templates()})
}
