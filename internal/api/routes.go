package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"cvstudio/internal/config"
	"cvstudio/internal/render"
	"cvstudio/internal/store"
)

// RegisterRoutes registers the document, preview and export endpoints
// under /v1.
func RegisterRoutes(
	router *gin.Engine,
	st *store.Store,
	renderer *render.Renderer,
	exporter Exporter,
	cfg *config.Config,
	logger *slog.Logger,
) {
	cvHandler := NewCvHandler(st)
	previewHandler := NewPreviewHandler(st, renderer)
	exportHandler := NewExportHandler(st, renderer, exporter)
	photoHandler := NewPhotoHandler(st, cfg.Photo)
	wsHandler := NewWsHandler(st, logger, nil)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		v1.GET("/cv", cvHandler.GetCV)
		v1.PUT("/preferences", cvHandler.UpdatePreferences)
		v1.PATCH("/cv/personal", cvHandler.UpdatePersonal)

		v1.POST("/cv/:section/entries", cvHandler.AddEntry)
		v1.PATCH("/cv/:section/entries/:index", cvHandler.UpdateEntry)
		v1.DELETE("/cv/:section/entries/:index", cvHandler.RemoveEntry)

		v1.POST("/cv/photo", photoHandler.Upload)
		v1.DELETE("/cv/photo", photoHandler.Remove)

		v1.GET("/templates", previewHandler.ListTemplates)
		previewGroup := v1.Group("/preview")
		{
			previewGroup.GET("", previewHandler.GetPreview)
			previewGroup.GET("/scale", previewHandler.GetScale)
		}

		exportGroup := v1.Group("/export")
		{
			exportGroup.GET("/pdf", exportHandler.DownloadPDF)
			exportGroup.GET("/png", exportHandler.DownloadPNG)
			exportGroup.GET("/status", exportHandler.GetStatus)
		}
	}
}
