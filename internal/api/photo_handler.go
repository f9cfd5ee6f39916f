package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"

	"cvstudio/internal/api/middleware"
	"cvstudio/internal/config"
	"cvstudio/internal/photo"
	"cvstudio/internal/store"
)

// PhotoHandler accepts the profile photo upload, scans it when a
// clamd address is configured, runs the square crop and stores the
// resulting data URI on the document.
type PhotoHandler struct {
	store *store.Store
	cfg   config.PhotoConfig
}

// NewPhotoHandler constructs a PhotoHandler.
func NewPhotoHandler(st *store.Store, cfg config.PhotoConfig) *PhotoHandler {
	return &PhotoHandler{store: st, cfg: cfg}
}

// Upload handles the multipart photo upload. Form fields x, y and
// size select the square crop region; omitting them crops the
// centered largest square.
func (h *PhotoHandler) Upload(c *gin.Context) {
	log := middleware.LoggerFromContext(c)

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if file.Size > h.cfg.MaxBytes {
		BadRequest(c, "file too large")
		return
	}

	if h.cfg.ClamdAddr != "" {
		infected, err := h.scan(c)
		if err != nil {
			log.Error("scan photo failed", slog.Any("error", err))
			Internal(c, "failed to scan file")
			return
		}
		if infected {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, h.cfg.MaxBytes))
	if err != nil {
		Internal(c, "failed to read file")
		return
	}

	crop := photo.CropRect{
		X:    formInt(c, "x"),
		Y:    formInt(c, "y"),
		Size: formInt(c, "size"),
	}

	uri, err := photo.Process(data, crop)
	if err != nil {
		if errors.Is(err, photo.ErrNotAnImage) {
			BadRequest(c, "unsupported or corrupt image")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	h.store.UpdatePersonalInfo("photo", uri)
	c.JSON(http.StatusCreated, gin.H{"photo": uri})
}

// Remove clears the stored photo.
func (h *PhotoHandler) Remove(c *gin.Context) {
	h.store.UpdatePersonalInfo("photo", "")
	c.Status(http.StatusNoContent)
}

// scan streams the upload through clamd and reports whether it was
// flagged.
func (h *PhotoHandler) scan(c *gin.Context) (bool, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return false, err
	}
	reader, err := file.Open()
	if err != nil {
		return false, err
	}
	defer reader.Close()

	clamdClient := clamd.NewClamd(h.cfg.ClamdAddr)
	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamdClient.ScanStream(reader, abortChan)
	if err != nil {
		return false, err
	}
	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return true, nil
		}
	}
	return false, nil
}

func formInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.PostForm(key))
	if err != nil {
		return 0
	}
	return n
}
