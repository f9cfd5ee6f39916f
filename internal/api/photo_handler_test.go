package api

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newPhotoUpload(t *testing.T, content []byte, crop map[string]int) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	for key, value := range crop {
		if err := writer.WriteField(key, strconv.Itoa(value)); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func postPhoto(t *testing.T, router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/cv/photo", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadPhotoStoresDataURI(t *testing.T) {
	router, st, _ := newTestRouter(t)

	body, contentType := newPhotoUpload(t, encodeTestPNG(t, 300, 200), nil)
	w := postPhoto(t, router, body, contentType)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	photo := st.Document().PersonalInfo.Photo
	if !strings.HasPrefix(photo, "data:image/png;base64,") {
		t.Fatalf("stored photo = %.40q, want a png data URI", photo)
	}
}

func TestUploadPhotoRejectsGarbage(t *testing.T) {
	router, st, _ := newTestRouter(t)

	body, contentType := newPhotoUpload(t, []byte("definitely not an image"), nil)
	w := postPhoto(t, router, body, contentType)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if st.Document().PersonalInfo.Photo != "" {
		t.Fatal("rejected upload must not touch the document")
	}
}

func TestUploadPhotoRejectsOversize(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// MaxBytes in the test config is 5 MiB; an uncompressible-enough
	// payload over that limit trips the size check.
	huge := bytes.Repeat([]byte("x"), 5*1024*1024+1)
	body, contentType := newPhotoUpload(t, huge, nil)
	w := postPhoto(t, router, body, contentType)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadPhotoHonorsCrop(t *testing.T) {
	router, st, _ := newTestRouter(t)

	body, contentType := newPhotoUpload(t, encodeTestPNG(t, 400, 300), map[string]int{
		"x": 10, "y": 20, "size": 100,
	})
	w := postPhoto(t, router, body, contentType)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if st.Document().PersonalInfo.Photo == "" {
		t.Fatal("photo should be stored")
	}
}

func TestRemovePhoto(t *testing.T) {
	router, st, _ := newTestRouter(t)
	st.UpdatePersonalInfo("photo", "data:image/png;base64,abc")

	req := httptest.NewRequest(http.MethodDelete, "/v1/cv/photo", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if st.Document().PersonalInfo.Photo != "" {
		t.Fatal("photo should be cleared")
	}
}
