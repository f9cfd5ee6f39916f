package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"testing"
)

func TestGetPreviewServesSurface(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/preview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Fatalf("Content-Type = %q, want text/html", got)
	}
	if !strings.Contains(w.Body.String(), `id="cv-page"`) {
		t.Fatal("surface should contain the capture target element")
	}
}

func TestGetPreviewCarriesUploadedPhoto(t *testing.T) {
	router, st, _ := newTestRouter(t)
	st.UpdatePersonalInfo("photo", "data:image/png;base64,AAAA")

	w := doJSON(t, router, http.MethodGet, "/v1/preview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `src="data:image/png;base64,AAAA"`) {
		t.Fatal("served surface should embed the stored photo data URI")
	}
}

func TestGetScale(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/preview/scale?w=397&h=2000", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		FitScale float64 `json:"fitScale"`
		MinScale float64 `json:"minScale"`
		MaxScale float64 `json:"maxScale"`
		Step     float64 `json:"step"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(body.FitScale-0.5) > 1e-9 {
		t.Fatalf("fitScale = %v, want 0.5", body.FitScale)
	}
	if body.MinScale != 0.2 || body.MaxScale != 2.0 || body.Step != 0.1 {
		t.Fatalf("bounds = %+v, want 0.2/2.0/0.1", body)
	}
}

func TestGetScaleRequiresNumbers(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/preview/scale?w=wide&h=100", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListTemplates(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/templates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Templates []struct {
			ID string `json:"id"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Templates) != 2 || body.Templates[0].ID != "classic" || body.Templates[1].ID != "modern" {
		t.Fatalf("templates = %+v, want classic and modern", body.Templates)
	}
}
