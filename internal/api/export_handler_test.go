package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"cvstudio/internal/export"
)

func TestDownloadPDF(t *testing.T) {
	router, _, exporter := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/export/pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, `"cv.pdf"`) {
		t.Fatalf("Content-Disposition = %q, want attachment named cv.pdf", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("Content-Type = %q, want application/pdf", got)
	}
	if len(exporter.kinds) != 1 || exporter.kinds[0] != export.KindPDF {
		t.Fatalf("exporter called with %v, want exactly one pdf export", exporter.kinds)
	}
}

func TestDownloadPNGFilename(t *testing.T) {
	router, _, exporter := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/export/png", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, `"cv.png"`) {
		t.Fatalf("Content-Disposition = %q, want attachment named cv.png", got)
	}
	if len(exporter.kinds) != 1 || exporter.kinds[0] != export.KindPNG {
		t.Fatalf("exporter called with %v, want exactly one png export", exporter.kinds)
	}
}

func TestDownloadRefusedWhileBusy(t *testing.T) {
	router, _, exporter := newTestRouter(t)
	exporter.err = export.ErrBusy

	w := doJSON(t, router, http.MethodGet, "/v1/export/pdf", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestDownloadFailure(t *testing.T) {
	router, _, exporter := newTestRouter(t)
	exporter.err = errors.New("browser crashed")

	w := doJSON(t, router, http.MethodGet, "/v1/export/png", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestExportStatusLabelsFollowLanguage(t *testing.T) {
	router, st, exporter := newTestRouter(t)
	exporter.status = export.Status{Downloading: true}

	w := doJSON(t, router, http.MethodGet, "/v1/export/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Downloading bool `json:"downloading"`
		SavingImage bool `json:"savingImage"`
		Busy        bool `json:"busy"`
		Labels      struct {
			Downloading string `json:"downloading"`
		} `json:"labels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Downloading || body.SavingImage || !body.Busy {
		t.Fatalf("flags = %+v, want downloading busy only", body)
	}
	if body.Labels.Downloading != "កំពុងទាញយក..." {
		t.Fatalf("label = %q, want the Khmer label while language is km", body.Labels.Downloading)
	}

	st.SetLanguage("en")
	w = doJSON(t, router, http.MethodGet, "/v1/export/status", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Labels.Downloading != "Downloading..." {
		t.Fatalf("label = %q, want the English label after switching", body.Labels.Downloading)
	}
}
