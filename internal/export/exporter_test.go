package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"
)

type fakeRasterizer struct {
	data    []byte
	err     error
	started chan struct{}
	block   chan struct{}

	captures int
}

func (f *fakeRasterizer) Capture(_ context.Context, _ string, scale float64) ([]byte, error) {
	f.captures++
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func testPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportPDFEmbedsCapture(t *testing.T) {
	ras := &fakeRasterizer{data: testPNG(t, color.White)}
	e := New(discardLogger(), ras)

	out, err := e.Export(context.Background(), KindPDF, "<html></html>")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %.8q", out)
	}
	if ras.captures != 1 {
		t.Errorf("captures = %d, want 1", ras.captures)
	}
	if e.Status().Busy() {
		t.Errorf("busy flag still set after export")
	}
}

func TestExportPNGFlattensTransparency(t *testing.T) {
	ras := &fakeRasterizer{data: testPNG(t, color.RGBA{})}
	e := New(discardLogger(), ras)

	out, err := e.Export(context.Background(), KindPNG, "<html></html>")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("transparent pixel became %v %v %v %v, want opaque white", r, g, b, a)
	}
}

func TestExportEmptySurfaceAbortsBeforeSideEffects(t *testing.T) {
	ras := &fakeRasterizer{data: testPNG(t, color.White)}
	e := New(discardLogger(), ras)

	if _, err := e.Export(context.Background(), KindPDF, ""); err == nil {
		t.Fatalf("empty surface accepted")
	}
	if ras.captures != 0 {
		t.Errorf("rasterizer was invoked for an empty surface")
	}
	if e.Status().Busy() {
		t.Errorf("busy flag set after aborted export")
	}
}

func TestExportFailureClearsBusyFlag(t *testing.T) {
	ras := &fakeRasterizer{err: errors.New("tainted canvas")}
	e := New(discardLogger(), ras)

	if _, err := e.Export(context.Background(), KindPNG, "<html></html>"); err == nil {
		t.Fatalf("rasterizer failure not surfaced")
	}
	if e.Status().Busy() {
		t.Errorf("busy flag still set after failure")
	}
}

func TestSecondExportRefusedWhileBusy(t *testing.T) {
	started := make(chan struct{})
	block := make(chan struct{})
	ras := &fakeRasterizer{data: testPNG(t, color.White), started: started, block: block}
	e := New(discardLogger(), ras)

	done := make(chan error, 1)
	go func() {
		_, err := e.Export(context.Background(), KindPDF, "<html></html>")
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatalf("first export never started")
	}

	if !e.Status().Downloading {
		t.Errorf("downloading flag not set while export in flight")
	}

	// While the PDF export runs, both kinds are refused.
	if _, err := e.Export(context.Background(), KindPDF, "<html></html>"); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent pdf export: err = %v, want ErrBusy", err)
	}
	if _, err := e.Export(context.Background(), KindPNG, "<html></html>"); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent png export: err = %v, want ErrBusy", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if e.Status().Busy() {
		t.Errorf("busy flag still set after completion")
	}
}

func TestKindMetadata(t *testing.T) {
	if KindPDF.Filename() != "cv.pdf" || KindPNG.Filename() != "cv.png" {
		t.Errorf("filenames: %q %q", KindPDF.Filename(), KindPNG.Filename())
	}
	if KindPDF.ContentType() != "application/pdf" || KindPNG.ContentType() != "image/png" {
		t.Errorf("content types: %q %q", KindPDF.ContentType(), KindPNG.ContentType())
	}
}
