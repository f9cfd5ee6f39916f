package export

import (
	"bytes"
	"fmt"

	gofpdf "github.com/lvillar/gofpdf"

	"cvstudio/internal/cv"
)

// encodePDF embeds the captured bitmap as a single full-bleed image on
// one page with exact A4 physical dimensions. The output carries no
// selectable text; it is a faithful raster of the preview.
func encodePDF(png []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("cv", opts, bytes.NewReader(png))
	pdf.ImageOptions("cv", 0, 0, cv.A4WidthMM, cv.A4HeightMM, false, opts, 0, "")

	if pdf.Err() {
		return nil, fmt.Errorf("compose pdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
