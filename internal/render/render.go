// Package render turns a document snapshot into the fixed-size A4 HTML
// surface the preview shows and the export pipeline rasterizes. The
// transform is pure: the same document, template, accent color and
// language always produce identical output.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"cvstudio/internal/cv"
	"cvstudio/internal/i18n"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateInfo describes a selectable template variant.
type TemplateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Templates lists the available variants in display order.
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{ID: "classic", Name: "Classic"},
		{ID: "modern", Name: "Modern"},
	}
}

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template files.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// pageData is what the template files see. Field content is escaped by
// html/template; the accent color is validated by the API layer before
// it ever reaches a style attribute.
type pageData struct {
	Doc      cv.Document
	Accent   string
	Lang     string
	WidthPx  int
	HeightPx int
}

// T looks up a label for the page's language.
func (p pageData) T(key string) string { return i18n.T(p.Lang, key) }

// Photo returns the stored portrait as an embeddable URL. Documents
// only ever carry self-contained data URIs, and the URL auto-escaper
// rejects the data scheme, so the prefix is checked here and the
// value handed through pre-approved. Anything else renders as no
// photo at all.
func (p pageData) Photo() template.URL {
	if strings.HasPrefix(p.Doc.PersonalInfo.Photo, "data:image/") {
		return template.URL(p.Doc.PersonalInfo.Photo)
	}
	return ""
}

// FontFamily returns the CSS font stack for the page's language. The
// stack is a fixed constant, so handing it to the CSS context verbatim
// is safe.
func (p pageData) FontFamily() template.CSS {
	if p.Lang == i18n.LangKM {
		return `'Noto Sans Khmer', 'Inter', sans-serif`
	}
	return `'Inter', 'Noto Sans Khmer', sans-serif`
}

// Stars reports, for a 1-5 level, which of the five star slots are
// filled. Levels outside the range are clipped for display only.
func (p pageData) Stars(level int) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < level
	}
	return out
}

// Render executes the selected template variant against doc. Unknown
// template IDs fall back to classic, matching the preview's behavior.
func (r *Renderer) Render(doc cv.Document, templateID, accentColor, lang string) (string, error) {
	name := templateID
	switch name {
	case "classic", "modern":
	default:
		name = "classic"
	}

	data := pageData{
		Doc:      doc,
		Accent:   accentColor,
		Lang:     lang,
		WidthPx:  cv.A4WidthPx,
		HeightPx: cv.A4HeightPx,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name+".html.tmpl", data); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}
	return buf.String(), nil
}
