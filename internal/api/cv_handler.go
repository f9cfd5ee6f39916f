package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvstudio/internal/i18n"
	"cvstudio/internal/render"
	"cvstudio/internal/store"
)

// CvHandler exposes the store operations over HTTP. The store itself
// is permissive (out-of-range indices are silent no-ops); this layer
// is the validating caller that rejects unknown sections and fields
// and clamps skill levels to the legal range.
type CvHandler struct {
	store *store.Store
}

// NewCvHandler constructs a CvHandler.
func NewCvHandler(st *store.Store) *CvHandler {
	return &CvHandler{store: st}
}

// GetCV returns the full document and preferences snapshot.
func (h *CvHandler) GetCV(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

var accentColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type preferencesRequest struct {
	Language    *string `json:"language"`
	Theme       *string `json:"theme"`
	Template    *string `json:"template"`
	AccentColor *string `json:"accentColor"`
}

// UpdatePreferences applies the preference fields present in the body.
func (h *CvHandler) UpdatePreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	if req.Language != nil && !i18n.Supported(*req.Language) {
		BadRequest(c, "unknown language")
		return
	}
	if req.Theme != nil && *req.Theme != "light" && *req.Theme != "dark" {
		BadRequest(c, "unknown theme")
		return
	}
	if req.Template != nil && !knownTemplate(*req.Template) {
		BadRequest(c, "unknown template")
		return
	}
	if req.AccentColor != nil && !accentColorPattern.MatchString(*req.AccentColor) {
		BadRequest(c, "accent color must be a #rrggbb value")
		return
	}

	if req.Language != nil {
		h.store.SetLanguage(*req.Language)
	}
	if req.Theme != nil {
		h.store.SetTheme(*req.Theme)
	}
	if req.Template != nil {
		h.store.SetTemplate(*req.Template)
	}
	if req.AccentColor != nil {
		h.store.SetAccentColor(*req.AccentColor)
	}

	c.JSON(http.StatusOK, h.store.Preferences())
}

func knownTemplate(id string) bool {
	for _, t := range render.Templates() {
		if t.ID == id {
			return true
		}
	}
	return false
}

var personalFields = map[string]struct{}{
	"name": {}, "jobTitle": {}, "phone": {}, "email": {},
	"address": {}, "photo": {}, "about": {},
}

type updateFieldRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

// UpdatePersonal overwrites one scalar field of the personal info
// record.
func (h *CvHandler) UpdatePersonal(c *gin.Context) {
	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if _, ok := personalFields[req.Field]; !ok {
		BadRequest(c, "unknown personal info field")
		return
	}
	value, ok := stringValue(req.Value)
	if !ok {
		BadRequest(c, "value must be a string")
		return
	}

	h.store.UpdatePersonalInfo(req.Field, value)
	c.Status(http.StatusNoContent)
}

// section describes the operations and legal fields of one repeatable
// section.
type section struct {
	add    func() any
	update func(index int, field string, value json.RawMessage) bool
	remove func(index int)
}

func (h *CvHandler) sections() map[string]section {
	st := h.store
	stringField := func(set func(int, string, string), fields ...string) func(int, string, json.RawMessage) bool {
		known := map[string]struct{}{}
		for _, f := range fields {
			known[f] = struct{}{}
		}
		return func(index int, field string, raw json.RawMessage) bool {
			if _, ok := known[field]; !ok {
				return false
			}
			value, ok := stringValue(raw)
			if !ok {
				return false
			}
			set(index, field, value)
			return true
		}
	}

	return map[string]section{
		"education": {
			add:    func() any { return st.AddEducation() },
			update: stringField(st.UpdateEducation, "degree", "school", "startDate", "endDate", "description"),
			remove: st.RemoveEducation,
		},
		"experience": {
			add:    func() any { return st.AddExperience() },
			update: stringField(st.UpdateExperience, "title", "company", "startDate", "endDate", "description"),
			remove: st.RemoveExperience,
		},
		"skills": {
			add: func() any { return st.AddSkill() },
			update: func(index int, field string, raw json.RawMessage) bool {
				switch field {
				case "name":
					value, ok := stringValue(raw)
					if !ok {
						return false
					}
					st.UpdateSkillName(index, value)
					return true
				case "level":
					level, ok := intValue(raw)
					if !ok {
						return false
					}
					// The editing control clamps to [1,5]; the store
					// takes the value as given.
					st.UpdateSkillLevel(index, clampLevel(level))
					return true
				default:
					return false
				}
			},
			remove: st.RemoveSkill,
		},
		"certifications": {
			add:    func() any { return st.AddCertification() },
			update: stringField(st.UpdateCertification, "name", "issuer", "date"),
			remove: st.RemoveCertification,
		},
		"languages": {
			add:    func() any { return st.AddLanguage() },
			update: stringField(st.UpdateLanguage, "name", "level"),
			remove: st.RemoveLanguage,
		},
		"interests": {
			add:    func() any { return st.AddInterest() },
			update: stringField(st.UpdateInterest, "name"),
			remove: st.RemoveInterest,
		},
	}
}

// AddEntry appends a fresh entry to a repeatable section.
func (h *CvHandler) AddEntry(c *gin.Context) {
	sec, ok := h.sections()[c.Param("section")]
	if !ok {
		NotFound(c, "unknown section")
		return
	}
	c.JSON(http.StatusCreated, sec.add())
}

// UpdateEntry overwrites one field of the entry at an index.
// Out-of-range indices are accepted and ignored.
func (h *CvHandler) UpdateEntry(c *gin.Context) {
	sec, ok := h.sections()[c.Param("section")]
	if !ok {
		NotFound(c, "unknown section")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		BadRequest(c, "invalid index")
		return
	}
	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if !sec.update(index, req.Field, req.Value) {
		BadRequest(c, "unknown field or wrong value type")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveEntry deletes the entry at an index. Out-of-range indices are
// accepted and ignored.
func (h *CvHandler) RemoveEntry(c *gin.Context) {
	sec, ok := h.sections()[c.Param("section")]
	if !ok {
		NotFound(c, "unknown section")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		BadRequest(c, "invalid index")
		return
	}
	sec.remove(index)
	c.Status(http.StatusNoContent)
}

func stringValue(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func intValue(raw json.RawMessage) (int, bool) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
