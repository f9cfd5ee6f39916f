// Package cv defines the document schema for a CV: the personal info
// record plus the repeatable section lists, and the fixed A4 page
// geometry every template renders into.
package cv

// A4 page size at the 96 DPI reference used by the preview surface
// and the headless capture viewport.
const (
	A4WidthPx  = 794  // 210mm
	A4HeightPx = 1123 // 297mm

	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// PersonalInfo is the singleton header record of a document. Photo is
// either empty or a self-contained data URI so the document stays
// portable without network access.
type PersonalInfo struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Photo    string `json:"photo"`
	About    string `json:"about"`
}

// Education is one entry of the education section.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Experience is one entry of the work experience section.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Skill is one entry of the skills section. Level is 1-5; the editing
// layer clamps it, the document itself does not.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Certification is one entry of the certifications section.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Language is one entry of the languages section. Level is free text,
// e.g. Native, Fluent, Intermediate.
type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Interest is one entry of the interests section.
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the root aggregate: the full CV content being edited.
// Section order is rendering order.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Interests      []Interest      `json:"interests"`
}

// Clone returns a deep copy of the document. Snapshot reads hand out
// clones so callers can never mutate committed state.
func (d Document) Clone() Document {
	out := d
	out.Education = append([]Education(nil), d.Education...)
	out.Experience = append([]Experience(nil), d.Experience...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Languages = append([]Language(nil), d.Languages...)
	out.Interests = append([]Interest(nil), d.Interests...)
	return out
}
