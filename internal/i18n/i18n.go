// Package i18n holds the static translation table for UI and template
// labels. Lookup falls back to English when a key is missing for the
// requested language.
package i18n

// Supported language tags.
const (
	LangEN = "en"
	LangKM = "km"
)

// Supported reports whether lang is a known language tag.
func Supported(lang string) bool {
	return lang == LangEN || lang == LangKM
}

// T returns the label for key in lang, falling back to English and
// finally to the key itself so a missing entry never renders blank.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if label, ok := table[key]; ok {
			return label
		}
	}
	if label, ok := translations[LangEN][key]; ok {
		return label
	}
	return key
}

var translations = map[string]map[string]string{
	LangKM: {
		"title":              "កម្មវិធីបង្កើត CV",
		"toggle_en":          "English",
		"toggle_km":          "ខ្មែរ",
		"controls":           "ផ្ទាំងបញ្ជា",
		"templates":          "ទម្រង់",
		"accent_color":       "ពណ៌ចម្បង",
		"download_pdf":       "ទាញយកជា PDF",
		"downloading":        "កំពុងទាញយក...",
		"save_image":         "រក្សាទុកជា​រូបភាព",
		"saving_image":       "កំពុងរក្សាទុក...",
		"form_title":         "ព័ត៌មាន CV",
		"personal_info":      "ព័ត៌មានផ្ទាល់ខ្លួន",
		"full_name":          "ឈ្មោះពេញ",
		"job_title":          "តួនាទី",
		"phone":              "លេខទូរស័ព្ទ",
		"email":              "អ៊ីមែល",
		"address":            "អាសយដ្ឋាន",
		"profile_picture":    "រូបថត Profile",
		"upload_photo":       "បញ្ចូលរូបថត",
		"about_me":           "អំពីខ្ញុំ",
		"education":          "ការអប់រំ",
		"add_education":      "បន្ថែមការអប់រំ",
		"degree":             "សញ្ញាបត្រ",
		"school":             "សាលា",
		"start_date":         "ថ្ងៃចាប់ផ្តើម",
		"end_date":           "ថ្ងៃបញ្ចប់",
		"description":        "ការពិពណ៌នា",
		"work_experience":    "បទពិសោធន៍ការងារ",
		"add_experience":     "បន្ថែមបទពិសោធន៍",
		"company":            "ក្រុមហ៊ុន",
		"skills":             "ជំនាញ",
		"add_skill":          "បន្ថែមជំនាញ",
		"skill_name":         "ឈ្មោះជំនាញ",
		"skill_level":        "កម្រិតជំនាញ",
		"certifications":     "វិញ្ញាបនបត្រ",
		"add_certification":  "បន្ថែមវិញ្ញាបនបត្រ",
		"certification_name": "ឈ្មោះវិញ្ញាបនបត្រ",
		"issuer":             "អ្នកចេញ",
		"date_issued":        "កាលបរិច្ឆេទចេញ",
		"languages":          "ភាសា",
		"add_language":       "បន្ថែមភាសា",
		"language_name":      "ឈ្មោះភាសា",
		"language_level":     "កម្រិត",
		"interests":          "ចំណូលចិត្ត",
		"add_interest":       "បន្ថែមចំណូលចិត្ត",
		"interest_name":      "ឈ្មោះចំណូលចិត្ត",
		"present":            "បច្ចុប្បន្ន",
		"remove":             "លុប",
		"crop_image_title":   "កាត់រូបភាព",
		"crop_button":        "កាត់",
		"cancel_button":      "បោះបង់",
	},
	LangEN: {
		"title":              "CV Builder",
		"toggle_en":          "English",
		"toggle_km":          "Khmer",
		"controls":           "Control Panel",
		"templates":          "Templates",
		"accent_color":       "Accent Color",
		"download_pdf":       "Download PDF",
		"downloading":        "Downloading...",
		"save_image":         "Save as Image",
		"saving_image":       "Saving...",
		"form_title":         "CV Information",
		"personal_info":      "Personal Information",
		"full_name":          "Full Name",
		"job_title":          "Job Title",
		"phone":              "Phone",
		"email":              "Email",
		"address":            "Address",
		"profile_picture":    "Profile Picture",
		"upload_photo":       "Upload Photo",
		"about_me":           "About Me",
		"education":          "Education",
		"add_education":      "Add Education",
		"degree":             "Degree",
		"school":             "School",
		"start_date":         "Start Date",
		"end_date":           "End Date",
		"description":        "Description",
		"work_experience":    "Work Experience",
		"add_experience":     "Add Experience",
		"company":            "Company",
		"skills":             "Skills",
		"add_skill":          "Add Skill",
		"skill_name":         "Skill Name",
		"skill_level":        "Skill Level",
		"certifications":     "Certifications",
		"add_certification":  "Add Certification",
		"certification_name": "Certification Name",
		"issuer":             "Issuer",
		"date_issued":        "Date Issued",
		"languages":          "Languages",
		"add_language":       "Add Language",
		"language_name":      "Language Name",
		"language_level":     "Level",
		"interests":          "Interests",
		"add_interest":       "Add Interest",
		"interest_name":      "Interest Name",
		"present":            "Present",
		"remove":             "Remove",
		"crop_image_title":   "Crop Image",
		"crop_button":        "Crop",
		"cancel_button":      "Cancel",
	},
}
