package cv

// Sample documents seed the initial state and back the language-toggle
// reset policy. The two are structurally identical and differ only in
// content; their entry IDs are fixed so equality snapshots are stable.

// SampleDocument returns a deep copy of the seed document for lang.
// Unknown languages fall back to the English sample.
func SampleDocument(lang string) Document {
	switch lang {
	case "km":
		return sampleKM.Clone()
	default:
		return sampleEN.Clone()
	}
}

var sampleEN = Document{
	PersonalInfo: PersonalInfo{
		Name:     "Sok Chhaya",
		JobTitle: "Web Developer",
		Phone:    "012 345 678",
		Email:    "sok.chhaya@email.com",
		Address:  "House 123, Street 456, Phnom Penh",
		About:    "I am a web developer with 5 years of experience in creating modern and responsive web applications. I specialize in React, TypeScript, and Node.js.",
	},
	Education: []Education{
		{ID: "edu-1", Degree: "Bachelor of Computer Science", School: "Royal University of Phnom Penh", StartDate: "2015", EndDate: "2019", Description: "Focused on software development and artificial intelligence."},
	},
	Experience: []Experience{
		{ID: "exp-1", Title: "Senior Web Developer", Company: "XYZ Technology", StartDate: "2021", EndDate: "Present", Description: "Led front-end development for major projects using React and TypeScript. Improved application performance by 20%."},
		{ID: "exp-2", Title: "Web Developer", Company: "ABC Digital", StartDate: "2019", EndDate: "2021", Description: "Developed and maintained e-commerce websites in collaboration with the UI/UX design team."},
	},
	Skills: []Skill{
		{ID: "skill-1", Name: "PhotoShop", Level: 5},
		{ID: "skill-2", Name: "Illustrator", Level: 5},
		{ID: "skill-3", Name: "AfterEffects", Level: 4},
		{ID: "skill-4", Name: "Premier Pro", Level: 5},
		{ID: "skill-5", Name: "Blender", Level: 5},
	},
	Certifications: []Certification{
		{ID: "cert-1", Name: "Step Academy Cambodia", Issuer: "CIW", Date: "2020"},
	},
	Languages: []Language{
		{ID: "lang-1", Name: "Khmer", Level: "Native"},
		{ID: "lang-2", Name: "English", Level: "Fluent"},
	},
	Interests: []Interest{
		{ID: "int-1", Name: "Reading"},
		{ID: "int-2", Name: "Photography"},
		{ID: "int-3", Name: "Traveling"},
	},
}

var sampleKM = Document{
	PersonalInfo: PersonalInfo{
		Name:     "Sok Chhaya",
		JobTitle: "Graphic Designer",
		Phone:    "012 345 678",
		Email:    "sok.chhaya@email.com",
		Address:  "ផ្ទះលេខ ១២៣, ផ្លូវ ៤៥៦, ភ្នំពេញ",
		About:    "✨ អ្នករចនាក្រាហ្វិក (Graphic Designer) 🎨 ច្នៃប្រឌិត | Logo | Branding | Poster | UI/UX 🖌️ ជំនាញក្នុង Photoshop, Illustrator, After Effects, Blender 🚀 បង្កើតការរចនាដែលទាក់ទាញ និងមានអត្ថន័យ",
	},
	Education: []Education{
		{ID: "edu-1", Degree: "បរិញ្ញាបត្រវិទ្យាសាស្ត្រកុំព្យូទ័រ", School: "សាកលវិទ្យាល័យភូមិន្ទភ្នំពេញ", StartDate: "2015", EndDate: "2019", Description: "បានផ្តោតលើការអភិវឌ្ឍន៍កម្មវិធី និងបញ្ញាសិប្បនិម្មិត។"},
	},
	Experience: []Experience{
		{ID: "exp-1", Title: "អ្នកអភិវឌ្ឍន៍គេហទំព័រជាន់ខ្ពស់", Company: "ក្រុមហ៊ុនតិចណូឡូជី XYZ", StartDate: "2021", EndDate: "បច្ចុប្បន្ន", Description: "ដឹកនាំការអភិវឌ្ឍន៍ផ្នែកខាងមុខសម្រាប់គម្រោងធំៗ ដោយប្រើប្រាស់ React និង TypeScript។ បង្កើនកម្មវិធីបាន 20% ។"},
		{ID: "exp-2", Title: "អ្នកអភិវឌ្ឍន៍គេហទំព័រ", Company: "ក្រុមហ៊ុនឌីជីថល ABC", StartDate: "2019", EndDate: "2021", Description: "បានបង្កើតនិងថែទាំគេហទំព័រពាណិជ្ជកម្មអេឡិចត្រូនិច ដោយសហការជាមួយក្រុមអ្នករចនា UI/UX ។"},
	},
	Skills: []Skill{
		{ID: "skill-1", Name: "React", Level: 5},
		{ID: "skill-2", Name: "TypeScript", Level: 5},
		{ID: "skill-3", Name: "Node.js", Level: 4},
		{ID: "skill-4", Name: "Tailwind CSS", Level: 5},
		{ID: "skill-5", Name: "ភាសាខ្មែរ", Level: 5},
	},
	Certifications: []Certification{
		{ID: "cert-1", Name: "Certified JavaScript Developer", Issuer: "CIW", Date: "2020"},
	},
	Languages: []Language{
		{ID: "lang-1", Name: "ភាសាខ្មែរ", Level: "ភាសាកំណើត"},
		{ID: "lang-2", Name: "English", Level: "Fluent"},
	},
	Interests: []Interest{
		{ID: "int-1", Name: "អានសៀវភៅ"},
		{ID: "int-2", Name: "ការថតរូប"},
		{ID: "int-3", Name: "ការធ្វើដំណើរ"},
	},
}
