package store

import "cvstudio/internal/cv"

// Per-section operations. Every Add appends an entry with a fresh
// unique ID and empty field values; Update overwrites one field of one
// entry; Remove deletes by index. Update and Remove are silent no-ops
// when the index is out of range.

// AddEducation appends an empty education entry and returns it.
func (s *Store) AddEducation() cv.Education {
	entry := cv.Education{ID: newEntryID()}
	s.commit(func() { s.doc.Education = append(s.doc.Education, entry) })
	return entry
}

// UpdateEducation overwrites one field of the entry at index.
func (s *Store) UpdateEducation(index int, field, value string) {
	s.commit(func() {
		updateAt(s.doc.Education, index, func(e *cv.Education) {
			switch field {
			case "degree":
				e.Degree = value
			case "school":
				e.School = value
			case "startDate":
				e.StartDate = value
			case "endDate":
				e.EndDate = value
			case "description":
				e.Description = value
			}
		})
	})
}

// RemoveEducation deletes the entry at index.
func (s *Store) RemoveEducation(index int) {
	s.commit(func() { s.doc.Education = removeAt(s.doc.Education, index) })
}

// AddExperience appends an empty experience entry and returns it.
func (s *Store) AddExperience() cv.Experience {
	entry := cv.Experience{ID: newEntryID()}
	s.commit(func() { s.doc.Experience = append(s.doc.Experience, entry) })
	return entry
}

// UpdateExperience overwrites one field of the entry at index.
func (s *Store) UpdateExperience(index int, field, value string) {
	s.commit(func() {
		updateAt(s.doc.Experience, index, func(e *cv.Experience) {
			switch field {
			case "title":
				e.Title = value
			case "company":
				e.Company = value
			case "startDate":
				e.StartDate = value
			case "endDate":
				e.EndDate = value
			case "description":
				e.Description = value
			}
		})
	})
}

// RemoveExperience deletes the entry at index.
func (s *Store) RemoveExperience(index int) {
	s.commit(func() { s.doc.Experience = removeAt(s.doc.Experience, index) })
}

// AddSkill appends a skill entry at the default mid level and returns it.
func (s *Store) AddSkill() cv.Skill {
	entry := cv.Skill{ID: newEntryID(), Level: 3}
	s.commit(func() { s.doc.Skills = append(s.doc.Skills, entry) })
	return entry
}

// UpdateSkillName overwrites the name of the skill at index.
func (s *Store) UpdateSkillName(index int, name string) {
	s.commit(func() {
		updateAt(s.doc.Skills, index, func(e *cv.Skill) { e.Name = name })
	})
}

// UpdateSkillLevel overwrites the level of the skill at index. The
// store does not clamp; the editing layer keeps levels in [1,5].
func (s *Store) UpdateSkillLevel(index int, level int) {
	s.commit(func() {
		updateAt(s.doc.Skills, index, func(e *cv.Skill) { e.Level = level })
	})
}

// RemoveSkill deletes the entry at index.
func (s *Store) RemoveSkill(index int) {
	s.commit(func() { s.doc.Skills = removeAt(s.doc.Skills, index) })
}

// AddCertification appends an empty certification entry and returns it.
func (s *Store) AddCertification() cv.Certification {
	entry := cv.Certification{ID: newEntryID()}
	s.commit(func() { s.doc.Certifications = append(s.doc.Certifications, entry) })
	return entry
}

// UpdateCertification overwrites one field of the entry at index.
func (s *Store) UpdateCertification(index int, field, value string) {
	s.commit(func() {
		updateAt(s.doc.Certifications, index, func(e *cv.Certification) {
			switch field {
			case "name":
				e.Name = value
			case "issuer":
				e.Issuer = value
			case "date":
				e.Date = value
			}
		})
	})
}

// RemoveCertification deletes the entry at index.
func (s *Store) RemoveCertification(index int) {
	s.commit(func() { s.doc.Certifications = removeAt(s.doc.Certifications, index) })
}

// AddLanguage appends an empty language entry and returns it.
func (s *Store) AddLanguage() cv.Language {
	entry := cv.Language{ID: newEntryID()}
	s.commit(func() { s.doc.Languages = append(s.doc.Languages, entry) })
	return entry
}

// UpdateLanguage overwrites one field of the entry at index.
func (s *Store) UpdateLanguage(index int, field, value string) {
	s.commit(func() {
		updateAt(s.doc.Languages, index, func(e *cv.Language) {
			switch field {
			case "name":
				e.Name = value
			case "level":
				e.Level = value
			}
		})
	})
}

// RemoveLanguage deletes the entry at index.
func (s *Store) RemoveLanguage(index int) {
	s.commit(func() { s.doc.Languages = removeAt(s.doc.Languages, index) })
}

// AddInterest appends an empty interest entry and returns it.
func (s *Store) AddInterest() cv.Interest {
	entry := cv.Interest{ID: newEntryID()}
	s.commit(func() { s.doc.Interests = append(s.doc.Interests, entry) })
	return entry
}

// UpdateInterest overwrites one field of the entry at index.
func (s *Store) UpdateInterest(index int, field, value string) {
	s.commit(func() {
		updateAt(s.doc.Interests, index, func(e *cv.Interest) {
			if field == "name" {
				e.Name = value
			}
		})
	})
}

// RemoveInterest deletes the entry at index.
func (s *Store) RemoveInterest(index int) {
	s.commit(func() { s.doc.Interests = removeAt(s.doc.Interests, index) })
}
