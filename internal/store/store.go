// Package store is the single source of truth for the document and the
// UI preferences. All mutation goes through named operations, every
// committed operation bumps a revision, and watchers are notified after
// each commit so views can re-render.
//
// The store is deliberately permissive: indices out of range and
// unknown field names are silent no-ops. The API layer validates
// shapes before calling in.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"cvstudio/internal/cv"
	"cvstudio/internal/i18n"
)

// Default preferences for a fresh session.
const (
	DefaultLanguage    = i18n.LangKM
	DefaultTheme       = "light"
	DefaultTemplate    = "classic"
	DefaultAccentColor = "#2563eb"
)

// Preferences holds the UI choices that live alongside the document.
type Preferences struct {
	Language    string `json:"language"`
	Theme       string `json:"theme"`
	Template    string `json:"template"`
	AccentColor string `json:"accentColor"`
}

// Snapshot is a consistent read of everything a view needs to render.
type Snapshot struct {
	Document    cv.Document `json:"document"`
	Preferences Preferences `json:"preferences"`
	Revision    uint64      `json:"revision"`
}

// Store guards the document and preferences behind a single mutex.
// Each operation is atomic with respect to readers and watchers.
type Store struct {
	mu       sync.Mutex
	doc      cv.Document
	prefs    Preferences
	revision uint64
	watchers map[chan uint64]struct{}
}

// New seeds a store with the sample document for the default language.
func New() *Store {
	return &Store{
		doc: cv.SampleDocument(DefaultLanguage),
		prefs: Preferences{
			Language:    DefaultLanguage,
			Theme:       DefaultTheme,
			Template:    DefaultTemplate,
			AccentColor: DefaultAccentColor,
		},
		watchers: make(map[chan uint64]struct{}),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Document:    s.doc.Clone(),
		Preferences: s.prefs,
		Revision:    s.revision,
	}
}

// Document returns a deep copy of the current document.
func (s *Store) Document() cv.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Preferences returns the current preferences.
func (s *Store) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Watch registers a subscriber and returns a channel that carries the
// revision number of each commit. Delivery is coalescing: a slow
// consumer sees the latest revision rather than blocking a commit.
// The subscription is dropped when ctx is done.
func (s *Store) Watch(ctx context.Context) <-chan uint64 {
	ch := make(chan uint64, 1)

	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		s.mu.Unlock()
	}()

	return ch
}

// commit runs fn under the lock, bumps the revision and notifies
// watchers. Every named operation funnels through here.
func (s *Store) commit(fn func()) {
	s.mu.Lock()
	fn()
	s.revision++
	rev := s.revision
	for ch := range s.watchers {
		select {
		case ch <- rev:
		default:
			// Replace the stale pending revision with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- rev:
			default:
			}
		}
	}
	s.mu.Unlock()
}

// SetLanguage updates the language preference. When the current
// document is still the untouched sample of the other language, the
// document is swapped to lang's sample so first-time users get
// localized demo content; any edit suppresses the swap so user data is
// never discarded. The photo survives the swap either way.
func (s *Store) SetLanguage(lang string) {
	s.commit(func() {
		other := i18n.LangEN
		if lang == i18n.LangEN {
			other = i18n.LangKM
		}
		if equalIgnoringPhoto(s.doc, cv.SampleDocument(other)) {
			photo := s.doc.PersonalInfo.Photo
			s.doc = cv.SampleDocument(lang)
			s.doc.PersonalInfo.Photo = photo
		}
		s.prefs.Language = lang
	})
}

// SetTheme sets the light/dark preference.
func (s *Store) SetTheme(theme string) {
	s.commit(func() { s.prefs.Theme = theme })
}

// SetTemplate selects the template renderer variant.
func (s *Store) SetTemplate(id string) {
	s.commit(func() { s.prefs.Template = id })
}

// SetAccentColor sets the accent color passed to renderers.
func (s *Store) SetAccentColor(color string) {
	s.commit(func() { s.prefs.AccentColor = color })
}

// UpdatePersonalInfo overwrites one scalar field of the personal info
// record. Unknown field names are ignored.
func (s *Store) UpdatePersonalInfo(field, value string) {
	s.commit(func() {
		p := &s.doc.PersonalInfo
		switch field {
		case "name":
			p.Name = value
		case "jobTitle":
			p.JobTitle = value
		case "phone":
			p.Phone = value
		case "email":
			p.Email = value
		case "address":
			p.Address = value
		case "photo":
			p.Photo = value
		case "about":
			p.About = value
		}
	})
}

// equalIgnoringPhoto deep-compares two documents with the photo field
// nulled out on both sides, via a canonical JSON snapshot. Any other
// difference, including list length or order, counts as modified.
func equalIgnoringPhoto(a, b cv.Document) bool {
	a.PersonalInfo.Photo = ""
	b.PersonalInfo.Photo = ""
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

func newEntryID() string {
	return uuid.NewString()
}

// updateAt applies fn to the entry at index, or does nothing when the
// index is out of range.
func updateAt[T any](list []T, index int, fn func(*T)) {
	if index < 0 || index >= len(list) {
		return
	}
	fn(&list[index])
}

// removeAt deletes the entry at index, shifting subsequent entries
// left; out-of-range indices leave the list untouched.
func removeAt[T any](list []T, index int) []T {
	if index < 0 || index >= len(list) {
		return list
	}
	return append(list[:index], list[index+1:]...)
}
