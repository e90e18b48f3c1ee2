// Package editor stages edits to a profile document. A Session owns a
// working copy decoupled from the committed document; nothing the operator
// does is visible outside the session until it is committed through the
// caller's save pathway.
package editor

import (
	"errors"
	"fmt"

	"github.com/thanzeeha/portfolio4/document"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

var (
	ErrUnknownField  = errors.New("unknown document field")
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidImport = errors.New("invalid document input")
)

// Saver is the commit pathway. The local content store satisfies it.
type Saver interface {
	Save(doc document.Document)
}

type Session struct {
	working document.Document
}

// Begin opens an edit session over a deep copy of the given document.
func Begin(doc document.Document) *Session {
	return &Session{working: doc.Clone()}
}

// Document returns a snapshot of the working copy.
func (s *Session) Document() document.Document {
	return s.working.Clone()
}

// SetField replaces a single scalar field by its serialized name. Empty
// values are permitted and propagate as-is.
func (s *Session) SetField(name, value string) error {
	switch name {
	case "name":
		s.working.Name = value
	case "tagline":
		s.working.Tagline = value
	case "intro":
		s.working.Intro = value
	case "avatarUrl":
		s.working.AvatarURL = value
	case "email":
		s.working.Email = value
	case "phone":
		s.working.Phone = value
	case "linkedin":
		s.working.LinkedIn = value
	case "location":
		s.working.Location = value
	case "about":
		s.working.About = value
	case "interests":
		s.working.Interests = value
	case "resumeUrl":
		s.working.ResumeURL = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return nil
}

func (s *Session) Skills() []string {
	return append([]string(nil), s.working.Skills...)
}

func (s *Session) SetSkill(index int, value string) error {
	if index < 0 || index >= len(s.working.Skills) {
		return fmt.Errorf("skill index %d out of range", index)
	}

	s.working.Skills[index] = value

	return nil
}

func (s *Session) AddSkill() {
	s.working.Skills = append(s.working.Skills, "New Skill")
}

// RemoveSkill drops the element at index; subsequent skills shift left.
func (s *Session) RemoveSkill(index int) error {
	if index < 0 || index >= len(s.working.Skills) {
		return fmt.Errorf("skill index %d out of range", index)
	}

	s.working.Skills = append(s.working.Skills[:index], s.working.Skills[index+1:]...)

	return nil
}

// AddEducation inserts a fresh placeholder entry at the head of the list and
// returns it, so newest entries display first.
func (s *Session) AddEducation() document.Education {
	entry := document.NewEducation()
	s.working.Education = append([]document.Education{entry}, s.working.Education...)

	return entry
}

// PatchEducation replaces a single field of the entry with the given id.
func (s *Session) PatchEducation(id, field, value string) error {
	for i := range s.working.Education {
		if s.working.Education[i].ID != id {
			continue
		}

		switch field {
		case "level":
			s.working.Education[i].Level = value
		case "institution":
			s.working.Education[i].Institution = value
		case "details":
			s.working.Education[i].Details = value
		case "year":
			s.working.Education[i].Year = value
		default:
			return fmt.Errorf("%w: education.%q", ErrUnknownField, field)
		}

		return nil
	}

	return fmt.Errorf("%w: education id %q", ErrEntryNotFound, id)
}

func (s *Session) RemoveEducation(id string) error {
	for i := range s.working.Education {
		if s.working.Education[i].ID == id {
			s.working.Education = append(s.working.Education[:i], s.working.Education[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%w: education id %q", ErrEntryNotFound, id)
}

// AddProject inserts a fresh placeholder entry at the head of the list and
// returns it.
func (s *Session) AddProject() document.Project {
	entry := document.NewProject()
	s.working.Projects = append([]document.Project{entry}, s.working.Projects...)

	return entry
}

func (s *Session) PatchProject(id, field, value string) error {
	for i := range s.working.Projects {
		if s.working.Projects[i].ID != id {
			continue
		}

		switch field {
		case "title":
			s.working.Projects[i].Title = value
		case "techStack":
			s.working.Projects[i].TechStack = value
		case "description":
			s.working.Projects[i].Description = value
		case "status":
			s.working.Projects[i].Status = value
		case "imageUrl":
			s.working.Projects[i].ImageURL = value
		case "liveDemoUrl":
			s.working.Projects[i].LiveDemoURL = value
		case "githubUrl":
			s.working.Projects[i].GithubURL = value
		default:
			return fmt.Errorf("%w: projects.%q", ErrUnknownField, field)
		}

		return nil
	}

	return fmt.Errorf("%w: project id %q", ErrEntryNotFound, id)
}

func (s *Session) RemoveProject(id string) error {
	for i := range s.working.Projects {
		if s.working.Projects[i].ID == id {
			s.working.Projects = append(s.working.Projects[:i], s.working.Projects[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%w: project id %q", ErrEntryNotFound, id)
}

// Export serializes the working copy to its canonical textual form, suitable
// for saving as a backup file.
func (s *Session) Export() ([]byte, error) {
	return s.working.Canonical()
}

// Import parses a full document and replaces the working copy. The input is
// validated strictly: unknown fields, missing required fields, and duplicate
// entry ids are all rejected, and any failure leaves the working copy
// untouched.
func (s *Session) Import(data []byte) error {
	doc, err := ValidateImport(data)
	if err != nil {
		return err
	}

	s.working = doc

	return nil
}

// Commit hands the working copy to the caller's save pathway. The working
// copy is not cleared; the operator keeps editing from where they were.
func (s *Session) Commit(saver Saver) document.Document {
	committed := s.working.Clone()
	saver.Save(committed)

	return committed
}

// ValidateImport applies the full import gauntlet to raw document text and
// returns the typed document when it passes.
func ValidateImport(data []byte) (document.Document, error) {
	doc, err := document.Parse(data)
	if err != nil {
		return document.Document{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	check := portal.GetDefaultValidator()
	if _, err := check.Rejects(doc); err != nil {
		return document.Document{}, fmt.Errorf("%w: %s", ErrInvalidImport, check.GetErrorsAsJson())
	}

	if err := doc.CheckIDs(); err != nil {
		return document.Document{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	return doc, nil
}
