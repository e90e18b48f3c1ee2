// Package document defines the portfolio content aggregate: the profile
// fields, skills, education timeline, and project list edited through the
// admin surfaces and rendered by the public site.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

// Document is the root aggregate. It is always serialized and persisted as a
// single self-contained value; entries never reference anything outside it.
type Document struct {
	Name      string      `json:"name" validate:"required"`
	Tagline   string      `json:"tagline"`
	Intro     string      `json:"intro"`
	AvatarURL string      `json:"avatarUrl"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	LinkedIn  string      `json:"linkedin"`
	Location  string      `json:"location"`
	About     string      `json:"about"`
	Interests string      `json:"interests"`
	ResumeURL string      `json:"resumeUrl"`
	Skills    []string    `json:"skills" validate:"required"`
	Education []Education `json:"education" validate:"required,dive"`
	Projects  []Project   `json:"projects" validate:"required,dive"`
}

type Education struct {
	ID          string `json:"id" validate:"required"`
	Level       string `json:"level"`
	Institution string `json:"institution"`
	Details     string `json:"details"`
	Year        string `json:"year"`
}

type Project struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title"`
	TechStack   string `json:"techStack"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ImageURL    string `json:"imageUrl"`
	LiveDemoURL string `json:"liveDemoUrl,omitempty"`
	GithubURL   string `json:"githubUrl,omitempty"`
}

// NewEntryID returns a fresh opaque id for an education or project entry.
// Ids are never reused after removal.
func NewEntryID() string {
	return uuid.NewString()
}

// NewEducation builds a placeholder entry with a fresh unique id.
func NewEducation() Education {
	return Education{
		ID:          NewEntryID(),
		Level:       "New Degree",
		Institution: "University Name",
		Details:     "Grade/Score",
		Year:        "Year",
	}
}

// NewProject builds a placeholder entry with a fresh unique id.
func NewProject() Project {
	return Project{
		ID:          NewEntryID(),
		Title:       "New Project",
		TechStack:   "Tech Stack",
		Description: "Description...",
		Status:      "Pending",
		ImageURL:    "https://picsum.photos/seed/new/600/400",
	}
}

// Clone returns a deep copy, so callers can hand out working copies without
// sharing slice storage with the committed document.
func (d Document) Clone() Document {
	out := d

	out.Skills = append([]string(nil), d.Skills...)
	out.Education = append([]Education(nil), d.Education...)
	out.Projects = append([]Project(nil), d.Projects...)

	return out
}

// Canonical serializes the document in its canonical textual form: JSON with
// 2-space indentation. This is the durable on-disk shape, the backup file
// format, and the content pushed to the remote store.
func (d Document) Canonical() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("could not serialise document: %w", err)
	}

	return data, nil
}

// Version derives the document's version marker from its canonical form.
func (d Document) Version() string {
	data, err := d.Canonical()

	if err != nil {
		return ""
	}

	return portal.Sha256Hex(data)
}

// Parse decodes the canonical form back into a document. Unknown fields are
// rejected so the import boundary fails closed on foreign payloads.
func Parse(data []byte) (Document, error) {
	var doc Document

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("could not parse document: %w", err)
	}

	return doc, nil
}

// CheckIDs enforces the id invariants: every education and project entry
// carries a non-empty id that is unique within its containing list.
func (d Document) CheckIDs() error {
	seen := make(map[string]struct{}, len(d.Education))

	for _, entry := range d.Education {
		if entry.ID == "" {
			return fmt.Errorf("education entry %q has an empty id", entry.Level)
		}

		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("duplicate education id: %s", entry.ID)
		}

		seen[entry.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(d.Projects))

	for _, entry := range d.Projects {
		if entry.ID == "" {
			return fmt.Errorf("project entry %q has an empty id", entry.Title)
		}

		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("duplicate project id: %s", entry.ID)
		}

		seen[entry.ID] = struct{}{}
	}

	return nil
}
