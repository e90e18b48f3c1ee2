package editor

import (
	"errors"
	"testing"

	"github.com/thanzeeha/portfolio4/document"
)

type recordingSaver struct {
	saved []document.Document
}

func (r *recordingSaver) Save(doc document.Document) {
	r.saved = append(r.saved, doc)
}

func TestBeginStagesAnIsolatedCopy(t *testing.T) {
	base := document.Default()
	session := Begin(base)

	if err := session.SetField("name", "Changed"); err != nil {
		t.Fatalf("set field: %v", err)
	}

	session.AddSkill()

	if base.Name == "Changed" {
		t.Fatal("editing the session must not mutate the source document")
	}

	if len(base.Skills) == len(session.Document().Skills) {
		t.Fatal("session skills share storage with the source document")
	}
}

func TestSetFieldCoversAllScalars(t *testing.T) {
	session := Begin(document.Default())

	fields := []string{
		"name", "tagline", "intro", "avatarUrl", "email", "phone",
		"linkedin", "location", "about", "interests", "resumeUrl",
	}

	for _, field := range fields {
		if err := session.SetField(field, "value of "+field); err != nil {
			t.Fatalf("set %q: %v", field, err)
		}
	}

	doc := session.Document()
	if doc.AvatarURL != "value of avatarUrl" || doc.ResumeURL != "value of resumeUrl" {
		t.Fatal("scalar values did not land on the working copy")
	}
}

func TestSetFieldAllowsEmptyValue(t *testing.T) {
	session := Begin(document.Default())

	if err := session.SetField("tagline", ""); err != nil {
		t.Fatalf("empty value must be permitted: %v", err)
	}

	if session.Document().Tagline != "" {
		t.Fatal("empty value did not propagate")
	}
}

func TestSetFieldRejectsUnknownName(t *testing.T) {
	session := Begin(document.Default())

	if err := session.SetField("nickname", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestSkillIndexOperations(t *testing.T) {
	session := Begin(document.Default())
	before := len(session.Skills())

	session.AddSkill()

	skills := session.Skills()
	if len(skills) != before+1 {
		t.Fatalf("expected %d skills, got %d", before+1, len(skills))
	}

	if err := session.SetSkill(before, "Kubernetes"); err != nil {
		t.Fatalf("set skill: %v", err)
	}

	if got := session.Skills()[before]; got != "Kubernetes" {
		t.Fatalf("expected replaced skill, got %q", got)
	}

	if err := session.RemoveSkill(0); err != nil {
		t.Fatalf("remove skill: %v", err)
	}

	if len(session.Skills()) != before {
		t.Fatal("remove did not shrink the list")
	}

	if err := session.SetSkill(99, "x"); err == nil {
		t.Fatal("expected out-of-range error")
	}

	if err := session.RemoveSkill(-1); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestEducationHeadInsertionAndOrder(t *testing.T) {
	session := Begin(document.Document{
		Name:     "x",
		Skills:   []string{"a"},
		Projects: []document.Project{},
	})

	a := session.AddEducation()
	b := session.AddEducation()

	entries := session.Document().Education
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].ID != b.ID || entries[1].ID != a.ID {
		t.Fatal("newest entry must precede older entries")
	}

	if err := session.RemoveEducation(b.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	entries = session.Document().Education
	if len(entries) != 1 || entries[0].ID != a.ID {
		t.Fatal("removal by id must leave the other entry unchanged")
	}
}

func TestPatchEducationByID(t *testing.T) {
	session := Begin(document.Default())
	entry := session.AddEducation()

	if err := session.PatchEducation(entry.ID, "institution", "MIT"); err != nil {
		t.Fatalf("patch: %v", err)
	}

	if got := session.Document().Education[0].Institution; got != "MIT" {
		t.Fatalf("patch did not apply, got %q", got)
	}

	if err := session.PatchEducation("missing-id", "year", "2020"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	if err := session.PatchEducation(entry.ID, "gpa", "4.0"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestProjectLifecycle(t *testing.T) {
	session := Begin(document.Default())

	entry := session.AddProject()
	if session.Document().Projects[0].ID != entry.ID {
		t.Fatal("new project must be inserted at the head")
	}

	if err := session.PatchProject(entry.ID, "status", "Completed"); err != nil {
		t.Fatalf("patch: %v", err)
	}

	if err := session.PatchProject(entry.ID, "liveDemoUrl", "https://example.com"); err != nil {
		t.Fatalf("patch optional field: %v", err)
	}

	got := session.Document().Projects[0]
	if got.Status != "Completed" || got.LiveDemoURL != "https://example.com" {
		t.Fatalf("patches did not apply: %+v", got)
	}

	if err := session.RemoveProject(entry.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if err := session.RemoveProject(entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound on second removal, got %v", err)
	}
}

func TestIDUniquenessAcrossAddRemoveSequences(t *testing.T) {
	session := Begin(document.Default())

	for i := 0; i < 5; i++ {
		session.AddProject()
	}

	docs := session.Document()
	session.RemoveProject(docs.Projects[2].ID)
	session.AddProject()
	session.AddProject()

	if err := session.Document().CheckIDs(); err != nil {
		t.Fatalf("ids must stay pairwise distinct: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	session := Begin(document.Default())
	session.SetField("name", "Round Trip")

	data, err := session.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other := Begin(document.Default())
	if err := other.Import(data); err != nil {
		t.Fatalf("import: %v", err)
	}

	if other.Document().Name != "Round Trip" {
		t.Fatal("import did not replace the working copy")
	}
}

func TestImportMalformedLeavesWorkingCopyUntouched(t *testing.T) {
	session := Begin(document.Default())
	session.SetField("name", "Before Import")

	err := session.Import([]byte(`{not valid json`))
	if !errors.Is(err, ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}

	if session.Document().Name != "Before Import" {
		t.Fatal("failed import must not touch the working copy")
	}
}

func TestImportRejectsUnknownFields(t *testing.T) {
	session := Begin(document.Default())

	payload := []byte(`{"name":"x","skills":[],"education":[],"projects":[],"surprise":1}`)
	if err := session.Import(payload); !errors.Is(err, ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
}

func TestImportRejectsMissingRequiredFields(t *testing.T) {
	session := Begin(document.Default())

	payload := []byte(`{"tagline":"no name here"}`)
	if err := session.Import(payload); !errors.Is(err, ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
}

func TestImportRejectsDuplicateEntryIDs(t *testing.T) {
	session := Begin(document.Default())

	payload := []byte(`{
  "name": "x",
  "skills": ["a"],
  "education": [
    {"id": "dup", "level": "BSc", "institution": "A", "details": "", "year": "2020"},
    {"id": "dup", "level": "MSc", "institution": "B", "details": "", "year": "2022"}
  ],
  "projects": []
}`)

	if err := session.Import(payload); !errors.Is(err, ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
}

func TestCommitHandsOffACopyAndKeepsTheWorkingCopy(t *testing.T) {
	session := Begin(document.Default())
	session.SetField("name", "Committed")

	saver := &recordingSaver{}
	committed := session.Commit(saver)

	if len(saver.saved) != 1 || saver.saved[0].Name != "Committed" {
		t.Fatalf("commit did not reach the saver: %+v", saver.saved)
	}

	if committed.Version() != session.Document().Version() {
		t.Fatal("commit must not clear or reset the working copy")
	}

	// mutating after commit must not affect the committed snapshot
	session.AddSkill()
	if len(saver.saved[0].Skills) == len(session.Document().Skills) {
		t.Fatal("committed snapshot shares storage with the session")
	}
}
