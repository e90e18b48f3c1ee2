package document

import (
	"strings"
	"testing"
)

func TestNewEntryIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := NewEntryID()

		if id == "" {
			t.Fatalf("empty id")
		}

		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id: %s", id)
		}

		seen[id] = struct{}{}
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := Default()
	clone := original.Clone()

	clone.Skills[0] = "changed"
	clone.Education[0].Institution = "changed"
	clone.Projects[0].Title = "changed"

	if original.Skills[0] == "changed" {
		t.Fatalf("skills storage shared")
	}

	if original.Education[0].Institution == "changed" {
		t.Fatalf("education storage shared")
	}

	if original.Projects[0].Title == "changed" {
		t.Fatalf("projects storage shared")
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	doc := Default()

	data, err := doc.Canonical()
	if err != nil {
		t.Fatalf("canonical: %v", err)
	}

	if !strings.HasPrefix(string(data), "{\n  \"name\"") {
		t.Fatalf("expected 2-space indentation, got prefix %q", string(data[:12]))
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if parsed.Name != doc.Name || len(parsed.Projects) != len(doc.Projects) {
		t.Fatalf("round trip mismatch")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte(`{"name":"X","unknown":true}`)); err == nil {
		t.Fatalf("expected unknown field rejection")
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	if _, err := Parse([]byte(`{not valid json`)); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestVersionTracksContent(t *testing.T) {
	doc := Default()
	v1 := doc.Version()

	if v1 == "" {
		t.Fatalf("empty version")
	}

	doc.Name = "Someone Else"

	if doc.Version() == v1 {
		t.Fatalf("version did not change with content")
	}
}

func TestCheckIDs(t *testing.T) {
	doc := Default()

	if err := doc.CheckIDs(); err != nil {
		t.Fatalf("default document ids: %v", err)
	}

	dup := Default()
	dup.Projects = append(dup.Projects, Project{ID: dup.Projects[0].ID})

	if err := dup.CheckIDs(); err == nil {
		t.Fatalf("expected duplicate project id rejection")
	}

	empty := Default()
	empty.Education[0].ID = ""

	if err := empty.CheckIDs(); err == nil {
		t.Fatalf("expected empty education id rejection")
	}
}
