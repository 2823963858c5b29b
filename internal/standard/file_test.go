package standard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStandardFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "standard.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_FullDefinition(t *testing.T) {
	path := writeStandardFile(t, `{
		"id": "ACME-SEC-1",
		"name": "Acme Security Baseline",
		"min_length": 300,
		"structured": true,
		"sections": [
			{"name": "Encryption", "aliases": ["cryptography"], "required": true},
			{"name": "Appendix", "required": false}
		]
	}`)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.ID != "ACME-SEC-1" {
		t.Errorf("ID = %q, want ACME-SEC-1", s.ID)
	}
	if s.DisplayName != "Acme Security Baseline" {
		t.Errorf("DisplayName = %q", s.DisplayName)
	}
	if s.MinLength != 300 || !s.Structured {
		t.Errorf("MinLength = %d, Structured = %v", s.MinLength, s.Structured)
	}
	if len(s.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(s.Sections))
	}
	if s.Sections[0].Aliases[0] != "cryptography" {
		t.Errorf("aliases = %v", s.Sections[0].Aliases)
	}
	if s.Sections[1].Required {
		t.Error("Appendix should not be required")
	}
}

func TestLoadFile_PlainNameSections(t *testing.T) {
	path := writeStandardFile(t, `{
		"name": "Minimal",
		"sections": ["Remote Work", "Device Management"]
	}`)

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !strings.HasPrefix(s.ID, "custom-") {
		t.Errorf("ID = %q, want synthetic custom- id", s.ID)
	}
	if s.MinLength != customMinLength {
		t.Errorf("MinLength = %d, want default %d", s.MinLength, customMinLength)
	}
	for _, spec := range s.Sections {
		if !spec.Required {
			t.Errorf("%q should default to required", spec.Name)
		}
	}
}

func TestLoadFile_MissingName(t *testing.T) {
	path := writeStandardFile(t, `{"sections": ["Only"]}`)
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error should mention the missing field: %v", err)
	}
}

func TestLoadFile_EmptySections(t *testing.T) {
	path := writeStandardFile(t, `{"name": "Empty", "sections": []}`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected schema validation error for empty sections")
	}
}

func TestLoadFile_NotJSON(t *testing.T) {
	path := writeStandardFile(t, "sections:\n  - nope\n")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for non-JSON input")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
