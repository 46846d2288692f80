package load

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecords(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"101.json":  `{"oil": [10, 20], "liquid": [12, 24]}`,
		"102.json":  `{"oil": [5], "liquid": [6]}`,
		"notes.txt": "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	records, err := Records(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	rec := records["101"]
	if len(rec.Oil) != 2 || rec.Oil[1] != 20 {
		t.Errorf("oil = %v", rec.Oil)
	}
	if len(rec.Liquid) != 2 || rec.Liquid[0] != 12 {
		t.Errorf("liquid = %v", rec.Liquid)
	}
}

func TestRecordsBadJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "101.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Records(dir); err == nil {
		t.Fatal("expected error for malformed record")
	}
}

func TestRecordsMissingDir(t *testing.T) {
	if _, err := Records(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
