package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "state.json")

	if err := WriteFileAtomic(path, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	if err := WriteFileAtomic(path, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("WriteFileAtomic (overwrite): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":2}` {
		t.Errorf("content = %q, want %q", data, `{"a":2}`)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp files left behind?)", len(entries))
	}
}

func TestLoadJSONErrors(t *testing.T) {
	dir := t.TempDir()
	var v map[string]interface{}

	if err := LoadJSON(filepath.Join(dir, "missing.json"), &v); err == nil {
		t.Error("LoadJSON(missing) returned nil error")
	}

	bad := writeFile(t, dir, "bad.json", "{")
	if err := LoadJSON(bad, &v); err == nil {
		t.Error("LoadJSON(bad) returned nil error")
	}
}
