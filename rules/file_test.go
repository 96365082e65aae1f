package rules

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleRules = `
[[rule]]
spoken = "gee pee tee"
written = "GPT"

[[rule]]
spoken = "en vee link"
written = "NVLink"
`

func TestLoad(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("gee pee tee", "old")

	n, err := r.Load(strings.NewReader(sampleRules))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if n != 2 || r.Len() != 2 {
		t.Errorf("Load read %d rules, registry has %d; want 2, 2", n, r.Len())
	}
	if got, _ := r.Lookup("gee pee tee"); got != "GPT" {
		t.Errorf("Load did not replace existing rule: %q", got)
	}
}

func TestLoadRejectsEmptySpoken(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, err := r.Load(strings.NewReader("[[rule]]\nspoken = \" \"\nwritten = \"x\"\n"))
	if !errors.Is(err, ErrEmptySpoken) {
		t.Fatalf("Load error = %v, want ErrEmptySpoken", err)
	}
	if r.Len() != 0 {
		t.Errorf("invalid file added %d rules", r.Len())
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if _, err := r.Load(strings.NewReader("[[rule]\nspoken = ")); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestSaveLoadFile(t *testing.T) {
	t.Parallel()

	src := NewRegistry()
	src.Add("cuda", "CUDA")
	src.Add("en vee link", "NVLink")

	var buf bytes.Buffer
	if err := src.Save(&buf); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	dst := NewRegistry()
	n, err := dst.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if n != 2 {
		t.Errorf("LoadFile read %d rules, want 2", n)
	}
	if got, _ := dst.Lookup("en vee link"); got != "NVLink" {
		t.Errorf("Lookup after LoadFile = %q", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if _, err := r.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile error = %v, want os.ErrNotExist", err)
	}
}
