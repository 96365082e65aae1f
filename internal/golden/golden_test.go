package golden

import (
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Input string `json:"input"`
	Want  int    `json:"want"`
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cases.json")
	Save(t, path, []sample{{"twenty one", 21}, {"forty two", 42}})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("saved file lacks a trailing newline")
	}

	got := Load[sample](t, path)
	if len(got) != 2 || got[1].Input != "forty two" || got[1].Want != 42 {
		t.Errorf("Load = %+v", got)
	}
}

func TestLoadMissingSkips(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.json")
	ok := t.Run("missing", func(t *testing.T) {
		Load[sample](t, path)
		t.Error("Load returned for a missing file")
	})
	if !ok {
		t.Error("missing file failed the test instead of skipping it")
	}
}
