// Package golden loads and rewrites the JSON golden files under data/golden.
//
// Each test package keeps its own case type. Run the tests with -update to
// refresh the expected fields from the current implementation, then review
// the diff.
package golden

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var update = flag.Bool("update", false, "rewrite golden files from current output")

// Updating reports whether the test binary was started with -update.
func Updating() bool {
	return *update
}

// Load decodes the case list stored at path. The test is skipped when the
// file does not exist.
func Load[T any](t testing.TB, path string) []T {
	t.Helper()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Skipf("%s not found", path)
	}
	if err != nil {
		t.Fatalf("golden: %v", err)
	}

	var cases []T
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("golden: parsing %s: %v", path, err)
	}
	return cases
}

// Save writes cases to path as indented JSON.
func Save[T any](t testing.TB, path string, cases []T) {
	t.Helper()

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("golden: encoding %s: %v", path, err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("golden: %v", err)
	}
	t.Logf("%s updated, review the diff before committing", path)
}
