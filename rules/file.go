package rules

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ruleFile is the TOML layout of a rule set:
//
//	[[rule]]
//	spoken = "gee pee tee"
//	written = "GPT"
type ruleFile struct {
	Rules []Rule `toml:"rule"`
}

// Load reads a TOML rule set from rd and adds every rule to the registry.
// Existing rules are kept; rules with the same key are replaced. The file is
// validated before any rule is added. Returns the number of rules read.
func (r *Registry) Load(rd io.Reader) (int, error) {
	var f ruleFile
	if _, err := toml.NewDecoder(rd).Decode(&f); err != nil {
		return 0, fmt.Errorf("rules: decode: %w", err)
	}
	for i, rule := range f.Rules {
		if Key(rule.Spoken) == "" {
			return 0, fmt.Errorf("rules: rule %d: %w", i+1, ErrEmptySpoken)
		}
	}
	for _, rule := range f.Rules {
		r.Add(rule.Spoken, rule.Written)
	}
	return len(f.Rules), nil
}

// LoadFile is Load for a file path.
func (r *Registry) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("rules: %w", err)
	}
	defer f.Close()

	n, err := r.Load(f)
	if err != nil {
		return 0, fmt.Errorf("%w (%s)", err, path)
	}
	return n, nil
}

// Save writes the registry as a TOML rule set, sorted by key.
func (r *Registry) Save(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(ruleFile{Rules: r.All()}); err != nil {
		return fmt.Errorf("rules: encode: %w", err)
	}
	return nil
}
