package main

import (
	"fmt"

	"github.com/az-ai-labs/en-itn/rules"
)

// RulesGroup contains rule file operations.
type RulesGroup struct {
	Check RulesCheckCmd `cmd:"" help:"Validate a TOML rule file"`
	List  RulesListCmd  `cmd:"" help:"Print the rules of a TOML rule file, sorted and deduplicated"`
}

// RulesCheckCmd validates a rule file.
type RulesCheckCmd struct {
	File string `arg:"" help:"Rule file" type:"existingfile"`
}

func (c *RulesCheckCmd) Run(a *app) error {
	reg := rules.NewRegistry()
	n, err := reg.LoadFile(c.File)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: %d rules, %d distinct\n", c.File, n, reg.Len())
	return nil
}

// RulesListCmd prints a normalized rule file.
type RulesListCmd struct {
	File string `arg:"" help:"Rule file" type:"existingfile"`
}

func (c *RulesListCmd) Run(a *app) error {
	reg := rules.NewRegistry()
	if _, err := reg.LoadFile(c.File); err != nil {
		return err
	}
	return reg.Save(a.stdout)
}
