package main

import (
	"fmt"

	"github.com/alnah/go-sparql2html/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML, after applying the
// config file, environment and flags exactly as convert would.
func runConfig(flags *convertFlags, env *Environment) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, err = env.Stdout.Write(data)
	return err
}
