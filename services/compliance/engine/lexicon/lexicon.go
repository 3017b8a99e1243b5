// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lexicon holds the regex patterns used by the deterministic
// compliance evaluators.
//
// The patterns are baked into the binary from patterns.yaml via the Go
// embed package, so the rule set is immutable at runtime and travels with
// the executable. Every pattern is compiled once at load time; a malformed
// regex or an out-of-range confidence is a startup error, never a runtime
// surprise.
package lexicon

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var embeddedPatterns []byte

// Confidence is a verdict confidence in [0,1].
type Confidence float64

func (c *Confidence) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err != nil {
		return err
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("confidence %v out of range [0,1]", f)
	}
	*c = Confidence(f)
	return nil
}

type patternFile struct {
	Patterns []*Pattern `yaml:"patterns"`
}

// Pattern is a single named regex with its match confidence.
type Pattern struct {
	ID          string     `yaml:"id"`
	Description string     `yaml:"description"`
	Regex       string     `yaml:"regex"`
	Confidence  Confidence `yaml:"confidence"`

	compiled *regexp.Regexp `yaml:"-"`
}

// Find returns the first match of the pattern in text, if any.
func (p *Pattern) Find(text string) (string, bool) {
	m := p.compiled.FindString(text)
	return m, m != ""
}

// MatchConfidence is the confidence assigned to a positive match.
func (p *Pattern) MatchConfidence() float64 {
	return float64(p.Confidence)
}

// Lexicon is the compiled, indexed pattern set.
type Lexicon struct {
	patterns map[string]*Pattern
}

// Load parses and compiles the embedded pattern file.
//
// Returns an error if the YAML is malformed, a regex fails to compile, or
// two patterns share an id.
func Load() (*Lexicon, error) {
	var file patternFile
	if err := yaml.Unmarshal(embeddedPatterns, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the embedded pattern file: %w", err)
	}
	lex := &Lexicon{patterns: make(map[string]*Pattern, len(file.Patterns))}
	for _, p := range file.Patterns {
		if _, exists := lex.patterns[p.ID]; exists {
			return nil, fmt.Errorf("duplicate pattern id %q", p.ID)
		}
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile the regex for %q: %w", p.ID, err)
		}
		p.compiled = re
		lex.patterns[p.ID] = p
	}
	return lex, nil
}

// Get returns the pattern registered under id.
//
// A missing id is a wiring bug in a catalog, so it is an error rather
// than a silent nil.
func (l *Lexicon) Get(id string) (*Pattern, error) {
	p, ok := l.patterns[id]
	if !ok {
		return nil, fmt.Errorf("unknown lexicon pattern %q", id)
	}
	return p, nil
}

// Len reports the number of loaded patterns.
func (l *Lexicon) Len() int {
	return len(l.patterns)
}
