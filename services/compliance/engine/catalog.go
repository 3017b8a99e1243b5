// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package engine implements the compliance evaluation pipeline: text
// segmentation, deterministic field evaluation against guideline catalogs,
// verdict merging and aggregation, and report scoring.
package engine

import (
	"fmt"
	"regexp"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
	"github.com/AleutianAI/AdCompliance/services/compliance/engine/lexicon"
)

// Guideline codes and the product-type hints that select them.
const (
	CodeASCI  = "asci"
	CodeAMFI  = "amfi"
	CodeStock = "stock"

	HintMutualFund = "mutual_fund"
)

// stockHints are the product types that route to the securities guideline.
var stockHints = map[string]bool{
	"investing":       true,
	"trading":         true,
	"ipo":             true,
	"fno_derivatives": true,
}

// EvaluatorFunc judges one checklist field against a chunk of text.
// Evaluators are pure functions: no side effects, safe to call concurrently.
type EvaluatorFunc func(chunk string) datatypes.FieldVerdict

// Guidance holds the narrative emitted for a field on pass or fail.
type Guidance struct {
	Pass string
	Fail string
}

// Category is an ordered group of checklist fields.
type Category struct {
	Name   string
	Fields []string
}

// Guideline is a closed checklist catalog: every field named by a category
// must carry a description, an evaluator, and guidance. The catalogs are
// static configuration compiled into the binary; the exhaustiveness check
// runs once at registry construction.
type Guideline struct {
	Code         string
	Name         string
	Categories   []Category
	Descriptions map[string]string
	Evaluators   map[string]EvaluatorFunc
	Guidance     map[string]Guidance
}

// FieldNames returns the guideline's fields in category order.
func (g *Guideline) FieldNames() []string {
	var names []string
	for _, cat := range g.Categories {
		names = append(names, cat.Fields...)
	}
	return names
}

// Prefixed namespaces a field name with the guideline code, matching the
// keys used in verdict maps and judge schemas.
func (g *Guideline) Prefixed(field string) string {
	return g.Code + "_" + field
}

func (g *Guideline) validate() error {
	for _, cat := range g.Categories {
		if len(cat.Fields) == 0 {
			return fmt.Errorf("guideline %s: category %q has no fields", g.Code, cat.Name)
		}
		for _, f := range cat.Fields {
			if _, ok := g.Descriptions[f]; !ok {
				return fmt.Errorf("guideline %s: field %q has no description", g.Code, f)
			}
			if _, ok := g.Evaluators[f]; !ok {
				return fmt.Errorf("guideline %s: field %q has no evaluator", g.Code, f)
			}
			if _, ok := g.Guidance[f]; !ok {
				return fmt.Errorf("guideline %s: field %q has no guidance", g.Code, f)
			}
		}
	}
	return nil
}

// Registry holds the compiled guideline catalogs.
type Registry struct {
	guidelines map[string]*Guideline
}

// NewRegistry loads the lexicon and builds every guideline catalog.
//
// Any missing lexicon pattern, malformed regex, or field without a bound
// evaluator is reported here so a broken catalog can never serve traffic.
func NewRegistry() (*Registry, error) {
	lex, err := lexicon.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load the pattern lexicon: %w", err)
	}
	b := &catalogBuilder{lex: lex}
	guidelines := []*Guideline{
		buildASCI(b),
		buildAMFI(b),
		buildStock(b),
	}
	if b.err != nil {
		return nil, fmt.Errorf("failed to build the guideline catalogs: %w", b.err)
	}
	reg := &Registry{guidelines: make(map[string]*Guideline, len(guidelines))}
	for _, g := range guidelines {
		if err := g.validate(); err != nil {
			return nil, err
		}
		reg.guidelines[g.Code] = g
	}
	return reg, nil
}

// Get returns the guideline registered under code.
func (r *Registry) Get(code string) (*Guideline, bool) {
	g, ok := r.guidelines[code]
	return g, ok
}

// Select maps product-type hints onto the guidelines to evaluate.
//
// "mutual_fund" selects the AMFI catalog; any securities hint selects the
// stock catalog; the ASCI advertising code is always evaluated last.
func (r *Registry) Select(hints []string) []*Guideline {
	var selected []*Guideline
	seen := make(map[string]bool)
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			selected = append(selected, r.guidelines[code])
		}
	}
	for _, h := range hints {
		if h == HintMutualFund {
			add(CodeAMFI)
		}
		if stockHints[h] {
			add(CodeStock)
		}
	}
	add(CodeASCI)
	return selected
}

// catalogBuilder resolves lexicon patterns for the catalog constructors,
// recording the first failure instead of panicking mid-build.
type catalogBuilder struct {
	lex *lexicon.Lexicon
	err error
}

func (b *catalogBuilder) pattern(id string) *lexicon.Pattern {
	p, err := b.lex.Get(id)
	if err != nil && b.err == nil {
		b.err = err
	}
	return p
}

// presence passes the field when the pattern matches. A miss carries no
// signal (confidence 0.0) so the judge can still fill the field in.
func presence(p *lexicon.Pattern) EvaluatorFunc {
	return func(chunk string) datatypes.FieldVerdict {
		if m, ok := p.Find(chunk); ok {
			return datatypes.FieldVerdict{
				Value:      true,
				Confidence: p.MatchConfidence(),
				Evidence:   m,
				Source:     datatypes.SourceRegex,
			}
		}
		return datatypes.FieldVerdict{Source: datatypes.SourceRegex}
	}
}

// prohibition fails the field when the pattern matches, carrying the match
// as evidence. A clean chunk passes with the weaker cleanConfidence since
// absence of a phrase is a softer signal than its presence.
func prohibition(p *lexicon.Pattern, cleanConfidence float64) EvaluatorFunc {
	return func(chunk string) datatypes.FieldVerdict {
		if m, ok := p.Find(chunk); ok {
			return datatypes.FieldVerdict{
				Value:      false,
				Confidence: p.MatchConfidence(),
				Evidence:   m,
				Source:     datatypes.SourceRegex,
			}
		}
		return datatypes.FieldVerdict{
			Value:      true,
			Confidence: cleanConfidence,
			Source:     datatypes.SourceRegex,
		}
	}
}

// constant returns a fixed verdict. Used for fields that cannot be judged
// from plain text (font size, AV duration) and for weak tone defaults.
func constant(value bool, confidence float64) EvaluatorFunc {
	v := datatypes.FieldVerdict{
		Value:      value,
		Confidence: confidence,
		Source:     datatypes.SourceHeuristic,
	}
	return func(string) datatypes.FieldVerdict { return v }
}

// PlainLanguageThreshold is the average-word-length ceiling for the
// plain-language heuristic.
const PlainLanguageThreshold = 6.5

var wordPattern = regexp.MustCompile(`\w+`)

// plainLanguage approximates readability by average word length. It is a
// weak proxy, so both outcomes stay at or below 0.6 confidence.
func plainLanguage(passConfidence, failConfidence float64, withEvidence bool) EvaluatorFunc {
	return func(chunk string) datatypes.FieldVerdict {
		words := wordPattern.FindAllString(chunk, -1)
		total := 0
		for _, w := range words {
			total += len(w)
		}
		count := len(words)
		if count == 0 {
			count = 1
		}
		simple := float64(total)/float64(count) <= PlainLanguageThreshold
		v := datatypes.FieldVerdict{
			Value:  simple,
			Source: datatypes.SourceHeuristic,
		}
		if simple {
			v.Confidence = passConfidence
		} else {
			v.Confidence = failConfidence
		}
		if withEvidence {
			v.Evidence = fmt.Sprintf("avg_word_len_ok=%t", simple)
		}
		return v
	}
}
