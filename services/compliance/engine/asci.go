// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// buildASCI constructs the ASCI advertising-code catalog. It applies to
// every document regardless of product type.
func buildASCI(b *catalogBuilder) *Guideline {
	return &Guideline{
		Code: CodeASCI,
		Name: "ASCI (Advertising Standards Council of India)",
		Categories: []Category{
			{Name: "Truthfulness and Honesty", Fields: []string{
				"is_truthful", "not_misleading", "claims_substantiated",
			}},
			{Name: "Decency and Non-Offensiveness", Fields: []string{
				"decent_language", "not_exploiting_vulnerability",
			}},
			{Name: "Fairness", Fields: []string{
				"fair_competition", "no_disparagement",
			}},
		},
		Descriptions: map[string]string{
			"is_truthful":                  "Is the content truthful and honest?",
			"not_misleading":               "Does the ad avoid misleading by omission, ambiguity, or exaggeration?",
			"claims_substantiated":         "Are all claims backed by evidence or sources?",
			"decent_language":              "Is the language decent, not obscene or offensive?",
			"not_exploiting_vulnerability": "Does it avoid exploiting fear, superstition, or vulnerability?",
			"fair_competition":             "Does it promote fair competition without unfair advantage?",
			"no_disparagement":             "Does it avoid disparaging competitors or their products?",
		},
		Evaluators: map[string]EvaluatorFunc{
			"is_truthful":                  constant(true, 0.5),
			"not_misleading":               prohibition(b.pattern("misleading_claims"), 0.8),
			"claims_substantiated":         presence(b.pattern("claims_sourced")),
			"decent_language":              prohibition(b.pattern("offensive_language"), 0.7),
			"not_exploiting_vulnerability": prohibition(b.pattern("fear_pressure"), 0.6),
			"fair_competition":             constant(true, 0.5),
			"no_disparagement":             prohibition(b.pattern("disparagement"), 0.7),
		},
		Guidance: map[string]Guidance{
			"is_truthful": {
				Pass: "Content is truthful and honest.",
				Fail: "Ensure all statements are accurate, verifiable, and not deceptive.",
			},
			"not_misleading": {
				Pass: "No misleading elements detected.",
				Fail: "Remove or clarify ambiguous, exaggerated, or omitted information to avoid misleading consumers.",
			},
			"claims_substantiated": {
				Pass: "Claims are substantiated with sources.",
				Fail: "Provide evidence or sources for all claims made in the content.",
			},
			"decent_language": {
				Pass: "Language is decent and appropriate.",
				Fail: "Remove offensive, obscene, or indecent language.",
			},
			"not_exploiting_vulnerability": {
				Pass: "No exploitation of vulnerabilities.",
				Fail: "Avoid content that exploits fear, superstition, or consumer vulnerabilities.",
			},
			"fair_competition": {
				Pass: "Promotes fair competition.",
				Fail: "Ensure the content does not take unfair advantage or mislead about competitors.",
			},
			"no_disparagement": {
				Pass: "No disparagement of competitors.",
				Fail: "Remove any language that disparages or denigrates competitors or their products.",
			},
		},
	}
}
