// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes holds the shared wire and report types for the
// compliance service.
package datatypes

import "math"

// VerdictSource records which evaluator produced a field verdict.
type VerdictSource string

const (
	SourceRegex     VerdictSource = "regex"
	SourceHeuristic VerdictSource = "heuristic"
	SourceLLM       VerdictSource = "llm"
	SourceNone      VerdictSource = "none"
)

// Scoring thresholds shared by every guideline.
const (
	PassThreshold = 95.0
	WarnThreshold = 80.0
)

const (
	StatusPass    = "Pass"
	StatusWarning = "Warning"
	StatusFail    = "Fail"
)

// FieldVerdict is the unit result for a single checklist field.
//
// Confidence is in [0,1]; 0.0 means "no signal", and Value defaults to
// false in that case so an absent signal never counts as compliant.
type FieldVerdict struct {
	Value      bool          `json:"value"`
	Confidence float64       `json:"confidence"`
	Evidence   string        `json:"evidence"`
	Source     VerdictSource `json:"source"`
}

// SubCriterion is one field row inside a category result.
type SubCriterion struct {
	Name       string  `json:"name"`
	PassFail   string  `json:"pass_fail"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// CategoryResult rolls up the fields of one checklist category.
type CategoryResult struct {
	Category           string         `json:"category"`
	CategoryPercentage float64        `json:"category_percentage"`
	Status             string         `json:"status"`
	SubCriteria        []SubCriterion `json:"sub_criteria"`
}

// GuidelineEvaluation is the scored result for one guideline.
type GuidelineEvaluation struct {
	Guideline           string           `json:"guideline"`
	GuidelinePercentage float64          `json:"guideline_percentage"`
	Status              string           `json:"status"`
	Categories          []CategoryResult `json:"categories"`
	WhatIsRight         []string         `json:"what_is_right"`
	Improvements        []string         `json:"improvements"`
	Anomalies           []string         `json:"anomalies"`
}

// ComplianceReport is the top-level response for a document check.
type ComplianceReport struct {
	OverallAccuracyPercentage float64               `json:"overall_accuracy_percentage"`
	OverallStatus             string                `json:"overall_status"`
	Evaluations               []GuidelineEvaluation `json:"evaluations"`
	WhatIsRight               []string              `json:"what_is_right"`
	Improvements              []string              `json:"improvements"`
	AnomaliesDetected         []string              `json:"anomalies_detected"`
}

// StatusFor maps a percentage onto the shared Pass/Warning/Fail bands.
func StatusFor(pct float64) string {
	switch {
	case pct >= PassThreshold:
		return StatusPass
	case pct >= WarnThreshold:
		return StatusWarning
	default:
		return StatusFail
	}
}

// Round2 rounds to two decimal places for report percentages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
