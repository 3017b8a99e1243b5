// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
)

// BuildGuidelineEvaluation scores one guideline against the final
// per-document verdict map.
//
// Each category scores 100 * passed / total, and categories combine with
// equal weights into the guideline percentage. Passing fields contribute
// their pass guidance (with evidence when present) to what_is_right;
// failing fields contribute their fail guidance to improvements, and
// failing fields named with a no_/not_ prefix additionally raise an
// anomaly, since a failed prohibition means the forbidden thing was seen.
func BuildGuidelineEvaluation(g *Guideline, final map[string]datatypes.FieldVerdict) datatypes.GuidelineEvaluation {
	var (
		categories    []datatypes.CategoryResult
		whatIsRight   []string
		improvements  []string
		anomalies     []string
		weightedTotal float64
		weightedScore float64
	)
	weight := 1.0 / float64(len(g.Categories))
	for _, cat := range g.Categories {
		passed := 0
		subCriteria := make([]datatypes.SubCriterion, 0, len(cat.Fields))
		for _, f := range cat.Fields {
			verdict, ok := final[g.Prefixed(f)]
			if !ok {
				verdict = datatypes.FieldVerdict{Source: datatypes.SourceNone}
			}
			passFail := datatypes.StatusFail
			if verdict.Value {
				passed++
				passFail = datatypes.StatusPass
				guidance := g.Guidance[f].Pass
				if verdict.Evidence != "" {
					guidance = fmt.Sprintf("%s (evidence: %s)", guidance, verdict.Evidence)
				}
				whatIsRight = append(whatIsRight, guidance)
			} else {
				improvements = append(improvements, g.Guidance[f].Fail)
				if strings.Contains(f, "no_") || strings.Contains(f, "not_") {
					anomalies = append(anomalies, fmt.Sprintf(
						"Potential violation in %s: %s (evidence: %s).", cat.Name, f, verdict.Evidence))
				}
			}
			subCriteria = append(subCriteria, datatypes.SubCriterion{
				Name:       f,
				PassFail:   passFail,
				Confidence: datatypes.Round2(verdict.Confidence),
				Evidence:   verdict.Evidence,
			})
		}
		total := len(cat.Fields)
		if total == 0 {
			total = 1
		}
		pct := datatypes.Round2(100.0 * float64(passed) / float64(total))
		weightedTotal += weight * 100
		weightedScore += weight * pct
		categories = append(categories, datatypes.CategoryResult{
			Category:           cat.Name,
			CategoryPercentage: pct,
			Status:             datatypes.StatusFor(pct),
			SubCriteria:        subCriteria,
		})
	}
	denom := weightedTotal
	if denom < 1 {
		denom = 1
	}
	guidelinePct := datatypes.Round2(weightedScore / denom * 100)
	return datatypes.GuidelineEvaluation{
		Guideline:           g.Name,
		GuidelinePercentage: guidelinePct,
		Status:              datatypes.StatusFor(guidelinePct),
		Categories:          categories,
		WhatIsRight:         whatIsRight,
		Improvements:        improvements,
		Anomalies:           anomalies,
	}
}

// AggregateGuidelines folds guideline evaluations into the final report.
// The overall percentage is the plain mean of the guideline percentages;
// no evaluations means nothing failed, so the report defaults to 100/Pass.
// Narrative lists are concatenated in evaluation order and de-duplicated
// keeping first occurrence.
func AggregateGuidelines(evals []datatypes.GuidelineEvaluation) datatypes.ComplianceReport {
	overall := 100.0
	if len(evals) > 0 {
		sum := 0.0
		for _, e := range evals {
			sum += e.GuidelinePercentage
		}
		overall = datatypes.Round2(sum / float64(len(evals)))
	}
	var whatIsRight, improvements, anomalies []string
	for _, e := range evals {
		whatIsRight = append(whatIsRight, e.WhatIsRight...)
		improvements = append(improvements, e.Improvements...)
		anomalies = append(anomalies, e.Anomalies...)
	}
	return datatypes.ComplianceReport{
		OverallAccuracyPercentage: overall,
		OverallStatus:             datatypes.StatusFor(overall),
		Evaluations:               evals,
		WhatIsRight:               dedupe(whatIsRight),
		Improvements:              dedupe(improvements),
		AnomaliesDetected:         dedupe(anomalies),
	}
}

// dedupe removes repeated lines while preserving first-seen order.
func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
