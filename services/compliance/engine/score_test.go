// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for guideline scoring and report aggregation

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
)

// scoringGuideline builds a minimal catalog for scoring tests. Evaluators
// are irrelevant here since BuildGuidelineEvaluation reads the final map.
func scoringGuideline(code string, cats []Category) *Guideline {
	g := &Guideline{
		Code:         code,
		Name:         "Test Guideline " + code,
		Categories:   cats,
		Descriptions: map[string]string{},
		Evaluators:   map[string]EvaluatorFunc{},
		Guidance:     map[string]Guidance{},
	}
	for _, cat := range cats {
		for _, f := range cat.Fields {
			g.Descriptions[f] = "desc " + f
			g.Evaluators[f] = constant(false, 0)
			g.Guidance[f] = Guidance{Pass: "pass " + f, Fail: "fail " + f}
		}
	}
	return g
}

func verdict(value bool, conf float64) datatypes.FieldVerdict {
	return datatypes.FieldVerdict{Value: value, Confidence: conf, Source: datatypes.SourceRegex}
}

func TestBuildGuidelineEvaluation_CategoryPercentages(t *testing.T) {
	g := scoringGuideline("t", []Category{
		{Name: "Three of Four", Fields: []string{"a", "b", "c", "d"}},
		{Name: "Four of Five", Fields: []string{"e", "f", "g", "h", "i"}},
		{Name: "All Pass", Fields: []string{"j", "k"}},
	})
	final := map[string]datatypes.FieldVerdict{
		"t_a": verdict(true, 0.9), "t_b": verdict(true, 0.9), "t_c": verdict(true, 0.9), "t_d": verdict(false, 0.9),
		"t_e": verdict(true, 0.9), "t_f": verdict(true, 0.9), "t_g": verdict(true, 0.9), "t_h": verdict(true, 0.9), "t_i": verdict(false, 0.9),
		"t_j": verdict(true, 0.9), "t_k": verdict(true, 0.9),
	}

	eval := BuildGuidelineEvaluation(g, final)
	require.Len(t, eval.Categories, 3)

	assert.Equal(t, 75.0, eval.Categories[0].CategoryPercentage)
	assert.Equal(t, datatypes.StatusFail, eval.Categories[0].Status)

	assert.Equal(t, 80.0, eval.Categories[1].CategoryPercentage)
	assert.Equal(t, datatypes.StatusWarning, eval.Categories[1].Status)

	assert.Equal(t, 100.0, eval.Categories[2].CategoryPercentage)
	assert.Equal(t, datatypes.StatusPass, eval.Categories[2].Status)

	// Equal category weights: (75 + 80 + 100) / 3.
	assert.Equal(t, 85.0, eval.GuidelinePercentage)
	assert.Equal(t, datatypes.StatusWarning, eval.Status)
}

func TestBuildGuidelineEvaluation_MissingFieldFails(t *testing.T) {
	g := scoringGuideline("t", []Category{{Name: "Cat", Fields: []string{"a", "b"}}})
	final := map[string]datatypes.FieldVerdict{
		"t_a": verdict(true, 0.9),
	}

	eval := BuildGuidelineEvaluation(g, final)
	assert.Equal(t, 50.0, eval.Categories[0].CategoryPercentage)
	require.Len(t, eval.Categories[0].SubCriteria, 2)
	assert.Equal(t, datatypes.StatusFail, eval.Categories[0].SubCriteria[1].PassFail)
	assert.Equal(t, 0.0, eval.Categories[0].SubCriteria[1].Confidence)
}

func TestBuildGuidelineEvaluation_Narratives(t *testing.T) {
	g := scoringGuideline("t", []Category{{Name: "Prohibitions", Fields: []string{"no_assured_returns", "plain_field"}}})
	final := map[string]datatypes.FieldVerdict{
		"t_no_assured_returns": {Value: false, Confidence: 0.95, Evidence: "guaranteed 12% returns", Source: datatypes.SourceRegex},
		"t_plain_field":        {Value: true, Confidence: 0.8, Evidence: "SEBI Reg. No. INZ000123456", Source: datatypes.SourceRegex},
	}

	eval := BuildGuidelineEvaluation(g, final)
	require.Len(t, eval.WhatIsRight, 1)
	assert.Equal(t, "pass plain_field (evidence: SEBI Reg. No. INZ000123456)", eval.WhatIsRight[0])

	require.Len(t, eval.Improvements, 1)
	assert.Equal(t, "fail no_assured_returns", eval.Improvements[0])

	require.Len(t, eval.Anomalies, 1)
	assert.Equal(t,
		"Potential violation in Prohibitions: no_assured_returns (evidence: guaranteed 12% returns).",
		eval.Anomalies[0])
}

func TestBuildGuidelineEvaluation_PassWithoutEvidence(t *testing.T) {
	g := scoringGuideline("t", []Category{{Name: "Cat", Fields: []string{"a"}}})
	final := map[string]datatypes.FieldVerdict{
		"t_a": verdict(true, 0.5),
	}

	eval := BuildGuidelineEvaluation(g, final)
	require.Len(t, eval.WhatIsRight, 1)
	assert.Equal(t, "pass a", eval.WhatIsRight[0])
}

func TestBuildGuidelineEvaluation_AnomalyOnlyForProhibitionNames(t *testing.T) {
	g := scoringGuideline("t", []Category{{Name: "Cat", Fields: []string{"arn_present", "not_misleading"}}})
	final := map[string]datatypes.FieldVerdict{
		"t_arn_present":    verdict(false, 0.0),
		"t_not_misleading": verdict(false, 0.8),
	}

	eval := BuildGuidelineEvaluation(g, final)
	assert.Len(t, eval.Improvements, 2)
	require.Len(t, eval.Anomalies, 1)
	assert.Contains(t, eval.Anomalies[0], "not_misleading")
}

func TestAggregateGuidelines_MeanOfGuidelines(t *testing.T) {
	report := AggregateGuidelines([]datatypes.GuidelineEvaluation{
		{Guideline: "A", GuidelinePercentage: 90.0},
		{Guideline: "B", GuidelinePercentage: 70.0},
	})
	assert.Equal(t, 80.0, report.OverallAccuracyPercentage)
	assert.Equal(t, datatypes.StatusWarning, report.OverallStatus)
	assert.Len(t, report.Evaluations, 2)
}

func TestAggregateGuidelines_EmptyDefaultsToPass(t *testing.T) {
	report := AggregateGuidelines(nil)
	assert.Equal(t, 100.0, report.OverallAccuracyPercentage)
	assert.Equal(t, datatypes.StatusPass, report.OverallStatus)
	assert.Empty(t, report.Evaluations)
}

func TestAggregateGuidelines_DeduplicatesNarratives(t *testing.T) {
	report := AggregateGuidelines([]datatypes.GuidelineEvaluation{
		{GuidelinePercentage: 100, WhatIsRight: []string{"x", "y"}, Improvements: []string{"i1"}},
		{GuidelinePercentage: 100, WhatIsRight: []string{"y", "x", "z"}, Improvements: []string{"i1", "i2"}},
	})
	assert.Equal(t, []string{"x", "y", "z"}, report.WhatIsRight)
	assert.Equal(t, []string{"i1", "i2"}, report.Improvements)
}
