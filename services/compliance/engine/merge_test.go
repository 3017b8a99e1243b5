// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for verdict merging and chunk aggregation

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
)

func TestMergePerceptions_DeterministicOverrideWins(t *testing.T) {
	det := map[string]datatypes.FieldVerdict{
		"stock_no_assured_returns": {Value: true, Confidence: 0.95, Source: datatypes.SourceRegex},
	}
	judged := map[string]datatypes.FieldVerdict{
		"stock_no_assured_returns": {Value: false, Confidence: 0.99, Source: datatypes.SourceLLM},
	}

	merged := MergePerceptions(det, judged)
	require.Contains(t, merged, "stock_no_assured_returns")
	assert.True(t, merged["stock_no_assured_returns"].Value)
	assert.Equal(t, datatypes.SourceRegex, merged["stock_no_assured_returns"].Source)
}

func TestMergePerceptions_JudgeFillsWeakSignal(t *testing.T) {
	det := map[string]datatypes.FieldVerdict{
		"asci_is_truthful": {Value: false, Confidence: 0.0, Source: datatypes.SourceRegex},
	}
	judged := map[string]datatypes.FieldVerdict{
		"asci_is_truthful": {Value: true, Confidence: 0.7, Evidence: "claims match facts", Source: datatypes.SourceLLM},
	}

	merged := MergePerceptions(det, judged)
	assert.True(t, merged["asci_is_truthful"].Value)
	assert.Equal(t, datatypes.SourceLLM, merged["asci_is_truthful"].Source)
}

func TestMergePerceptions_TieKeepsDeterministic(t *testing.T) {
	det := map[string]datatypes.FieldVerdict{
		"amfi_simple_language": {Value: true, Confidence: 0.6, Source: datatypes.SourceHeuristic},
	}
	judged := map[string]datatypes.FieldVerdict{
		"amfi_simple_language": {Value: false, Confidence: 0.6, Source: datatypes.SourceLLM},
	}

	merged := MergePerceptions(det, judged)
	assert.True(t, merged["amfi_simple_language"].Value)
	assert.Equal(t, datatypes.SourceHeuristic, merged["amfi_simple_language"].Source)
}

func TestMergePerceptions_DropsJudgeOnlyFields(t *testing.T) {
	det := map[string]datatypes.FieldVerdict{
		"asci_is_truthful": {Confidence: 0.0, Source: datatypes.SourceRegex},
	}
	judged := map[string]datatypes.FieldVerdict{
		"asci_is_truthful":    {Value: true, Confidence: 0.5, Source: datatypes.SourceLLM},
		"asci_made_up_field":  {Value: true, Confidence: 0.9, Source: datatypes.SourceLLM},
		"another_novel_field": {Value: true, Confidence: 1.0, Source: datatypes.SourceLLM},
	}

	merged := MergePerceptions(det, judged)
	assert.Len(t, merged, 1)
	assert.Contains(t, merged, "asci_is_truthful")
}

func TestAggregateChunks_HighestConfidenceWins(t *testing.T) {
	perChunk := []map[string]datatypes.FieldVerdict{
		{"stock_registration_disclosed": {Value: false, Confidence: 0.3}},
		{"stock_registration_disclosed": {Value: true, Confidence: 0.9, Evidence: "SEBI Reg. No. INZ000123456"}},
		{"stock_registration_disclosed": {Value: false, Confidence: 0.3}},
	}

	final := AggregateChunks(perChunk)
	assert.True(t, final["stock_registration_disclosed"].Value)
	assert.Equal(t, 0.9, final["stock_registration_disclosed"].Confidence)
}

func TestAggregateChunks_TieKeepsFirstChunk(t *testing.T) {
	perChunk := []map[string]datatypes.FieldVerdict{
		{"asci_decent_language": {Value: true, Confidence: 0.7, Evidence: "first"}},
		{"asci_decent_language": {Value: false, Confidence: 0.7, Evidence: "second"}},
	}

	final := AggregateChunks(perChunk)
	assert.True(t, final["asci_decent_language"].Value)
	assert.Equal(t, "first", final["asci_decent_language"].Evidence)
}

func TestAggregateChunks_UnionOfFields(t *testing.T) {
	perChunk := []map[string]datatypes.FieldVerdict{
		{"a": {Confidence: 0.5}},
		{"b": {Confidence: 0.6}},
	}

	final := AggregateChunks(perChunk)
	assert.Len(t, final, 2)
}

func TestAggregateChunks_Empty(t *testing.T) {
	assert.Empty(t, AggregateChunks(nil))
	assert.Empty(t, AggregateChunks([]map[string]datatypes.FieldVerdict{}))
}
