// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the judge perceiver

package perceiver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/llm"
)

// fakeJudge scripts the two generation paths independently.
type fakeJudge struct {
	structuredOut   string
	structuredErr   error
	structuredCalls int

	freeformOut   string
	freeformErr   error
	freeformCalls int
}

func (f *fakeJudge) Generate(_ context.Context, _, _ string, _ llm.GenerationParams) (string, error) {
	f.freeformCalls++
	return f.freeformOut, f.freeformErr
}

func (f *fakeJudge) GenerateStructured(_ context.Context, _, _ string, _ llm.ResponseSchema, _ llm.GenerationParams) (string, error) {
	f.structuredCalls++
	return f.structuredOut, f.structuredErr
}

func (f *fakeJudge) DescribeImage(context.Context, string, []byte, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeJudge) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("not implemented")
}

func testPerceiver(judge llm.Client) *Perceiver {
	p := New(judge)
	p.delay = time.Millisecond
	return p
}

func asciGuidelines(t *testing.T) []*engine.Guideline {
	t.Helper()
	reg, err := engine.NewRegistry()
	require.NoError(t, err)
	return reg.Select(nil)
}

func TestPerceive_StructuredSuccess(t *testing.T) {
	judge := &fakeJudge{structuredOut: `{
		"is_advertisement": true,
		"detected_items": {
			"asci_is_truthful": {"value": true, "confidence": 0.8, "evidence": "claims match cited data"}
		},
		"improvements": [], "anomalies": [], "what_is_right": []
	}`}

	out := testPerceiver(judge).Perceive(context.Background(), "chunk", asciGuidelines(t))
	require.Len(t, out, 1)
	v := out["asci_is_truthful"]
	assert.True(t, v.Value)
	assert.Equal(t, 0.8, v.Confidence)
	assert.Equal(t, datatypes.SourceLLM, v.Source)
	assert.Equal(t, 1, judge.structuredCalls)
	assert.Equal(t, 0, judge.freeformCalls)
}

func TestPerceive_InvalidConfidenceForcesRetry(t *testing.T) {
	// Confidence out of [0,1] fails strict validation on every attempt,
	// then the free-form fallback recovers a clean object.
	judge := &fakeJudge{
		structuredOut: `{"is_advertisement": true, "detected_items": {"asci_is_truthful": {"value": true, "confidence": 1.7, "evidence": ""}}, "improvements": [], "anomalies": [], "what_is_right": []}`,
		freeformOut:   `Sure! Here is the JSON: {"is_advertisement": true, "detected_items": {"asci_is_truthful": {"value": true, "confidence": 0.6, "evidence": ""}}, "improvements": [], "anomalies": [], "what_is_right": []}`,
	}

	out := testPerceiver(judge).Perceive(context.Background(), "chunk", asciGuidelines(t))
	assert.Equal(t, 3, judge.structuredCalls)
	assert.Equal(t, 1, judge.freeformCalls)
	require.Len(t, out, 1)
	assert.Equal(t, 0.6, out["asci_is_truthful"].Confidence)
}

func TestPerceive_FallbackDropsInvalidItems(t *testing.T) {
	judge := &fakeJudge{
		structuredErr: errors.New("schema mode unavailable"),
		freeformOut: `{"is_advertisement": false, "detected_items": {
			"asci_is_truthful": {"value": true, "confidence": 0.5, "evidence": ""},
			"asci_not_misleading": {"value": false, "confidence": -2, "evidence": ""}
		}, "improvements": [], "anomalies": [], "what_is_right": []}`,
	}

	out := testPerceiver(judge).Perceive(context.Background(), "chunk", asciGuidelines(t))
	require.Len(t, out, 1)
	assert.Contains(t, out, "asci_is_truthful")
}

func TestPerceive_AllPathsFailReturnsEmpty(t *testing.T) {
	judge := &fakeJudge{
		structuredErr: errors.New("down"),
		freeformErr:   errors.New("down"),
	}

	out := testPerceiver(judge).Perceive(context.Background(), "chunk", asciGuidelines(t))
	assert.Empty(t, out)
	assert.Equal(t, 3, judge.structuredCalls)
	assert.Equal(t, 1, judge.freeformCalls)
}

func TestPerceive_NilJudgeShortCircuits(t *testing.T) {
	out := testPerceiver(nil).Perceive(context.Background(), "chunk", asciGuidelines(t))
	assert.Empty(t, out)
}

func TestBuildPerceptionSchema_CoversSelectedFields(t *testing.T) {
	schema := BuildPerceptionSchema(asciGuidelines(t))
	assert.Equal(t, "CompliancePerception", schema.Name)
	assert.True(t, schema.Strict)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(schema.Schema, &decoded))
	props := decoded["properties"].(map[string]any)
	items := props["detected_items"].(map[string]any)["properties"].(map[string]any)
	assert.Contains(t, items, "asci_is_truthful")
	assert.Contains(t, items, "asci_no_disparagement")
	assert.Len(t, items, 7)
}

func TestBuildSystemPrompt_NamesFieldsAndDescriptions(t *testing.T) {
	prompt := BuildSystemPrompt(asciGuidelines(t))
	assert.Contains(t, prompt, "asci_is_truthful")
	assert.Contains(t, prompt, "Is the content truthful and honest?")
	assert.Contains(t, prompt, "confidence: 0-1")
}

func TestExtractJSONObject(t *testing.T) {
	got, ok := ExtractJSONObject("Here you go: {\"a\": 1} hope that helps")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, got)

	got, ok = ExtractJSONObject("```json\n{\"a\": {\"b\": 2}}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 2}}`, got)

	_, ok = ExtractJSONObject("no json here")
	assert.False(t, ok)

	_, ok = ExtractJSONObject("} backwards {")
	assert.False(t, ok)
}
