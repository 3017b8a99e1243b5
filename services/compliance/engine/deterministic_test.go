// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for deterministic field evaluation

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
)

func stockOnly(t *testing.T) []*Guideline {
	t.Helper()
	reg, err := NewRegistry()
	require.NoError(t, err)
	g, ok := reg.Get(CodeStock)
	require.True(t, ok)
	return []*Guideline{g}
}

func TestDeterministic_SEBIRegistrationDetected(t *testing.T) {
	chunk := "Invest with us. SEBI Reg. No: INZ000123456. Mumbai, India."
	out := Deterministic(stockOnly(t), chunk)

	v := out["stock_name_address_reg"]
	assert.True(t, v.Value)
	assert.Equal(t, 0.99, v.Confidence)
	assert.Equal(t, datatypes.SourceRegex, v.Source)
	assert.Contains(t, v.Evidence, "SEBI")
}

func TestDeterministic_StandardWarningDetected(t *testing.T) {
	chunk := "Mutual funds are subject to market risk. Read all documents carefully."
	out := Deterministic(stockOnly(t), chunk)

	v := out["stock_standard_warning_present"]
	assert.True(t, v.Value)
	assert.Equal(t, 0.9, v.Confidence)
}

func TestDeterministic_AssuredReturnsViolation(t *testing.T) {
	chunk := "Open an account today and earn guaranteed 12% returns every year!"
	out := Deterministic(stockOnly(t), chunk)

	assured := out["stock_no_assured_returns"]
	assert.False(t, assured.Value)
	assert.Equal(t, 0.9, assured.Confidence)
	assert.NotEmpty(t, assured.Evidence)

	fixed := out["stock_fixed_returns_warning_present"]
	assert.Equal(t, 0.95, fixed.Confidence)
}

func TestDeterministic_CleanChunkPassesProhibitions(t *testing.T) {
	chunk := "We offer a broking platform for equity delivery orders."
	out := Deterministic(stockOnly(t), chunk)

	v := out["stock_no_assured_returns"]
	assert.True(t, v.Value)
	assert.Equal(t, 0.7, v.Confidence)
	assert.Empty(t, v.Evidence)
}

func TestDeterministic_UnjudgeableFieldsCarryNoSignal(t *testing.T) {
	out := Deterministic(stockOnly(t), "any text at all")

	for _, field := range []string{"stock_warning_font_size_ok", "stock_av_duration_ok", "stock_quarterly_upload_done"} {
		v := out[field]
		assert.False(t, v.Value, field)
		assert.Equal(t, 0.0, v.Confidence, field)
	}
}

func TestDeterministic_CoversEveryPrefixedField(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	selected := reg.Select([]string{"mutual_fund", "trading"})

	out := Deterministic(selected, "text")
	want := 0
	for _, g := range selected {
		for _, f := range g.FieldNames() {
			want++
			assert.Contains(t, out, g.Prefixed(f))
		}
	}
	assert.Len(t, out, want)
}

func TestDeterministic_Idempotent(t *testing.T) {
	chunk := "SEBI Reg. No: INZ000123456. Guaranteed 12% returns!"
	selected := stockOnly(t)

	first := Deterministic(selected, chunk)
	second := Deterministic(selected, chunk)
	assert.Equal(t, first, second)
}
