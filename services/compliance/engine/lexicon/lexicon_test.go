// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the embedded regex lexicon

package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_CompilesEmbeddedPatterns(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)
	assert.Greater(t, lex.Len(), 30)
}

func TestGet_UnknownPatternIsError(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	_, err = lex.Get("does_not_exist")
	assert.Error(t, err)
}

func TestPattern_FindSEBIRegistration(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	p, err := lex.Get("sebi_registration")
	require.NoError(t, err)

	match, ok := p.Find("Contact us. SEBI Reg. No: INZ000123456. Mumbai.")
	assert.True(t, ok)
	assert.Contains(t, match, "INZ000123456")

	_, ok = p.Find("no registration details here")
	assert.False(t, ok)
}

func TestPattern_FindStandardWarning(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	p, err := lex.Get("standard_warning")
	require.NoError(t, err)

	cases := []string{
		"Mutual funds are subject to market risk.",
		"Investments are subject to market risk, read all documents.",
		"निवेश बाज़ार जोखिम के अधीन है",
	}
	for _, text := range cases {
		_, ok := p.Find(text)
		assert.True(t, ok, "expected warning match in %q", text)
	}
}

func TestPattern_FindFixedReturns(t *testing.T) {
	lex, err := Load()
	require.NoError(t, err)

	p, err := lex.Get("fixed_returns")
	require.NoError(t, err)

	match, ok := p.Find("Invest now for guaranteed 12% returns every year")
	assert.True(t, ok)
	assert.Contains(t, match, "guaranteed 12%")
}

func TestConfidence_RejectsOutOfRange(t *testing.T) {
	var c Confidence
	err := yaml.Unmarshal([]byte("1.5"), &c)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("-0.1"), &c)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("0.85"), &c)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, float64(c), 1e-9)
}
