// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the shared report types

package datatypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor_Bands(t *testing.T) {
	assert.Equal(t, StatusPass, StatusFor(100))
	assert.Equal(t, StatusPass, StatusFor(95))
	assert.Equal(t, StatusWarning, StatusFor(94.99))
	assert.Equal(t, StatusWarning, StatusFor(80))
	assert.Equal(t, StatusFail, StatusFor(79.99))
	assert.Equal(t, StatusFail, StatusFor(0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 75.0, Round2(75.0))
	assert.Equal(t, 0.0, Round2(0.004))
}

func TestComplianceReport_JSONKeys(t *testing.T) {
	report := ComplianceReport{
		OverallAccuracyPercentage: 92.5,
		OverallStatus:             StatusWarning,
	}
	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "overall_accuracy_percentage")
	assert.Contains(t, decoded, "overall_status")
	assert.Contains(t, decoded, "anomalies_detected")
	assert.Contains(t, decoded, "what_is_right")
}
