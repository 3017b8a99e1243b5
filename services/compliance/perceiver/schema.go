// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package perceiver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/llm"
)

// fieldItemSchema is the per-field shape the judge must return.
var fieldItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"value":      map[string]any{"type": "boolean"},
		"confidence": map[string]any{"type": "number"},
		"evidence":   map[string]any{"type": "string"},
	},
	"required":             []string{"value", "confidence", "evidence"},
	"additionalProperties": false,
}

// BuildPerceptionSchema builds the strict JSON schema for a perception
// request covering every field of the selected guidelines, keyed by the
// namespaced field names.
func BuildPerceptionSchema(selected []*engine.Guideline) llm.ResponseSchema {
	properties := map[string]any{}
	for _, g := range selected {
		for _, f := range g.FieldNames() {
			properties[g.Prefixed(f)] = fieldItemSchema
		}
	}
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_advertisement": map[string]any{"type": "boolean"},
			"detected_items": map[string]any{
				"type":                 "object",
				"properties":           properties,
				"additionalProperties": false,
			},
			"improvements":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"anomalies":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"what_is_right": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []string{"is_advertisement", "detected_items", "improvements", "anomalies", "what_is_right"},
		"additionalProperties": false,
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		// Only map/slice/string literals above; marshal cannot fail.
		panic(err)
	}
	return llm.ResponseSchema{Name: "CompliancePerception", Schema: raw, Strict: true}
}

// BuildSystemPrompt names the task and every selected field with its
// human-readable description so the judge knows what to evaluate.
func BuildSystemPrompt(selected []*engine.Guideline) string {
	var sb strings.Builder
	sb.WriteString("You are a compliance perceiver for Indian financial advertising guidelines. ")
	sb.WriteString("For the input TEXT, return JSON matching the schema. ")
	sb.WriteString("Evaluate each field based on the following descriptions:\n")
	for _, g := range selected {
		fmt.Fprintf(&sb, "\nGuideline: %s\n", g.Name)
		for _, f := range g.FieldNames() {
			fmt.Fprintf(&sb, "%s: %s\n", g.Prefixed(f), g.Descriptions[f])
		}
	}
	sb.WriteString("\nEach detected field must be {value: bool, confidence: 0-1, evidence: string}.")
	return sb.String()
}
