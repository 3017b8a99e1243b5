// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package perceiver

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
	"github.com/AleutianAI/AdCompliance/services/llm"
)

// ProductTypeOther is the catch-all classification label.
const ProductTypeOther = "other"

// productTypes is the closed label enum for financial ad classification.
var productTypes = []string{"mutual_fund", "investing", "trading", "ipo", "fno_derivatives", ProductTypeOther}

const classifySystemPrompt = "Classify the financial advertisement text as one of: " +
	"mutual_fund (mutual funds), investing (general investing), trading (stock trading), " +
	"ipo (IPO related), fno_derivatives (futures, options, derivatives), other. " +
	"Return JSON {\"detected_type\": \"mutual_fund\"}"

func classificationSchema() llm.ResponseSchema {
	raw, err := json.Marshal(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detected_type": map[string]any{"type": "string", "enum": productTypes},
		},
		"required":             []string{"detected_type"},
		"additionalProperties": false,
	})
	if err != nil {
		panic(err)
	}
	return llm.ResponseSchema{Name: "Classification", Schema: raw, Strict: true}
}

// Classifier labels document text with a financial product type by
// majority vote over chunk-level judge calls.
type Classifier struct {
	judge    llm.Client
	attempts int
	delay    time.Duration
}

// NewClassifier builds a Classifier. A nil judge labels everything as
// "other".
func NewClassifier(judge llm.Client) *Classifier {
	return &Classifier{judge: judge, attempts: defaultAttempts, delay: defaultRetryDelay}
}

// Classify segments the text with the smaller classification window,
// labels each chunk independently, and returns the majority label. Ties
// keep the label whose count was reached first.
func (c *Classifier) Classify(ctx context.Context, text string) string {
	chunks, err := engine.Segment(text, engine.ClassifyWindowSize, engine.DefaultOverlap)
	if err != nil {
		slog.Error("Failed to segment text for classification", "error", err)
		return ProductTypeOther
	}
	counts := make(map[string]int)
	var order []string
	for _, chunk := range chunks {
		label := c.classifyChunk(ctx, chunk)
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}
	best, bestCount := ProductTypeOther, 0
	for _, label := range order {
		if counts[label] > bestCount {
			best, bestCount = label, counts[label]
		}
	}
	return best
}

func (c *Classifier) classifyChunk(ctx context.Context, chunk string) string {
	if c.judge == nil {
		return ProductTypeOther
	}
	schema := classificationSchema()
	var temperature float32
	maxTokens := 100
	params := llm.GenerationParams{Temperature: &temperature, MaxTokens: &maxTokens}
	for attempt := 1; attempt <= c.attempts; attempt++ {
		start := time.Now()
		raw, err := c.judge.GenerateStructured(ctx, classifySystemPrompt, chunk, schema, params)
		if err == nil {
			var parsed struct {
				DetectedType string `json:"detected_type"`
			}
			if jerr := json.Unmarshal([]byte(raw), &parsed); jerr == nil && validLabel(parsed.DetectedType) {
				observability.DefaultMetrics.RecordJudgeCall("classify", "success", time.Since(start).Seconds())
				return parsed.DetectedType
			}
		}
		observability.DefaultMetrics.RecordJudgeCall("classify", "error", time.Since(start).Seconds())
		slog.Warn("Chunk classification failed", "attempt", attempt, "error", err)
		if attempt < c.attempts {
			select {
			case <-ctx.Done():
				return ProductTypeOther
			case <-time.After(c.delay):
			}
		}
	}
	return ProductTypeOther
}

func validLabel(label string) bool {
	for _, t := range productTypes {
		if label == t {
			return true
		}
	}
	return false
}
