// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package perceiver asks the LLM judge to evaluate checklist fields and
// classify product types. The judge is best-effort enrichment: every
// failure path degrades to an empty result rather than propagating, so the
// deterministic pipeline never depends on judge availability.
package perceiver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
	"github.com/AleutianAI/AdCompliance/services/llm"
)

const (
	defaultAttempts   = 3
	defaultRetryDelay = 2 * time.Second
	perceiveMaxTokens = 1500
)

// Perceiver sends one schema-constrained request per chunk and converts
// the judge's answer into field verdicts.
type Perceiver struct {
	judge    llm.Client
	validate *validator.Validate
	attempts int
	delay    time.Duration
}

// New builds a Perceiver. A nil judge is allowed and short-circuits every
// perception to an empty map (deterministic-only deployment).
func New(judge llm.Client) *Perceiver {
	return &Perceiver{
		judge:    judge,
		validate: validator.New(),
		attempts: defaultAttempts,
		delay:    defaultRetryDelay,
	}
}

type perceptionItem struct {
	Value      bool    `json:"value"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Evidence   string  `json:"evidence"`
}

type perceptionEnvelope struct {
	IsAdvertisement bool                      `json:"is_advertisement"`
	DetectedItems   map[string]perceptionItem `json:"detected_items"`
	Improvements    []string                  `json:"improvements"`
	Anomalies       []string                  `json:"anomalies"`
	WhatIsRight     []string                  `json:"what_is_right"`
}

// Perceive judges one chunk against the selected guidelines' fields.
//
// Up to three schema-constrained attempts with a fixed delay; if all fail,
// one free-form attempt with lenient brace extraction. Every failure path
// returns an empty map, never an error.
func (p *Perceiver) Perceive(ctx context.Context, chunk string, selected []*engine.Guideline) map[string]datatypes.FieldVerdict {
	if p.judge == nil {
		return map[string]datatypes.FieldVerdict{}
	}
	schema := BuildPerceptionSchema(selected)
	system := BuildSystemPrompt(selected)
	params := perceiveParams()

	for attempt := 1; attempt <= p.attempts; attempt++ {
		start := time.Now()
		raw, err := p.judge.GenerateStructured(ctx, system, chunk, schema, params)
		if err == nil {
			verdicts, perr := p.parseEnvelope(raw, true)
			if perr == nil {
				observability.DefaultMetrics.RecordJudgeCall("perceive", "success", time.Since(start).Seconds())
				return verdicts
			}
			err = perr
		}
		observability.DefaultMetrics.RecordJudgeCall("perceive", "error", time.Since(start).Seconds())
		slog.Warn("Structured judge call failed", "attempt", attempt, "error", err)
		if attempt < p.attempts {
			select {
			case <-ctx.Done():
				return map[string]datatypes.FieldVerdict{}
			case <-time.After(p.delay):
			}
		}
	}
	return p.perceiveFallback(ctx, system, chunk, params)
}

// perceiveFallback asks for free-form output and recovers the outermost
// JSON object from it. Invalid items are dropped instead of failing the
// whole response.
func (p *Perceiver) perceiveFallback(ctx context.Context, system, chunk string, params llm.GenerationParams) map[string]datatypes.FieldVerdict {
	start := time.Now()
	raw, err := p.judge.Generate(ctx, system, chunk, params)
	if err != nil {
		observability.DefaultMetrics.RecordJudgeCall("perceive", "error", time.Since(start).Seconds())
		slog.Warn("Free-form judge fallback failed", "error", err)
		return map[string]datatypes.FieldVerdict{}
	}
	candidate, ok := ExtractJSONObject(raw)
	if !ok {
		slog.Warn("No JSON object found in free-form judge output")
		return map[string]datatypes.FieldVerdict{}
	}
	verdicts, err := p.parseEnvelope(candidate, false)
	if err != nil {
		slog.Warn("Failed to parse recovered judge output", "error", err)
		return map[string]datatypes.FieldVerdict{}
	}
	observability.DefaultMetrics.RecordJudgeCall("perceive", "fallback", time.Since(start).Seconds())
	return verdicts
}

// parseEnvelope decodes a perception response and checks each item against
// the field-shape contract. In strict mode an invalid item rejects the
// whole response (forcing a retry); in lenient mode it is dropped.
func (p *Perceiver) parseEnvelope(raw string, strict bool) (map[string]datatypes.FieldVerdict, error) {
	var envelope perceptionEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode perception response: %w", err)
	}
	verdicts := make(map[string]datatypes.FieldVerdict, len(envelope.DetectedItems))
	for field, item := range envelope.DetectedItems {
		if err := p.validate.Struct(item); err != nil {
			if strict {
				return nil, fmt.Errorf("field %q failed shape validation: %w", field, err)
			}
			slog.Warn("Dropping invalid perception item", "field", field, "error", err)
			continue
		}
		verdicts[field] = datatypes.FieldVerdict{
			Value:      item.Value,
			Confidence: item.Confidence,
			Evidence:   item.Evidence,
			Source:     datatypes.SourceLLM,
		}
	}
	return verdicts, nil
}

func perceiveParams() llm.GenerationParams {
	var temperature float32
	maxTokens := perceiveMaxTokens
	return llm.GenerationParams{Temperature: &temperature, MaxTokens: &maxTokens}
}
