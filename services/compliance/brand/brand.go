// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package brand implements the logo/brand-asset scoring flow: describe an
// uploaded image with the multimodal judge, embed the description, store
// the asset in Weaviate, retrieve the closest brand-guideline passages,
// and judge the logo against the brand criteria.
package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"

	"github.com/AleutianAI/AdCompliance/services/compliance/perceiver"
	"github.com/AleutianAI/AdCompliance/services/llm"
)

// Logo analyses use looser bands than text compliance; a logo at 80% is
// already considered on-brand.
const (
	logoPassThreshold = 80.0
	logoWarnThreshold = 50.0

	guidelineRetrievalLimit = 10
	// Minimum cosine certainty for a guideline passage to count as relevant.
	guidelineCertainty = 0.85
)

const describePrompt = "Describe this image in detail, focusing on elements relevant to a " +
	"brand logo such as shapes, colors, fonts, and overall design."

// brandCriteria is the fixed rubric the judge scores logos against.
const brandCriteria = `
- Logo Analysis:
  - Vector Dimension Verification
  - Color Compliance Checking
  - Pixel-Level Quality Assessment
  - Position and Alignment Validation

- Font Verification:
  - OTF (Open Type Font) Format Support
  - Integration with Company Font Library
  - Size and Style Compliance

- Color Compliance:
  - HEX Code Validation
  - Saturation and Highlight Checks
  - Gradient and Texture Alignment

- Gradients/Textures:
  - Background or Subject Gradients
  - Spacing and Style Matching

- Content Repository Management:
  - Automated Updates
  - Brand Asset Version Control
  - Regular Verification Cycles
`

// LogoSubCriterion is one scored rubric line (0-10).
type LogoSubCriterion struct {
	Name     string  `json:"name"`
	PassFail string  `json:"pass_fail"`
	Score    float64 `json:"score"`
}

// LogoCategory is one rubric category with its rolled-up percentage.
type LogoCategory struct {
	Category           string             `json:"category"`
	SubCriteria        []LogoSubCriterion `json:"sub_criteria"`
	CategoryPercentage float64            `json:"category_percentage"`
	Status             string             `json:"status"`
}

// LogoAnalysis is the judge's full verdict for one logo.
type LogoAnalysis struct {
	Evaluations               []LogoCategory `json:"evaluations"`
	OverallAccuracyPercentage float64        `json:"overall_accuracy_percentage"`
	Improvements              string         `json:"improvements"`
	AnomaliesDetected         []string       `json:"anomalies_detected"`
	WhatIsRight               string         `json:"what_is_right"`
}

// Service ties the judge and the vector store together for brand flows.
type Service struct {
	store *weaviate.Client
	judge llm.Client
}

// NewService builds a Service. Either dependency may be nil; Available
// reports whether the full flow can run.
func NewService(store *weaviate.Client, judge llm.Client) *Service {
	return &Service{store: store, judge: judge}
}

// Available reports whether both the judge and the vector store are wired.
func (s *Service) Available() bool {
	return s.store != nil && s.judge != nil
}

// CheckLogo runs the full logo flow: describe, embed, store, retrieve
// guideline passages, judge, and attach the analysis to the stored asset.
func (s *Service) CheckLogo(ctx context.Context, image []byte, mimeType, fileName, brandName string) (LogoAnalysis, error) {
	if !s.Available() {
		return LogoAnalysis{}, fmt.Errorf("brand analysis requires both the judge and the vector store")
	}
	description, err := s.judge.DescribeImage(ctx, describePrompt, image, mimeType)
	if err != nil {
		return LogoAnalysis{}, fmt.Errorf("failed to describe the image: %w", err)
	}
	vector, err := s.judge.Embed(ctx, description)
	if err != nil {
		return LogoAnalysis{}, fmt.Errorf("failed to embed the description: %w", err)
	}
	assetID, err := s.storeAsset(ctx, brandName, fileName, description, vector)
	if err != nil {
		return LogoAnalysis{}, err
	}
	guidelines, err := s.retrieveGuidelines(ctx, vector)
	if err != nil {
		slog.Warn("Guideline retrieval failed, judging without passages", "error", err)
		guidelines = nil
	}
	analysis, err := s.analyzeLogo(ctx, description, guidelines, brandName)
	if err != nil {
		return LogoAnalysis{}, err
	}
	if err := s.attachAnalysis(ctx, assetID, analysis); err != nil {
		slog.Warn("Failed to attach analysis to the stored asset", "asset_id", assetID, "error", err)
	}
	return analysis, nil
}

func (s *Service) storeAsset(ctx context.Context, brandName, fileName, description string, vector []float32) (string, error) {
	assetID := uuid.New().String()
	_, err := s.store.Data().Creator().
		WithClassName("BrandAsset").
		WithID(assetID).
		WithVector(vector).
		WithProperties(map[string]interface{}{
			"brand":       brandName,
			"source":      fileName,
			"description": description,
			"created_at":  time.Now().UnixMilli(),
		}).
		Do(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to store the brand asset: %w", err)
	}
	slog.Info("Stored brand asset", "asset_id", assetID, "brand", brandName)
	return assetID, nil
}

// retrieveGuidelines pulls the closest guideline passages for the
// description vector, gated by certainty so weakly related passages do
// not pollute the judge prompt.
func (s *Service) retrieveGuidelines(ctx context.Context, vector []float32) ([]string, error) {
	nearVector := s.store.GraphQL().NearVectorArgBuilder().
		WithVector(vector).
		WithCertainty(guidelineCertainty)
	resp, err := s.store.GraphQL().Get().
		WithClassName("GuidelinePassage").
		WithFields(graphql.Field{Name: "text"}).
		WithNearVector(nearVector).
		WithLimit(guidelineRetrievalLimit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("guideline passage query failed: %w", err)
	}
	var passages []string
	if resp.Data["Get"] != nil {
		getMap, ok := resp.Data["Get"].(map[string]interface{})
		if ok && getMap["GuidelinePassage"] != nil {
			items, ok := getMap["GuidelinePassage"].([]interface{})
			if ok {
				for _, item := range items {
					itemMap, ok := item.(map[string]interface{})
					if !ok {
						continue
					}
					if text, ok := itemMap["text"].(string); ok && text != "" {
						passages = append(passages, text)
					}
				}
			}
		}
	}
	return passages, nil
}

// analyzeLogo asks the judge to score the described logo against the
// brand criteria and the retrieved guideline passages.
func (s *Service) analyzeLogo(ctx context.Context, description string, guidelines []string, brandName string) (LogoAnalysis, error) {
	prompt := buildAnalysisPrompt(description, guidelines, brandName)
	var temperature float32 = 0.3
	maxTokens := 1024
	params := llm.GenerationParams{Temperature: &temperature, MaxTokens: &maxTokens}
	raw, err := s.judge.Generate(ctx, "You are an expert in brand logo analysis.", prompt, params)
	if err != nil {
		return LogoAnalysis{}, fmt.Errorf("logo analysis call failed: %w", err)
	}
	candidate, ok := perceiver.ExtractJSONObject(raw)
	if !ok {
		return LogoAnalysis{}, fmt.Errorf("no JSON object in logo analysis output")
	}
	var analysis LogoAnalysis
	if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
		return LogoAnalysis{}, fmt.Errorf("failed to decode logo analysis: %w", err)
	}
	normalizeAnalysis(&analysis)
	return analysis, nil
}

func (s *Service) attachAnalysis(ctx context.Context, assetID string, analysis LogoAnalysis) error {
	serialized, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return s.store.Data().Updater().
		WithClassName("BrandAsset").
		WithID(assetID).
		WithProperties(map[string]interface{}{
			"analysis":            string(serialized),
			"approval_percentage": analysis.OverallAccuracyPercentage,
		}).
		WithMerge().
		Do(ctx)
}

func buildAnalysisPrompt(description string, guidelines []string, brandName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert in brand logo analysis, specializing in %s brand guidelines.\n", brandName)
	fmt.Fprintf(&sb, "Here is a description of the uploaded logo: %q\n\n", description)
	fmt.Fprintf(&sb, "Relevant %s Brand Guidelines: %q\n\n", brandName, strings.Join(guidelines, "\n\n"))
	fmt.Fprintf(&sb, "Evaluate the logo against the following criteria, incorporating the %s-specific guidelines where applicable:\n%s\n", brandName, brandCriteria)
	sb.WriteString(`For each main criterion category, provide:
- A sub-list of evaluations for each sub-criterion, including:
  - Pass/Fail
  - A score from 0 to 10
- Then, calculate category_percentage as the average of sub-criterion scores multiplied by 10.
- Assign status: "Pass" if category_percentage >= 80, "Warning" if 50 <= category_percentage < 80, "Fail" if category_percentage < 50.
- Flag any obvious mismatches or anomalies that indicate the logo might be wrong or misaligned.

`)
	fmt.Fprintf(&sb, "Assume the logo is intended to represent the %s brand and penalize heavily (score 0-3) for any significant deviations such as mismatched colors, inappropriate fonts, or poor design quality based on the guidelines.\n\n", brandName)
	sb.WriteString(`Then:
- Calculate overall_accuracy_percentage as the average of all category_percentages.
- Provide overall improvements or suggestions, referencing the brand guidelines.
- Provide what_is_right: detailed text explaining the compliant aspects of the logo.

Output the response strictly in JSON with this structure:
{
  "evaluations": [
    {
      "category": "Logo Analysis",
      "sub_criteria": [{"name": "...", "pass_fail": "Pass", "score": 8}],
      "category_percentage": 80,
      "status": "Pass"
    }
  ],
  "overall_accuracy_percentage": 80,
  "improvements": "text suggestions here",
  "anomalies_detected": ["list of anomalies or empty list if none"],
  "what_is_right": "detailed explanation text here"
}
Do not include any additional text outside the JSON.`)
	return sb.String()
}

// normalizeAnalysis recomputes the percentages and statuses from the
// sub-criterion scores so a judge that skipped the arithmetic still
// yields a consistent report.
func normalizeAnalysis(a *LogoAnalysis) {
	total := 0.0
	for i := range a.Evaluations {
		cat := &a.Evaluations[i]
		if len(cat.SubCriteria) > 0 {
			sum := 0.0
			for _, sc := range cat.SubCriteria {
				sum += sc.Score
			}
			cat.CategoryPercentage = sum / float64(len(cat.SubCriteria)) * 10
		}
		cat.Status = logoStatus(cat.CategoryPercentage)
		total += cat.CategoryPercentage
	}
	if len(a.Evaluations) > 0 {
		a.OverallAccuracyPercentage = total / float64(len(a.Evaluations))
	}
}

func logoStatus(pct float64) string {
	switch {
	case pct >= logoPassThreshold:
		return "Pass"
	case pct >= logoWarnThreshold:
		return "Warning"
	default:
		return "Fail"
	}
}
