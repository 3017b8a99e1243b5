// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pipeline orchestrates a full document check: segmentation,
// parallel per-chunk evaluation, verdict aggregation, and scoring.
package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
	"github.com/AleutianAI/AdCompliance/services/compliance/perceiver"
)

const defaultParallelism = 4

// Pipeline wires the registry and perceiver into the document-check flow.
type Pipeline struct {
	registry    *engine.Registry
	perceiver   *perceiver.Perceiver
	windowSize  int
	overlap     int
	parallelism int
}

// New builds a Pipeline with the default chunk windowing.
func New(registry *engine.Registry, perc *perceiver.Perceiver) *Pipeline {
	return &Pipeline{
		registry:    registry,
		perceiver:   perc,
		windowSize:  engine.DefaultWindowSize,
		overlap:     engine.DefaultOverlap,
		parallelism: defaultParallelism,
	}
}

// CheckText evaluates a document against the guidelines selected by the
// product-type hints and returns the scored report.
//
// Chunks are evaluated concurrently with bounded parallelism; each chunk's
// deterministic and judge verdicts are merged first, then the per-chunk
// maps are folded in chunk order by highest-confidence-wins, which keeps
// the result identical to sequential evaluation.
func (p *Pipeline) CheckText(ctx context.Context, text string, hints []string) (datatypes.ComplianceReport, error) {
	selected := p.registry.Select(hints)
	chunks, err := engine.Segment(text, p.windowSize, p.overlap)
	if err != nil {
		return datatypes.ComplianceReport{}, err
	}
	observability.DefaultMetrics.RecordChunks(len(chunks))
	slog.Info("Evaluating document", "chunks", len(chunks), "guidelines", len(selected))

	perChunk := make([]map[string]datatypes.FieldVerdict, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i, chunk := range chunks {
		g.Go(func() error {
			det := engine.Deterministic(selected, chunk)
			judged := p.perceiver.Perceive(gctx, chunk, selected)
			perChunk[i] = engine.MergePerceptions(det, judged)
			return nil
		})
	}
	// Workers never return errors; Wait only surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return datatypes.ComplianceReport{}, err
	}

	final := engine.AggregateChunks(perChunk)
	evals := make([]datatypes.GuidelineEvaluation, 0, len(selected))
	for _, guideline := range selected {
		evals = append(evals, engine.BuildGuidelineEvaluation(guideline, final))
	}
	return engine.AggregateGuidelines(evals), nil
}
