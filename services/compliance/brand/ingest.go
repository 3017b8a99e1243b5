// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package brand

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/textsplitter"
	"github.com/weaviate/weaviate/entities/models"
)

const (
	ingestChunkSize    = 512
	ingestChunkOverlap = 64
)

// IngestResult summarizes one guideline ingestion run.
type IngestResult struct {
	Source   string `json:"source"`
	Chunks   int    `json:"chunks"`
	Upserted int    `json:"upserted"`
	Failed   int    `json:"failed"`
}

// IngestGuidelines splits a guideline document into passages, embeds each
// one, and upserts them into the GuidelinePassage class. Object IDs are
// derived from the chunk content hash, so re-ingesting the same document
// is idempotent.
func (s *Service) IngestGuidelines(ctx context.Context, source, text string) (IngestResult, error) {
	result := IngestResult{Source: source}
	if !s.Available() {
		return result, fmt.Errorf("guideline ingestion requires both the judge and the vector store")
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(ingestChunkSize),
		textsplitter.WithChunkOverlap(ingestChunkOverlap),
	)
	chunks, err := splitter.SplitText(text)
	if err != nil {
		return result, fmt.Errorf("failed to split guideline document: %w", err)
	}
	result.Chunks = len(chunks)
	slog.Info("Ingesting guideline document", "source", source, "chunks", len(chunks))

	objects := make([]*models.Object, 0, len(chunks))
	for i, chunk := range chunks {
		vector, err := s.judge.Embed(ctx, chunk)
		if err != nil {
			slog.Error("Failed to embed guideline chunk", "source", source, "chunk", i, "error", err)
			result.Failed++
			continue
		}
		hash := sha256.Sum256([]byte(chunk))
		id, err := uuid.FromBytes(hash[:16])
		if err != nil {
			result.Failed++
			continue
		}
		objects = append(objects, &models.Object{
			Class:  "GuidelinePassage",
			ID:     strfmt.UUID(id.String()),
			Vector: vector,
			Properties: map[string]interface{}{
				"text":        chunk,
				"source":      source,
				"chunk_index": i,
				"ingested_at": time.Now().UnixMilli(),
			},
		})
	}
	if len(objects) == 0 {
		return result, fmt.Errorf("no guideline chunks could be embedded")
	}

	resp, err := s.store.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
	if err != nil {
		return result, fmt.Errorf("guideline batch upsert failed: %w", err)
	}
	for _, obj := range resp {
		if obj.Result != nil && obj.Result.Errors != nil && len(obj.Result.Errors.Error) > 0 {
			slog.Error("Guideline passage upsert rejected", "id", obj.ID, "error", obj.Result.Errors.Error[0].Message)
			result.Failed++
			continue
		}
		result.Upserted++
	}
	slog.Info("Guideline ingestion finished", "source", source, "upserted", result.Upserted, "failed", result.Failed)
	return result, nil
}
