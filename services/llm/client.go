// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package llm

import (
	"context"
	"encoding/json"
)

type GenerationParams struct {
	Temperature *float32 `json:"temperature"`
	TopP        *float32 `json:"top_p"`
	MaxTokens   *int     `json:"max_tokens"`
	Stop        []string `json:"stop"`
}

// ResponseSchema names a JSON schema the model output must conform to.
type ResponseSchema struct {
	Name   string
	Schema json.RawMessage
	Strict bool
}

// Client defines the standard interface for any judge backend.
type Client interface {
	// Generate returns free-form text for a system/user prompt pair.
	Generate(ctx context.Context, system, user string, params GenerationParams) (string, error)
	// GenerateStructured returns output constrained to the given JSON schema.
	GenerateStructured(ctx context.Context, system, user string, schema ResponseSchema, params GenerationParams) (string, error)
	// DescribeImage describes raw image bytes using a multimodal model.
	DescribeImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
	// Embed returns an embedding vector for the text.
	Embed(ctx context.Context, text string) ([]float32, error)
}
