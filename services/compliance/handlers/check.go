// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers contains the Gin handlers for the compliance service.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/compliance/extract"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
	"github.com/AleutianAI/AdCompliance/services/compliance/pipeline"
)

// CheckText evaluates an advertisement against the guidelines selected by
// the optional guideline_types hints. Input is the text form field or an
// uploaded document; the upload takes precedence when both are present.
func CheckText(pipe *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		text := c.PostForm("text")
		if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
			staged := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
			if err := c.SaveUploadedFile(fileHeader, staged); err != nil {
				slog.Error("Failed to stage uploaded file", "error", err)
				observability.DefaultMetrics.RecordRequest("check-text", false)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
				return
			}
			text = extract.FromFile(staged)
			if err := os.Remove(staged); err != nil {
				slog.Warn("Failed to remove staged file", "path", staged, "error", err)
			}
		}

		hints := parseHints(c.PostForm("guideline_types"))

		if text == "" {
			// No checkable input: an empty report, not an error.
			observability.DefaultMetrics.RecordRequest("check-text", true)
			c.JSON(http.StatusOK, engine.AggregateGuidelines(nil))
			return
		}

		report, err := pipe.CheckText(c.Request.Context(), text, hints)
		if err != nil {
			slog.Error("Compliance check failed", "error", err)
			observability.DefaultMetrics.RecordRequest("check-text", false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		observability.DefaultMetrics.RecordRequest("check-text", true)
		c.JSON(http.StatusOK, report)
	}
}

// parseHints decodes the guideline_types form field, a JSON array of
// product-type hints. Malformed input is treated as no hints.
func parseHints(raw string) []string {
	if raw == "" {
		return nil
	}
	var hints []string
	if err := json.Unmarshal([]byte(raw), &hints); err != nil {
		slog.Warn("Ignoring malformed guideline_types", "raw", raw, "error", err)
		return nil
	}
	return hints
}
