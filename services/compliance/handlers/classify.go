// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/AdCompliance/services/compliance/extract"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
	"github.com/AleutianAI/AdCompliance/services/compliance/perceiver"
)

// ClassifyText labels an advertisement with its financial product type.
// Empty or missing input classifies as "other".
func ClassifyText(classifier *perceiver.Classifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		text := c.PostForm("text")
		if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
			staged := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
			if err := c.SaveUploadedFile(fileHeader, staged); err != nil {
				slog.Error("Failed to stage uploaded file", "error", err)
				observability.DefaultMetrics.RecordRequest("classify-text", false)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
				return
			}
			text = extract.FromFile(staged)
			if err := os.Remove(staged); err != nil {
				slog.Warn("Failed to remove staged file", "path", staged, "error", err)
			}
		}

		if text == "" {
			observability.DefaultMetrics.RecordRequest("classify-text", true)
			c.JSON(http.StatusOK, gin.H{"detected_type": perceiver.ProductTypeOther})
			return
		}

		label := classifier.Classify(c.Request.Context(), text)
		observability.DefaultMetrics.RecordRequest("classify-text", true)
		c.JSON(http.StatusOK, gin.H{"detected_type": label})
	}
}
