// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AdCompliance/services/compliance/brand"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
)

// CheckLogo scores an uploaded logo image against the brand criteria.
// Requires both the judge and the vector store; returns 503 otherwise.
func CheckLogo(svc *brand.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil || !svc.Available() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "brand analysis is not configured"})
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			observability.DefaultMetrics.RecordRequest("check-logo", false)
			c.JSON(http.StatusBadRequest, gin.H{"error": "an image file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			observability.DefaultMetrics.RecordRequest("check-logo", false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded image"})
			return
		}
		defer file.Close()
		image, err := io.ReadAll(file)
		if err != nil {
			observability.DefaultMetrics.RecordRequest("check-logo", false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded image"})
			return
		}

		brandName := c.PostForm("brand")
		if brandName == "" {
			brandName = "the company"
		}
		mimeType := mime.TypeByExtension(filepath.Ext(fileHeader.Filename))

		analysis, err := svc.CheckLogo(c.Request.Context(), image, mimeType, fileHeader.Filename, brandName)
		if err != nil {
			slog.Error("Logo analysis failed", "error", err)
			observability.DefaultMetrics.RecordRequest("check-logo", false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		observability.DefaultMetrics.RecordRequest("check-logo", true)
		c.JSON(http.StatusOK, analysis)
	}
}

// IngestGuidelines ingests a brand-guideline document into the vector
// store for later retrieval during logo analysis.
func IngestGuidelines(svc *brand.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil || !svc.Available() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "guideline ingestion is not configured"})
			return
		}
		var req struct {
			Source string `json:"source" binding:"required"`
			Text   string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			observability.DefaultMetrics.RecordRequest("ingest-guidelines", false)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result, err := svc.IngestGuidelines(c.Request.Context(), req.Source, req.Text)
		if err != nil {
			slog.Error("Guideline ingestion failed", "source", req.Source, "error", err)
			observability.DefaultMetrics.RecordRequest("ingest-guidelines", false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		observability.DefaultMetrics.RecordRequest("ingest-guidelines", true)
		c.JSON(http.StatusOK, result)
	}
}
