// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package routes maps the HTTP surface of the compliance service onto its
// handlers.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/AdCompliance/services/compliance/brand"
	"github.com/AleutianAI/AdCompliance/services/compliance/handlers"
	"github.com/AleutianAI/AdCompliance/services/compliance/perceiver"
	"github.com/AleutianAI/AdCompliance/services/compliance/pipeline"
)

// SetupRoutes registers all endpoints on the router.
func SetupRoutes(
	router *gin.Engine,
	pipe *pipeline.Pipeline,
	classifier *perceiver.Classifier,
	brandSvc *brand.Service,
	judgeConfigured bool,
	vectorConfigured bool,
) {
	router.GET("/health", handlers.HealthCheck(judgeConfigured, vectorConfigured))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/check-text", handlers.CheckText(pipe))
	router.POST("/classify-text", handlers.ClassifyText(classifier))
	router.POST("/check-logo", handlers.CheckLogo(brandSvc))

	v1 := router.Group("/v1")
	{
		v1.POST("/brand/guidelines", handlers.IngestGuidelines(brandSvc))
	}
}
