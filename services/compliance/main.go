// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"log"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/AdCompliance/services/compliance/brand"
	"github.com/AleutianAI/AdCompliance/services/compliance/datatypes"
	"github.com/AleutianAI/AdCompliance/services/compliance/engine"
	"github.com/AleutianAI/AdCompliance/services/compliance/observability"
	"github.com/AleutianAI/AdCompliance/services/compliance/perceiver"
	"github.com/AleutianAI/AdCompliance/services/compliance/pipeline"
	"github.com/AleutianAI/AdCompliance/services/compliance/routes"
	"github.com/AleutianAI/AdCompliance/services/llm"

	// --- OpenTelemetry imports ---
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
)

// initTracer wires the OTLP gRPC exporter. Tracing is optional: when no
// collector endpoint is configured we skip it rather than fail startup.
func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
		return func(context.Context) {}, nil
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("compliance-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	// Best effort: a missing .env just means env vars come from the runtime.
	_ = godotenv.Load()

	port := os.Getenv("COMPLIANCE_PORT")
	if port == "" {
		port = "12230"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	weaviateURL := os.Getenv("WEAVIATE_SERVICE_URL")
	// Sanitize: Trim quotes and whitespace just in case Podman passes them literally
	weaviateURL = strings.Trim(weaviateURL, "\"' ")

	var weaviateClient *weaviate.Client

	// Robust Check: URL must exist AND have a scheme (http/https)
	if weaviateURL != "" && strings.Contains(weaviateURL, "http") {
		parsedURL, err := url.Parse(weaviateURL)

		if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
			slog.Warn("WEAVIATE_SERVICE_URL is invalid. Running without the vector store.",
				"url", weaviateURL, "error", err)
		} else {
			clientConf := weaviate.Config{
				Host:   parsedURL.Host,
				Scheme: parsedURL.Scheme,
			}
			weaviateClient, err = weaviate.NewClient(clientConf)
			if err != nil {
				slog.Error("Failed to create Weaviate client", "error", err)
				weaviateClient = nil
			} else {
				datatypes.EnsureWeaviateSchema(weaviateClient)
			}
		}
	} else {
		slog.Info("WEAVIATE_SERVICE_URL not set or empty. Running text checks only (no logo analysis).")
	}

	// The judge is optional too: without it the deterministic evaluators
	// still run, so text checks stay available.
	var judge llm.Client
	judgeClient, err := llm.NewOpenAIClient()
	if err != nil {
		slog.Warn("Judge not configured, running deterministic checks only", "error", err)
	} else {
		judge = judgeClient
	}

	registry, err := engine.NewRegistry()
	if err != nil {
		log.Fatalf("FATAL: Could not initialize the guideline registry: %v", err)
	}

	observability.InitMetrics()

	perc := perceiver.New(judge)
	classifier := perceiver.NewClassifier(judge)
	pipe := pipeline.New(registry, perc)
	brandSvc := brand.NewService(weaviateClient, judge)

	router := gin.Default()
	router.Use(otelgin.Middleware("compliance-service"))

	routes.SetupRoutes(router, pipe, classifier, brandSvc, judge != nil, weaviateClient != nil)

	log.Println("Starting the compliance server on port ", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
