// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package engine

import (
	"fmt"
	"strings"
)

// Default windowing for document checks; the classifier uses a smaller
// window so each label request stays cheap.
const (
	DefaultWindowSize  = 400
	DefaultOverlap     = 80
	ClassifyWindowSize = 200
)

// Segment splits text into overlapping word windows.
//
// Tokens are whitespace-delimited. Window i starts at i*(windowSize-overlap)
// and spans up to windowSize tokens; windows keep starting while any tokens
// remain, so the tail of the document always appears in at least one chunk.
// Empty input yields a single empty chunk so callers always have at least
// one span to evaluate.
//
// overlap must be smaller than windowSize; the step would otherwise be zero
// or negative and the sequence infinite, so that is rejected outright.
func Segment(text string, windowSize, overlap int) ([]string, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", windowSize)
	}
	if overlap < 0 || overlap >= windowSize {
		return nil, fmt.Errorf("overlap %d must be in [0, window size %d)", overlap, windowSize)
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}, nil
	}
	step := windowSize - overlap
	var chunks []string
	for start := 0; start < len(words); start += step {
		end := start + windowSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks, nil
}
