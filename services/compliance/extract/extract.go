// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package extract pulls checkable text out of uploaded documents.
//
// Parsing fidelity for rich formats is a collaborator concern: unknown
// formats are treated as plain text, and binary container formats (PDF,
// DOCX) are scrubbed to their printable runs so the regex evaluators still
// see any embedded plain-text content. Unreadable input degrades to an
// empty string, which the pipeline treats as an empty document rather
// than an error.
package extract

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minRunLength filters out the short garbage runs binary formats produce.
const minRunLength = 4

// FromFile reads path and returns its checkable text. Missing or
// unreadable files return "".
func FromFile(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read uploaded file", "path", path, "error", err)
		return ""
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx", ".doc":
		return printableRuns(string(data))
	default:
		if !utf8.ValidString(string(data)) {
			return printableRuns(string(data))
		}
		return string(data)
	}
}

// printableRuns keeps maximal runs of printable characters, joined by
// single spaces. Runs shorter than minRunLength are discarded since they
// are almost always structural bytes, not prose.
func printableRuns(s string) string {
	var out strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() >= minRunLength {
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(strings.TrimSpace(run.String()))
		}
		run.Reset()
	}
	for _, r := range s {
		if r == utf8.RuneError || (!unicode.IsPrint(r) && !unicode.IsSpace(r)) {
			flush()
			continue
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}
