// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package perceiver

import "strings"

// ExtractJSONObject scans raw model output for the outermost
// brace-delimited span. Models asked for free-form JSON often wrap it in
// prose or code fences; taking the first '{' through the last '}' is a
// best-effort recovery, and the caller still has to parse and validate
// the candidate.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
