// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "github.com/AleutianAI/AdCompliance/services/compliance/datatypes"

// Deterministic evaluates every field of the selected guidelines against a
// single chunk. Keys are namespaced "{code}_{field}". The evaluators are
// pure, so the same chunk always yields the same verdict map.
func Deterministic(selected []*Guideline, chunk string) map[string]datatypes.FieldVerdict {
	out := make(map[string]datatypes.FieldVerdict)
	for _, g := range selected {
		for _, f := range g.FieldNames() {
			out[g.Prefixed(f)] = g.Evaluators[f](chunk)
		}
	}
	return out
}
