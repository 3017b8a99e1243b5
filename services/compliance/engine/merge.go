// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "github.com/AleutianAI/AdCompliance/services/compliance/datatypes"

// Deterministic verdicts at or above this confidence always win the merge,
// regardless of what the judge reported.
const deterministicOverride = 0.9

// MergePerceptions resolves one verdict per field from the deterministic
// and judge maps.
//
// Precedence per field: a deterministic verdict with confidence >= 0.9 is
// final; otherwise the judge verdict wins only when it exists and is
// strictly more confident; otherwise the deterministic verdict stands.
// The deterministic map defines the field universe - judge-only fields are
// dropped, since every known field always has a deterministic entry.
func MergePerceptions(det, judged map[string]datatypes.FieldVerdict) map[string]datatypes.FieldVerdict {
	merged := make(map[string]datatypes.FieldVerdict, len(det))
	for k, d := range det {
		j, ok := judged[k]
		switch {
		case d.Confidence >= deterministicOverride:
			merged[k] = d
		case ok && j.Confidence > d.Confidence:
			merged[k] = j
		default:
			merged[k] = d
		}
	}
	return merged
}

// AggregateChunks folds per-chunk verdict maps into one per-document map,
// keeping the highest-confidence verdict per field. Ties keep the first
// chunk seen. The fold is commutative and associative over confidence, so
// chunks may be evaluated in parallel as long as the maps are folded in
// chunk order.
func AggregateChunks(perChunk []map[string]datatypes.FieldVerdict) map[string]datatypes.FieldVerdict {
	final := make(map[string]datatypes.FieldVerdict)
	for _, chunkMap := range perChunk {
		for k, v := range chunkMap {
			if cur, ok := final[k]; !ok || v.Confidence > cur.Confidence {
				final[k] = v
			}
		}
	}
	return final
}
