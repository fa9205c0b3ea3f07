// Package statehash implements a deterministic 64-bit digest of any
// JSON-serializable value, used to confirm that two game states reached
// by different paths (a fresh run vs. a snapshot/resume, or a run vs.
// its own undo-and-replay) are gameplay-equivalent. This sticks to the
// standard library's hash/fnv rather than reaching for a third-party
// hasher (see DESIGN.md).
package statehash

import (
	"encoding/json"
	"hash/fnv"
)

// strippedFields names the JSON object keys that are excluded from the
// hash anywhere they occur: incidental bookkeeping (choice ids, the
// undo log, the logger handle) and controller-private presentation
// fields that don't affect gameplay equivalence.
var strippedFields = map[string]bool{
	"choice_id":              true,
	"undo_log":               true,
	"logger":                 true,
	"show_choice_menu":       true,
	"output_mode":            true,
	"output_format":          true,
	"numeric_choices":        true,
	"step_header_printed":    true,
	"lands_played_this_turn": true,
}

// Compute serializes v to JSON, strips the fields above recursively,
// and hashes the result with FNV-1a. encoding/json already sorts
// object keys lexicographically when marshaling a map[string]any, so
// re-marshaling the stripped tree yields a canonical byte string
// regardless of the original struct's field order or Go's randomized
// map iteration.
func Compute(v any) (uint64, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return 0, err
	}

	canonical, err := json.Marshal(strip(generic))
	if err != nil {
		return 0, err
	}

	h := fnv.New64a()
	h.Write(canonical)
	return h.Sum64(), nil
}

func strip(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if strippedFields[k] {
				continue
			}
			out[k] = strip(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = strip(val)
		}
		return out
	default:
		return v
	}
}
