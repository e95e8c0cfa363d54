//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"maps"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a JSON-shaped request body in place.
type Mutation func(map[string]any)

// DtoMap round-trips v through JSON so request bodies can be edited field by
// field, then applies muts in order. The source value is never modified.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	var m map[string]any
	if src, ok := v.(map[string]any); ok {
		m = maps.Clone(src)
	} else {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &m))
	}
	for _, mut := range muts {
		if mut != nil {
			mut(m)
		}
	}
	return m
}

// Field sets key to value; a nil value removes the key to simulate an omitted field.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
