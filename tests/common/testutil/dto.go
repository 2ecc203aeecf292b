//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can mutate the wire shape.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key, or deletes it when value is nil. Dotted keys walk nested
// objects and arrays, e.g. "snacks.0.quantity".
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		parts := strings.Split(key, ".")
		var cur any = m
		for _, p := range parts[:len(parts)-1] {
			cur = child(cur, p)
			if cur == nil {
				return
			}
		}
		last := parts[len(parts)-1]
		switch node := cur.(type) {
		case map[string]any:
			if value == nil {
				delete(node, last)
			} else {
				node[last] = value
			}
		case []any:
			if i, err := strconv.Atoi(last); err == nil && i < len(node) {
				node[i] = value
			}
		}
	}
}

func child(node any, key string) any {
	switch n := node.(type) {
	case map[string]any:
		return n[key]
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n) {
			return nil
		}
		return n[i]
	}
	return nil
}
