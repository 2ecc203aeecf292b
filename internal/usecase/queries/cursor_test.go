//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"lounge-billing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microsecond precision", func(t *testing.T) {
		at := time.Date(2025, 1, 4, 18, 0, 0, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
	})

	invalid := map[string]string{
		"empty":           "",
		"not base64":      "%%%",
		"wrong version":   base64.URLEncoding.EncodeToString([]byte("v0:1-" + uuid.NewString())),
		"missing uuid":    base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		"bad timestamp":   base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":        base64.URLEncoding.EncodeToString([]byte("v1:12345-nope")),
		"unpadded base64": "bm9wZQ",
	}
	for name, cursor := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	cases := []struct {
		name     string
		limit    int
		ceiling  int
		expected int
	}{
		{"zero uses default", 0, 0, queries.DefaultListLimit},
		{"negative uses default", -5, 0, queries.DefaultListLimit},
		{"within range", 20, 0, 20},
		{"capped at package maximum", 1000, 0, queries.MaxListLimit},
		{"capped at configured ceiling", 80, 25, 25},
		{"default also respects ceiling", 0, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, queries.ValidateLimit(tc.limit, tc.ceiling))
		})
	}
}
