package queries

import (
	"testing"
	"time"

	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	original := pageCursor{
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		ID:        "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}

	decoded, err := decodeCursor(encodeCursor(original))

	require.NoError(t, err)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, original.ID, decoded.ID)
}

func TestDecodeCursor_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "not_base64", cursor: "%%%not-base64%%%"},
		{name: "base64_but_not_json", cursor: "bm90LWpzb24"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := decodeCursor(test.cursor)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
