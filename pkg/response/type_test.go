package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-capture/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	d := response.Date(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-20"`, string(b))
}

func TestDateMarshalJSONKeepsLocation(t *testing.T) {
	// Midnight in a UTC-negative zone must not render as the previous day.
	loc := time.FixedZone("UTC-7", -7*3600)
	d := response.Date(time.Date(2025, 10, 20, 0, 0, 0, 0, loc))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-10-20"`, string(b))
}

func TestDateTimeMarshalJSON(t *testing.T) {
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 45, 0, time.UTC))

	b, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01 15:30:45"`, string(b))
}
