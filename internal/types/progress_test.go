package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		completed, total int
		want             int
		known            bool
	}{
		{0, 0, 0, false},
		{0, 2, 0, true},
		{1, 2, 50, true},
		{1, 3, 33, true},
		{2, 3, 67, true},
		{3, 3, 100, true},
	}
	for _, tt := range tests {
		got, known := PercentOf(tt.completed, tt.total).Value()
		assert.Equal(t, tt.known, known, "%d/%d", tt.completed, tt.total)
		if tt.known {
			assert.Equal(t, tt.want, got, "%d/%d", tt.completed, tt.total)
		}
	}
}

func TestPercent_JSON(t *testing.T) {
	data, err := json.Marshal(UnknownPercent())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(PercentOf(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "50", string(data))

	var p Percent
	require.NoError(t, json.Unmarshal([]byte("67"), &p))
	assert.Equal(t, PercentOf(2, 3), p)
	require.NoError(t, json.Unmarshal([]byte("null"), &p))
	assert.True(t, p.IsUnknown())
	assert.Error(t, json.Unmarshal([]byte(`"half"`), &p))
}

func TestPercent_String(t *testing.T) {
	assert.Equal(t, "unknown", UnknownPercent().String())
	assert.Equal(t, "50%", PercentOf(1, 2).String())
}

func TestProgress_UnknownPercentIsNullInJSON(t *testing.T) {
	data, err := json.Marshal(Progress{PathwayID: "x", Name: "x", PercentComplete: UnknownPercent()})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw["percent_complete"])
	assert.Contains(t, raw, "percent_complete")
}
