package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioMarshalJSON(t *testing.T) {
	defined, err := json.Marshal(NewRatio(3, 4))
	require.NoError(t, err)
	assert.Equal(t, "0.75", string(defined))

	undefined, err := json.Marshal(NewRatio(3, 0))
	require.NoError(t, err)
	assert.Equal(t, "null", string(undefined))
}

func TestRatioUnmarshalJSON(t *testing.T) {
	var r Ratio
	require.NoError(t, json.Unmarshal([]byte("0.5"), &r))
	assert.True(t, r.Valid)
	assert.Equal(t, 0.5, r.Value)

	require.NoError(t, json.Unmarshal([]byte("null"), &r))
	assert.False(t, r.Valid)
}

func TestNewRatioZeroNumerator(t *testing.T) {
	r := NewRatio(0, 5)
	assert.True(t, r.Valid)
	assert.Equal(t, 0.0, r.Value)
}
