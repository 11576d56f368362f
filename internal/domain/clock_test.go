package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	c, err := ParseClockTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(545), c)
	assert.Equal(t, "09:05", c.String())

	for _, bad := range []string{"", "9am", "24:00", "12:60", "12-30"} {
		_, err := ParseClockTime(bad)
		assert.ErrorIs(t, err, ErrValidation, "input %q", bad)
	}
}

func TestClockTime_JSON(t *testing.T) {
	var v struct {
		At ClockTime `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"23:59"}`), &v))
	assert.Equal(t, ClockTime(23*60+59), v.At)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"23:59"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"at":"noon"}`), &v))
}
