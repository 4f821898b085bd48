package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("01/02/2024")
	assert.Error(t, err)
}

func TestNewDate_DropsClock(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	d := NewDate(time.Date(2025, 3, 9, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-03-09", d.String())
}

func TestDate_AddDays(t *testing.T) {
	d, _ := ParseDate("2025-12-30")
	assert.Equal(t, "2026-01-02", d.AddDays(3).String())
	assert.Equal(t, "2025-12-29", d.AddDays(-1).String())
}

func TestDate_JSON(t *testing.T) {
	d, _ := ParseDate("2025-06-01")
	b, err := json.Marshal(struct {
		ETA Date `json:"eta"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"eta":"2025-06-01"}`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"June 1"`), &back))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01-02", d.String())

	require.NoError(t, d.Scan("2025-01-03T00:00:00Z"))
	assert.Equal(t, "2025-01-03", d.String())

	require.NoError(t, d.Scan([]byte("2025-01-04")))
	assert.Equal(t, "2025-01-04", d.String())

	assert.Error(t, d.Scan(42))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-04", v)
}
