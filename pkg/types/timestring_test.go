package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "08:00", "19:30", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "8:00", "08:0", "24:00", "12:60", "12-30", "noon", "08:00:00"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		require.ErrorIs(t, err, ErrInvalidTimeString, "%q", s)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 7, 8, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("08:05"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = TimeString("bad").Minutes()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("08:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))

	assert.True(t, TimeString("19:30").IsAfter("08:00"))
	assert.False(t, TimeString("08:00").IsAfter("08:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("08:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	ts, err = TimeString("19:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("21:00"), ts)

	// Выход за пределы суток
	_, err = TimeString("23:00").AddMinutes(90)
	require.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:30").AddMinutes(-60)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())
}
