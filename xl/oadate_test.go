package xl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOADate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want float64
	}{
		{"epoch", time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), 0},
		{"1900-01-01", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 2},
		{"2000-01-01", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 36526},
		{"2018-06-01 noon", time.Date(2018, 6, 1, 12, 0, 0, 0, time.UTC), 43252.5},
		{"day before epoch, noon", time.Date(1899, 12, 29, 12, 0, 0, 0, time.UTC), -1.5},
		{"day before epoch, 06:00", time.Date(1899, 12, 29, 6, 0, 0, 0, time.UTC), -1.25},
		{"two days before epoch", time.Date(1899, 12, 28, 0, 0, 0, 0, time.UTC), -2},
		{"time of day only", time.Date(1, 1, 1, 18, 0, 0, 0, time.UTC), 0.75},
		{"year 100", time.Date(100, 1, 1, 0, 0, 0, 0, time.UTC), -657434},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToOADate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToOADate_WallClock(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	got, err := ToOADate(time.Date(2000, 1, 1, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 36526.5, got)
}

func TestToOADate_Invalid(t *testing.T) {
	_, err := ToOADate(time.Date(99, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ToOADate(time.Date(1, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatOADate(t *testing.T) {
	assert.Equal(t, "36526", formatOADate(36526))
	assert.Equal(t, "43252.5", formatOADate(43252.5))
	assert.Equal(t, "-1.25", formatOADate(-1.25))
}
