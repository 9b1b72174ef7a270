package xl

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLargeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", false},
		{"99999999999", false},
		{"-99999999999", false},
		{"99999999999.5", true},
		{"100000000000", true},
		{"-100000000000", true},
		{"12345678901234567890", true},
		{"0.000000000001", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLargeNumber(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestNormalizeSheet_StoreAsText(t *testing.T) {
	s, err := NewSheet("Sheet1")
	require.NoError(t, err)

	big := NewNumber(decimal.RequireFromString("123456789012345"))
	small := NewInt(42)
	left := NewNumber(decimal.RequireFromString("-500000000000"))
	left.Style.Horizontal = HAlignLeft
	s.SetAt(0, 0, big)
	s.SetAt(0, 1, small)
	s.SetAt(0, 2, left)

	require.NoError(t, normalizeSheet(s))

	assert.Equal(t, FormatGeneral, big.Style.Format)
	assert.Equal(t, HAlignRight, big.Style.Horizontal)
	assert.True(t, big.IgnoredErrors.NumberStoredAsText)

	assert.Equal(t, FormatNumberNoDecimalPlaces, small.Style.Format)
	assert.Equal(t, HAlignNone, small.Style.Horizontal)
	assert.False(t, small.IgnoredErrors.Any())

	assert.Equal(t, HAlignLeft, left.Style.Horizontal)
	assert.True(t, left.IgnoredErrors.NumberStoredAsText)

	before := *big
	require.NoError(t, normalizeSheet(s))
	assert.Equal(t, before, *big)
}

func TestNormalizeSheet_None(t *testing.T) {
	s, err := NewSheet("Sheet1")
	require.NoError(t, err)
	s.LargeNumberHandling = None

	big := NewNumber(decimal.RequireFromString("123456789012345"))
	s.SetAt(0, 0, big)

	require.NoError(t, normalizeSheet(s))
	assert.Equal(t, FormatNumberTwoDecimalPlaces, big.Style.Format)
	assert.False(t, big.IgnoredErrors.Any())
}

func TestNormalizeSheet_Errors(t *testing.T) {
	s, err := NewSheet("Sheet1")
	require.NoError(t, err)
	s.LargeNumberHandling = LargeNumberHandling(7)
	assert.ErrorIs(t, normalizeSheet(s), ErrInvalidLargeNumberMode)

	s.LargeNumberHandling = StoreAsText
	s.SetAt(2, 2, NewDate(time.Date(42, 1, 1, 0, 0, 0, 0, time.UTC)))
	err = normalizeSheet(s)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Contains(t, err.Error(), "C3")
}
