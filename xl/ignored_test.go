package xl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoredErrors_Bits(t *testing.T) {
	assert.Equal(t, uint16(0), IgnoredErrors{}.bits())
	assert.False(t, IgnoredErrors{}.Any())
	assert.Equal(t, uint16(1<<2), IgnoredErrors{NumberStoredAsText: true}.bits())
	assert.Equal(t, uint16(1|1<<8), IgnoredErrors{EvalError: true, CalculatedColumn: true}.bits())
}

func TestIgnoredErrorSet(t *testing.T) {
	set := newIgnoredErrorSet()
	text := IgnoredErrors{NumberStoredAsText: true}
	formula := IgnoredErrors{Formula: true, FormulaRange: true}

	set.add(CellAddress{0, 0}, text)
	set.add(CellAddress{1, 0}, IgnoredErrors{})
	set.add(CellAddress{2, 1}, formula)
	set.add(CellAddress{0, 5}, text)
	set.add(CellAddress{0, 0}, text)
	set.add(CellAddress{3, 1}, formula)

	require.Len(t, set.buckets, 2)
	assert.Equal(t, text, set.buckets[0].flags)
	assert.Equal(t, "A1 F1", set.buckets[0].sqref())
	assert.Equal(t, formula, set.buckets[1].flags)
	assert.Equal(t, "B3 B4", set.buckets[1].sqref())
	assert.False(t, set.empty())

	assert.True(t, newIgnoredErrorSet().empty())
}
