package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	tbl := Positions([]string{"spare", "slate", "crane"})

	assert.Equal(t, 2, tbl.At(0, 's'))
	assert.Equal(t, 1, tbl.At(0, 'c'))
	assert.Equal(t, 3, tbl.At(4, 'e'))
	assert.Equal(t, 3, tbl.At(2, 'a'))
	assert.Equal(t, 1, tbl.At(1, 'p'))
	assert.Equal(t, 0, tbl.At(1, 'z'))
	for pos := range tbl {
		total := 0
		for _, n := range tbl[pos] {
			total += n
		}
		assert.Equal(t, 3, total, "position %d", pos)
	}
}

func TestFrequencies(t *testing.T) {
	tbl, excluded := Frequencies([]string{"spare", "eerie"})

	assert.Len(t, tbl, 26)
	assert.Equal(t, 4, tbl['e'])
	assert.Equal(t, 2, tbl['r'])
	assert.Equal(t, 1, tbl['i'])
	assert.Equal(t, 0, tbl['z'])
	assert.Empty(t, excluded)
}

func TestFrequenciesExcludesWithoutMutating(t *testing.T) {
	list := []string{"spare", "naïve", "o'ers", "naïve", "crane"}
	orig := append([]string(nil), list...)

	tbl, excluded := Frequencies(list)

	assert.Equal(t, []string{"naïve", "o'ers"}, excluded)
	assert.Equal(t, orig, list)
	assert.Equal(t, 2, tbl['a'])
	assert.Equal(t, 1, tbl['s'])
	assert.Equal(t, 0, tbl['v'])
}
