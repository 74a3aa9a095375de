package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIsStable(t *testing.T) {
	assert.Equal(t, Derive(7, "divan", 3, 0), Derive(7, "divan", 3, 0))
	assert.NotEqual(t, Derive(7, "divan", 3, 0), Derive(7, "divan", 4, 0))
	assert.NotEqual(t, Derive(7, "divan", 3, 0), Derive(8, "divan", 3, 0))
	assert.NotEqual(t, Derive(7, "divan", 3, 0), Derive(7, "mango", 3, 0))
	assert.NotEqual(t, Derive(7, "divan", 3, 0), Derive(7, "divan", 3, 1))
	assert.NotEqual(t, Derive(7, "divan", 3, 1), Derive(7, "divan", 3, 2))
}

func TestPickerStreamsRepeat(t *testing.T) {
	a, b := Picker(1, "reign", 0, 0), Picker(1, "reign", 0, 0)
	for i := 0; i < 100; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		assert.Equal(t, x, y)
		assert.True(t, x >= 0 && x < 1000)
	}
}
