package sstable

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32MatrixShape(t *testing.T) {
	m := NewUint32Matrix(uint32(2), uint32(3))

	r, c := m.Shape()

	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(3), c)
}

func TestUint32MatrixIncrDecr(t *testing.T) {
	m := NewUint32Matrix(uint32(2), uint32(2))

	m.Incr(0, 1, uint32(5))
	m.Incr(0, 1, uint32(2))
	m.Decr(0, 1, uint32(3))

	assert.Equal(t, uint32(4), m.Get(0, 1))
	assert.Equal(t, uint32(0), m.Get(1, 0))
}

func TestUint32MatrixRowCol(t *testing.T) {
	m := NewUint32Matrix(uint32(2), uint32(3))

	val := uint32(0)
	for r := 0; r < 2; r += 1 {
		for c := 0; c < 3; c += 1 {
			m.Set(uint32(r), uint32(c), val)
			val += 1
		}
	}

	assert.Equal(t, []uint32{3, 4, 5}, m.GetRow(1))
	assert.Equal(t, []uint32{2, 5}, m.GetCol(2))
}

func TestUint32MatrixSerializeRoundTrip(t *testing.T) {
	m := NewUint32Matrix(uint32(3), uint32(2))
	m.Set(0, 0, uint32(7))
	m.Set(2, 1, uint32(9))

	fn := filepath.Join(t.TempDir(), "counts")
	assert.NoError(t, m.Serialize(fn))

	loaded := NewUint32Matrix(uint32(1), uint32(1))
	assert.NoError(t, loaded.Deserialize(fn))

	r, c := loaded.Shape()
	assert.Equal(t, uint32(3), r)
	assert.Equal(t, uint32(2), c)
	assert.Equal(t, uint32(7), loaded.Get(0, 0))
	assert.Equal(t, uint32(9), loaded.Get(2, 1))
	assert.Equal(t, uint32(0), loaded.Get(1, 1))
}

func TestUint32MatrixBadShapePanics(t *testing.T) {
	assert.Panics(t, func() { NewUint32Matrix(0, 3) })
}
