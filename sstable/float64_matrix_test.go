package sstable

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64MatrixShape(t *testing.T) {
	m := NewFloat64Matrix(uint32(2), uint32(3))

	r, c := m.Shape()

	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(3), c)
}

func TestFloat64MatrixGet(t *testing.T) {
	m := NewFloat64Matrix(uint32(2), uint32(3))

	val := float64(0.0)
	for r := 0; r < 2; r += 1 {
		for c := 0; c < 3; c += 1 {
			m.Set(uint32(r), uint32(c), val)
			val += 1.0
		}
	}

	assert.Equal(t, float64(0), m.Get(0, 0))
	assert.Equal(t, float64(1), m.Get(0, 1))
	assert.Equal(t, float64(2), m.Get(0, 2))
	assert.Equal(t, float64(3), m.Get(1, 0))
	assert.Equal(t, float64(4), m.Get(1, 1))
	assert.Equal(t, float64(5), m.Get(1, 2))
}

func TestFloat64MatrixRowCol(t *testing.T) {
	m := NewFloat64Matrix(uint32(2), uint32(2))
	m.Set(0, 0, 0.25)
	m.Set(0, 1, 0.75)
	m.Set(1, 0, 0.5)
	m.Set(1, 1, 0.5)

	assert.Equal(t, []float64{0.25, 0.75}, m.GetRow(0))
	assert.Equal(t, []float64{0.75, 0.5}, m.GetCol(1))
}

func TestFloat64MatrixDense(t *testing.T) {
	m := NewFloat64Matrix(uint32(2), uint32(2))
	m.Set(0, 1, 0.3)
	m.Set(1, 0, 0.7)

	d := m.Dense()

	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 0.3, d.At(0, 1))
	assert.Equal(t, 0.7, d.At(1, 0))

	// the dense copy must not alias the matrix storage
	d.Set(0, 1, 0.9)
	assert.Equal(t, 0.3, m.Get(0, 1))
}

func TestFloat64MatrixSerializeRoundTrip(t *testing.T) {
	m := NewFloat64Matrix(uint32(2), uint32(2))
	m.Set(0, 0, 0.125)
	m.Set(1, 1, 0.875)

	fn := filepath.Join(t.TempDir(), "phi")
	assert.NoError(t, m.Serialize(fn))

	loaded := NewFloat64Matrix(uint32(1), uint32(1))
	assert.NoError(t, loaded.Deserialize(fn))

	r, c := loaded.Shape()
	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(2), c)
	assert.InDelta(t, 0.125, loaded.Get(0, 0), 1e-9)
	assert.InDelta(t, 0.875, loaded.Get(1, 1), 1e-9)
	assert.Equal(t, 0.0, loaded.Get(0, 1))
}
