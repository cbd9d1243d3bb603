package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStratifiedSplitProportions(t *testing.T) {
	labels := make([]int, 100)
	for i := 50; i < 100; i += 1 {
		labels[i] = 1
	}

	trainIdx, testIdx, err := StratifiedSplit(labels, 0.2, 42)
	require.NoError(t, err)

	assert.Len(t, trainIdx, 80)
	assert.Len(t, testIdx, 20)

	// both sides preserve the 50/50 class balance
	testPos := 0
	for _, i := range testIdx {
		testPos += labels[i]
	}
	assert.Equal(t, 10, testPos)

	// the sides are disjoint and cover every row
	seen := make(map[int]bool)
	for _, i := range append(append([]int{}, trainIdx...), testIdx...) {
		assert.False(t, seen[i], "row %d assigned twice", i)
		seen[i] = true
	}
	assert.Len(t, seen, 100)
}

func TestStratifiedSplitDeterministic(t *testing.T) {
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1}

	trainA, testA, err := StratifiedSplit(labels, 0.25, 7)
	require.NoError(t, err)
	trainB, testB, err := StratifiedSplit(labels, 0.25, 7)
	require.NoError(t, err)

	assert.Equal(t, trainA, trainB)
	assert.Equal(t, testA, testB)
}

func TestStratifiedSplitTinyClassFatal(t *testing.T) {
	labels := []int{0, 0, 0, 1}

	_, _, err := StratifiedSplit(labels, 0.2, 1)
	assert.ErrorIs(t, err, ErrClassImbalance)
}

func TestStratifiedSplitSmallClassKeepsBothSides(t *testing.T) {
	labels := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}

	trainIdx, testIdx, err := StratifiedSplit(labels, 0.1, 3)
	require.NoError(t, err)

	// even a two-row class lands one row on each side
	trainPos, testPos := 0, 0
	for _, i := range trainIdx {
		trainPos += labels[i]
	}
	for _, i := range testIdx {
		testPos += labels[i]
	}
	assert.Equal(t, 1, trainPos)
	assert.Equal(t, 1, testPos)
}

func TestStratifiedSplitBadFraction(t *testing.T) {
	labels := []int{0, 0, 1, 1}

	_, _, err := StratifiedSplit(labels, 0.0, 1)
	assert.ErrorIs(t, err, ErrBadTestFraction)
	_, _, err = StratifiedSplit(labels, 1.0, 1)
	assert.ErrorIs(t, err, ErrBadTestFraction)
}
