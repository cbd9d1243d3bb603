package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePerfectSeparation(t *testing.T) {
	ds := separableDataset(40)
	g, err := Train(ds, Config{Rounds: 25, LearnRate: 0.5})
	require.NoError(t, err)

	ev, err := Evaluate(g, ds)
	require.NoError(t, err)

	assert.Equal(t, 1.0, ev.Accuracy)
	assert.InDelta(t, 1.0, ev.AUC, 1e-9)
	assert.Equal(t, 20, ev.Confusion[0][0])
	assert.Equal(t, 20, ev.Confusion[1][1])
	assert.Equal(t, 0, ev.Confusion[0][1])
	assert.Equal(t, 0, ev.Confusion[1][0])
}

func TestEvaluateHeldOut(t *testing.T) {
	ds := separableDataset(100)

	trainIdx, testIdx, err := StratifiedSplit(ds.Labels, 0.2, 42)
	require.NoError(t, err)

	g, err := Train(ds.Subset(trainIdx), Config{Rounds: 25, LearnRate: 0.3})
	require.NoError(t, err)

	ev, err := Evaluate(g, ds.Subset(testIdx))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, ev.Accuracy, 0.0)
	assert.LessOrEqual(t, ev.Accuracy, 1.0)
	assert.GreaterOrEqual(t, ev.AUC, 0.0)
	assert.LessOrEqual(t, ev.AUC, 1.0)

	// the four confusion cells account for every held-out document
	total := ev.Confusion[0][0] + ev.Confusion[0][1] +
		ev.Confusion[1][0] + ev.Confusion[1][1]
	assert.Equal(t, len(testIdx), total)
	assert.Len(t, ev.Probs, len(testIdx))
	assert.Len(t, ev.Ids, len(testIdx))
}

func TestEvaluateSingleClassFails(t *testing.T) {
	ds := separableDataset(10)
	g, err := Train(ds, Config{Rounds: 5})
	require.NoError(t, err)

	for i := range ds.Labels {
		ds.Labels[i] = PositiveClass
	}
	_, err = Evaluate(g, ds)
	assert.ErrorIs(t, err, ErrSingleClass)
}
