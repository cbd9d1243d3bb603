package classifier

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// separableDataset puts the two classes on opposite ends of the
// first feature, with a constant second feature.
func separableDataset(n int) *Dataset {
	features := mat.NewDense(n, 2, nil)
	labels := make([]int, n)
	ids := make([]string, n)
	for i := 0; i < n; i += 1 {
		x0 := 0.2
		if i%2 == 1 {
			x0 = 0.8
			labels[i] = PositiveClass
		}
		features.Set(i, 0, x0+0.001*float64(i))
		features.Set(i, 1, 0.5)
		ids[i] = fmt.Sprintf("doc%03d", i)
	}
	return &Dataset{Features: features, Labels: labels, Ids: ids}
}

func TestTrainSeparatesClasses(t *testing.T) {
	ds := separableDataset(40)

	g, err := Train(ds, Config{Rounds: 25, LearnRate: 0.5})
	require.NoError(t, err)

	for i := 0; i < 40; i += 1 {
		x := mat.Row(nil, i, ds.Features)
		assert.Equal(t, ds.Labels[i], g.Predict(x), "row %d", i)
	}
}

func TestTrainSingleClassFails(t *testing.T) {
	ds := separableDataset(10)
	for i := range ds.Labels {
		ds.Labels[i] = NegativeClass
	}

	_, err := Train(ds, Config{Rounds: 5})
	assert.ErrorIs(t, err, ErrSingleClass)
}

func TestTrainEmptyFails(t *testing.T) {
	ds := &Dataset{Features: mat.NewDense(1, 1, nil), Labels: nil}
	_, err := Train(ds, Config{})
	assert.ErrorIs(t, err, ErrNoTrainingData)
}

func TestPredictProbRange(t *testing.T) {
	ds := separableDataset(20)
	g, err := Train(ds, Config{Rounds: 10, LearnRate: 0.3})
	require.NoError(t, err)

	for i := 0; i < 20; i += 1 {
		p := g.PredictProb(mat.Row(nil, i, ds.Features))
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}
