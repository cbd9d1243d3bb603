package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

func TestTopTermIds(t *testing.T) {
	phi := sstable.NewFloat64Matrix(4, 2)
	// topic 0 ranks terms 2, 0, 3, 1
	phi.Set(0, 0, 0.3)
	phi.Set(1, 0, 0.1)
	phi.Set(2, 0, 0.4)
	phi.Set(3, 0, 0.2)
	// topic 1 ranks terms 1, 3, 0, 2
	phi.Set(0, 1, 0.2)
	phi.Set(1, 1, 0.4)
	phi.Set(2, 1, 0.1)
	phi.Set(3, 1, 0.3)

	tops := topTermIds(phi, 2)

	require.Len(t, tops, 2)
	assert.Equal(t, []uint32{2, 0}, tops[0])
	assert.Equal(t, []uint32{1, 3}, tops[1])
}

func TestTopTermIdsClampsToVocab(t *testing.T) {
	phi := sstable.NewFloat64Matrix(3, 1)
	phi.Set(0, 0, 0.5)
	phi.Set(1, 0, 0.3)
	phi.Set(2, 0, 0.2)

	tops := topTermIds(phi, 10)
	assert.Equal(t, []uint32{0, 1, 2}, tops[0])
}

func TestCosine(t *testing.T) {
	a := []float64{0.5, 0.5, 0.0}

	assert.InDelta(t, 1.0, cosine(a, a), 1e-12)
	assert.InDelta(t, 0.0, cosine(a, []float64{0.0, 0.0, 1.0}), 1e-12)
}

func TestKLDivergence(t *testing.T) {
	p := []float64{0.5, 0.3, 0.2}
	q := []float64{0.2, 0.3, 0.5}

	assert.InDelta(t, 0.0, klDivergence(p, p), 1e-12)
	assert.Greater(t, klDivergence(p, q), 0.0)
}

func TestCoherenceOnSeparatedCorpus(t *testing.T) {
	data := syntheticCorpus()

	// pretend two perfectly separated topics over the two term blocks
	tops := [][]uint32{
		{0, 1, 2, 3, 4},
		{10, 11, 12, 13, 14},
	}
	stats := newTermStats(data, tops)

	assert.Equal(t, 100, stats.n)
	assert.Greater(t, stats.df(0), 0)
	// term blocks never co-occur across documents
	assert.Equal(t, 0, stats.codf(0, 10))

	umass := umassCoherence(tops, stats)
	assert.LessOrEqual(t, umass, 0.0)

	npmi := npmiCoherence(tops, stats)
	assert.GreaterOrEqual(t, npmi, -1.0)
	assert.LessOrEqual(t, npmi, 1.0)
}

func TestDivergenceMetricsOnOppositeTopics(t *testing.T) {
	phi := sstable.NewFloat64Matrix(4, 2)
	phi.Set(0, 0, 0.49)
	phi.Set(1, 0, 0.49)
	phi.Set(2, 0, 0.01)
	phi.Set(3, 0, 0.01)
	phi.Set(0, 1, 0.01)
	phi.Set(1, 1, 0.01)
	phi.Set(2, 1, 0.49)
	phi.Set(3, 1, 0.49)

	// nearly disjoint topics: low similarity, high divergence
	assert.Less(t, caoJuanSimilarity(phi), 0.1)
	assert.Greater(t, deveaudDivergence(phi), 1.0)
}

func TestMetricsDegenerateSingleTopic(t *testing.T) {
	phi := sstable.NewFloat64Matrix(3, 1)
	phi.Set(0, 0, 1.0)

	assert.Equal(t, 0.0, caoJuanSimilarity(phi))
	assert.Equal(t, 0.0, deveaudDivergence(phi))
}
