package classifier

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoTrainingData = errors.New("classifier: no training data")
	ErrSingleClass    = errors.New("classifier: training data carries a single class")
)

// regularization added to hessian sums when computing leaf values
const lambda = 1.0

// Config controls the boosting run.
type Config struct {
	Rounds    int     // number of stumps to fit, default 100
	LearnRate float64 // shrinkage applied to every leaf, default 0.1
}

// stump is a depth-one regression tree on a single feature. Rows
// with feature < threshold receive the left value, the rest the
// right value.
type stump struct {
	feature   int
	threshold float64
	left      float64
	right     float64
}

// GBM is a gradient-boosted stump ensemble for binary logistic
// loss. Prediction is the sigmoid of bias plus the shrunken sum of
// stump outputs.
type GBM struct {
	bias   float64
	lr     float64
	stumps []stump
}

// Train fits the ensemble with second-order gradient boosting:
// each round fits one stump to the current gradients and hessians
// and updates the raw scores. Training is deterministic, there is
// no row or feature subsampling.
func Train(ds *Dataset, cfg Config) (*GBM, error) {
	n, d := ds.Features.Dims()
	if n == 0 || len(ds.Labels) != n {
		return nil, ErrNoTrainingData
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = 100
	}
	if cfg.LearnRate <= 0 {
		cfg.LearnRate = 0.1
	}

	pos := 0
	for _, y := range ds.Labels {
		pos += y
	}
	if pos == 0 || pos == n {
		return nil, ErrSingleClass
	}

	g := &GBM{
		bias: math.Log(float64(pos) / float64(n-pos)),
		lr:   cfg.LearnRate,
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = g.bias
	}

	grad := make([]float64, n)
	hess := make([]float64, n)
	for round := 0; round < cfg.Rounds; round += 1 {
		for i := 0; i < n; i += 1 {
			p := sigmoid(scores[i])
			grad[i] = float64(ds.Labels[i]) - p
			hess[i] = p * (1 - p)
		}

		st, ok := bestStump(ds.Features, grad, hess, d)
		if !ok {
			break // no split improves the loss anymore
		}
		g.stumps = append(g.stumps, st)

		for i := 0; i < n; i += 1 {
			if ds.Features.At(i, st.feature) < st.threshold {
				scores[i] += g.lr * st.left
			} else {
				scores[i] += g.lr * st.right
			}
		}
	}

	return g, nil
}

// bestStump scans every feature and every split point between
// distinct sorted values, maximizing the standard second-order
// gain over the no-split objective.
func bestStump(x *mat.Dense, grad, hess []float64, d int) (stump, bool) {
	n := len(grad)

	var gTotal, hTotal float64
	for i := 0; i < n; i += 1 {
		gTotal += grad[i]
		hTotal += hess[i]
	}
	baseObj := gTotal * gTotal / (hTotal + lambda)

	var best stump
	bestGain := 0.0
	found := false

	order := make([]int, n)
	for j := 0; j < d; j += 1 {
		for i := range order {
			order[i] = i
		}
		col := mat.Col(nil, j, x)
		sort.Slice(order, func(a, b int) bool {
			return col[order[a]] < col[order[b]]
		})

		var gLeft, hLeft float64
		for pos := 0; pos < n-1; pos += 1 {
			i := order[pos]
			gLeft += grad[i]
			hLeft += hess[i]

			// split only between distinct feature values
			if col[order[pos]] == col[order[pos+1]] {
				continue
			}

			gRight := gTotal - gLeft
			hRight := hTotal - hLeft
			gain := gLeft*gLeft/(hLeft+lambda) +
				gRight*gRight/(hRight+lambda) - baseObj
			if gain > bestGain {
				bestGain = gain
				found = true
				best = stump{
					feature:   j,
					threshold: (col[order[pos]] + col[order[pos+1]]) / 2,
					left:      gLeft / (hLeft + lambda),
					right:     gRight / (hRight + lambda),
				}
			}
		}
	}

	return best, found
}

// RawScore is the pre-sigmoid margin for one feature vector.
func (g *GBM) RawScore(x []float64) float64 {
	score := g.bias
	for _, st := range g.stumps {
		if x[st.feature] < st.threshold {
			score += g.lr * st.left
		} else {
			score += g.lr * st.right
		}
	}
	return score
}

// PredictProb returns the probability of the positive class.
func (g *GBM) PredictProb(x []float64) float64 {
	return sigmoid(g.RawScore(x))
}

// Predict returns the predicted class at the 0.5 threshold.
func (g *GBM) Predict(x []float64) int {
	if g.PredictProb(x) >= 0.5 {
		return PositiveClass
	}
	return NegativeClass
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
