package classifier

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Evaluation holds per-document predictions and summary metrics
// for one held-out set.
type Evaluation struct {
	Ids       []string
	Probs     []float64
	Predicted []int
	Accuracy  float64
	AUC       float64
	// Confusion[actual][predicted] counts; the four cells sum to
	// the held-out document count
	Confusion [2][2]int
}

// Evaluate scores the model on a held-out dataset. Callers are
// responsible for passing a set disjoint from training; metrics
// computed here describe that set only.
func Evaluate(g *GBM, ds *Dataset) (*Evaluation, error) {
	n, _ := ds.Features.Dims()
	if n == 0 || len(ds.Labels) != n {
		return nil, ErrNoTrainingData
	}

	pos := 0
	for _, y := range ds.Labels {
		pos += y
	}
	if pos == 0 || pos == n {
		return nil, ErrSingleClass
	}

	ev := &Evaluation{
		Ids:       ds.Ids,
		Probs:     make([]float64, n),
		Predicted: make([]int, n),
	}

	correct := 0
	for i := 0; i < n; i += 1 {
		x := mat.Row(nil, i, ds.Features)
		ev.Probs[i] = g.PredictProb(x)
		if ev.Probs[i] >= 0.5 {
			ev.Predicted[i] = PositiveClass
		}
		ev.Confusion[ds.Labels[i]][ev.Predicted[i]] += 1
		if ev.Predicted[i] == ds.Labels[i] {
			correct += 1
		}
	}
	ev.Accuracy = float64(correct) / float64(n)
	ev.AUC = rocAUC(ev.Probs, ds.Labels)

	return ev, nil
}

// rocAUC computes the area under the ROC curve over predicted
// positive-class probabilities.
func rocAUC(probs []float64, labels []int) float64 {
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return probs[order[a]] < probs[order[b]]
	})

	y := make([]float64, len(order))
	classes := make([]bool, len(order))
	for i, idx := range order {
		y[i] = probs[idx]
		classes[i] = labels[idx] == PositiveClass
	}

	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}
