// Package classifier trains a gradient-boosted stump ensemble on
// topic-proportion feature vectors to predict review sentiment, and
// evaluates it on a held-out stratified split only.
package classifier

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

var ErrDocMismatch = errors.New("classifier: theta rows do not match documents")

// class encoding: negative -> 0, positive -> 1
const (
	NegativeClass = 0
	PositiveClass = 1
)

// Dataset pairs each document's topic-proportion vector with its
// binary sentiment label.
type Dataset struct {
	Features *mat.Dense // docs x topics
	Labels   []int
	Ids      []string // raw document ids, aligned with rows
}

// NewDataset builds the feature table from the chosen model's theta.
func NewDataset(theta *sstable.Float64Matrix, docs []corpus.Document) (*Dataset, error) {
	nrow, _ := theta.Shape()
	if int(nrow) != len(docs) || len(docs) == 0 {
		return nil, ErrDocMismatch
	}

	ds := &Dataset{
		Features: theta.Dense(),
		Labels:   make([]int, len(docs)),
		Ids:      make([]string, len(docs)),
	}
	for i, doc := range docs {
		if doc.Sentiment == corpus.Positive {
			ds.Labels[i] = PositiveClass
		} else {
			ds.Labels[i] = NegativeClass
		}
		ds.Ids[i] = doc.RawId
	}
	return ds, nil
}

// Subset returns the rows of the dataset at the given indices.
func (ds *Dataset) Subset(idx []int) *Dataset {
	_, ncol := ds.Features.Dims()
	sub := &Dataset{
		Features: mat.NewDense(len(idx), ncol, nil),
		Labels:   make([]int, len(idx)),
		Ids:      make([]string, len(idx)),
	}
	for i, row := range idx {
		sub.Features.SetRow(i, mat.Row(nil, row, ds.Features))
		sub.Labels[i] = ds.Labels[row]
		sub.Ids[i] = ds.Ids[row]
	}
	return sub
}
