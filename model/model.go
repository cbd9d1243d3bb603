package model

import (
	"errors"
	"fmt"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

var (
	ErrEmptyCorpus   = errors.New("model: empty corpus")
	ErrTooManyTopics = errors.New("model: topic count exceeds vocabulary size")
)

var constructors = make(map[string]ModelCtor)

// the common interface seeded LDA samplers should follow
type Model interface {
	// train model for iter iterations
	Train(iter int)
	// do inference for new docs for iter iterations
	Infer(iter int)
	// posterior word-topic distribution, vocab x topics,
	// each column sums to one
	Phi() *sstable.Float64Matrix
	// posterior doc-topic distribution, docs x topics,
	// each row sums to one
	Theta() *sstable.Float64Matrix
	// joint log likelihood of the corpus under the model
	Likelihood() float64
	// per-token perplexity of the corpus under the model
	Perplexity() float64
	// serialize posterior document topic distribution
	SaveTheta(fn string) error
	// serialize posterior word topic distribution
	SavePhi(fn string) error
	// serialize word topic count table
	SaveWordTopic(fn string) error
	// deserialize word topic count table
	LoadWordTopic(fn string) error
}

// new LDA samplers should register themselves using this function
func Register(modelType string, m ModelCtor) {
	constructors[modelType] = m
}

// ModelCtor builds a sampler over the given document-term table.
// The seed is threaded explicitly so independent fits stay
// reproducible without shared random state.
type ModelCtor func(dat *corpus.Corpus, topicNum uint32, alpha, beta float64, seed int64) (Model, error)

func GetModel(modelType string) (ModelCtor, error) {
	if _, ok := constructors[modelType]; !ok {
		return nil, fmt.Errorf("model %s not registered", modelType)
	}
	return constructors[modelType], nil
}
