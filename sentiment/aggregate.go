// Package sentiment joins the chosen model's per-document topic
// proportions to the ground-truth sentiment labels and surfaces the
// per-topic term lists a human needs to label topics.
package sentiment

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

var (
	ErrDocMismatch   = errors.New("sentiment: theta rows do not match documents")
	ErrVocabMismatch = errors.New("sentiment: phi rows do not match vocabulary")
	ErrUnknownGroup  = errors.New("sentiment: no such sentiment group")
)

// Summary is the dense (sentiment, topic) mean-proportion table.
// Rows are sentiment groups in lexicographic order, columns are
// topics. Since every theta row sums to one, so does every row of
// the table.
type Summary struct {
	Sentiments []corpus.Sentiment
	TopicNum   int
	means      *mat.Dense // len(Sentiments) x TopicNum
}

// Aggregate computes the mean topic proportion per sentiment group.
// The output depends only on theta and the labels, so running it
// twice yields identical tables.
func Aggregate(theta *sstable.Float64Matrix, docs []corpus.Document) (*Summary, error) {
	nrow, ncol := theta.Shape()
	if int(nrow) != len(docs) || len(docs) == 0 {
		return nil, ErrDocMismatch
	}

	sums := make(map[corpus.Sentiment][]float64)
	counts := make(map[corpus.Sentiment]int)
	for d, doc := range docs {
		if sums[doc.Sentiment] == nil {
			sums[doc.Sentiment] = make([]float64, ncol)
		}
		row := theta.GetRow(uint32(d))
		for k, v := range row {
			sums[doc.Sentiment][k] += v
		}
		counts[doc.Sentiment] += 1
	}

	groups := make([]corpus.Sentiment, 0, len(sums))
	for s := range sums {
		groups = append(groups, s)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

	means := mat.NewDense(len(groups), int(ncol), nil)
	for i, s := range groups {
		for k := 0; k < int(ncol); k += 1 {
			means.Set(i, k, sums[s][k]/float64(counts[s]))
		}
	}

	return &Summary{
		Sentiments: groups,
		TopicNum:   int(ncol),
		means:      means,
	}, nil
}

// Mean returns the mean proportion of topic k within the group.
func (s *Summary) Mean(group corpus.Sentiment, k int) (float64, error) {
	for i, g := range s.Sentiments {
		if g == group {
			return s.means.At(i, k), nil
		}
	}
	return 0, ErrUnknownGroup
}

// Rank returns the group's topic indices in descending order of
// mean proportion, the order a reader inspects them in.
func (s *Summary) Rank(group corpus.Sentiment) ([]int, error) {
	row := -1
	for i, g := range s.Sentiments {
		if g == group {
			row = i
			break
		}
	}
	if row == -1 {
		return nil, ErrUnknownGroup
	}

	topics := make([]int, s.TopicNum)
	for k := range topics {
		topics[k] = k
	}
	sort.Slice(topics, func(i, j int) bool {
		mi, mj := s.means.At(row, topics[i]), s.means.At(row, topics[j])
		if mi != mj {
			return mi > mj
		}
		return topics[i] < topics[j]
	})
	return topics, nil
}

// TopicTerms is the ranked term list a human reads to assign a
// topic its short label. Label synthesis itself stays manual.
type TopicTerms struct {
	Topic   uint32
	Terms   []string
	Weights []float64
}

// TopTerms surfaces the n highest-probability terms of every topic,
// descending by weight with term-id tie breaking.
func TopTerms(phi *sstable.Float64Matrix, vocab []string, n int) ([]TopicTerms, error) {
	nrow, topics := phi.Shape()
	if int(nrow) != len(vocab) || len(vocab) == 0 {
		return nil, ErrVocabMismatch
	}
	if n > len(vocab) {
		n = len(vocab)
	}

	out := make([]TopicTerms, topics)
	for k := uint32(0); k < topics; k += 1 {
		ids := make([]int, len(vocab))
		for v := range ids {
			ids[v] = v
		}
		sort.Slice(ids, func(i, j int) bool {
			wi, wj := phi.Get(uint32(ids[i]), k), phi.Get(uint32(ids[j]), k)
			if wi != wj {
				return wi > wj
			}
			return ids[i] < ids[j]
		})

		tt := TopicTerms{Topic: k}
		for _, v := range ids[:n] {
			tt.Terms = append(tt.Terms, vocab[v])
			tt.Weights = append(tt.Weights, phi.Get(uint32(v), k))
		}
		out[k] = tt
	}
	return out, nil
}
