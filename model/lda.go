package model

import (
	"fmt"
	"math"
	"math/rand"

	log "github.com/golang/glog"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

func init() {
	Register("lda", NewLDA)
}

type LDA struct {
	data     *corpus.Corpus
	alpha    float64 // document-topic mixture hyperparameter
	beta     float64 // topic-word mixture hyperparameter
	topicNum uint32
	tokens   uint32     // total word occurrences, for perplexity
	rng      *rand.Rand // private source, never ambient process state

	wt  *sstable.Uint32Matrix      // word-topic count table
	dt  *sstable.Uint32Matrix      // doc-topic count table
	wts *sstable.Uint32Matrix      // word-topic-sum count table
	dwt map[sstable.DocWord]uint32 // doc-word-topic map
}

// NewLDA creates a LDA instance with collapsed gibbs sampler.
// The corpus must be non-empty and the topic number must not
// exceed the vocabulary size, otherwise the candidate cannot
// be fit and an error is returned.
func NewLDA(dat *corpus.Corpus,
	topicNum uint32, alpha float64, beta float64, seed int64) (Model, error) {
	if dat == nil || dat.DocNum == 0 || dat.VocabSize == 0 {
		return nil, ErrEmptyCorpus
	}
	if topicNum == 0 || topicNum > dat.VocabSize {
		return nil, fmt.Errorf("%w: k=%d, vocabulary %d",
			ErrTooManyTopics, topicNum, dat.VocabSize)
	}
	return &LDA{
		data:     dat,
		alpha:    alpha,
		beta:     beta,
		topicNum: topicNum,
		tokens:   dat.TotalTokens(),
		rng:      rand.New(rand.NewSource(seed)),
		wt:       sstable.NewUint32Matrix(dat.VocabSize, topicNum),
		dt:       sstable.NewUint32Matrix(dat.DocNum, topicNum),
		wts:      sstable.NewUint32Matrix(topicNum, uint32(1)),
		dwt:      make(map[sstable.DocWord]uint32),
	}, nil
}

func (this *LDA) Init() {
	// randomly assign topic to word. documents are visited in id
	// order so the same seed always yields the same assignment
	dw := sstable.DocWord{}
	for doc := uint32(0); doc < this.data.DocNum; doc += 1 {
		for i, w := range corpus.ExpandWords(this.data.Docs[doc]) {
			// sample word topic
			k := uint32(this.rng.Int31n(int32(this.topicNum)))

			// update sufficient statistics
			this.wt.Incr(w, k, uint32(1))
			this.dt.Incr(doc, k, uint32(1))
			this.wts.Incr(k, uint32(0), uint32(1))

			// update doc word topic assignment
			dw.DocId = doc
			dw.WordIdx = uint32(i)
			this.dwt[dw] = k
		}
	}
}

func (this *LDA) Train(iter int) {
	this.Init()
	dw := sstable.DocWord{}
	for iterIdx := 0; iterIdx < iter; iterIdx += 1 {
		if iterIdx%10 == 0 {
			log.V(1).Infof("k %3d iter %5d, likelihood %f",
				this.topicNum, iterIdx, this.Likelihood())
		}

		// collapsed gibbs sampling
		cumsum := make([]float64, this.topicNum)
		for doc := uint32(0); doc < this.data.DocNum; doc += 1 {
			for i, w := range corpus.ExpandWords(this.data.Docs[doc]) {
				// get the current topic of word w
				dw.DocId = doc
				dw.WordIdx = uint32(i)
				k := this.dwt[dw]

				// decrease corresponding sufficient statistics
				this.wt.Decr(w, k, uint32(1))
				this.dt.Decr(doc, k, uint32(1))
				this.wts.Decr(k, uint32(0), uint32(1))

				// resample the topic
				for kidx := uint32(0); kidx < this.topicNum; kidx += 1 {
					docPart := this.alpha + float64(this.dt.Get(doc, kidx))
					wordPart := (this.beta + float64(this.wt.Get(w, kidx))) /
						(float64(this.wts.Get(kidx, uint32(0))) +
							this.beta*float64(this.data.VocabSize))
					if kidx == 0 {
						cumsum[kidx] = docPart * wordPart
					} else {
						cumsum[kidx] = cumsum[kidx-1] + docPart*wordPart
					}
				}
				u := this.rng.Float64() * cumsum[this.topicNum-1]
				for kidx := uint32(0); kidx < this.topicNum; kidx += 1 {
					if u < cumsum[kidx] {
						k = kidx
						break
					}
				}

				// increase corresponding sufficient statistics
				this.wt.Incr(w, k, uint32(1))
				this.dt.Incr(doc, k, uint32(1))
				this.wts.Incr(k, uint32(0), uint32(1))
				this.dwt[dw] = k
			}
		}
	}
}

// infer topics on new documents
func (this *LDA) Infer(iter int) {
	this.Train(iter)
}

// compute the posterior point estimation of word-topic mixture
// beta (Dirichlet prior) + data -> phi
func (this *LDA) Phi() *sstable.Float64Matrix {
	phi := sstable.NewFloat64Matrix(this.data.VocabSize, this.topicNum)

	for k := uint32(0); k < this.topicNum; k += 1 {
		sum := sstable.Uint32VectorSum(this.wt.GetCol(k))

		for v := uint32(0); v < this.data.VocabSize; v += 1 {
			result := (float64(this.wt.Get(v, k)) + this.beta) /
				(float64(sum) + float64(this.data.VocabSize)*this.beta)
			phi.Set(v, k, result)
		}
	}

	return phi
}

// compute the posterior point estimation of document-topic mixture
// alpha (Dirichlet prior) + data -> theta
func (this *LDA) Theta() *sstable.Float64Matrix {
	theta := sstable.NewFloat64Matrix(this.data.DocNum, this.topicNum)

	for d := uint32(0); d < this.data.DocNum; d += 1 {
		sum := sstable.Uint32VectorSum(this.dt.GetRow(d))

		for k := uint32(0); k < this.topicNum; k += 1 {
			result := (float64(this.dt.Get(d, k)) + this.alpha) /
				(float64(sum) + float64(this.topicNum)*this.alpha)
			theta.Set(d, k, result)
		}
	}

	return theta
}

// compute the joint log likelihood of the corpus
func (this *LDA) Likelihood() float64 {
	phi := this.Phi()
	theta := this.Theta()

	sum := float64(0.0)
	for doc := uint32(0); doc < this.data.DocNum; doc += 1 {
		for _, w := range corpus.ExpandWords(this.data.Docs[doc]) {
			topicSum := float64(0.0)
			for k := uint32(0); k < this.topicNum; k += 1 {
				topicSum += phi.Get(w, k) * theta.Get(doc, k)
			}
			sum += math.Log(topicSum)
		}
	}

	return sum
}

// per-token perplexity of the corpus, exp(-likelihood / tokens).
// strictly positive, lower is better
func (this *LDA) Perplexity() float64 {
	if this.tokens == 0 {
		return math.Inf(1)
	}
	return math.Exp(-this.Likelihood() / float64(this.tokens))
}

// serialize word-topic distribution
func (this *LDA) SavePhi(fn string) error {
	return this.Phi().Serialize(fn + ".phi")
}

// serialize document-topic distribution
func (this *LDA) SaveTheta(fn string) error {
	return this.Theta().Serialize(fn + ".theta")
}

// serialize word-topic matrix
func (this *LDA) SaveWordTopic(fn string) error {
	return this.wt.Serialize(fn + ".wt")
}

// deserialize word-topic matrix
func (this *LDA) LoadWordTopic(fn string) error {
	return this.wt.Deserialize(fn + ".wt")
}
