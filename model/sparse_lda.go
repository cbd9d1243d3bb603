package model

import (
	log "github.com/golang/glog"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

func init() {
	Register("sparselda", NewSparseLDA)
}

type SparseLDA struct {
	*LDA
	wtm *sstable.SortedMap // sparse word-topic count table
}

// NewSparseLDA creates a sparse lda instance with time
// and memory efficient gibbs sampler
func NewSparseLDA(dat *corpus.Corpus,
	topicNum uint32, alpha float64, beta float64, seed int64) (Model, error) {
	base, err := NewLDA(dat, topicNum, alpha, beta, seed)
	if err != nil {
		return nil, err
	}
	return &SparseLDA{
		LDA: base.(*LDA),
		wtm: sstable.NewSortedMap(topicNum),
	}, nil
}

func (this *SparseLDA) Train(iter int) {
	this.Init()
	row, col := this.wt.Shape()
	for r := uint32(0); r < row; r += 1 {
		for c := uint32(0); c < col; c += 1 {
			cnt := this.wt.Get(r, c)
			if cnt > 0 {
				this.wtm.Incr(r, c, cnt)
			}
		}
	}

	dw := sstable.DocWord{}
	vocabBeta := this.beta * float64(this.data.VocabSize)

	// compute smoothing bucket
	smoothingBucket := float64(0.0)
	for k := uint32(0); k < this.topicNum; k += 1 {
		smoothingBucket += (this.alpha * this.beta) /
			(vocabBeta + float64(this.wts.Get(k, uint32(0))))
	}

	// word-topic bucket cache
	wtbCache := make([]float64, this.topicNum)
	for iterIdx := 0; iterIdx < iter; iterIdx += 1 {
		// the dense word-topic table is only synced after training,
		// so no likelihood is reported per iteration here
		if iterIdx%10 == 0 {
			log.V(1).Infof("k %3d sparse iter %5d", this.topicNum, iterIdx)
		}

		// fast sparse gibbs sampling
		for doc := uint32(0); doc < this.data.DocNum; doc += 1 {
			// document-topic bucket
			docTopicBucket := float64(0.0)

			for k := uint32(0); k < this.topicNum; k += 1 {
				denom := vocabBeta + float64(this.wts.Get(k, uint32(0)))
				docTopicBucket += (this.beta * float64(this.dt.Get(doc, k))) / denom
				wtbCache[k] = (this.alpha + float64(this.dt.Get(doc, k))) / denom
			}

			for i, w := range corpus.ExpandWords(this.data.Docs[doc]) {
				// get the current topic of word w
				dw.DocId = doc
				dw.WordIdx = uint32(i)
				k := this.dwt[dw]

				// subtract old value from buckets
				denom := vocabBeta + float64(this.wts.Get(k, uint32(0)))
				smoothingBucket -= (this.alpha * this.beta) / denom
				docTopicBucket -= (this.beta * float64(this.dt.Get(doc, k))) / denom

				// decrease corresponding sufficient statistics
				this.wtm.Decr(w, k, uint32(1))
				this.dt.Decr(doc, k, uint32(1))
				this.wts.Decr(k, uint32(0), uint32(1))

				// update bucket values
				denom = vocabBeta + float64(this.wts.Get(k, uint32(0)))
				smoothingBucket += (this.alpha * this.beta) / denom
				docTopicBucket += (this.beta * float64(this.dt.Get(doc, k))) / denom
				wtbCache[k] = (this.alpha + float64(this.dt.Get(doc, k))) / denom

				// compute word-topic bucket sum
				wtbSum := float64(0.0)
				for idx := range this.wtm.Data[w] {
					tid, count := this.wtm.Get(w, idx)
					wtbSum += wtbCache[tid] * float64(count)
				}

				// resample topic assignment from one of the
				// three buckets
				var cumsum float64
				u := this.rng.Float64() * (wtbSum + docTopicBucket + smoothingBucket)
				if u < wtbSum { // topic-word bucket
					cumsum = 0.0
					for tcIdx := range this.wtm.Data[w] {
						tid, count := this.wtm.Get(w, tcIdx)
						cumsum += wtbCache[tid] * float64(count)
						if cumsum >= u {
							k = tid
							break
						}
					}
				} else if u < wtbSum+docTopicBucket { // doc-topic bucket
					cumsum = 0.0
					u = u - wtbSum
					for kidx := uint32(0); kidx < this.topicNum; kidx += 1 {
						kdenom := vocabBeta + float64(this.wts.Get(kidx, uint32(0)))
						cumsum += (this.beta * float64(this.dt.Get(doc, kidx))) / kdenom
						if cumsum >= u {
							k = kidx
							break
						}
					}
				} else { // smoothing bucket
					cumsum = 0.0
					u = u - wtbSum - docTopicBucket
					for kidx := uint32(0); kidx < this.topicNum; kidx += 1 {
						kdenom := vocabBeta + float64(this.wts.Get(kidx, uint32(0)))
						cumsum += (this.alpha * this.beta) / kdenom
						if cumsum >= u {
							k = kidx
							break
						}
					}
				}

				denom = vocabBeta + float64(this.wts.Get(k, uint32(0)))
				smoothingBucket -= (this.alpha * this.beta) / denom
				docTopicBucket -= (this.beta * float64(this.dt.Get(doc, k))) / denom

				// increase corresponding sufficient statistics
				this.wtm.Incr(w, k, uint32(1))
				this.dt.Incr(doc, k, uint32(1))
				this.wts.Incr(k, uint32(0), uint32(1))
				this.dwt[dw] = k

				// update bucket values
				denom = vocabBeta + float64(this.wts.Get(k, uint32(0)))
				smoothingBucket += (this.alpha * this.beta) / denom
				docTopicBucket += (this.beta * float64(this.dt.Get(doc, k))) / denom
				wtbCache[k] = (this.alpha + float64(this.dt.Get(doc, k))) / denom
			}
		}
	}

	// sync the dense word-topic table with the sparse one so
	// Phi and serialization see the trained counts
	for r := uint32(0); r < row; r += 1 {
		for c := uint32(0); c < col; c += 1 {
			this.wt.Set(r, c, 0)
		}
		for idx := range this.wtm.Data[r] {
			tid, count := this.wtm.Get(r, idx)
			this.wt.Set(r, tid, count)
		}
	}
}

// infer topics on new documents
func (this *SparseLDA) Infer(iter int) {
	this.Train(iter)
}

// serialize word-topic matrix
func (this *SparseLDA) SaveWordTopic(fn string) error {
	return this.wtm.Serialize(fn + ".wt")
}

// deserialize word-topic matrix
func (this *SparseLDA) LoadWordTopic(fn string) error {
	return this.wtm.Deserialize(fn + ".wt")
}
