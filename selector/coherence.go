package selector

import (
	"math"
	"sort"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sstable"
)

// smoothing constant for the co-occurrence ratios
const epsilonSmooth = 1.0

// topTermIds returns the n highest-probability term ids per topic,
// descending by weight. Ties break on the smaller term id so the
// ranking is deterministic.
func topTermIds(phi *sstable.Float64Matrix, n int) [][]uint32 {
	vocab, topics := phi.Shape()
	if n > int(vocab) {
		n = int(vocab)
	}

	tops := make([][]uint32, topics)
	for k := uint32(0); k < topics; k += 1 {
		ids := make([]uint32, vocab)
		for v := uint32(0); v < vocab; v += 1 {
			ids[v] = v
		}
		sort.Slice(ids, func(i, j int) bool {
			wi, wj := phi.Get(ids[i], k), phi.Get(ids[j], k)
			if wi != wj {
				return wi > wj
			}
			return ids[i] < ids[j]
		})
		tops[k] = ids[:n]
	}
	return tops
}

// termStats holds document-frequency counts for the terms that
// appear in any topic's top list
type termStats struct {
	docs map[uint32]map[uint32]struct{} // term id -> set of doc ids
	n    int                            // total document count
}

func newTermStats(data *corpus.Corpus, tops [][]uint32) *termStats {
	wanted := make(map[uint32]struct{})
	for _, terms := range tops {
		for _, w := range terms {
			wanted[w] = struct{}{}
		}
	}

	s := &termStats{
		docs: make(map[uint32]map[uint32]struct{}, len(wanted)),
		n:    int(data.DocNum),
	}
	for doc, wcs := range data.Docs {
		for _, wc := range wcs {
			if _, ok := wanted[wc.WordId]; !ok {
				continue
			}
			if s.docs[wc.WordId] == nil {
				s.docs[wc.WordId] = make(map[uint32]struct{})
			}
			s.docs[wc.WordId][doc] = struct{}{}
		}
	}
	return s
}

func (s *termStats) df(w uint32) int {
	return len(s.docs[w])
}

func (s *termStats) codf(a, b uint32) int {
	da, db := s.docs[a], s.docs[b]
	if len(da) > len(db) {
		da, db = db, da
	}
	n := 0
	for doc := range da {
		if _, ok := db[doc]; ok {
			n += 1
		}
	}
	return n
}

// umassCoherence scores how often a topic's top terms co-occur
// with its higher-ranked terms: mean over ordered pairs of
// log((D(wi,wj)+1)/D(wj)). Higher (closer to zero) is better.
func umassCoherence(tops [][]uint32, stats *termStats) float64 {
	total, pairs := 0.0, 0
	for _, terms := range tops {
		for i := 1; i < len(terms); i += 1 {
			for j := 0; j < i; j += 1 {
				dj := stats.df(terms[j])
				if dj == 0 {
					continue
				}
				total += math.Log(float64(stats.codf(terms[i], terms[j])+1) / float64(dj))
				pairs += 1
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

// npmiCoherence is the mean normalized pointwise mutual information
// over unordered pairs of a topic's top terms, smoothed so unseen
// pairs do not blow up. Ranges over [-1, 1], higher is better.
func npmiCoherence(tops [][]uint32, stats *termStats) float64 {
	n := float64(stats.n)
	total, pairs := 0.0, 0
	for _, terms := range tops {
		for i := 0; i < len(terms); i += 1 {
			for j := i + 1; j < len(terms); j += 1 {
				nab := float64(stats.codf(terms[i], terms[j]))
				na := float64(stats.df(terms[i]))
				nb := float64(stats.df(terms[j]))

				pmi := math.Log((nab + epsilonSmooth) * n /
					((na + epsilonSmooth) * (nb + epsilonSmooth)))
				denom := -math.Log((nab + epsilonSmooth) / n)
				if denom <= 0 {
					continue
				}
				total += pmi / denom
				pairs += 1
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

// caoJuanSimilarity is the mean pairwise cosine similarity between
// topic term distributions. Well separated topics score low, so
// lower is better.
func caoJuanSimilarity(phi *sstable.Float64Matrix) float64 {
	_, topics := phi.Shape()
	if topics < 2 {
		return 0
	}

	total, pairs := 0.0, 0
	for a := uint32(0); a < topics; a += 1 {
		pa := phi.GetCol(a)
		for b := a + 1; b < topics; b += 1 {
			pb := phi.GetCol(b)
			total += cosine(pa, pb)
			pairs += 1
		}
	}
	return total / float64(pairs)
}

// deveaudDivergence is the mean pairwise symmetric KL divergence
// between topic term distributions. Higher means the topics are
// further apart, so higher is better.
func deveaudDivergence(phi *sstable.Float64Matrix) float64 {
	_, topics := phi.Shape()
	if topics < 2 {
		return 0
	}

	total, pairs := 0.0, 0
	for a := uint32(0); a < topics; a += 1 {
		pa := phi.GetCol(a)
		for b := a + 1; b < topics; b += 1 {
			pb := phi.GetCol(b)
			total += 0.5*klDivergence(pa, pb) + 0.5*klDivergence(pb, pa)
			pairs += 1
		}
	}
	return total / float64(pairs)
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// klDivergence assumes strictly positive entries, which the
// Dirichlet-smoothed phi estimates guarantee
func klDivergence(p, q []float64) float64 {
	var sum float64
	for i := range p {
		sum += p[i] * math.Log(p[i]/q[i])
	}
	return sum
}
