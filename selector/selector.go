// Package selector fits one topic model per candidate topic count,
// scores each candidate with label-free diagnostics and picks a
// single topic count by the coherence-peak policy.
package selector

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	log "github.com/golang/glog"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/model"
)

var (
	ErrNoCandidates = errors.New("selector: no candidate topic counts")
	ErrAllFailed    = errors.New("selector: all candidates disqualified")
)

// Config controls the candidate sweep.
type Config struct {
	Candidates []uint32 // topic counts to evaluate
	Alpha      float64  // document-topic prior
	Beta       float64  // topic-word prior
	Iterations int      // gibbs sampling iterations per fit
	Seed       int64    // threaded into every fit, never ambient
	Sampler    string   // registered sampler name, default "lda"
	TopTermLen int      // terms per topic used by coherence, default 10
	Epsilon    float64  // near-tie margin for parsimony, default 0.02
}

// Diagnostics is one row of the selection table.
type Diagnostics struct {
	K             uint32
	Perplexity    float64
	LogLikelihood float64
	UMass         float64 // higher is better
	NPMI          float64 // higher is better
	CaoJuan       float64 // mean inter-topic cosine similarity, lower is better
	Deveaud       float64 // mean inter-topic divergence, higher is better
}

// Result is the full diagnostic table plus the chosen candidate.
type Result struct {
	Table   []Diagnostics // surviving candidates, ascending K
	ChosenK uint32
	Model   model.Model // the fitted model for ChosenK
}

type fit struct {
	k    uint32
	m    model.Model
	diag Diagnostics
	err  error
}

// Run fits every candidate independently and in parallel. Each fit
// is a pure function of the document-term table and the seed, so no
// coordination beyond the final join is needed. A candidate that
// cannot be fit is dropped from the table and logged, not fatal;
// only an empty table aborts the run.
func Run(data *corpus.Corpus, cfg Config) (*Result, error) {
	if len(cfg.Candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if cfg.Sampler == "" {
		cfg.Sampler = "lda"
	}
	if cfg.TopTermLen <= 0 {
		cfg.TopTermLen = 10
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = 0.02
	}
	ctor, err := model.GetModel(cfg.Sampler)
	if err != nil {
		return nil, err
	}

	fits := make([]fit, len(cfg.Candidates))
	var wg sync.WaitGroup
	for i, k := range cfg.Candidates {
		wg.Add(1)
		go func(i int, k uint32) {
			defer wg.Done()
			fits[i] = fitCandidate(data, ctor, k, cfg)
		}(i, k)
	}
	wg.Wait()

	var table []Diagnostics
	models := make(map[uint32]model.Model)
	for _, f := range fits {
		if f.err != nil {
			log.Warningf("candidate k=%d disqualified: %v", f.k, f.err)
			continue
		}
		table = append(table, f.diag)
		models[f.k] = f.m
	}
	if len(table) == 0 {
		return nil, ErrAllFailed
	}
	sort.Slice(table, func(i, j int) bool { return table[i].K < table[j].K })

	for _, d := range table {
		log.Infof("k %3d perplexity %.4f likelihood %.4f umass %.4f npmi %.4f caojuan %.4f deveaud %.4f",
			d.K, d.Perplexity, d.LogLikelihood, d.UMass, d.NPMI, d.CaoJuan, d.Deveaud)
	}

	chosen := chooseK(table, cfg.Epsilon)
	log.Infof("chosen topic count %d", chosen)

	return &Result{
		Table:   table,
		ChosenK: chosen,
		Model:   models[chosen],
	}, nil
}

func fitCandidate(data *corpus.Corpus, ctor model.ModelCtor, k uint32, cfg Config) fit {
	m, err := ctor(data, k, cfg.Alpha, cfg.Beta, cfg.Seed)
	if err != nil {
		return fit{k: k, err: err}
	}
	m.Train(cfg.Iterations)

	diag := Diagnostics{
		K:             k,
		Perplexity:    m.Perplexity(),
		LogLikelihood: m.Likelihood(),
	}
	if math.IsNaN(diag.Perplexity) || math.IsInf(diag.Perplexity, 0) {
		return fit{k: k, err: fmt.Errorf("selector: perplexity did not converge for k=%d", k)}
	}

	phi := m.Phi()
	tops := topTermIds(phi, cfg.TopTermLen)
	stats := newTermStats(data, tops)
	diag.UMass = umassCoherence(tops, stats)
	diag.NPMI = npmiCoherence(tops, stats)
	diag.CaoJuan = caoJuanSimilarity(phi)
	diag.Deveaud = deveaudDivergence(phi)

	return fit{k: k, m: m, diag: diag}
}
