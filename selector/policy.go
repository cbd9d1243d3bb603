package selector

// chooseK picks the topic count whose coherence diagnostics
// collectively peak. Perplexity and log-likelihood move
// monotonically with k and would trivially favor the largest
// candidate, so they are sanity checks only and never enter the
// score. Each coherence metric is min-max normalized across the
// table and oriented so larger is better, then the four are
// averaged into a composite. When a smaller k scores within eps of
// the best composite, the smaller k wins (parsimony).
//
// The table must be non-empty and sorted ascending by K; the
// returned value is always one of the table's K entries.
func chooseK(table []Diagnostics, eps float64) uint32 {
	if len(table) == 1 {
		return table[0].K
	}

	umass := make([]float64, len(table))
	npmi := make([]float64, len(table))
	caojuan := make([]float64, len(table))
	deveaud := make([]float64, len(table))
	for i, d := range table {
		umass[i] = d.UMass
		npmi[i] = d.NPMI
		caojuan[i] = -d.CaoJuan // lower similarity is better
		deveaud[i] = d.Deveaud
	}

	composite := make([]float64, len(table))
	for _, metric := range [][]float64{umass, npmi, caojuan, deveaud} {
		for i, v := range normalize(metric) {
			composite[i] += v / 4
		}
	}

	best := 0
	for i := range composite {
		if composite[i] > composite[best] {
			best = i
		}
	}
	// prefer the smallest k whose composite is within eps of the peak
	for i := range composite {
		if composite[i] >= composite[best]-eps {
			return table[i].K
		}
	}
	return table[best].K
}

// normalize maps values to [0, 1] by min-max scaling. A metric
// that does not vary across candidates carries no preference and
// maps to a constant 0.5.
func normalize(vals []float64) []float64 {
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(vals))
	if hi == lo {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range vals {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}
