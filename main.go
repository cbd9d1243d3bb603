package main

import (
	"flag"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/classifier"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/corpus"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/selector"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sentiment"
)

var (
	input        = flag.String("input_file", "", "labeled movie review csv")
	samplerType  = flag.String("model", "lda", "sampler type")
	alpha        = flag.Float64("alpha", 0.1, "document-topic mixture hyperparameter")
	beta         = flag.Float64("beta", 0.01, "topic-word mixture hyperparameter")
	candidates   = flag.String("k", "5,10,15", "comma separated candidate topic counts")
	iteration    = flag.Int("iter", 200, "number of gibbs sampling iterations per fit")
	seed         = flag.Int64("seed", 42, "random seed threaded into every fit")
	topTerms     = flag.Int("top_terms", 10, "terms listed per topic for labeling")
	minTokenLen  = flag.Int("min_token_len", 3, "drop tokens shorter than this")
	minDocFreq   = flag.Int("min_doc_freq", 5, "drop terms in fewer documents than this")
	testFrac     = flag.Float64("test_frac", 0.2, "held-out fraction for the classifier")
	boostRounds  = flag.Int("boost_rounds", 100, "gradient boosting rounds")
	learnRate    = flag.Float64("learn_rate", 0.1, "gradient boosting shrinkage")
	outputPrefix = flag.String("output_prefix", "sentiment", "prefix for output files")
)

func main() {
	flag.Parse()
	defer log.Flush()

	if *input == "" {
		log.Exit("input_file is required")
	}

	// load and prepare the corpus
	docs, _, err := corpus.LoadCSV(*input)
	if err != nil {
		log.Exitf("loading corpus: %v", err)
	}
	data, err := corpus.Build(docs, corpus.Options{
		MinTokenLen: *minTokenLen,
		MinDocFreq:  *minDocFreq,
	})
	if err != nil {
		log.Exitf("building document-term table: %v", err)
	}

	// sweep candidate topic counts and pick one
	res, err := selector.Run(data, selector.Config{
		Candidates: parseCandidates(*candidates),
		Alpha:      *alpha,
		Beta:       *beta,
		Iterations: *iteration,
		Seed:       *seed,
		Sampler:    *samplerType,
		TopTermLen: *topTerms,
	})
	if err != nil {
		log.Exitf("selecting topic count: %v", err)
	}
	if err := writeSelectionTable(*outputPrefix+".selection.csv", res.Table); err != nil {
		log.Exitf("writing selection table: %v", err)
	}

	// aggregate topic proportions by sentiment and surface the
	// term lists used for manual topic labeling
	theta := res.Model.Theta()
	summary, err := sentiment.Aggregate(theta, data.Documents)
	if err != nil {
		log.Exitf("aggregating by sentiment: %v", err)
	}
	if err := writeSummary(*outputPrefix+".topic_sentiment.csv", summary); err != nil {
		log.Exitf("writing sentiment summary: %v", err)
	}
	terms, err := sentiment.TopTerms(res.Model.Phi(), data.Vocab, *topTerms)
	if err != nil {
		log.Exitf("ranking topic terms: %v", err)
	}
	if err := writeTopTerms(*outputPrefix+".topic_terms.csv", terms); err != nil {
		log.Exitf("writing topic terms: %v", err)
	}

	// train and evaluate the sentiment classifier on the chosen
	// model's topic proportions
	ds, err := classifier.NewDataset(theta, data.Documents)
	if err != nil {
		log.Exitf("building classifier dataset: %v", err)
	}
	trainIdx, testIdx, err := classifier.StratifiedSplit(ds.Labels, *testFrac, *seed)
	if err != nil {
		log.Exitf("splitting dataset: %v", err)
	}
	gbm, err := classifier.Train(ds.Subset(trainIdx), classifier.Config{
		Rounds:    *boostRounds,
		LearnRate: *learnRate,
	})
	if err != nil {
		log.Exitf("training classifier: %v", err)
	}
	ev, err := classifier.Evaluate(gbm, ds.Subset(testIdx))
	if err != nil {
		log.Exitf("evaluating classifier: %v", err)
	}
	if err := writePredictions(*outputPrefix+".predictions.csv", ev); err != nil {
		log.Exitf("writing predictions: %v", err)
	}
	log.Infof("held-out accuracy %.4f auc %.4f", ev.Accuracy, ev.AUC)
	log.Infof("confusion tn %d fp %d fn %d tp %d",
		ev.Confusion[0][0], ev.Confusion[0][1],
		ev.Confusion[1][0], ev.Confusion[1][1])

	// persist the chosen model's distributions
	if err := res.Model.SavePhi(*outputPrefix); err != nil {
		log.Exitf("saving phi: %v", err)
	}
	if err := res.Model.SaveTheta(*outputPrefix); err != nil {
		log.Exitf("saving theta: %v", err)
	}
}

func parseCandidates(s string) []uint32 {
	var ks []uint32
	for _, part := range strings.Split(s, ",") {
		k, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || k == 0 {
			log.Exitf("bad candidate topic count %q", part)
		}
		ks = append(ks, uint32(k))
	}
	return ks
}
