package corpus

import (
	"errors"
	"sort"

	log "github.com/golang/glog"
)

var (
	ErrNoDocuments = errors.New("corpus: no documents")
	ErrEmptyVocab  = errors.New("corpus: no terms survived filtering")
)

// Sentiment is the ground-truth polarity label of a review.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
)

// Split is the train/test tag carried by the input file.
type Split string

const (
	Train Split = "train"
	Test  Split = "test"
)

// Document is one labeled movie review, immutable once loaded.
type Document struct {
	Id        uint32 // dense row index assigned at load time
	RawId     string // identifier from the input file
	Text      string
	Sentiment Sentiment
	Split     Split
	Rating    uint32 // star rating in 1..10
}

type WordCount struct {
	WordId uint32
	Count  uint32
}

// Corpus holds the sparse document-term count table together with
// the vocabulary and the per-document metadata. It is built once
// and never mutated afterwards.
type Corpus struct {
	VocabSize uint32
	DocNum    uint32
	Docs      map[uint32][]*WordCount
	Vocab     []string   // term id -> term
	Documents []Document // indexed by Document.Id
}

// Options controls tokenization and vocabulary pruning.
type Options struct {
	MinTokenLen int // drop tokens shorter than this
	MinDocFreq  int // drop terms appearing in fewer documents
}

func DefaultOptions() Options {
	return Options{
		MinTokenLen: 3,
		MinDocFreq:  2,
	}
}

// ExpandWords flattens word counts into one entry per occurrence.
func ExpandWords(wcs []*WordCount) []uint32 {
	var words []uint32
	for _, wc := range wcs {
		for i := uint32(0); i < wc.Count; i += 1 {
			words = append(words, wc.WordId)
		}
	}
	return words
}

// TotalTokens returns the number of word occurrences in the table.
func (c *Corpus) TotalTokens() uint32 {
	total := uint32(0)
	for _, wcs := range c.Docs {
		for _, wc := range wcs {
			total += wc.Count
		}
	}
	return total
}

// Build tokenizes the documents and constructs the document-term
// count table. Terms below the document-frequency cutoff and stop
// words are discarded. Word ids are assigned in lexicographic term
// order so the same documents always produce the same table.
func Build(docs []Document, opts Options) (*Corpus, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	if opts.MinTokenLen <= 0 {
		opts.MinTokenLen = DefaultOptions().MinTokenLen
	}
	if opts.MinDocFreq <= 0 {
		opts.MinDocFreq = DefaultOptions().MinDocFreq
	}

	// tokenize each document and accumulate document frequencies
	docTokens := make([]map[string]uint32, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		counts := make(map[string]uint32)
		for _, tok := range Tokenize(doc.Text) {
			if len(tok) < opts.MinTokenLen || isStopword(tok) {
				continue
			}
			counts[tok] += 1
		}
		for term := range counts {
			df[term] += 1
		}
		docTokens[i] = counts
	}

	// prune rare terms and fix the term id assignment
	var vocab []string
	for term, n := range df {
		if n >= opts.MinDocFreq {
			vocab = append(vocab, term)
		}
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyVocab
	}
	sort.Strings(vocab)

	wordIds := make(map[string]uint32, len(vocab))
	for id, term := range vocab {
		wordIds[term] = uint32(id)
	}

	c := &Corpus{
		VocabSize: uint32(len(vocab)),
		DocNum:    uint32(len(docs)),
		Docs:      make(map[uint32][]*WordCount, len(docs)),
		Vocab:     vocab,
		Documents: make([]Document, len(docs)),
	}
	for i, doc := range docs {
		doc.Id = uint32(i)
		c.Documents[i] = doc

		terms := make([]string, 0, len(docTokens[i]))
		for term := range docTokens[i] {
			if _, ok := wordIds[term]; ok {
				terms = append(terms, term)
			}
		}
		sort.Strings(terms)

		wcs := make([]*WordCount, 0, len(terms))
		for _, term := range terms {
			wcs = append(wcs, &WordCount{
				WordId: wordIds[term],
				Count:  docTokens[i][term],
			})
		}
		c.Docs[uint32(i)] = wcs
	}

	log.Infof("number of documents %d", c.DocNum)
	log.Infof("vocabulary size %d", c.VocabSize)

	return c, nil
}
