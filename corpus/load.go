package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
)

// columns the input file must carry, matched by header name
var requiredColumns = []string{"id", "review", "sentiment", "split", "rating"}

// LoadCSV reads a labeled review file. The first row must be a
// header naming at least the columns id, review, sentiment, split
// and rating. Malformed rows (wrong field count, unknown sentiment
// or split value, rating outside 1..10, empty text) are skipped
// and counted rather than aborting the whole load.
func LoadCSV(fn string) (docs []Document, skipped int, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field count validated per row below

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("corpus: reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, 0, fmt.Errorf("corpus: missing column %q", name)
		}
	}

	rowIdx := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		rowIdx += 1
		if err != nil {
			log.Warningf("bad row %d: %v", rowIdx, err)
			skipped += 1
			continue
		}
		doc, ok := parseRow(record, cols, rowIdx)
		if !ok {
			skipped += 1
			continue
		}
		doc.Id = uint32(len(docs))
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, skipped, ErrNoDocuments
	}
	log.Infof("loaded %d documents, skipped %d malformed rows", len(docs), skipped)
	return docs, skipped, nil
}

func parseRow(record []string, cols map[string]int, rowIdx int) (Document, bool) {
	for _, name := range requiredColumns {
		if cols[name] >= len(record) {
			log.Warningf("bad row %d: too few fields", rowIdx)
			return Document{}, false
		}
	}

	text := record[cols["review"]]
	if strings.TrimSpace(text) == "" {
		log.Warningf("bad row %d: empty review text", rowIdx)
		return Document{}, false
	}

	sentiment := Sentiment(strings.ToLower(strings.TrimSpace(record[cols["sentiment"]])))
	if sentiment != Positive && sentiment != Negative {
		log.Warningf("bad row %d: unknown sentiment %q", rowIdx, record[cols["sentiment"]])
		return Document{}, false
	}

	split := Split(strings.ToLower(strings.TrimSpace(record[cols["split"]])))
	if split != Train && split != Test {
		log.Warningf("bad row %d: unknown split %q", rowIdx, record[cols["split"]])
		return Document{}, false
	}

	rating, err := strconv.ParseUint(strings.TrimSpace(record[cols["rating"]]), 10, 32)
	if err != nil || rating < 1 || rating > 10 {
		log.Warningf("bad row %d: bad rating %q", rowIdx, record[cols["rating"]])
		return Document{}, false
	}

	return Document{
		RawId:     strings.TrimSpace(record[cols["id"]]),
		Text:      text,
		Sentiment: sentiment,
		Split:     split,
		Rating:    uint32(rating),
	}, true
}
