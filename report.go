package main

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/classifier"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/selector"
	"github.com/lobowicz/topic-model-drivers-movie-review-sentiments/sentiment"
)

func writeCSV(fn string, rows [][]string) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// one row per surviving candidate topic count
func writeSelectionTable(fn string, table []selector.Diagnostics) error {
	rows := [][]string{{"k", "perplexity", "log_likelihood", "umass", "npmi", "caojuan", "deveaud"}}
	for _, d := range table {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(d.K), 10),
			fmtFloat(d.Perplexity),
			fmtFloat(d.LogLikelihood),
			fmtFloat(d.UMass),
			fmtFloat(d.NPMI),
			fmtFloat(d.CaoJuan),
			fmtFloat(d.Deveaud),
		})
	}
	return writeCSV(fn, rows)
}

// one row per (sentiment, topic) pair, topics in the order a
// reader inspects them within each sentiment group
func writeSummary(fn string, s *sentiment.Summary) error {
	rows := [][]string{{"sentiment", "topic", "mean_proportion"}}
	for _, group := range s.Sentiments {
		topics, err := s.Rank(group)
		if err != nil {
			return err
		}
		for _, k := range topics {
			mean, err := s.Mean(group, k)
			if err != nil {
				return err
			}
			rows = append(rows, []string{
				string(group),
				strconv.Itoa(k),
				fmtFloat(mean),
			})
		}
	}
	return writeCSV(fn, rows)
}

// one row per topic with its space separated top terms
func writeTopTerms(fn string, terms []sentiment.TopicTerms) error {
	rows := [][]string{{"topic", "terms"}}
	for _, tt := range terms {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(tt.Topic), 10),
			strings.Join(tt.Terms, " "),
		})
	}
	return writeCSV(fn, rows)
}

// one row per held-out document
func writePredictions(fn string, ev *classifier.Evaluation) error {
	rows := [][]string{{"id", "probability", "predicted"}}
	for i, id := range ev.Ids {
		label := "negative"
		if ev.Predicted[i] == classifier.PositiveClass {
			label = "positive"
		}
		rows = append(rows, []string{id, fmtFloat(ev.Probs[i]), label})
	}
	return writeCSV(fn, rows)
}
