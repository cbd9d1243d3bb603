package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewDocs() []Document {
	return []Document{
		{RawId: "r1", Text: "brilliant acting and brilliant directing", Sentiment: Positive, Split: Train, Rating: 9},
		{RawId: "r2", Text: "the acting was dreadful", Sentiment: Negative, Split: Train, Rating: 2},
		{RawId: "r3", Text: "dreadful plot, brilliant cast", Sentiment: Negative, Split: Test, Rating: 3},
	}
}

func TestBuildVocabulary(t *testing.T) {
	c, err := Build(reviewDocs(), Options{MinTokenLen: 3, MinDocFreq: 2})
	require.NoError(t, err)

	// only terms present in at least two documents survive;
	// "directing", "plot" and "cast" appear once, "the", "and"
	// and "was" are stop words
	assert.Equal(t, []string{"acting", "brilliant", "dreadful"}, c.Vocab)
	assert.Equal(t, uint32(3), c.VocabSize)
	assert.Equal(t, uint32(3), c.DocNum)
}

func TestBuildCounts(t *testing.T) {
	c, err := Build(reviewDocs(), Options{MinTokenLen: 3, MinDocFreq: 2})
	require.NoError(t, err)

	// doc 0: acting x1, brilliant x2
	require.Len(t, c.Docs[0], 2)
	assert.Equal(t, uint32(0), c.Docs[0][0].WordId) // acting
	assert.Equal(t, uint32(1), c.Docs[0][0].Count)
	assert.Equal(t, uint32(1), c.Docs[0][1].WordId) // brilliant
	assert.Equal(t, uint32(2), c.Docs[0][1].Count)

	assert.Equal(t, uint32(7), c.TotalTokens())
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(reviewDocs(), Options{MinTokenLen: 3, MinDocFreq: 2})
	require.NoError(t, err)
	b, err := Build(reviewDocs(), Options{MinTokenLen: 3, MinDocFreq: 2})
	require.NoError(t, err)

	assert.Equal(t, a.Vocab, b.Vocab)
	assert.Equal(t, a.Docs, b.Docs)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoDocuments)

	_, err = Build([]Document{{Text: "the and was"}}, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyVocab)
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestLoadCSV(t *testing.T) {
	fn := writeTempCSV(t, `id,review,sentiment,split,rating
r1,"an instant classic, wonderful",positive,train,9
r2,utterly forgettable,negative,test,2
r3,decent enough,neutral,train,5
r4,,positive,train,8
r5,fine picture,positive,nowhere,7
r6,good watch,positive,train,0
r7,solid thriller,positive,train,8
`)

	docs, skipped, err := LoadCSV(fn)
	require.NoError(t, err)

	// r3 has an unknown sentiment, r4 an empty review, r5 an
	// unknown split and r6 a rating outside 1..10
	assert.Equal(t, 4, skipped)
	require.Len(t, docs, 3)

	assert.Equal(t, "r1", docs[0].RawId)
	assert.Equal(t, uint32(0), docs[0].Id)
	assert.Equal(t, Positive, docs[0].Sentiment)
	assert.Equal(t, Train, docs[0].Split)
	assert.Equal(t, uint32(9), docs[0].Rating)

	assert.Equal(t, "r2", docs[1].RawId)
	assert.Equal(t, Negative, docs[1].Sentiment)
	assert.Equal(t, Test, docs[1].Split)

	assert.Equal(t, "r7", docs[2].RawId)
	assert.Equal(t, uint32(2), docs[2].Id)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	fn := writeTempCSV(t, "id,review,sentiment\nr1,fine,positive\n")

	_, _, err := LoadCSV(fn)
	assert.ErrorContains(t, err, "missing column")
}

func TestLoadCSVAllMalformed(t *testing.T) {
	fn := writeTempCSV(t, "id,review,sentiment,split,rating\nr1,fine,meh,train,5\n")

	_, skipped, err := LoadCSV(fn)
	assert.ErrorIs(t, err, ErrNoDocuments)
	assert.Equal(t, 1, skipped)
}
