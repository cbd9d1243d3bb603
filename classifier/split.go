package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

var (
	ErrBadTestFraction = errors.New("classifier: test fraction must be in (0, 1)")
	ErrClassImbalance  = errors.New("classifier: class too small for stratified split")
)

// StratifiedSplit partitions row indices into train and held-out
// sets, shuffling within each class so both sides preserve the
// label balance. Every class contributes at least one row to each
// side, so a class with fewer than two rows is an error.
func StratifiedSplit(labels []int, testFrac float64, seed int64) (trainIdx, testIdx []int, err error) {
	if testFrac <= 0 || testFrac >= 1 {
		return nil, nil, ErrBadTestFraction
	}

	byClass := make(map[int][]int)
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}
	classes := make([]int, 0, len(byClass))
	for y := range byClass {
		classes = append(classes, y)
	}
	sort.Ints(classes)

	rng := rand.New(rand.NewSource(seed))
	for _, y := range classes {
		rows := byClass[y]
		if len(rows) < 2 {
			return nil, nil, fmt.Errorf("%w: class %d has %d rows",
				ErrClassImbalance, y, len(rows))
		}
		rng.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})

		nTest := int(math.Round(testFrac * float64(len(rows))))
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(rows) {
			nTest = len(rows) - 1
		}
		testIdx = append(testIdx, rows[:nTest]...)
		trainIdx = append(trainIdx, rows[nTest:]...)
	}

	sort.Ints(trainIdx)
	sort.Ints(testIdx)
	return trainIdx, testIdx, nil
}
