package textcmp

import (
	"math"

	"github.com/verte-zerg/recite/internal/model"
)

// Score compares the attempt to the reference word-by-word at fixed
// positions. There is no realignment: an inserted or dropped word shifts
// every later position.
func Score(reference, attempt string, opts model.Options) model.Stats {
	refWords := SplitWords(Normalize(reference, opts))
	attWords := SplitWords(Normalize(attempt, opts))

	limit := len(refWords)
	if len(attWords) < limit {
		limit = len(attWords)
	}
	correct := 0
	for i := 0; i < limit; i++ {
		if refWords[i] == attWords[i] {
			correct++
		}
	}

	divisor := len(refWords)
	if divisor < 1 {
		divisor = 1
	}
	accuracy := int(math.Round(float64(correct) / float64(divisor) * 100))
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 100 {
		accuracy = 100
	}

	return model.Stats{
		Accuracy:   accuracy,
		WordsTyped: len(attWords),
		TotalWords: len(refWords),
	}
}
