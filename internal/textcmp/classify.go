package textcmp

import "github.com/verte-zerg/recite/internal/model"

// Classify labels every raw reference word against the attempt word at the
// same position. Display words keep their original punctuation and case
// regardless of the normalization options.
func Classify(reference, attempt string, opts model.Options) []model.WordMark {
	rawWords := SplitWords(reference)
	refWords := SplitWords(Normalize(reference, opts))
	attWords := SplitWords(Normalize(attempt, opts))

	marks := make([]model.WordMark, len(rawWords))
	for i, raw := range rawWords {
		state := model.WordPending
		if i < len(attWords) && attWords[i] != "" {
			if i < len(refWords) && refWords[i] == attWords[i] {
				state = model.WordMatched
			} else {
				state = model.WordMismatched
			}
		}
		marks[i] = model.WordMark{Word: raw, State: state}
	}
	return marks
}
