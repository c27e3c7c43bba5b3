package dialog

import (
	"strings"
	"unicode/utf8"
)

// Sub-question boundaries: punctuation plus the Spanish conjunctions the
// original corpus was tuned for ("y ", "además", "también").
const boundary = "\x1f"

var boundaryReplacer = strings.NewReplacer(
	"?", boundary,
	"y ", boundary,
	"además", boundary,
	"también", boundary,
	",", boundary,
	".", boundary,
	";", boundary,
)

// SplitQuestions segments a user utterance into candidate sub-questions,
// left to right. Fragments of three characters or fewer after trimming are
// noise (articles, stray conjunction halves) and get dropped. Empty or
// all-punctuation input yields an empty slice.
func SplitQuestions(text string) []string {
	parts := strings.Split(boundaryReplacer.Replace(strings.ToLower(text)), boundary)

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > 3 {
			out = append(out, p)
		}
	}
	return out
}
