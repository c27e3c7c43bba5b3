package dialog

import "context"

// DefaultThreshold is the minimum cosine similarity a corpus match must
// reach. Tunable policy, not a business rule; any value in [-1, 1] works.
const DefaultThreshold = 0.5

// Matcher answers free-text input from the corpus: split into sub-questions,
// embed each, take the arg-max corpus match above the threshold, and
// deduplicate the collected responses preserving first-seen order.
type Matcher struct {
	holder   *Holder
	embedder Embedder
}

func NewMatcher(holder *Holder, embedder Embedder) *Matcher {
	return &Matcher{holder: holder, embedder: embedder}
}

// Match returns the matched response texts in sub-question order, without
// duplicates. An empty result means "no semantic match"; the caller decides
// what to do with that. Embedding failures degrade to no match for the
// affected sub-question rather than surfacing an error mid-conversation.
func (m *Matcher) Match(ctx context.Context, userInput string, threshold float64) []string {
	if m.holder.Degraded() {
		return nil
	}
	index := m.holder.Current()
	if index.Len() == 0 {
		return nil
	}

	var found []string
	for _, sub := range SplitQuestions(userInput) {
		vec, err := m.embedder.Embed(ctx, Normalize(sub))
		if err != nil {
			continue
		}
		best, score := index.BestMatch(vec)
		if best >= 0 && score >= threshold {
			found = append(found, index.Response(best))
		}
	}

	return dedupe(found)
}

func dedupe(responses []string) []string {
	if len(responses) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(responses))
	out := responses[:0]
	for _, r := range responses {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
