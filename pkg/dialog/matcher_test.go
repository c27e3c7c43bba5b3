package dialog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hotel-paraiso-be/pkg/corpus"
)

// fakeEmbedder maps normalized text to fixed vectors. Texts outside the
// vocabulary get a vector orthogonal to every corpus vector, so they never
// reach the threshold.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return []float32{0, 0, 0, 1}, nil
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("model down")
}

func testCorpus() []corpus.Entry {
	return []corpus.Entry{
		{Id: 1, Question: "¿Cuál es el horario de check-in?", Response: "El check-in es a las 15:00.", Intent: "checkin_info"},
		{Id: 2, Question: "¿Cuánto cuesta la habitación doble?", Response: "La habitación doble cuesta $120 por noche.", Intent: "habitacion_info"},
		{Id: 3, Question: "¿El hotel tiene piscina?", Response: "Sí, contamos con piscina al aire libre.", Intent: "servicios_info"},
		{Id: 4, Question: "¿Cómo puedo reservar una habitación?", Response: "Puedes reservar desde este chat con la opción 1.", Intent: "reserva_info"},
		{Id: 5, Question: "¿Cómo reporto un problema con mi habitación?", Response: "Puedes registrar tu queja desde la opción 8.", Intent: "quejas"},
	}
}

func testEmbedder() *fakeEmbedder {
	vectors := make(map[string][]float32)
	// Corpus questions, normalized.
	vectors["cuál es el horario de check-in"] = []float32{1, 0, 0}
	vectors["cuánto cuesta la habitación doble"] = []float32{0, 1, 0}
	vectors["el hotel tiene piscina"] = []float32{0, 0, 1}
	vectors["cómo puedo reservar una habitación"] = []float32{0.7, 0.7, 0}
	vectors["cómo reporto un problema con mi habitación"] = []float32{0.7, 0, 0.7}
	// User queries.
	vectors["a qué hora puedo hacer check-in"] = []float32{0.95, 0.05, 0}
	vectors["horario de check-in"] = []float32{0.98, 0.02, 0}
	vectors["hora del check-in"] = []float32{0.97, 0.03, 0}
	vectors["tienen piscina cubierta"] = []float32{0.05, 0.05, 0.95}
	return &fakeEmbedder{vectors: vectors}
}

func testHolder(t *testing.T) *Holder {
	t.Helper()
	ix, err := BuildIndex(context.Background(), testCorpus(), testEmbedder())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	h := NewHolder()
	h.Swap(ix)
	return h
}

func TestMatchSingleQuestion(t *testing.T) {
	m := NewMatcher(testHolder(t), testEmbedder())

	got := m.Match(context.Background(), "¿A qué hora puedo hacer check-in?", DefaultThreshold)
	want := []string{"El check-in es a las 15:00."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %#v, want %#v", got, want)
	}
}

func TestMatchMultipleSubQuestions(t *testing.T) {
	m := NewMatcher(testHolder(t), testEmbedder())

	got := m.Match(context.Background(), "horario de check-in? y tienen piscina cubierta", DefaultThreshold)
	want := []string{
		"El check-in es a las 15:00.",
		"Sí, contamos con piscina al aire libre.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match = %#v, want %#v", got, want)
	}
}

func TestMatchDeduplicatesResponses(t *testing.T) {
	m := NewMatcher(testHolder(t), testEmbedder())

	// Both sub-questions resolve to the same corpus entry.
	got := m.Match(context.Background(), "horario de check-in? y hora del check-in", DefaultThreshold)
	want := []string{"El check-in es a las 15:00."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected deduplicated result, got %#v", got)
	}
}

func TestMatchBelowThreshold(t *testing.T) {
	m := NewMatcher(testHolder(t), testEmbedder())

	// Unknown text embeds orthogonally to the whole corpus.
	if got := m.Match(context.Background(), "xyz123 sin sentido", DefaultThreshold); got != nil {
		t.Errorf("expected no matches, got %#v", got)
	}
}

func TestMatchThresholdIsTunable(t *testing.T) {
	m := NewMatcher(testHolder(t), testEmbedder())

	// With the floor dropped to -1 even an orthogonal query matches something.
	got := m.Match(context.Background(), "xyz123 sin sentido", -1)
	if len(got) != 1 {
		t.Errorf("expected one match at threshold -1, got %#v", got)
	}
}

func TestMatchEmptyCorpus(t *testing.T) {
	m := NewMatcher(NewHolder(), testEmbedder())

	if got := m.Match(context.Background(), "¿Cuál es el horario de check-in?", DefaultThreshold); got != nil {
		t.Errorf("empty corpus must yield no matches, got %#v", got)
	}
}

func TestMatchShortInput(t *testing.T) {
	m := NewMatcher(testHolder(t), testEmbedder())

	// "ok" survives no split filter, so there is nothing to match.
	if got := m.Match(context.Background(), "ok", DefaultThreshold); got != nil {
		t.Errorf("expected empty result for short input, got %#v", got)
	}
}

func TestMatchDegradedMode(t *testing.T) {
	h := testHolder(t)
	h.SetDegraded(true)
	m := NewMatcher(h, testEmbedder())

	if got := m.Match(context.Background(), "horario de check-in", DefaultThreshold); got != nil {
		t.Errorf("degraded matcher must report no matches, got %#v", got)
	}
}

func TestMatchEmbedderFailureDegradesToNoMatch(t *testing.T) {
	m := NewMatcher(testHolder(t), failingEmbedder{})

	if got := m.Match(context.Background(), "horario de check-in", DefaultThreshold); got != nil {
		t.Errorf("embed failure must degrade to no match, got %#v", got)
	}
}
