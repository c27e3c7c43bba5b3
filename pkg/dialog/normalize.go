package dialog

import "strings"

// The corpus questions carry Spanish interrogation/exclamation marks; matching
// works on text with this punctuation set stripped.
var punctuationReplacer = strings.NewReplacer(
	"¿", "",
	"?", "",
	"¡", "",
	"!", "",
	".", "",
	",", "",
)

// Normalize lower-cases text, strips the fixed punctuation set and trims
// surrounding whitespace. Pure and idempotent.
func Normalize(text string) string {
	return strings.TrimSpace(punctuationReplacer.Replace(strings.ToLower(text)))
}
