package corpus

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// IntentGeneral is assigned to entries imported without an intent tag.
const IntentGeneral = "general"

// Entry is one question/response pair of the hotel FAQ corpus.
type Entry struct {
	Id       int    `json:"id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Response string `json:"response" validate:"required"`
	Intent   string `json:"intent"`
}

var validate = validator.New()

// ValidateEntry enforces the required fields at the boundary instead of
// letting half-filled entries leak into the index.
func ValidateEntry(e *Entry) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid corpus entry: %w", err)
	}
	return nil
}

// ValidateEntries checks an imported batch and defaults missing intents.
func ValidateEntries(entries []Entry) error {
	for i := range entries {
		if err := ValidateEntry(&entries[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if entries[i].Intent == "" {
			entries[i].Intent = IntentGeneral
		}
	}
	return nil
}
