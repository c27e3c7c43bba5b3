package dto

// UpdateItemRequest carries a partial corpus entry edit; empty fields keep
// their current value.
type UpdateItemRequest struct {
	Question string `json:"question"`
	Response string `json:"response"`
	Intent   string `json:"intent"`
}

type StatsResponse struct {
	TotalItems    int    `json:"total_items"`
	UniqueIntents int    `json:"unique_intents"`
	IndexedItems  int    `json:"indexed_items"`
	TotalTickets  int64  `json:"total_tickets"`
	LastModified  string `json:"last_modified"`
	Degraded      bool   `json:"degraded"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// MenuIntentCount is one row of the public intent histogram.
type MenuIntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// FaqItemResponse is the public view of one corpus entry.
type FaqItemResponse struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}
