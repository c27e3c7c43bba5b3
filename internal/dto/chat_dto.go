package dto

// SendMessageRequest is one inbound chat turn. Session is an opaque token
// chosen by the client; an absent session falls back to "default", matching
// the single-widget web client.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
	Session string `json:"session"`
}
