package dialog

import "hotel-paraiso-be/pkg/corpus"

// IntentDirectContact is the placeholder intent set when semantic matching
// came up empty and the bot is waiting for a yes/no on contacting staff.
const IntentDirectContact = "contacto_directo"

// State is the conversation state the router dispatches on. It is derived
// from the session contents, so a session can never be in an inconsistent
// combination of states.
type State int

const (
	StateIdle State = iota
	StateInSubmenu
	StateAwaitingContact
)

// Session is the per-conversation context: the selected intent and, when a
// main-menu option was picked, the submenu entries shown to the user.
type Session struct {
	Intent  string
	Submenu []corpus.Entry
}

// State classifies the session. A non-empty submenu wins over the
// direct-contact placeholder because a submenu is only ever set together
// with its own intent.
func (s *Session) State() State {
	switch {
	case s == nil:
		return StateIdle
	case len(s.Submenu) > 0:
		return StateInSubmenu
	case s.Intent == IntentDirectContact:
		return StateAwaitingContact
	default:
		return StateIdle
	}
}

// Store is the session persistence the router runs against. The production
// implementation lives in internal/repository/memory (go-cache with TTL);
// tests use a plain map.
type Store interface {
	Get(sessionID string) (*Session, bool)
	Save(sessionID string, session *Session)
	Delete(sessionID string)
}
