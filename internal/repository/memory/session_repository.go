package memory

import (
	"time"

	"hotel-paraiso-be/pkg/dialog"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps per-conversation dialog context in memory with a
// TTL, so abandoned conversations expire instead of growing the map forever.
// Implements dialog.Store.
type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository creates the store. ttl bounds how long an idle
// conversation keeps its context; expired entries are purged on a fixed
// sweep interval.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Get(sessionID string) (*dialog.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*dialog.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(sessionID string, session *dialog.Session) {
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
