package memory

import (
	"testing"
	"time"

	"hotel-paraiso-be/pkg/dialog"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryRoundtrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	_, found := repo.Get("s1")
	assert.False(t, found, "unknown session must report not found")

	repo.Save("s1", &dialog.Session{Intent: "checkin_info"})
	sess, found := repo.Get("s1")
	assert.True(t, found)
	assert.Equal(t, "checkin_info", sess.Intent)

	repo.Delete("s1")
	_, found = repo.Get("s1")
	assert.False(t, found, "deleted session must be gone")
}

func TestSessionRepositorySessionsAreIndependent(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	repo.Save("a", &dialog.Session{Intent: "reserva_info"})
	repo.Save("b", &dialog.Session{Intent: dialog.IntentDirectContact})

	a, _ := repo.Get("a")
	b, _ := repo.Get("b")
	assert.Equal(t, "reserva_info", a.Intent)
	assert.Equal(t, dialog.IntentDirectContact, b.Intent)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)

	repo.Save("stale", &dialog.Session{Intent: "servicios_info"})
	time.Sleep(50 * time.Millisecond)

	_, found := repo.Get("stale")
	assert.False(t, found, "session must expire after its TTL")
}
