package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-paraiso-be/internal/entity"
	"hotel-paraiso-be/internal/repository/implementation"
	"hotel-paraiso-be/pkg/database"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	ctx := context.Background()

	t.Run("Check Ticket Repository", func(t *testing.T) {
		tickets := implementation.NewTicketRepository(gormDB)

		count, err := tickets.Count(ctx)
		assert.NoError(t, err)
		t.Logf("Ticket count: %d", count)

		now := time.Now()
		ticket := &entity.Ticket{
			Id:              uuid.New(),
			CodigoTicket:    "QJ-999",
			NombreCliente:   "Integration Test",
			TelefonoCliente: "000000000",
			CorreoCliente:   "test@example.com",
			Estado:          entity.TicketEstadoPendiente,
			Mensaje:         "prueba de integración",
			FechaCreacion:   now,
		}
		require.NoError(t, tickets.Create(ctx, ticket))

		last, err := tickets.LastCode(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "QJ-999", last)

		// Cleanup
		gormDB.Exec("DELETE FROM tickets WHERE codigo_ticket = ?", "QJ-999")
	})

	t.Run("Check Room Repository", func(t *testing.T) {
		rooms := implementation.NewRoomRepository(gormDB)
		count, err := rooms.Count(ctx)
		assert.NoError(t, err)
		t.Logf("Room count: %d", count)
	})

	t.Run("Check Corpus Vector Repository", func(t *testing.T) {
		vectors := implementation.NewCorpusVectorRepository(gormDB)
		hash := "ffffffffffffffffffffffffffffffff"

		// The column is vector(768), same as the embedding models produce.
		sample := make([]float32, 768)
		sample[0] = 0.5
		require.NoError(t, vectors.Save(ctx, hash, sample))
		vec, ok, err := vectors.Get(ctx, hash)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Len(t, vec, 768)

		// Saving again must upsert, not duplicate.
		sample[1] = 0.5
		require.NoError(t, vectors.Save(ctx, hash, sample))

		require.NoError(t, vectors.PruneExcept(ctx, []string{"keep-nothing-else"}))
		_, ok, err = vectors.Get(ctx, hash)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
