package repositories_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manivarun57/support-portal/internal/testutils"
	"github.com/manivarun57/support-portal/models"
	"github.com/manivarun57/support-portal/repositories"
)

// TestTicketRepositoryAgainstPostgres exercises the repository against the
// network SQL backend. It needs Docker (or TEST_DB_DSN) and only runs when
// INTEGRATION is set.
func TestTicketRepositoryAgainstPostgres(t *testing.T) {
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run postgres integration tests")
	}

	db, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)

	repo := repositories.NewTicketRepository(db)
	ctx := context.Background()

	ticket := newTicket("alice", models.TicketStatusOpen, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, ticket))

	found, err := repo.FindByIDForUser(ctx, ticket.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, ticket.Subject, found.Subject)

	metrics, err := repo.Metrics(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics.Total)
	assert.Equal(t, int64(1), metrics.Open)
}
