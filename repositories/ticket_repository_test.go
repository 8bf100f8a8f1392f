package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manivarun57/support-portal/apperrors"
	"github.com/manivarun57/support-portal/internal/testutils"
	"github.com/manivarun57/support-portal/models"
	"github.com/manivarun57/support-portal/repositories"
)

func newTicket(userID string, status models.TicketStatus, createdAt time.Time) *models.Ticket {
	return &models.Ticket{
		ID:          uuid.New().String(),
		Subject:     "Test subject",
		Priority:    models.TicketPriorityMedium,
		Category:    "general",
		Description: "Test description",
		Status:      status,
		UserID:      userID,
		CreatedAt:   createdAt,
	}
}

func TestTicketRepositoryCreateAndFetch(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := repositories.NewTicketRepository(db)
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	ticket := newTicket("alice", models.TicketStatusOpen, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, ticket))

	found, err := repo.FindByIDForUser(ctx, ticket.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)
	assert.Equal(t, ticket.Subject, found.Subject)
	assert.Equal(t, ticket.Priority, found.Priority)
	assert.Equal(t, ticket.Category, found.Category)
	assert.Equal(t, ticket.Description, found.Description)
	assert.Equal(t, ticket.UserID, found.UserID)
	assert.Equal(t, models.TicketStatusOpen, found.Status)
	assert.False(t, found.CreatedAt.Before(start))
}

func TestTicketRepositoryOwnerScopedLookup(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := repositories.NewTicketRepository(db)
	ctx := context.Background()

	ticket := newTicket("alice", models.TicketStatusOpen, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, ticket))

	// The owner sees the ticket; anyone else gets not found.
	_, err := repo.FindByIDForUser(ctx, ticket.ID, "alice")
	require.NoError(t, err)

	_, err = repo.FindByIDForUser(ctx, ticket.ID, "mallory")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.FindByIDForUser(ctx, "no-such-id", "alice")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTicketRepositoryFindByUserOrdering(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := repositories.NewTicketRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		tk := newTicket("alice", models.TicketStatusOpen, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, tk))
		ids = append(ids, tk.ID)
	}
	require.NoError(t, repo.Create(ctx, newTicket("bob", models.TicketStatusOpen, base)))

	tickets, err := repo.FindByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	// Newest first.
	assert.Equal(t, ids[2], tickets[0].ID)
	assert.Equal(t, ids[1], tickets[1].ID)
	assert.Equal(t, ids[0], tickets[2].ID)
	for i := 1; i < len(tickets); i++ {
		assert.False(t, tickets[i-1].CreatedAt.Before(tickets[i].CreatedAt))
	}
}

func TestTicketRepositoryFindByUserEmpty(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := repositories.NewTicketRepository(db)

	tickets, err := repo.FindByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestTicketRepositoryMetrics(t *testing.T) {
	db := testutils.SetupDB(t)
	repo := repositories.NewTicketRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for _, status := range []models.TicketStatus{
		models.TicketStatusOpen,
		models.TicketStatusInProgress,
		models.TicketStatusResolved,
		models.TicketStatusClosed,
	} {
		require.NoError(t, repo.Create(ctx, newTicket("alice", status, now)))
	}
	require.NoError(t, repo.Create(ctx, newTicket("bob", models.TicketStatusOpen, now)))

	t.Run("scoped to user", func(t *testing.T) {
		metrics, err := repo.Metrics(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(4), metrics.Total)
		assert.Equal(t, int64(2), metrics.Open)
		assert.Equal(t, int64(2), metrics.Resolved)
	})

	t.Run("global when unscoped", func(t *testing.T) {
		metrics, err := repo.Metrics(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(5), metrics.Total)
		assert.Equal(t, int64(3), metrics.Open)
		assert.Equal(t, int64(2), metrics.Resolved)
	})

	t.Run("empty store", func(t *testing.T) {
		metrics, err := repo.Metrics(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, models.DashboardMetrics{}, metrics)
	})
}
