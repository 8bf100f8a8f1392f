package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manivarun57/support-portal/config"
	"github.com/manivarun57/support-portal/db"
	"github.com/manivarun57/support-portal/models"
)

func TestConnectSQLiteBootstrapsSchema(t *testing.T) {
	cfg := config.Config{SQLitePath: filepath.Join(t.TempDir(), "test.db")}
	require.True(t, cfg.UseSQLite())

	database, err := db.Connect(cfg)
	require.NoError(t, err)

	for _, table := range []string{"tickets", "ticket_files", "comments"} {
		assert.True(t, database.Migrator().HasTable(table), "table %s", table)
	}

	// Schema bootstrap is idempotent.
	require.NoError(t, db.Migrate(database))

	ticket := &models.Ticket{
		ID:          uuid.New().String(),
		Subject:     "s",
		Priority:    models.TicketPriorityLow,
		Category:    "c",
		Description: "d",
		Status:      models.TicketStatusOpen,
		UserID:      "alice",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, database.Create(ticket).Error)

	var count int64
	require.NoError(t, database.Model(&models.Ticket{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
