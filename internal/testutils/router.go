package testutils

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/manivarun57/support-portal/config"
	"github.com/manivarun57/support-portal/db"
	"github.com/manivarun57/support-portal/handlers"
	"github.com/manivarun57/support-portal/repositories"
	"github.com/manivarun57/support-portal/routes"
	"github.com/manivarun57/support-portal/services"
	"github.com/manivarun57/support-portal/storage"
)

// SetupDB opens an in-memory sqlite database with the schema migrated.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	return database
}

// SetupRouter builds the full HTTP stack against an in-memory database and
// a temp-dir local blob store.
func SetupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		UploadDir:     t.TempDir(),
		MaxFileSize:   10 << 20,
		DefaultUserID: "demo-user",
		Debug:         false,
	}

	database := SetupDB(t)
	blobs, err := storage.NewLocalStore(cfg.UploadDir, cfg.MaxFileSize)
	require.NoError(t, err)

	repos := repositories.New(database)
	svc := services.New(repos, blobs)
	h := handlers.New(svc, cfg.Debug)

	r := gin.New()
	routes.Register(r, h, cfg)
	return r, database
}
