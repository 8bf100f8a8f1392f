package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/manivarun57/support-portal/config"
	"github.com/manivarun57/support-portal/models"
)

// Connect opens the relational store and bootstraps the schema. The backend
// is chosen once: PostgreSQL when DB_HOST is configured, otherwise an
// embedded SQLite file.
func Connect(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UseSQLite() {
		slog.Info("using embedded sqlite database", "path", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	} else {
		slog.Info("using postgresql database", "host", cfg.DbHost, "name", cfg.DbName)
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DbHost,
			cfg.DbPort,
			cfg.DbUser,
			cfg.DbPassword,
			cfg.DbName,
		)
		dialector = postgres.Open(dsn)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.Debug)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	slog.Info("database connected and migrated")
	return database, nil
}

// Migrate idempotently creates the tickets, ticket_files and comments tables.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&models.Ticket{},
		&models.TicketFile{},
		&models.Comment{},
	); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func gormLogLevel(debug bool) gormlogger.LogLevel {
	if debug {
		return gormlogger.Info
	}
	return gormlogger.Warn
}
