package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/manivarun57/support-portal/models"
)

type TicketFileRepo interface {
	Save(ctx context.Context, file *models.TicketFile) error
	FindByTicket(ctx context.Context, ticketID string) ([]models.TicketFile, error)
}

type GormTicketFileRepo struct {
	db *gorm.DB
}

func NewTicketFileRepository(db *gorm.DB) *GormTicketFileRepo {
	return &GormTicketFileRepo{db: db}
}

func (r *GormTicketFileRepo) Save(ctx context.Context, file *models.TicketFile) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("failed to insert ticket file: %w", err)
	}
	return nil
}

func (r *GormTicketFileRepo) FindByTicket(ctx context.Context, ticketID string) ([]models.TicketFile, error) {
	files := []models.TicketFile{}
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at asc").
		Find(&files).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list files for ticket %s: %w", ticketID, err)
	}
	return files, nil
}
