package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/manivarun57/support-portal/models"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByTicket(ctx context.Context, ticketID string) ([]models.Comment, error)
}

type GormCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *GormCommentRepo {
	return &GormCommentRepo{db: db}
}

func (r *GormCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *GormCommentRepo) FindByTicket(ctx context.Context, ticketID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for ticket %s: %w", ticketID, err)
	}
	return comments, nil
}
