package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/manivarun57/support-portal/apperrors"
	"github.com/manivarun57/support-portal/models"
)

// TicketRepo persists tickets. Single-ticket reads are always owner-scoped;
// there is deliberately no unscoped lookup.
type TicketRepo interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	FindByUser(ctx context.Context, userID string) ([]models.Ticket, error)
	FindByIDForUser(ctx context.Context, id, userID string) (*models.Ticket, error)
	Metrics(ctx context.Context, userID string) (models.DashboardMetrics, error)
}

type GormTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *GormTicketRepo {
	return &GormTicketRepo{db: db}
}

func (r *GormTicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

func (r *GormTicketRepo) FindByUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for user %s: %w", userID, err)
	}
	return tickets, nil
}

func (r *GormTicketRepo) FindByIDForUser(ctx context.Context, id, userID string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("Ticket not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticket %s: %w", id, err)
	}
	return &ticket, nil
}

func (r *GormTicketRepo) Metrics(ctx context.Context, userID string) (models.DashboardMetrics, error) {
	var metrics models.DashboardMetrics

	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Ticket{})
		if userID != "" {
			q = q.Where("user_id = ?", userID)
		}
		return q
	}

	if err := scoped().Count(&metrics.Total).Error; err != nil {
		return metrics, fmt.Errorf("failed to count tickets: %w", err)
	}
	openStatuses := []models.TicketStatus{models.TicketStatusOpen, models.TicketStatusInProgress}
	if err := scoped().Where("status IN ?", openStatuses).Count(&metrics.Open).Error; err != nil {
		return metrics, fmt.Errorf("failed to count open tickets: %w", err)
	}
	resolvedStatuses := []models.TicketStatus{models.TicketStatusResolved, models.TicketStatusClosed}
	if err := scoped().Where("status IN ?", resolvedStatuses).Count(&metrics.Resolved).Error; err != nil {
		return metrics, fmt.Errorf("failed to count resolved tickets: %w", err)
	}
	return metrics, nil
}
