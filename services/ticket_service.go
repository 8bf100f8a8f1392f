package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/manivarun57/support-portal/dto"
	"github.com/manivarun57/support-portal/models"
	"github.com/manivarun57/support-portal/repositories"
	"github.com/manivarun57/support-portal/storage"
)

type TicketService struct {
	repos    *repositories.Repos
	blobs    storage.BlobStore
	comments *CommentService
}

func NewTicketService(repos *repositories.Repos, blobs storage.BlobStore, comments *CommentService) *TicketService {
	return &TicketService{repos: repos, blobs: blobs, comments: comments}
}

// CreateTicket validates the payload, stores the attachment when present and
// inserts the ticket with a fresh id, UTC timestamp and open status. An
// acknowledgment comment is seeded right after creation.
func (s *TicketService) CreateTicket(ctx context.Context, userID string, input dto.CreateTicketDTO) (*models.Ticket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var attachmentURL *string
	if input.HasAttachment() {
		url, size, err := s.blobs.Store(ctx, input.Attachment, input.AttachmentName, input.AttachmentType)
		if err != nil {
			return nil, err
		}
		slog.Info("attachment stored", "url", url, "size", size)
		attachmentURL = &url
	}

	ticket := &models.Ticket{
		ID:            uuid.New().String(),
		Subject:       input.Subject,
		Priority:      models.TicketPriority(input.Priority),
		Category:      input.Category,
		Description:   input.Description,
		Status:        models.TicketStatusOpen,
		UserID:        userID,
		CreatedAt:     time.Now().UTC(),
		AttachmentURL: attachmentURL,
	}
	if err := s.repos.Ticket.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if attachmentURL != nil {
		file := &models.TicketFile{
			ID:        uuid.New().String(),
			TicketID:  ticket.ID,
			FileURL:   *attachmentURL,
			FileName:  input.AttachmentName,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repos.TicketFile.Save(ctx, file); err != nil {
			return nil, err
		}
	}

	if err := s.comments.SeedAutoReply(ctx, ticket.ID); err != nil {
		return nil, err
	}

	slog.Info("ticket created", "ticket_id", ticket.ID, "user_id", userID)
	return ticket, nil
}

// ListMine returns the user's tickets, newest first.
func (s *TicketService) ListMine(ctx context.Context, userID string) ([]models.Ticket, error) {
	return s.repos.Ticket.FindByUser(ctx, userID)
}

// GetForUser fetches one ticket scoped to its owner. A ticket belonging to a
// different user comes back as not found.
func (s *TicketService) GetForUser(ctx context.Context, ticketID, userID string) (*models.Ticket, error) {
	return s.repos.Ticket.FindByIDForUser(ctx, ticketID, userID)
}

// DashboardMetrics aggregates the user's ticket counts; an empty userID
// yields global counts.
func (s *TicketService) DashboardMetrics(ctx context.Context, userID string) (models.DashboardMetrics, error) {
	return s.repos.Ticket.Metrics(ctx, userID)
}
