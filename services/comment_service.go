package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/manivarun57/support-portal/models"
	"github.com/manivarun57/support-portal/repositories"
)

const autoReplyText = "Thank you for submitting your ticket. We've received your request and will respond within 24 hours."

type CommentService struct {
	repos *repositories.Repos
}

func NewCommentService(repos *repositories.Repos) *CommentService {
	return &CommentService{repos: repos}
}

// ListForTicket returns a ticket's comments, oldest first.
func (s *CommentService) ListForTicket(ctx context.Context, ticketID string) ([]models.Comment, error) {
	return s.repos.Comment.FindByTicket(ctx, ticketID)
}

// SeedAutoReply inserts the fixed first-response acknowledgment attributed
// to the support-team sentinel. Calling it twice duplicates the comment;
// the creation flow calls it exactly once per ticket.
func (s *CommentService) SeedAutoReply(ctx context.Context, ticketID string) error {
	comment := &models.Comment{
		ID:        uuid.New().String(),
		TicketID:  ticketID,
		UserID:    models.SupportTeamUserID,
		Comment:   autoReplyText,
		CreatedAt: time.Now().UTC(),
	}
	return s.repos.Comment.Create(ctx, comment)
}
