package services

import (
	"github.com/manivarun57/support-portal/repositories"
	"github.com/manivarun57/support-portal/storage"
)

// Services bundles the service layer handed to the handlers.
type Services struct {
	Ticket  *TicketService
	Comment *CommentService
}

func New(repos *repositories.Repos, blobs storage.BlobStore) *Services {
	comments := NewCommentService(repos)
	return &Services{
		Ticket:  NewTicketService(repos, blobs, comments),
		Comment: comments,
	}
}
