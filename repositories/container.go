package repositories

import "gorm.io/gorm"

// Repos bundles the repository implementations handed to the service layer.
type Repos struct {
	Ticket     TicketRepo
	TicketFile TicketFileRepo
	Comment    CommentRepo
}

// New wires gorm-backed repositories around the injected database handle.
func New(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:     NewTicketRepository(db),
		TicketFile: NewTicketFileRepository(db),
		Comment:    NewCommentRepository(db),
	}
}
