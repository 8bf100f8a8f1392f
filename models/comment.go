package models

import "time"

// SupportTeamUserID is the sentinel author for system-generated comments.
const SupportTeamUserID = "support-team"

// Comment is a single message on a ticket, ordered oldest first for display.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	TicketID  string    `json:"ticket_id" gorm:"not null;index"`
	UserID    string    `json:"user_id" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	Ticket    *Ticket   `json:"-" gorm:"foreignKey:TicketID"`
}
