package models

import "time"

// TicketFile records one stored attachment for a ticket.
type TicketFile struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	TicketID  string    `json:"ticket_id" gorm:"not null;index"`
	FileURL   string    `json:"file_url" gorm:"not null"`
	FileName  string    `json:"file_name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	Ticket    *Ticket   `json:"-" gorm:"foreignKey:TicketID"`
}
