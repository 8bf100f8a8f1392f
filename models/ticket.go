package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "p1"
)

// Ticket is a support request. ID and UserID are immutable after creation;
// Status starts as open and is only ever changed by the support side.
type Ticket struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	Subject       string         `json:"subject" gorm:"not null"`
	Priority      TicketPriority `json:"priority" gorm:"not null"`
	Category      string         `json:"category" gorm:"not null"`
	Description   string         `json:"description" gorm:"not null"`
	Status        TicketStatus   `json:"status" gorm:"not null;default:'open'"`
	UserID        string         `json:"user_id" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"created_at"`
	AttachmentURL *string        `json:"attachment_url"`
}
