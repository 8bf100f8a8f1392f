package dto

import (
	"fmt"
	"strings"

	"github.com/manivarun57/support-portal/apperrors"
	"github.com/manivarun57/support-portal/models"
	"github.com/manivarun57/support-portal/storage"
)

var allowedPriorities = map[models.TicketPriority]bool{
	models.TicketPriorityLow:      true,
	models.TicketPriorityMedium:   true,
	models.TicketPriorityHigh:     true,
	models.TicketPriorityCritical: true,
}

// CreateTicketDTO is the ticket creation payload. Validate must be called
// before the payload is acted on.
type CreateTicketDTO struct {
	Subject        string `json:"subject"`
	Priority       string `json:"priority"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Attachment     string `json:"attachment"`
	AttachmentName string `json:"attachment_name"`
	AttachmentType string `json:"attachment_type"`
}

// Validate checks required fields, normalizes the priority to lowercase and
// verifies the attachment encoding. Missing fields are named in the error.
func (d *CreateTicketDTO) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"subject", d.Subject},
		{"priority", d.Priority},
		{"category", d.Category},
		{"description", d.Description},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")))
	}

	d.Priority = strings.ToLower(d.Priority)
	if !allowedPriorities[models.TicketPriority(d.Priority)] {
		return apperrors.NewValidationError(
			fmt.Sprintf("invalid priority %q. Allowed: low, medium, high, p1", d.Priority))
	}

	if d.Attachment != "" {
		if strings.TrimSpace(d.AttachmentName) == "" {
			return apperrors.NewValidationError("attachment_name is required when attachment is supplied")
		}
		if !storage.IsBase64Blob(d.Attachment) {
			return apperrors.NewInvalidEncodingError("attachment must be Base64 encoded")
		}
	}
	return nil
}

// HasAttachment reports whether the payload carries a file to store.
func (d *CreateTicketDTO) HasAttachment() bool {
	return d.Attachment != "" && d.AttachmentName != ""
}
