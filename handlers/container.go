package handlers

import "github.com/manivarun57/support-portal/services"

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Ticket *TicketHandler
	Health *HealthHandler
}

func New(svc *services.Services, debug bool) *Handlers {
	return &Handlers{
		Ticket: NewTicketHandler(svc.Ticket, svc.Comment, debug),
		Health: NewHealthHandler(),
	}
}
