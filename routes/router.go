package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/manivarun57/support-portal/config"
	"github.com/manivarun57/support-portal/handlers"
	"github.com/manivarun57/support-portal/middleware"
)

// Register wires the HTTP surface onto r. Handlers are constructed once in
// main and injected; this function only declares routes.
func Register(r *gin.Engine, h *handlers.Handlers, cfg config.Config) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)

	if !cfg.UseRemoteStorage() {
		r.Static("/uploads", cfg.UploadDir)
	}

	identified := r.Group("/")
	identified.Use(middleware.Identity(cfg.DefaultUserID))
	{
		tickets := identified.Group("/tickets")
		{
			tickets.POST("", h.Ticket.CreateTicket)
			tickets.GET("/my", h.Ticket.GetMyTickets)
			tickets.GET("/:id", h.Ticket.GetTicket)
			tickets.GET("/:id/comments", h.Ticket.GetTicketComments)
		}
		identified.GET("/dashboard/metrics", h.Ticket.GetDashboardMetrics)
	}
}
