package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manivarun57/support-portal/dto"
	"github.com/manivarun57/support-portal/middleware"
	"github.com/manivarun57/support-portal/response"
	"github.com/manivarun57/support-portal/services"
)

type TicketHandler struct {
	tickets  *services.TicketService
	comments *services.CommentService
	debug    bool
}

func NewTicketHandler(tickets *services.TicketService, comments *services.CommentService, debug bool) *TicketHandler {
	return &TicketHandler{tickets: tickets, comments: comments, debug: debug}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input dto.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Request body must be JSON"})
		return
	}

	ticket, err := h.tickets.CreateTicket(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		response.Error(c, h.debug, err)
		return
	}

	c.JSON(http.StatusCreated, response.TicketResponse{Ticket: ticket})
}

func (h *TicketHandler) GetMyTickets(c *gin.Context) {
	tickets, err := h.tickets.ListMine(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, response.TicketsResponse{Tickets: tickets})
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.tickets.GetForUser(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, response.TicketResponse{Ticket: ticket})
}

func (h *TicketHandler) GetTicketComments(c *gin.Context) {
	comments, err := h.comments.ListForTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, response.CommentsResponse{Comments: comments})
}

func (h *TicketHandler) GetDashboardMetrics(c *gin.Context) {
	metrics, err := h.tickets.DashboardMetrics(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, h.debug, err)
		return
	}

	c.JSON(http.StatusOK, response.MetricsResponse{Metrics: metrics})
}
