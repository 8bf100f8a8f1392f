package response

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manivarun57/support-portal/apperrors"
	"github.com/manivarun57/support-portal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type TicketResponse struct {
	Ticket *models.Ticket `json:"ticket"`
}

type TicketsResponse struct {
	Tickets []models.Ticket `json:"tickets"`
}

type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type MetricsResponse struct {
	Metrics models.DashboardMetrics `json:"metrics"`
}

// Error writes err as JSON. Deliberate application errors keep their status
// and message; anything else is logged and returned as a generic 500 unless
// debug mode echoes the detail.
func Error(c *gin.Context, debug bool, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	slog.Error("internal error", "path", c.FullPath(), "error", err)
	msg := "Internal server error"
	if debug {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}
