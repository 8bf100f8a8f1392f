package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manivarun57/support-portal/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Support Portal API",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
