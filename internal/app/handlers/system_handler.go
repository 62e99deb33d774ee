package handlers

import (
	"context"
	"net/http"
	"time"

	"loan-intake/internal/common/database"
	"loan-intake/internal/models"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the health, readiness and stats endpoints.
type SystemHandler struct {
	redis *database.RedisClient
}

func NewSystemHandler(redisClient *database.RedisClient) *SystemHandler {
	return &SystemHandler{redis: redisClient}
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready reports 200 only once the application store answers.
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.redis.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Stats returns synthetic aggregate figures. The cache holds no durable
// history to aggregate over, so the numbers are demo data.
func (h *SystemHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatsResponse{
		TotalApplications:    1247,
		ApprovedApplications: 891,
		RejectedApplications: 356,
		AverageLoanAmount:    28500,
		ApprovalRate:         71.4,
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	})
}
