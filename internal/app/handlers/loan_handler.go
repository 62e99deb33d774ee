package handlers

import (
	"net/http"

	apperrors "loan-intake/internal/common/errors"
	"loan-intake/internal/common/logger"
	"loan-intake/internal/loan/intake"
	"loan-intake/internal/models"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	service *intake.Service
	logger  logger.Logger
}

func NewLoanHandler(service *intake.Service, log logger.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: log}
}

// Apply handles POST /api/loan/apply.
func (h *LoanHandler) Apply(c *gin.Context) {
	var req models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "error processing loan application")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetByID handles GET /api/loan/:id.
func (h *LoanHandler) GetByID(c *gin.Context) {
	app, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "error fetching loan application")
		return
	}

	c.JSON(http.StatusOK, app)
}

// GetStatus handles GET /api/loan/status/:id.
func (h *LoanHandler) GetStatus(c *gin.Context) {
	status, err := h.service.GetStatusByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "error fetching loan status")
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *LoanHandler) writeError(c *gin.Context, err error, logMsg string) {
	stdErr := apperrors.AsStandardError(err)

	switch apperrors.HTTPStatus(err) {
	case http.StatusBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   stdErr.Message,
			"details": stdErr.Details,
		})
	case http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Loan application not found"})
	default:
		h.logger.Error(logMsg, map[string]interface{}{
			"code":  string(stdErr.Code),
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
