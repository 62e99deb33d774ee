// Package intake orchestrates the loan application flow: validate, decide,
// persist, emit, respond.
package intake

import (
	"context"
	"time"

	"loan-intake/internal/common/logger"
	"loan-intake/internal/common/metrics"
	"loan-intake/internal/common/validation"
	"loan-intake/internal/loan/engine"
	"loan-intake/internal/loan/events"
	"loan-intake/internal/loan/store"
	"loan-intake/internal/models"

	"github.com/google/uuid"
)

// Fixed caller-facing messages selected by terminal status.
const (
	approvedMessage = "Congratulations! Your loan application has been approved."
	rejectedMessage = "Unfortunately, your loan application does not meet our current criteria."
)

type Service struct {
	store     *store.ApplicationStore
	publisher events.Publisher
	logger    logger.Logger
}

func NewService(applicationStore *store.ApplicationStore, publisher events.Publisher, log logger.Logger) *Service {
	return &Service{
		store:     applicationStore,
		publisher: publisher,
		logger:    log.WithFields(map[string]interface{}{"component": "intake"}),
	}
}

// Submit runs the full intake sequence for one application. The store write
// is fatal to the call; the event publish is not. Steps are strictly
// sequential and the store never observes a pending status.
func (s *Service) Submit(ctx context.Context, req *models.ApplyRequest) (*models.ApplyResponse, error) {
	if err := validation.ValidateApplication(req); err != nil {
		return nil, err
	}

	app := &models.Application{
		ID:               uuid.New().String(),
		ApplicantName:    req.ApplicantName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		AnnualIncome:     req.AnnualIncome,
		LoanAmount:       req.LoanAmount,
		LoanPurpose:      req.LoanPurpose,
		CreditScore:      req.CreditScore,
		EmploymentStatus: req.EmploymentStatus,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		Status:           models.StatusPending,
	}

	decision := engine.Evaluate(app)
	if decision.Eligible {
		app.Status = models.StatusApproved
	} else {
		app.Status = models.StatusRejected
	}

	if err := s.store.Put(ctx, app); err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmitted.WithLabelValues(app.Status).Inc()
	s.logger.Info("loan application processed", map[string]interface{}{
		"applicationId": app.ID,
		"status":        app.Status,
	})

	event := &models.LoanEvent{
		ApplicationID: app.ID,
		ApplicantName: app.ApplicantName,
		LoanAmount:    app.LoanAmount,
		Status:        app.Status,
		Timestamp:     app.Timestamp,
		Eligibility:   decision,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Best effort: the caller keeps their decision even when the
		// event stream is unreachable.
		metrics.EventPublishFailures.Inc()
		s.logger.Warn("failed to publish loan event", map[string]interface{}{
			"applicationId": app.ID,
			"error":         err.Error(),
		})
	}

	message := rejectedMessage
	if app.Status == models.StatusApproved {
		message = approvedMessage
	}

	return &models.ApplyResponse{
		ApplicationID: app.ID,
		Status:        app.Status,
		Eligibility:   decision,
		Message:       message,
	}, nil
}

// GetByID returns the full stored record. Read paths query the store only.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Application, error) {
	return s.store.Get(ctx, id)
}

// GetStatusByID returns the reduced status view of a stored record.
func (s *Service) GetStatusByID(ctx context.Context, id string) (*models.StatusResponse, error) {
	app, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.StatusResponse{
		ApplicationID: app.ID,
		Status:        app.Status,
		Timestamp:     app.Timestamp,
	}, nil
}
