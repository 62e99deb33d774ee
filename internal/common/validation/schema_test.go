package validation

import (
	"testing"

	apperrors "loan-intake/internal/common/errors"
	"loan-intake/internal/models"

	"github.com/stretchr/testify/assert"
)

func validRequest() *models.ApplyRequest {
	creditScore := 700
	return &models.ApplyRequest{
		ApplicantName:    "Lena Hoffmann",
		Email:            "lena@example.com",
		PhoneNumber:      "5559990000",
		AnnualIncome:     75000,
		LoanAmount:       20000,
		LoanPurpose:      "education",
		CreditScore:      &creditScore,
		EmploymentStatus: "employed",
	}
}

func TestValidateApplication(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(req *models.ApplyRequest)
		expectErr bool
	}{
		{name: "valid request", mutate: func(*models.ApplyRequest) {}, expectErr: false},
		{name: "credit score absent", mutate: func(req *models.ApplyRequest) { req.CreditScore = nil }, expectErr: false},
		{name: "empty applicant name", mutate: func(req *models.ApplyRequest) { req.ApplicantName = "" }, expectErr: true},
		{name: "malformed email", mutate: func(req *models.ApplyRequest) { req.Email = "nope" }, expectErr: true},
		{name: "short phone number", mutate: func(req *models.ApplyRequest) { req.PhoneNumber = "123" }, expectErr: true},
		{name: "zero income", mutate: func(req *models.ApplyRequest) { req.AnnualIncome = 0 }, expectErr: true},
		{name: "negative loan amount", mutate: func(req *models.ApplyRequest) { req.LoanAmount = -500 }, expectErr: true},
		{name: "empty loan purpose", mutate: func(req *models.ApplyRequest) { req.LoanPurpose = "" }, expectErr: true},
		{name: "credit score below range", mutate: func(req *models.ApplyRequest) { s := 250; req.CreditScore = &s }, expectErr: true},
		{name: "credit score above range", mutate: func(req *models.ApplyRequest) { s := 900; req.CreditScore = &s }, expectErr: true},
		{name: "empty employment status", mutate: func(req *models.ApplyRequest) { req.EmploymentStatus = "" }, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := ValidateApplication(req)

			if tt.expectErr {
				assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
