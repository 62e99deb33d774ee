package validation

import (
	"strings"

	apperrors "loan-intake/internal/common/errors"
	"loan-intake/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// applicationSchema constrains the raw apply payload. Credit score is the
// only optional field; income and loan amount must be strictly positive so
// the eligibility ratio is always defined.
var applicationSchema = map[string]interface{}{
	"type": "object",
	"required": []string{
		"applicantName", "email", "phoneNumber", "annualIncome",
		"loanAmount", "loanPurpose", "employmentStatus",
	},
	"properties": map[string]interface{}{
		"applicantName": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"email": map[string]interface{}{
			"type":    "string",
			"pattern": `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
		},
		"phoneNumber": map[string]interface{}{
			"type":      "string",
			"minLength": 7,
		},
		"annualIncome": map[string]interface{}{
			"type":             "number",
			"minimum":          0,
			"exclusiveMinimum": true,
		},
		"loanAmount": map[string]interface{}{
			"type":             "number",
			"minimum":          0,
			"exclusiveMinimum": true,
		},
		"loanPurpose": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"creditScore": map[string]interface{}{
			"type":    "integer",
			"minimum": 300,
			"maximum": 850,
		},
		"employmentStatus": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
	},
}

// ValidateApplication checks the minimal shape of an inbound application
// before any engine, store or emitter work happens.
func ValidateApplication(req *models.ApplyRequest) error {
	schemaLoader := gojsonschema.NewGoLoader(applicationSchema)
	documentLoader := gojsonschema.NewGoLoader(req)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewValidationFailedError(err.Error())
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return apperrors.NewValidationFailedError(strings.Join(errs, "; "))
	}

	return nil
}
