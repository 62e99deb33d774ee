// internal/models/application.go
package models

// Application statuses. Only the two terminal values are ever persisted;
// pending exists as an in-memory construction step during intake.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is the authoritative record of one loan request.
type Application struct {
	ID               string  `json:"id"`
	ApplicantName    string  `json:"applicantName"`
	Email            string  `json:"email"`
	PhoneNumber      string  `json:"phoneNumber"`
	AnnualIncome     float64 `json:"annualIncome"`
	LoanAmount       float64 `json:"loanAmount"`
	LoanPurpose      string  `json:"loanPurpose"`
	CreditScore      *int    `json:"creditScore,omitempty"`
	EmploymentStatus string  `json:"employmentStatus"`
	Timestamp        string  `json:"timestamp"`
	Status           string  `json:"status"`
}

// Decision is the eligibility outcome computed for one application.
type Decision struct {
	Eligible      bool    `json:"eligible"`
	InterestRate  float64 `json:"interestRate"`
	MaxLoanAmount float64 `json:"maxLoanAmount"`
	Reasoning     string  `json:"reasoning"`
}

// ApplyRequest is the inbound payload for a new application. Identifier,
// timestamp and status are assigned by the service.
type ApplyRequest struct {
	ApplicantName    string  `json:"applicantName"`
	Email            string  `json:"email"`
	PhoneNumber      string  `json:"phoneNumber"`
	AnnualIncome     float64 `json:"annualIncome"`
	LoanAmount       float64 `json:"loanAmount"`
	LoanPurpose      string  `json:"loanPurpose"`
	CreditScore      *int    `json:"creditScore,omitempty"`
	EmploymentStatus string  `json:"employmentStatus"`
}

// ApplyResponse summarizes the intake outcome for the caller.
type ApplyResponse struct {
	ApplicationID string   `json:"applicationId"`
	Status        string   `json:"status"`
	Eligibility   Decision `json:"eligibility"`
	Message       string   `json:"message"`
}

// StatusResponse is the reduced read-side view of an application.
type StatusResponse struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}
