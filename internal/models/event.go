// internal/models/event.go
package models

// LoanEvent is the immutable record emitted to the event stream after an
// application reaches a terminal status. Ownership passes to the transport
// on publish; it is never retried.
type LoanEvent struct {
	ApplicationID string   `json:"applicationId"`
	ApplicantName string   `json:"applicantName"`
	LoanAmount    float64  `json:"loanAmount"`
	Status        string   `json:"status"`
	Timestamp     string   `json:"timestamp"`
	Eligibility   Decision `json:"eligibility"`
}

// StatsResponse carries the synthetic aggregate figures served by the stats
// endpoint.
type StatsResponse struct {
	TotalApplications    int     `json:"totalApplications"`
	ApprovedApplications int     `json:"approvedApplications"`
	RejectedApplications int     `json:"rejectedApplications"`
	AverageLoanAmount    float64 `json:"averageLoanAmount"`
	ApprovalRate         float64 `json:"approvalRate"`
	Timestamp            string  `json:"timestamp"`
}
