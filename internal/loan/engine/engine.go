// Package engine computes loan eligibility decisions. Evaluate is a pure
// function of the application's income, loan amount, credit score and
// employment status; it performs no I/O and never fails.
package engine

import "loan-intake/internal/models"

const (
	// DefaultCreditScore is assumed when the applicant provides none.
	DefaultCreditScore = 650

	maxDebtToIncomeRatio = 0.40
	minEligibleScore     = 550
)

// The two fixed reasoning strings carried on every decision.
const (
	ReasonApproved = "Application meets all criteria for approval"
	ReasonRejected = "Application does not meet minimum requirements"
)

// Evaluate expects a positive annual income and loan amount; the intake
// validation rejects anything else before this runs.
func Evaluate(app *models.Application) models.Decision {
	debtToIncomeRatio := app.LoanAmount / app.AnnualIncome

	creditScore := DefaultCreditScore
	if app.CreditScore != nil {
		creditScore = *app.CreditScore
	}

	// Tier selection is an ordered chain, not disjoint bands: scores in
	// 600-699 intentionally fall through to the defaults below.
	baseRate := 5.5
	incomeMultiplier := 4.0
	if creditScore >= 750 {
		baseRate = 3.5
		incomeMultiplier = 5.0
	} else if creditScore >= 700 {
		baseRate = 4.5
		incomeMultiplier = 4.5
	} else if creditScore < 600 {
		baseRate = 8.5
		incomeMultiplier = 2.0
	}

	maxLoanAmount := app.AnnualIncome * incomeMultiplier

	eligible := debtToIncomeRatio <= maxDebtToIncomeRatio &&
		creditScore >= minEligibleScore &&
		app.LoanAmount <= maxLoanAmount &&
		app.EmploymentStatus != "unemployed"

	reasoning := ReasonRejected
	if eligible {
		reasoning = ReasonApproved
	}

	return models.Decision{
		Eligible:      eligible,
		InterestRate:  baseRate,
		MaxLoanAmount: maxLoanAmount,
		Reasoning:     reasoning,
	}
}
