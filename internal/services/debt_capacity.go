package services

import "github.com/finbridge/credit-engine/internal/models"

// maxDebtRatio is the policy ceiling, in percent of monthly income, on a
// borrower's total outstanding debt.
const maxDebtRatio = 40.0

// CalculateDebtCapacity computes a borrower's debt load relative to
// income. Ratios are 0 when income is not positive; the arithmetic never
// divides by zero.
func CalculateDebtCapacity(profile *models.Profile, loans []models.Loan) models.DebtCapacityMetrics {
	var income float64
	if profile != nil {
		income = profile.MonthlyIncome
	}

	var totalDebt, monthlyPayment float64
	for i := range loans {
		totalDebt += loans[i].RemainingBalance
		monthlyPayment += loans[i].InstallmentValue
	}

	metrics := models.DebtCapacityMetrics{
		MonthlyIncome:  income,
		TotalDebt:      totalDebt,
		MonthlyPayment: monthlyPayment,
	}
	if income > 0 {
		metrics.DebtRatio = totalDebt / income * 100
		metrics.PaymentRatio = monthlyPayment / income * 100
	}
	metrics.MaxRecommendedLoan = maxRecommendedLoan(income, metrics.DebtRatio)
	return metrics
}

// maxRecommendedLoan returns the income-proportional borrowing room still
// available under the debt-ratio ceiling.
func maxRecommendedLoan(monthlyIncome, debtRatio float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	available := maxDebtRatio - debtRatio
	if available <= 0 {
		return 0
	}
	return monthlyIncome * available / 100
}
