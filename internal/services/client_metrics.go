package services

import "github.com/finbridge/credit-engine/internal/models"

// SummarizeClientMetrics derives the coarse portfolio summary the back
// office uses for follow-up lists: pending-loan counts, a simple portfolio
// score and the derived risk level.
func SummarizeClientMetrics(userID string, loans []models.Loan) models.ClientMetrics {
	total := len(loans)
	pending := 0
	for i := range loans {
		if loans[i].IsPending() {
			pending++
		}
	}

	score := 100 - pending*10
	if score < 0 {
		score = 0
	}

	return models.ClientMetrics{
		UserID:           userID,
		TotalLoans:       total,
		PendingLoans:     pending,
		CreditScore:      score,
		RiskLevel:        ClassifyRisk(pending, total),
		CreditWorthiness: CreditWorthiness(score),
	}
}

// ClassifyRisk buckets a borrower by the share of loans still pending.
func ClassifyRisk(pendingLoans, totalLoans int) string {
	if pendingLoans == 0 {
		return models.RiskLevelLow
	}
	if float64(pendingLoans)/float64(totalLoans) > 0.5 {
		return models.RiskLevelHigh
	}
	return models.RiskLevelMedium
}

// CreditWorthiness bands a 0-100 score into the wording used on client
// assessments.
func CreditWorthiness(score int) string {
	switch {
	case score >= 80:
		return models.WorthinessExcellent
	case score >= 60:
		return models.WorthinessGood
	case score >= 40:
		return models.WorthinessFair
	default:
		return models.WorthinessPoor
	}
}
