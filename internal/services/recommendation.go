package services

import "github.com/finbridge/credit-engine/internal/models"

// Scoring policy constants
const (
	baseScore               = 100
	approvalThreshold       = 60
	minOnTimePercentage     = 80.0
	irregularHistoryPenalty = 20
	overLeveragePenalty     = 30
)

// Risk and recommendation wordings surfaced to the back office
const (
	RiskIrregularHistory       = "irregular payment history"
	RiskHighDebtRatio          = "high debt-to-income ratio"
	AdviceAdditionalCollateral = "require additional collateral"
	AdviceReduceAmount         = "reduce requested loan amount"
)

// GenerateRecommendation scores a borrower from the payment-history and
// debt-capacity metrics. The rules are independent and may both fire; the
// final score is clamped to [0, 100]. Deterministic, no state.
func GenerateRecommendation(history models.PaymentHistoryMetrics, capacity models.DebtCapacityMetrics) models.CreditRecommendation {
	score := baseScore
	risks := []string{}
	recommendations := []string{}

	if history.OnTimePercentage < minOnTimePercentage {
		score -= irregularHistoryPenalty
		risks = append(risks, RiskIrregularHistory)
		recommendations = append(recommendations, AdviceAdditionalCollateral)
	}

	if capacity.DebtRatio > maxDebtRatio {
		score -= overLeveragePenalty
		risks = append(risks, RiskHighDebtRatio)
		recommendations = append(recommendations, AdviceReduceAmount)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return models.CreditRecommendation{
		Score:           score,
		Approved:        score >= approvalThreshold,
		MaxAmount:       capacity.MaxRecommendedLoan,
		Risks:           risks,
		Recommendations: recommendations,
	}
}
