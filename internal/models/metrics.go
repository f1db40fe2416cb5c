package models

// Risk level constants
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// Credit worthiness bands
const (
	WorthinessExcellent = "excellent"
	WorthinessGood      = "good"
	WorthinessFair      = "fair"
	WorthinessPoor      = "poor"
)

// ClientMetrics is a coarse portfolio summary used by the back office for
// client follow-up lists. It is derived from the loan list alone and is
// much cheaper than a full CreditAnalysis.
type ClientMetrics struct {
	UserID           string `json:"user_id"`
	TotalLoans       int    `json:"total_loans"`
	PendingLoans     int    `json:"pending_loans"`
	CreditScore      int    `json:"credit_score"`
	RiskLevel        string `json:"risk_level"`
	CreditWorthiness string `json:"credit_worthiness"`
}
