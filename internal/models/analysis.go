package models

// PaymentHistoryMetrics summarizes a borrower's payment behavior across
// all loans.
type PaymentHistoryMetrics struct {
	TotalPayments    int     `json:"total_payments"`
	OnTimePayments   int     `json:"on_time_payments"`
	LatePayments     int     `json:"late_payments"`
	OnTimePercentage float64 `json:"on_time_percentage"`
}

// DebtCapacityMetrics summarizes a borrower's debt load relative to income.
type DebtCapacityMetrics struct {
	MonthlyIncome      float64 `json:"monthly_income"`
	TotalDebt          float64 `json:"total_debt"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	DebtRatio          float64 `json:"debt_ratio"`
	PaymentRatio       float64 `json:"payment_ratio"`
	MaxRecommendedLoan float64 `json:"max_recommended_loan"`
}

// CreditRecommendation is the approval decision derived from the metrics.
type CreditRecommendation struct {
	Score           int      `json:"score"`
	Approved        bool     `json:"approved"`
	MaxAmount       float64  `json:"max_amount"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// CreditAnalysis is the full credit-risk assessment for one borrower.
// It is a plain value: callers may serialize or persist it unchanged, and
// nothing mutates it after construction.
type CreditAnalysis struct {
	PaymentHistory PaymentHistoryMetrics `json:"payment_history"`
	DebtCapacity   DebtCapacityMetrics   `json:"debt_capacity"`
	Punctuality    float64               `json:"punctuality"`
	DefaultLevel   float64               `json:"default_level"`
	Recommendation CreditRecommendation  `json:"recommendation"`
}

// BorrowerAnalysis pairs a borrower profile with its analysis, used by
// batch analysis over all clients.
type BorrowerAnalysis struct {
	Profile  Profile         `json:"profile"`
	Analysis *CreditAnalysis `json:"analysis"`
}
