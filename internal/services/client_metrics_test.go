package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbridge/credit-engine/internal/models"
)

func TestSummarizeClientMetrics(t *testing.T) {
	loans := []models.Loan{
		{RemainingBalance: 500},
		{RemainingBalance: 0},
		{RemainingBalance: 300},
	}

	metrics := SummarizeClientMetrics("user-1", loans)

	assert.Equal(t, "user-1", metrics.UserID)
	assert.Equal(t, 3, metrics.TotalLoans)
	assert.Equal(t, 2, metrics.PendingLoans)
	assert.Equal(t, 80, metrics.CreditScore)
	assert.Equal(t, models.RiskLevelHigh, metrics.RiskLevel)
	assert.Equal(t, models.WorthinessExcellent, metrics.CreditWorthiness)
}

func TestSummarizeClientMetrics_ScoreFloorsAtZero(t *testing.T) {
	loans := make([]models.Loan, 12)
	for i := range loans {
		loans[i].RemainingBalance = 100
	}

	metrics := SummarizeClientMetrics("user-2", loans)

	assert.Equal(t, 0, metrics.CreditScore)
	assert.Equal(t, models.WorthinessPoor, metrics.CreditWorthiness)
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name     string
		pending  int
		total    int
		expected string
	}{
		{"no loans", 0, 0, models.RiskLevelLow},
		{"all settled", 0, 4, models.RiskLevelLow},
		{"minority pending", 2, 5, models.RiskLevelMedium},
		{"exactly half pending", 2, 4, models.RiskLevelMedium},
		{"majority pending", 3, 4, models.RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRisk(tt.pending, tt.total))
		})
	}
}

func TestCreditWorthiness(t *testing.T) {
	assert.Equal(t, models.WorthinessExcellent, CreditWorthiness(80))
	assert.Equal(t, models.WorthinessGood, CreditWorthiness(65))
	assert.Equal(t, models.WorthinessFair, CreditWorthiness(40))
	assert.Equal(t, models.WorthinessPoor, CreditWorthiness(39))
}
