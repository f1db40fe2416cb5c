package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbridge/credit-engine/internal/models"
)

func TestCalculateDebtCapacity_SumsAcrossLoans(t *testing.T) {
	profile := &models.Profile{MonthlyIncome: 5000}
	loans := []models.Loan{
		{RemainingBalance: 800, InstallmentValue: 200},
		{RemainingBalance: 200, InstallmentValue: 50},
	}

	metrics := CalculateDebtCapacity(profile, loans)

	assert.Equal(t, 5000.0, metrics.MonthlyIncome)
	assert.Equal(t, 1000.0, metrics.TotalDebt)
	assert.Equal(t, 250.0, metrics.MonthlyPayment)
	assert.Equal(t, 20.0, metrics.DebtRatio)
	assert.Equal(t, 5.0, metrics.PaymentRatio)
	// 40% ceiling minus 20% used leaves 20% of income
	assert.Equal(t, 1000.0, metrics.MaxRecommendedLoan)
}

func TestCalculateDebtCapacity_ZeroIncome(t *testing.T) {
	profile := &models.Profile{MonthlyIncome: 0}
	loans := []models.Loan{{RemainingBalance: 1000, InstallmentValue: 100}}

	metrics := CalculateDebtCapacity(profile, loans)

	assert.Equal(t, 0.0, metrics.DebtRatio)
	assert.Equal(t, 0.0, metrics.PaymentRatio)
	assert.Equal(t, 0.0, metrics.MaxRecommendedLoan)
}

func TestCalculateDebtCapacity_NilProfile(t *testing.T) {
	metrics := CalculateDebtCapacity(nil, []models.Loan{{RemainingBalance: 1000}})

	assert.Equal(t, 0.0, metrics.MonthlyIncome)
	assert.Equal(t, 0.0, metrics.DebtRatio)
	assert.Equal(t, 0.0, metrics.MaxRecommendedLoan)
}

func TestCalculateDebtCapacity_NoHeadroomLeft(t *testing.T) {
	profile := &models.Profile{MonthlyIncome: 1000}
	loans := []models.Loan{{RemainingBalance: 2000, InstallmentValue: 500}}

	metrics := CalculateDebtCapacity(profile, loans)

	assert.Equal(t, 200.0, metrics.DebtRatio)
	assert.Equal(t, 0.0, metrics.MaxRecommendedLoan)
}

func TestCalculateDebtCapacity_NoLoans(t *testing.T) {
	profile := &models.Profile{MonthlyIncome: 3000}

	metrics := CalculateDebtCapacity(profile, nil)

	assert.Equal(t, 0.0, metrics.TotalDebt)
	assert.Equal(t, 0.0, metrics.DebtRatio)
	// Full 40% headroom available
	assert.Equal(t, 1200.0, metrics.MaxRecommendedLoan)
}

func TestCalculateDebtCapacity_ExactlyAtCeiling(t *testing.T) {
	profile := &models.Profile{MonthlyIncome: 1000}
	loans := []models.Loan{{RemainingBalance: 400}}

	metrics := CalculateDebtCapacity(profile, loans)

	assert.Equal(t, 40.0, metrics.DebtRatio)
	assert.Equal(t, 0.0, metrics.MaxRecommendedLoan)
}
