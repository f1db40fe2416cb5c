package services

import "github.com/finbridge/credit-engine/internal/models"

// CalculatePaymentHistory computes payment-behavior metrics over a
// borrower's full loan list. Payments whose dates cannot be parsed remain
// in the total and count as late, so on-time + late always equals total.
func CalculatePaymentHistory(loans []models.Loan) models.PaymentHistoryMetrics {
	var total, onTime int
	for i := range loans {
		for j := range loans[i].Payments {
			total++
			if loans[i].Payments[j].OnTime() {
				onTime++
			}
		}
	}

	metrics := models.PaymentHistoryMetrics{
		TotalPayments:  total,
		OnTimePayments: onTime,
		LatePayments:   total - onTime,
	}
	if total > 0 {
		metrics.OnTimePercentage = float64(onTime) / float64(total) * 100
	}
	return metrics
}

// CalculateDefaultLevel returns the percentage of a borrower's payments
// that were late. Zero when the borrower has no payments at all.
func CalculateDefaultLevel(history models.PaymentHistoryMetrics) float64 {
	if history.TotalPayments == 0 {
		return 0
	}
	return float64(history.LatePayments) / float64(history.TotalPayments) * 100
}
