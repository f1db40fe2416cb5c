package models

import "time"

// Payment represents one scheduled/actual payment event on a loan.
// Dates are kept in their wire form; the loan service does not guarantee
// they parse, and the analysis defines how unparseable dates are treated.
type Payment struct {
	ID         string  `json:"id,omitempty"`
	Amount     float64 `json:"amount"`
	ActualDate string  `json:"date"`
	DueDate    string  `json:"dueDate"`
}

// paymentDateFormats are the timestamp layouts the loan service has been
// observed to emit.
var paymentDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParsePaymentDate parses a wire timestamp, reporting whether it is valid.
func ParsePaymentDate(s string) (time.Time, bool) {
	for _, layout := range paymentDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OnTime returns true if the payment was made on or before its due date.
// A payment whose dates cannot be parsed is never on time.
func (p *Payment) OnTime() bool {
	paid, ok := ParsePaymentDate(p.ActualDate)
	if !ok {
		return false
	}
	due, ok := ParsePaymentDate(p.DueDate)
	if !ok {
		return false
	}
	return !paid.After(due)
}

// Loan is a single credit extended to a borrower. Optional wire fields
// (remaining balance, installment value) are already defaulted to 0 and a
// missing payment list arrives as an empty slice.
type Loan struct {
	ID               string    `json:"id,omitempty"`
	UserID           string    `json:"user_id,omitempty"`
	Status           string    `json:"status,omitempty"`
	RemainingBalance float64   `json:"remainingBalance"`
	InstallmentValue float64   `json:"installmentValue"`
	Payments         []Payment `json:"payments"`
}

// IsPending returns true if the loan still carries outstanding debt.
func (l *Loan) IsPending() bool {
	return l.RemainingBalance > 0
}
