package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/finbridge/credit-engine/internal/models"
	"github.com/finbridge/credit-engine/pkg/logger"
)

// LoanClient fetches a borrower's loans from the loan service over HTTP.
//
// Unlike an earlier incarnation of this adapter, it never swallows a fetch
// failure into an empty loan list: analyzing a zeroed borrower because the
// loan service was down is worse than failing the analysis.
type LoanClient struct {
	httpClient
}

// NewLoanClient creates an HTTP-backed LoanSource
func NewLoanClient(baseURL string, timeout time.Duration) *LoanClient {
	return &LoanClient{httpClient: newHTTPClient(baseURL, timeout)}
}

var _ LoanSource = (*LoanClient)(nil)

// loanPayload mirrors the loan service wire format
type loanPayload struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Status           string           `json:"status"`
	RemainingBalance *float64         `json:"remainingBalance"`
	InstallmentValue *float64         `json:"installmentValue"`
	Payments         []paymentPayload `json:"payments"`
}

type paymentPayload struct {
	ID      string   `json:"id"`
	Amount  *float64 `json:"amount"`
	Date    string   `json:"date"`
	DueDate string   `json:"dueDate"`
}

func (l *loanPayload) normalize() models.Loan {
	loan := models.Loan{
		ID:       l.ID,
		UserID:   l.UserID,
		Status:   l.Status,
		Payments: make([]models.Payment, 0, len(l.Payments)),
	}
	if l.RemainingBalance != nil && *l.RemainingBalance > 0 {
		loan.RemainingBalance = *l.RemainingBalance
	}
	if l.InstallmentValue != nil && *l.InstallmentValue > 0 {
		loan.InstallmentValue = *l.InstallmentValue
	}
	for _, p := range l.Payments {
		payment := models.Payment{
			ID:         p.ID,
			ActualDate: p.Date,
			DueDate:    p.DueDate,
		}
		if p.Amount != nil && *p.Amount > 0 {
			payment.Amount = *p.Amount
		}
		loan.Payments = append(loan.Payments, payment)
	}
	return loan
}

// GetLoans returns all loans for a borrower, payments included
func (c *LoanClient) GetLoans(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/loans/user/%s", c.baseURL, url.PathEscape(borrowerID)))
	if err != nil {
		return nil, err
	}

	var payloads []loanPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: decoding loans for %s: %v", ErrSourceUnavailable, borrowerID, err)
	}

	loans := make([]models.Loan, 0, len(payloads))
	for i := range payloads {
		loans = append(loans, payloads[i].normalize())
	}
	logger.Debug("fetched loans", "borrower_id", borrowerID, "count", len(loans))
	return loans, nil
}
