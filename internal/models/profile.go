package models

// Profile represents a borrower's financial identity as served by the
// profile service. Optional wire fields are already defaulted: a missing
// monthly income arrives here as 0.
type Profile struct {
	UserID         string  `json:"id_user"`
	Name           string  `json:"name"`
	DocumentNumber string  `json:"document_number"`
	Phone          string  `json:"phone,omitempty"`
	MonthlyIncome  float64 `json:"monthly_income"`
}
