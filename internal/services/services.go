package services

import (
	"github.com/finbridge/credit-engine/internal/clients"
	"github.com/finbridge/credit-engine/internal/config"
)

// Services holds all service instances
type Services struct {
	CreditAnalysis *CreditAnalysisService
}

// NewServices creates all service instances
func NewServices(profiles clients.ProfileSource, loans clients.LoanSource, cfg *config.Config) *Services {
	return &Services{
		CreditAnalysis: NewCreditAnalysisService(profiles, loans, cfg.AnalysisWorkers),
	}
}
