package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/finbridge/credit-engine/internal/clients"
	"github.com/finbridge/credit-engine/internal/models"
	"github.com/finbridge/credit-engine/pkg/logger"
)

// CreditAnalysisService derives credit-risk assessments from the profile
// and loan sources. It holds no state beyond its collaborators: every
// result is a pure function of the fetched data, so concurrent calls for
// different borrowers need no coordination.
type CreditAnalysisService struct {
	profiles     clients.ProfileSource
	loans        clients.LoanSource
	batchWorkers int
}

// NewCreditAnalysisService creates the analysis service. batchWorkers
// bounds the fan-out of AnalyzeAll.
func NewCreditAnalysisService(profiles clients.ProfileSource, loans clients.LoanSource, batchWorkers int) *CreditAnalysisService {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &CreditAnalysisService{
		profiles:     profiles,
		loans:        loans,
		batchWorkers: batchWorkers,
	}
}

// Analyze fetches a borrower's profile and loans and returns the full
// credit analysis. The two fetches run concurrently; if either fails the
// analysis fails as a whole and no partial result is returned.
func (s *CreditAnalysisService) Analyze(ctx context.Context, borrowerID string) (*models.CreditAnalysis, error) {
	var (
		profile *models.Profile
		loans   []models.Loan
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.GetProfile(ctx, borrowerID)
		if err != nil {
			return fmt.Errorf("fetching profile for %s: %w", borrowerID, err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		l, err := s.loans.GetLoans(ctx, borrowerID)
		if err != nil {
			return fmt.Errorf("fetching loans for %s: %w", borrowerID, err)
		}
		loans = l
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("credit analysis aborted", "borrower_id", borrowerID, "error", err)
		return nil, err
	}

	return buildAnalysis(profile, loans), nil
}

// AnalyzeByDocument resolves a borrower by document number, then analyzes.
func (s *CreditAnalysisService) AnalyzeByDocument(ctx context.Context, documentNumber string) (*models.BorrowerAnalysis, error) {
	profile, err := s.profiles.GetProfileByDocument(ctx, documentNumber)
	if err != nil {
		return nil, fmt.Errorf("resolving document %s: %w", documentNumber, err)
	}

	analysis, err := s.Analyze(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return &models.BorrowerAnalysis{Profile: *profile, Analysis: analysis}, nil
}

// AnalyzeAll analyzes every known borrower with bounded concurrency,
// preserving the profile listing order in the result. Any fetch failure
// aborts the whole batch.
func (s *CreditAnalysisService) AnalyzeAll(ctx context.Context) ([]models.BorrowerAnalysis, error) {
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	results := make([]models.BorrowerAnalysis, len(profiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)
	for i := range profiles {
		i := i
		g.Go(func() error {
			analysis, err := s.Analyze(ctx, profiles[i].UserID)
			if err != nil {
				return err
			}
			results[i] = models.BorrowerAnalysis{Profile: profiles[i], Analysis: analysis}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("batch credit analysis completed", "borrowers", len(results))
	return results, nil
}

// PortfolioMetrics returns the coarse loan-portfolio summary for one
// borrower. Only the loan source is consulted.
func (s *CreditAnalysisService) PortfolioMetrics(ctx context.Context, borrowerID string) (*models.ClientMetrics, error) {
	loans, err := s.loans.GetLoans(ctx, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("fetching loans for %s: %w", borrowerID, err)
	}

	metrics := SummarizeClientMetrics(borrowerID, loans)
	return &metrics, nil
}

// buildAnalysis runs the pure calculators and shapes the result. The
// punctuality and default-level figures reuse the payment-history metrics
// rather than re-walking the loans.
func buildAnalysis(profile *models.Profile, loans []models.Loan) *models.CreditAnalysis {
	history := CalculatePaymentHistory(loans)
	capacity := CalculateDebtCapacity(profile, loans)

	return &models.CreditAnalysis{
		PaymentHistory: history,
		DebtCapacity:   capacity,
		Punctuality:    history.OnTimePercentage,
		DefaultLevel:   CalculateDefaultLevel(history),
		Recommendation: GenerateRecommendation(history, capacity),
	}
}
