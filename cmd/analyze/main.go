package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/finbridge/credit-engine/internal/clients"
	"github.com/finbridge/credit-engine/internal/config"
	"github.com/finbridge/credit-engine/internal/services"
	"github.com/finbridge/credit-engine/pkg/logger"
)

// Back-office diagnostic tool: runs a credit analysis against the live
// profile and loan services and prints the JSON result.
func main() {
	borrowerID := flag.String("borrower", "", "borrower id to analyze")
	document := flag.String("document", "", "document number to analyze")
	all := flag.Bool("all", false, "analyze every known borrower")
	metricsOnly := flag.Bool("metrics", false, "print the portfolio summary instead of the full analysis (requires -borrower)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	var profiles clients.ProfileSource = clients.NewProfileClient(cfg.ProfileServiceURL, cfg.HTTPTimeout)
	var loans clients.LoanSource = clients.NewLoanClient(cfg.LoanServiceURL, cfg.HTTPTimeout)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		profiles = clients.NewCachedProfileSource(profiles, rdb, cfg.CacheTTL)
		loans = clients.NewCachedLoanSource(loans, rdb, cfg.CacheTTL)
		logger.Info("source caching enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	svc := services.NewServices(profiles, loans, cfg).CreditAnalysis
	ctx := context.Background()

	var result any
	switch {
	case *all:
		result, err = svc.AnalyzeAll(ctx)
	case *document != "":
		result, err = svc.AnalyzeByDocument(ctx, *document)
	case *borrowerID != "" && *metricsOnly:
		result, err = svc.PortfolioMetrics(ctx, *borrowerID)
	case *borrowerID != "":
		result, err = svc.Analyze(ctx, *borrowerID)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		sentry.CaptureException(err)
		switch {
		case errors.Is(err, clients.ErrNotFound):
			logger.Error("borrower not found", "error", err)
		case errors.Is(err, clients.ErrSourceUnavailable):
			logger.Error("metrics unavailable for this client", "error", err)
		default:
			logger.Error("analysis failed", "error", err)
		}
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	os.Stdout.Write(append(out, '\n'))
}
