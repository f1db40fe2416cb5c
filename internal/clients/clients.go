// Package clients contains the read-only collaborators the credit analysis
// engine depends on: the profile service and the loan service. Adapters in
// this package surface fetch failures as distinguishable errors instead of
// returning zeroed fallback data, so the analysis layer can tell a real
// outage from an empty portfolio.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/finbridge/credit-engine/internal/models"
)

// Common client errors
var (
	// ErrNotFound means the borrower does not exist in the source.
	ErrNotFound = errors.New("registro no encontrado")
	// ErrSourceUnavailable means the source could not be reached or
	// answered with a server error.
	ErrSourceUnavailable = errors.New("fuente de datos no disponible")
)

// ProfileSource supplies borrower identity and income data.
type ProfileSource interface {
	GetProfile(ctx context.Context, borrowerID string) (*models.Profile, error)
	GetProfileByDocument(ctx context.Context, documentNumber string) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

// LoanSource supplies a borrower's loans with embedded payment records.
// An empty slice is a valid result (borrower with no loans), not an error.
type LoanSource interface {
	GetLoans(ctx context.Context, borrowerID string) ([]models.Loan, error)
}

// httpClient is the shared transport for the HTTP source adapters.
type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(baseURL string, timeout time.Duration) httpClient {
	return httpClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// getJSON performs a GET and returns the response body with any
// {message, data} envelope stripped. Failures map onto the client error
// taxonomy: 404 becomes ErrNotFound, everything else ErrSourceUnavailable.
func (c *httpClient) getJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrSourceUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: GET %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrSourceUnavailable, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSourceUnavailable, url, err)
	}

	return unwrap(body), nil
}

// unwrap extracts the payload from responses wrapped as {message, data}.
// Bare payloads pass through untouched.
func unwrap(body []byte) []byte {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return body
}
