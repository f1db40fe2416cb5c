package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/finbridge/credit-engine/internal/models"
	"github.com/finbridge/credit-engine/pkg/logger"
)

// ProfileClient fetches borrower profiles from the user service over HTTP.
type ProfileClient struct {
	httpClient
}

// NewProfileClient creates an HTTP-backed ProfileSource
func NewProfileClient(baseURL string, timeout time.Duration) *ProfileClient {
	return &ProfileClient{httpClient: newHTTPClient(baseURL, timeout)}
}

var _ ProfileSource = (*ProfileClient)(nil)

// profilePayload mirrors the user service wire format. Numeric fields are
// optional on the wire; normalize applies the default-substitution rules so
// downstream arithmetic always sees fully-defaulted values.
type profilePayload struct {
	IDUser            string   `json:"id_user"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Name              string   `json:"name"`
	DocumentNumber    string   `json:"document_number"`
	DocumentNumberAlt string   `json:"documentNumber"`
	Phone             string   `json:"phone"`
	MonthlyIncome     *float64 `json:"monthly_income"`
}

func (p *profilePayload) normalize() models.Profile {
	profile := models.Profile{
		UserID:         p.IDUser,
		Name:           p.Name,
		DocumentNumber: p.DocumentNumber,
		Phone:          p.Phone,
	}
	if profile.Name == "" {
		profile.Name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	if profile.DocumentNumber == "" {
		profile.DocumentNumber = p.DocumentNumberAlt
	}
	if p.MonthlyIncome != nil && *p.MonthlyIncome > 0 {
		profile.MonthlyIncome = *p.MonthlyIncome
	}
	return profile
}

// GetProfile returns the profile for a borrower id
func (c *ProfileClient) GetProfile(ctx context.Context, borrowerID string) (*models.Profile, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/profiles/%s", c.baseURL, url.PathEscape(borrowerID)))
	if err != nil {
		return nil, err
	}
	return decodeProfile(body)
}

// GetProfileByDocument returns the profile matching a document number
func (c *ProfileClient) GetProfileByDocument(ctx context.Context, documentNumber string) (*models.Profile, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/profiles/document/%s", c.baseURL, url.PathEscape(documentNumber)))
	if err != nil {
		return nil, err
	}
	return decodeProfile(body)
}

// ListProfiles returns all borrower profiles
func (c *ProfileClient) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	body, err := c.getJSON(ctx, c.baseURL+"/profiles")
	if err != nil {
		return nil, err
	}

	var payloads []profilePayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("%w: decoding profile list: %v", ErrSourceUnavailable, err)
	}

	profiles := make([]models.Profile, 0, len(payloads))
	for i := range payloads {
		profiles = append(profiles, payloads[i].normalize())
	}
	logger.Debug("fetched profiles", "count", len(profiles))
	return profiles, nil
}

func decodeProfile(body []byte) (*models.Profile, error) {
	var payload profilePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding profile: %v", ErrSourceUnavailable, err)
	}
	profile := payload.normalize()
	return &profile, nil
}
