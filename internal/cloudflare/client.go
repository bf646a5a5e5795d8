// Package cloudflare is a minimal read-only client for the Cloudflare API v4.
//
// It issues a single GET against the zone-listing endpoint and maps the
// response onto domain.Zone values. Errors are classified with the sentinels
// in the domain package so the CLI can tell a malformed authorization header
// apart from any other rejected request.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nathanbeddoewebdev/cfhost/internal/credentials"
	"nathanbeddoewebdev/cfhost/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	cloudflareBaseURL = "https://api.cloudflare.com/client/v4"
	cloudflareTimeout = 30 * time.Second

	// codeInvalidAuthHeader is returned with HTTP 400 when the
	// Authorization / X-Auth-* headers are malformed.
	codeInvalidAuthHeader = 6111
)

// Client lists zones for one credential. A credential with an email uses
// X-Auth-Email / X-Auth-Key; otherwise the key is sent as a bearer token.
type Client struct {
	cred    credentials.Credential
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given credential.
func NewClient(cred credentials.Credential) *Client {
	return &Client{
		cred:    cred,
		baseURL: cloudflareBaseURL,
		client:  &http.Client{Timeout: cloudflareTimeout},
	}
}

// --- API response types ---

// cfListEnvelope is the standard Cloudflare list response wrapper.
type cfListEnvelope[T any] struct {
	Success bool      `json:"success"`
	Errors  []cfError `json:"errors"`
	Result  []T       `json:"result"`
}

// cfError represents a single Cloudflare API error.
type cfError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// cfZone is the Cloudflare zone object.
type cfZone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// --- HTTP helpers ---

// setAuth applies the credential headers to req.
func (c *Client) setAuth(req *http.Request) {
	if c.cred.Email != "" {
		req.Header.Set("X-Auth-Email", c.cred.Email)
		req.Header.Set("X-Auth-Key", c.cred.Key)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.cred.Key)
	}
	req.Header.Set("Content-Type", "application/json")
}

// get performs a GET and returns the status code and raw body.
func (c *Client) get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("cloudflare: failed to build request: %w", err)
	}
	c.setAuth(req)

	logrus.Debugf("cloudflare: GET %s", path)
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("cloudflare: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("cloudflare: failed to read response: %w", err)
	}
	logrus.Debugf("cloudflare: GET %s -> %d", path, resp.StatusCode)
	return resp.StatusCode, body, nil
}

// statusError classifies a non-200 response. A 400 whose first error carries
// code 6111 maps to domain.ErrInvalidAuthHeader; everything else maps to
// domain.ErrRetrieveFailed with the status and raw body attached.
func statusError(what string, status int, body []byte) error {
	if status == http.StatusBadRequest {
		var env cfListEnvelope[json.RawMessage]
		if err := json.Unmarshal(body, &env); err == nil &&
			len(env.Errors) > 0 && env.Errors[0].Code == codeInvalidAuthHeader {
			return fmt.Errorf("%w: %s (check the API key and email)", domain.ErrInvalidAuthHeader, env.Errors[0].Message)
		}
	}
	return fmt.Errorf("%w %s: %d %s", domain.ErrRetrieveFailed, what, status, strings.TrimSpace(string(body)))
}

// --- Zone listing ---

// ListZones returns every zone visible to the credential, in API order.
// It performs exactly one request and does not retry.
func (c *Client) ListZones(ctx context.Context) ([]domain.Zone, error) {
	status, body, err := c.get(ctx, "/zones")
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	if status != http.StatusOK {
		return nil, statusError("zones", status, body)
	}

	var out cfListEnvelope[cfZone]
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("cloudflare: failed to decode zones: %w", err)
	}

	zones := make([]domain.Zone, 0, len(out.Result))
	for _, z := range out.Result {
		zones = append(zones, domain.Zone{ID: z.ID, Name: z.Name, Status: z.Status})
	}
	return zones, nil
}

// ZoneIDs returns the identifiers of all zones, in API order.
func (c *Client) ZoneIDs(ctx context.Context) ([]string, error) {
	zones, err := c.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	return IDs(zones), nil
}

// DomainNames returns the names of all zones, in API order.
func (c *Client) DomainNames(ctx context.Context) ([]string, error) {
	zones, err := c.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	return Names(zones), nil
}

// IDs projects zones onto their identifiers.
func IDs(zones []domain.Zone) []string {
	ids := make([]string, 0, len(zones))
	for _, z := range zones {
		ids = append(ids, z.ID)
	}
	return ids
}

// Names projects zones onto their domain names.
func Names(zones []domain.Zone) []string {
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.Name)
	}
	return names
}
