// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package dcapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
)

const (
	LiveBaseURL    = "https://developers.democracyclub.org.uk/api/v1/"
	SandboxBaseURL = "https://developers.democracyclub.org.uk/api/v1/sandbox/"

	utmSource = "ec_postcode_lookup"
)

// Backend is one source of elections data: the live API, the sandbox, or
// the in-process mock.
type Backend interface {
	GetPostcode(ctx context.Context, postcode string) (*models.RootModel, error)
	GetUPRN(ctx context.Context, uprn string) (*models.RootModel, error)
	// URLPrefix names the backend's route family ("live", "sandbox",
	// "mock") when building redirects.
	URLPrefix() string
}

// InvalidPostcodeError means the API rejected the postcode.
type InvalidPostcodeError struct {
	Postcode string
}

func (e *InvalidPostcodeError) Error() string {
	return fmt.Sprintf("invalid postcode %q", e.Postcode)
}

// InvalidUPRNError means the API rejected the address identifier.
type InvalidUPRNError struct {
	UPRN string
}

func (e *InvalidUPRNError) Error() string {
	return fmt.Sprintf("invalid uprn %q", e.UPRN)
}

// APIError is any other non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("elections api returned %d for %s", e.StatusCode, e.Endpoint)
}

// Client talks to the elections API over HTTP. The zero value is not
// usable; construct with NewLiveBackend or NewSandboxBackend.
type Client struct {
	baseURL string
	apiKey  string
	prefix  string
	http    *http.Client
}

func NewLiveBackend(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = LiveBaseURL
	}
	return newClient(apiKey, baseURL, "live")
}

func NewSandboxBackend(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = SandboxBaseURL
	}
	return newClient(apiKey, baseURL, "sandbox")
}

func newClient(apiKey, baseURL, prefix string) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		prefix:  prefix,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) URLPrefix() string {
	return c.prefix
}

// NormalizePostcode uppercases, strips spaces and caps the length the way
// the API expects path components.
func NormalizePostcode(postcode string) string {
	trimmed := strings.ReplaceAll(strings.ToUpper(postcode), " ", "")
	if len(trimmed) > 10 {
		trimmed = trimmed[:10]
	}
	return trimmed
}

func (c *Client) GetPostcode(ctx context.Context, postcode string) (*models.RootModel, error) {
	normalized := NormalizePostcode(postcode)
	root, err := c.get(ctx, "postcode/"+url.PathEscape(normalized)+"/")
	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusNotFound) {
		return nil, &InvalidPostcodeError{Postcode: postcode}
	}
	return root, err
}

func (c *Client) GetUPRN(ctx context.Context, uprn string) (*models.RootModel, error) {
	root, err := c.get(ctx, "address/"+url.PathEscape(uprn)+"/")
	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusNotFound) {
		return nil, &InvalidUPRNError{UPRN: uprn}
	}
	return root, err
}

func (c *Client) get(ctx context.Context, endpoint string) (*models.RootModel, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("building api url: %w", err)
	}
	q := u.Query()
	q.Set("auth_token", c.apiKey)
	q.Set("utm_source", utmSource)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elections api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading api response: %w", err)
	}
	return models.ParseRootModel(body)
}
