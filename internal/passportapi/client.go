// Package passportapi is the HTTP client of the remote passport API that owns
// passport persistence.
package passportapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/rs/zerolog"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client performs the passport API operations. One call issues exactly one request.
type Client interface {
	// List returns every passport known to the API.
	List(ctx context.Context) ([]model.Passport, error)

	// Read returns one passport. Returns model.ErrPassportNotFound on 404.
	Read(ctx context.Context, id string) (*model.Passport, error)

	// Create stores a new passport and returns the UUID assigned by the API.
	// The UUID is empty when the API does not echo it back.
	Create(ctx context.Context, p model.Passport) (string, error)

	// Update replaces the passport stored under id.
	Update(ctx context.Context, id string, p model.Passport) error

	// Delete removes the passport stored under id.
	Delete(ctx context.Context, id string) error
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("passport API %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap lets callers match any API failure with errors.Is(err, model.ErrUpstream),
// and a 404 with model.ErrPassportNotFound.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return model.ErrPassportNotFound
	}
	return model.ErrUpstream
}

// httpClient implements Client over net/http.
type httpClient struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a passport API client for baseURL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a passport API client using the given http.Client.
func NewClientWithHTTP(baseURL string, hc *http.Client, logger zerolog.Logger) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		logger:  logger.With().Str("component", "passport-api").Logger(),
	}
}

// List handles GET /list_qr. The API may answer with a bare array or with
// an object holding the array under "items".
func (c *httpClient) List(ctx context.Context) ([]model.Passport, error) {
	body, err := c.do(ctx, http.MethodGet, "/list_qr", nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []model.Passport{}, nil
	}

	var passports []model.Passport
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &passports); err != nil {
			return nil, c.decodeError("/list_qr", err)
		}
	} else {
		var wrapped struct {
			Items []model.Passport `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, c.decodeError("/list_qr", err)
		}
		passports = wrapped.Items
	}

	if passports == nil {
		passports = []model.Passport{}
	}

	c.logger.Debug().Int("count", len(passports)).Msg("listed passports")
	return passports, nil
}

// Read handles GET /read_qr/{id}.
func (c *httpClient) Read(ctx context.Context, id string) (*model.Passport, error) {
	path := "/read_qr/" + url.PathEscape(id)
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var p model.Passport
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, c.decodeError(path, err)
	}
	if p.UUID == "" {
		p.UUID = id
	}

	return &p, nil
}

// Create handles POST /create_qr. The UUID is never sent.
func (c *httpClient) Create(ctx context.Context, p model.Passport) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/create_qr", p.WithoutUUID())
	if err != nil {
		return "", err
	}

	var created struct {
		UUID string `json:"uuid"`
		ID   string `json:"id"`
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &created); err != nil {
			c.logger.Warn().Err(err).Msg("create response is not JSON, passport UUID unknown")
			return "", nil
		}
	}

	if created.UUID == "" {
		created.UUID = created.ID
	}
	return created.UUID, nil
}

// Update handles PUT /update_qr/{id}.
func (c *httpClient) Update(ctx context.Context, id string, p model.Passport) error {
	p.UUID = id
	_, err := c.do(ctx, http.MethodPut, "/update_qr/"+url.PathEscape(id), p)
	return err
}

// Delete handles DELETE /delete_qr/{id}.
func (c *httpClient) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/delete_qr/"+url.PathEscape(id), nil)
	return err
}

// do sends one request and returns the response body of a 2xx answer.
func (c *httpClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode passport: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("passport API request failed")
		return nil, fmt.Errorf("%w: %s %s: %w", model.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("failed to read passport API response")
		return nil, fmt.Errorf("%w: reading %s %s: %w", model.ErrUpstream, method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("passport API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
		if resp.StatusCode == http.StatusNotFound {
			c.logger.Debug().Str("path", path).Msg("passport not found")
		} else {
			c.logger.Error().Err(apiErr).Msg("passport API returned an error")
		}
		return nil, apiErr
	}

	return body, nil
}

func (c *httpClient) decodeError(path string, err error) error {
	c.logger.Error().Err(err).Str("path", path).Msg("failed to decode passport API response")
	return fmt.Errorf("%w: decoding %s: %w", model.ErrUpstream, path, err)
}
