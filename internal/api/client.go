// Package api implements the client for the Clarity REST backend.
//
// The backend owns transactions and authentication; this client only moves
// them over the wire. All derived state (totals, series, limits,
// milestones) is computed elsewhere from the snapshots this client fetches.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/model"
)

// Client talks to the backend over HTTP. Construct one per session with
// NewClient and attach the access token after login.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// TokenPair is the response to a successful login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ListQuery holds the optional transaction filters. Empty fields are left
// out of the request entirely; the backend treats absent and empty the
// same way ("no filter").
type ListQuery struct {
	Type     string
	Category string
	DateFrom string
	DateTo   string
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetAccessToken attaches the bearer token used on authenticated requests.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// Login exchanges credentials for a token pair. Bad credentials surface as
// ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	body := map[string]string{"username": username, "password": password}

	var tokens TokenPair
	if err := c.do(ctx, http.MethodPost, "/login/", body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new account. Field-keyed validation failures come
// back as *ValidationError.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/register/", reg, nil)
}

// ListTransactions fetches the transaction snapshot matching the query.
// Every mutation is followed by a fresh call here; the client never patches
// a snapshot in place.
func (c *Client) ListTransactions(ctx context.Context, query ListQuery) ([]model.Transaction, error) {
	params := url.Values{}
	if query.Type != "" {
		params.Set("type", query.Type)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.DateFrom != "" {
		params.Set("date_from", query.DateFrom)
	}
	if query.DateTo != "" {
		params.Set("date_to", query.DateTo)
	}

	path := "/transactions/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &transactions); err != nil {
		return nil, err
	}

	slog.Debug("Fetched transactions",
		"count", len(transactions),
		"filtered", query != ListQuery{})

	return transactions, nil
}

// CreateTransaction sends a new transaction to the backend and returns the
// created record with its server-assigned ID and timestamps.
func (c *Client) CreateTransaction(ctx context.Context, draft model.Draft) (*model.Transaction, error) {
	var created model.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction replaces the transaction with the given ID.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, draft model.Draft) (*model.Transaction, error) {
	var updated model.Transaction
	path := fmt.Sprintf("/transactions/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes the transaction with the given ID.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/transactions/%d/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one request: marshal the body, attach auth, classify the
// response. out may be nil for requests with no interesting response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound

	case resp.StatusCode == http.StatusBadRequest:
		return decodeValidationError(resp.Body)

	default:
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend error: %d - %s", resp.StatusCode, string(data))
	}
}

// decodeValidationError parses the backend's field-keyed error shape.
// Values may be arrays of strings or a single string; both are seen in the
// wild depending on the failing validator.
func decodeValidationError(body io.Reader) error {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return &ValidationError{}
	}

	fields := make(map[string][]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = []string{v}
		case []any:
			msgs := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					msgs = append(msgs, s)
				}
			}
			fields[key] = msgs
		}
	}
	return &ValidationError{Fields: fields}
}
