package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventregistration/internal/domain"
)

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient returns a client for the registration API at baseURL.
func NewHTTPClient(baseURL string, client *http.Client) domain.RegistrationClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

func (c *httpClient) Events(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/events", http.StatusOK, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *httpClient) Sessions(ctx context.Context, eventID int) ([]*domain.Session, error) {
	var sessions []*domain.Session
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/sessions", eventID), http.StatusOK, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *httpClient) RegisterForEvent(ctx context.Context, eventID int) (*domain.Confirmation, error) {
	var conf domain.Confirmation
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/register", eventID), http.StatusCreated, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *httpClient) RegisterForSession(ctx context.Context, eventID, sessionID int) (*domain.Confirmation, error) {
	var conf domain.Confirmation
	path := fmt.Sprintf("/events/%d/sessions/%d/register", eventID, sessionID)
	if err := c.do(ctx, http.MethodPost, path, http.StatusCreated, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// apiError is the error body returned by the registration API.
type apiError struct {
	Message string `json:"message"`
}

func (c *httpClient) do(ctx context.Context, method, path string, wantStatus int, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call registration api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var body apiError
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %s: %w", method, path, body.Message, domain.ErrNotFound)
		}
		return fmt.Errorf("%s %s: registration api returned status %d: %s", method, path, resp.StatusCode, body.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: empty response body", method, path)
		}
		return fmt.Errorf("failed to decode registration response: %w", err)
	}
	return nil
}
