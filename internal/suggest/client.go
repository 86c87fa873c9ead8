// Package suggest calls the external description-suggestion service. The
// upstream is opaque text generation: one POST, no retry, no timeout; any
// failure degrades to "no suggestion available" rather than an error page.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no upstream endpoint is set.
var ErrNotConfigured = errors.New("suggestion service is not configured")

// EntityRef identifies a building or team for the upstream prompt.
type EntityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Request is the upstream request body.
type Request struct {
	Title            string    `json:"title"`
	Building         EntityRef `json:"building"`
	Team             EntityRef `json:"team"`
	OrganizationName string    `json:"organization_name"`
}

type upstreamResponse struct {
	Suggestion string `json:"suggestion"`
	Error      string `json:"error"`
}

// Client talks to the suggestion upstream.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a suggestion client. An empty endpoint disables the
// service; Suggest then returns ErrNotConfigured.
func NewClient(endpoint string, logger *zap.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Suggest requests a generated event description. Non-success responses are
// converted to errors carrying the upstream's error text.
func (cl *Client) Suggest(ctx context.Context, req Request) (string, error) {
	if cl.endpoint == "" {
		return "", ErrNotConfigured
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := cl.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	var out upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("malformed suggestion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", errors.New(out.Error)
		}
		return "", fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}
	cl.logger.Debug("suggestion generated", zap.String("title", req.Title))
	return out.Suggestion, nil
}
