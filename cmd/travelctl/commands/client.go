package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	apiPrefix     = "/api/v1/agent"
	headerUserID  = "X-User-ID"
	clientTimeout = 2 * time.Minute
)

var ErrMissingUser = errors.New("a user id is required (--user or TRAVELCTL_USER)")

// Client calls the agent HTTP API.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

func NewClient(baseURL, userID string) (*Client, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid server %q: %w", baseURL, err)
	}
	return &Client{
		baseURL:    baseURL,
		userID:     userID,
		httpClient: &http.Client{Timeout: clientTimeout},
	}, nil
}

// Answer mirrors the query response.
type Answer struct {
	Text       string           `json:"text" yaml:"text"`
	AgentUsed  string           `json:"agentUsed" yaml:"agentUsed"`
	Confidence float64          `json:"confidence" yaml:"confidence"`
	Error      string           `json:"error,omitempty" yaml:"error,omitempty"`
	Options    []map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Turn is one stored exchange.
type Turn struct {
	Query     string `json:"query" yaml:"query"`
	Response  string `json:"response" yaml:"response"`
	AgentUsed string `json:"agentUsed,omitempty" yaml:"agentUsed,omitempty"`
	TripID    string `json:"tripId,omitempty" yaml:"tripId,omitempty"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// APIError is a non-2xx reply from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (c *Client) Ask(ctx context.Context, query, tripID string, queryContext map[string]string) (Answer, error) {
	body := map[string]any{"query": query}
	if tripID != "" {
		body["tripId"] = tripID
	}
	if len(queryContext) > 0 {
		body["context"] = queryContext
	}

	var out Answer
	err := c.do(ctx, http.MethodPost, apiPrefix+"/query", nil, body, &out)
	return out, err
}

func (c *Client) History(ctx context.Context, tripID string) ([]Turn, error) {
	var out struct {
		History []Turn `json:"history"`
	}
	err := c.do(ctx, http.MethodGet, apiPrefix+"/history", tripQuery(tripID), nil, &out)
	return out.History, err
}

func (c *Client) Clear(ctx context.Context, tripID string) (int64, error) {
	var out struct {
		Deleted int64 `json:"deleted"`
	}
	err := c.do(ctx, http.MethodDelete, apiPrefix+"/history", tripQuery(tripID), nil, &out)
	return out.Deleted, err
}

func tripQuery(tripID string) url.Values {
	if tripID == "" {
		return nil
	}
	return url.Values{"tripId": {tripID}}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set(headerUserID, c.userID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
