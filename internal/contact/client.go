// Package contact submits the contact form to the relay endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/verte-zerg/termfolio/internal/model"
)

// DefaultEndpoint is the Web3Forms submit URL.
const DefaultEndpoint = "https://api.web3forms.com/submit"

// DefaultTimeout bounds one submission.
const DefaultTimeout = 10 * time.Second

var (
	// ErrMissingAccessKey is returned when no access key is configured.
	ErrMissingAccessKey = errors.New("contact access key is not configured")
	// ErrRejected is returned when the endpoint answers without success.
	ErrRejected = errors.New("contact endpoint rejected the message")
)

// Sender delivers a validated form.
type Sender interface {
	Send(ctx context.Context, form model.ContactForm) error
}

// ClientOptions configures a Client.
type ClientOptions struct {
	Endpoint   string
	AccessKey  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client posts forms to the relay endpoint.
type Client struct {
	endpoint  string
	accessKey string
	http      *http.Client
}

type submitRequest struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewClient returns a Client with defaults applied.
func NewClient(opts ClientOptions) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{endpoint: opts.Endpoint, accessKey: opts.AccessKey, http: client}
}

// Endpoint returns the configured URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts form and succeeds only on a 2xx response with success=true.
func (c *Client) Send(ctx context.Context, form model.ContactForm) error {
	if c.accessKey == "" {
		return ErrMissingAccessKey
	}
	body, err := json.Marshal(submitRequest{
		AccessKey: c.accessKey,
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return fmt.Errorf("unexpected contact status: %s", resp.Status)
	}
	var payload submitResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode contact response: %w", err)
	}
	if !payload.Success {
		if payload.Message != "" {
			return fmt.Errorf("%w: %s", ErrRejected, payload.Message)
		}
		return ErrRejected
	}
	return nil
}
