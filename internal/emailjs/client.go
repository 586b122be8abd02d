// Package emailjs sends contact messages through the EmailJS REST API.
// EmailJS renders a stored template with the given params and mails it to
// the site owner; the response body is a bare status word, "OK" on success.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ajithkoli/portfolio/internal/contact"
)

const (
	DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	DefaultTimeout  = 15 * time.Second
)

// ErrNotConfigured is returned when the service, template or public key is missing.
var ErrNotConfigured = errors.New("emailjs: service, template and public key are required")

type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	// PrivateKey is sent as accessToken when set. EmailJS requires it when
	// the account forbids non-browser calls without one.
	PrivateKey string
	Endpoint   string
	Timeout    time.Duration
}

// Configured reports whether the required ids are present.
func (c Config) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type Client struct {
	cfg  Config
	http *http.Client
}

var _ contact.Sender = (*Client)(nil)

// New builds a client. A nil httpClient gets one with cfg.Timeout.
func New(cfg Config, httpClient *http.Client) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams templateParams `json:"template_params"`
}

// templateParams use the names the EmailJS template refers to.
type templateParams struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	ReplyTo   string `json:"reply_to"`
	RequestID string `json:"request_id"`
}

// Send posts msg and returns the response status text. A non-2xx response
// returns its body as the status along with an error.
func (c *Client) Send(ctx context.Context, msg contact.Message) (string, error) {
	if !c.cfg.Configured() {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:   c.cfg.ServiceID,
		TemplateID:  c.cfg.TemplateID,
		UserID:      c.cfg.PublicKey,
		AccessToken: c.cfg.PrivateKey,
		TemplateParams: templateParams{
			UserName:  msg.Name,
			UserEmail: msg.Email,
			Subject:   msg.Subject,
			Message:   msg.Message,
			ReplyTo:   msg.Email,
			RequestID: msg.ID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil {
		return "", fmt.Errorf("emailjs: read response: %w", err)
	}
	status := strings.TrimSpace(string(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return status, fmt.Errorf("emailjs: http %d: %s", resp.StatusCode, status)
	}
	return status, nil
}
