package makeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

type Config struct {
	WebhookURL  string
	BearerToken string
	Timeout     time.Duration
}

// IncomingMessage is the payload forwarded to the Make webhook for every
// user message the bot receives.
type IncomingMessage struct {
	CorrelationID string `json:"correlation_id"`
	ChatID        int64  `json:"chat_id"`
	UserID        int64  `json:"user_id"`
	Username      string `json:"username,omitempty"`
	MessageID     int    `json:"message_id"`
	Text          string `json:"text"`
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// SendIncomingMessage posts the payload to the webhook. Transport errors
// and 5xx responses are retried up to three attempts with backoff; 4xx
// responses fail immediately.
func (c *Client) SendIncomingMessage(ctx context.Context, msg IncomingMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.cfg.BearerToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.BearerToken)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("webhook returned %d", resp.StatusCode))
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("webhook returned %d", resp.StatusCode)
		}
		return nil
	})
}
