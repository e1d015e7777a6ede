// Package rewriter содержит HTTP клиент удаленного сервиса генерации текста.
package rewriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"

	"toolbox/internal/gateway/config"
	"toolbox/internal/gateway/ports/rewriter"
)

// Ошибки удаленного сервиса.
var (
	ErrNotConfigured    = errors.New("remote rewriter is not configured")
	ErrUnexpectedStatus = errors.New("remote rewriter returned unexpected status")
	ErrEmptyResponse    = errors.New("remote rewriter returned empty text")
)

const (
	headerAuthorization = "Authorization"
	headerAccept        = "Accept"
	mimeJSON            = "application/json"
)

type rewriteRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type rewriteResponse struct {
	Text string `json:"text"`
}

// Client обращается к удаленному сервису по HTTP.
type Client struct {
	http     *client.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// NewClient создает клиент по настройкам cfg.
func NewClient(cfg *config.RewriterConfig) *Client {
	return &Client{
		http:     client.New(),
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		timeout:  cfg.Timeout,
	}
}

// Rewrite отправляет текст на переработку. Любой ответ кроме 2xx с непустым
// текстом считается ошибкой.
func (c *Client) Rewrite(ctx context.Context, text, mode string) (string, error) {
	if c.endpoint == "" {
		return "", ErrNotConfigured
	}

	headers := map[string]string{headerAccept: mimeJSON}
	if c.apiKey != "" {
		headers[headerAuthorization] = "Bearer " + c.apiKey
	}

	resp, err := c.http.Post(c.endpoint, client.Config{
		Ctx:     ctx,
		Header:  headers,
		Body:    rewriteRequest{Text: text, Mode: mode},
		Timeout: c.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("calling remote rewriter: %w", err)
	}
	defer resp.Close()

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var out rewriteResponse
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("decoding remote rewriter response: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", ErrEmptyResponse
	}
	return out.Text, nil
}

var _ rewriter.Client = (*Client)(nil)
