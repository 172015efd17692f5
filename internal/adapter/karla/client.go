// Package karla is the outbound client for the Karla catalog and order APIs.
package karla

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"
	"karla-connector/pkg/apperror"

	go_json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	DefaultTimeout  = 10 * time.Second
	maxErrorBody    = 1024
	userAgent       = "karla-connector/1.0"
	contentTypeJSON = "application/json"
)

var (
	_ ports.CatalogSink = (*Client)(nil)
	_ ports.OrderSink   = (*Client)(nil)
)

// Config holds the API endpoint and credentials.
type Config struct {
	BaseURL  string
	ShopSlug string
	Username string
	Key      string
	Timeout  time.Duration
}

// Client talks to the Karla API with HTTP Basic auth.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client. Missing configuration is reported per call, not here,
// so the connector can start without Karla credentials.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BulkUpsert sends one page of variant payloads.
func (c *Client) BulkUpsert(ctx context.Context, payloads []domain.VariantPayload) error {
	path, err := c.shopPath("products")
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, payloads)
}

// UpsertVariant replaces a single variant. The payload carries no identity
// fields; they travel in the URL.
func (c *Client) UpsertVariant(ctx context.Context, productID, variantID string, payload domain.VariantPayload) error {
	path, err := c.shopPath("products", productID, "variants", variantID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, payload)
}

// DeleteProduct removes a product together with its variants.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	path, err := c.shopPath("products", productID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil)
}

// PlaceOrder sends an order snapshot.
func (c *Client) PlaceOrder(ctx context.Context, payload domain.OrderPayload) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/v1/orders", payload)
}

func (c *Client) shopPath(segments ...string) (string, error) {
	if err := c.checkCredentials(); err != nil {
		return "", err
	}
	if c.cfg.ShopSlug == "" {
		return "", apperror.ErrConfigurationMissing("api.shop_slug")
	}

	var b strings.Builder
	b.WriteString("/v1/shops/")
	b.WriteString(url.PathEscape(c.cfg.ShopSlug))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String(), nil
}

func (c *Client) checkCredentials() error {
	switch {
	case c.cfg.BaseURL == "":
		return apperror.ErrConfigurationMissing("api.base_url")
	case c.cfg.Key == "":
		return apperror.ErrConfigurationMissing("api.key")
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Key)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrSinkUnavailable(fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("karla api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apperror.ErrSinkUnavailable(&StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		})
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// StatusError is a non-2xx answer from the Karla API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("karla api %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
