package storefront

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client defines the storefront API surface consumed by the sync engine.
type Client interface {
	// Rest executes an admin REST call. path is relative to the versioned
	// API root, e.g. "/products.json". When out is non-nil the response
	// body is decoded into it. The response headers are returned for
	// cursor extraction on paginated endpoints.
	Rest(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error)
	// GraphQL executes an admin GraphQL request and decodes the "data"
	// object into out. Top-level errors are returned as an error.
	GraphQL(ctx context.Context, query string, variables map[string]any, out any) error
}

// restClient is the HTTP implementation of Client.
type restClient struct {
	cfg  Config
	base string
	http *http.Client
	log  *zap.Logger
}

// NewClient creates a storefront client from the configuration.
func NewClient(cfg Config, log *zap.Logger) (Client, error) {
	if cfg.Store == "" {
		return nil, fmt.Errorf("storefront store domain is required")
	}
	if !cfg.HasAuth() {
		return nil, fmt.Errorf("storefront auth missing: set a token or both api_key and api_secret")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	base := cfg.Store
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	base = strings.TrimSuffix(base, "/") + "/admin/api/" + cfg.APIVersion

	return &restClient{
		cfg:  cfg,
		base: base,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		log: log,
	}, nil
}

func (c *restClient) Rest(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	c.log.Debug("Storefront REST call", zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storefront %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("storefront %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Header, &StatusError{Code: resp.StatusCode, Body: string(payload)}
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return resp.Header, fmt.Errorf("storefront %s %s: decode response: %w", method, path, err)
		}
	}
	return resp.Header, nil
}

func (c *restClient) GraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	if variables == nil {
		variables = map[string]any{}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors json.RawMessage `json:"errors"`
	}
	_, err := c.Rest(ctx, http.MethodPost, "/graphql.json", nil, map[string]any{
		"query":     query,
		"variables": variables,
	}, &envelope)
	if err != nil {
		return err
	}

	if len(envelope.Errors) > 0 && string(envelope.Errors) != "null" {
		return fmt.Errorf("storefront graphql errors: %s", envelope.Errors)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode graphql data: %w", err)
		}
	}
	return nil
}

// authorize attaches either the access token header or basic-auth fallback.
func (c *restClient) authorize(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "DropshipSync/1.0")
	if c.cfg.Token != "" {
		req.Header.Set("X-Shopify-Access-Token", c.cfg.Token)
		return
	}
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)
}
