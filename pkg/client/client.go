// Package client is the HTTP client for the tag catalog backend. It owns
// the wire contract: endpoint paths, the bearer session header, and the
// normalization of the listing response shapes the backend has shipped over
// time. Results are always fail-empty — an error never comes with partial
// data attached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/logging"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// Client talks to the tag catalog backend.
type Client struct {
	baseURL     string
	token       string
	legacyPaths bool
	httpClient  *http.Client
	log         logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer session token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds every single request. There are no retries; a failed
// request is surfaced and the user re-triggers the action.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLegacyPaths switches to the deprecated /tags/... path prefix for
// backends that have not migrated to /admin/tags/... yet.
func WithLegacyPaths(enabled bool) Option {
	return func(c *Client) { c.legacyPaths = enabled }
}

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying http.Client. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tagsPrefix returns the tag endpoint prefix for the configured contract.
func (c *Client) tagsPrefix() string {
	if c.legacyPaths {
		return "/tags"
	}
	return "/admin/tags"
}

// vendorsPath returns the vendor listing path for the configured contract.
func (c *Client) vendorsPath() string {
	if c.legacyPaths {
		return "/vendors"
	}
	return "/admin/vendors"
}

// FetchPage retrieves one page of tags for a domain type using the given
// filter state. On any failure the returned Page is zero: callers must not
// be left looking at a previous page's tags.
func (c *Client) FetchPage(ctx context.Context, domainType models.DomainType, filter catalog.FilterState) (catalog.Page, error) {
	path := fmt.Sprintf("%s/type/%s", c.tagsPrefix(), url.PathEscape(string(domainType)))
	body, err := c.do(ctx, http.MethodGet, path, filter.Query(), nil)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("fetch %s tags: %w", domainType, err)
	}

	page, err := normalizeTagList(body)
	if err != nil {
		return catalog.Page{}, fmt.Errorf("fetch %s tags: %w", domainType, err)
	}
	c.log.Debug("fetched tag page",
		zap.String("type", string(domainType)),
		zap.Int("count", len(page.Tags)),
		zap.Bool("paginated", page.Meta != nil))
	return page, nil
}

// UpdateTag sends a partial update for one tag. The body is the full edit
// form payload: nickname, status, and every profile field of the tag's
// domain type.
func (c *Client) UpdateTag(ctx context.Context, id string, body map[string]any) error {
	path := fmt.Sprintf("%s/%s", c.tagsPrefix(), url.PathEscape(id))
	if _, err := c.do(ctx, http.MethodPatch, path, nil, body); err != nil {
		return fmt.Errorf("update tag %s: %w", id, err)
	}
	c.log.Info("tag updated", zap.String("id", id))
	return nil
}

// DeleteTag permanently deletes one tag. Callers are responsible for the
// confirmation gate; this method assumes consent was already given.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	path := fmt.Sprintf("%s/%s", c.tagsPrefix(), url.PathEscape(id))
	if _, err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete tag %s: %w", id, err)
	}
	c.log.Info("tag deleted", zap.String("id", id))
	return nil
}

// ListVendors loads the vendor list. Callers treat a failure as an empty
// vendor set; the filter panel simply offers no vendor options.
func (c *Client) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	body, err := c.do(ctx, http.MethodGet, c.vendorsPath(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	var envelope struct {
		Vendors []models.Vendor `json:"vendors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("list vendors: decode response: %w", err)
	}
	return envelope.Vendors, nil
}

// do executes one request and returns the raw response body. Non-2xx
// statuses become *APIError; transport failures are wrapped as-is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, body)
		c.log.Warn("server rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return nil, apiErr
	}
	return body, nil
}
