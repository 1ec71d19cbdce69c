package license

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/model"
)

// Endpoint constants
const (
	DefaultBaseURL = "https://w.eydata.net"
	LoginPath      = "/8517BD8A7F520F1A"
	ExpiryPath     = "/5ABABE0AFD3C510B"
	DefaultTimeout = 30 * time.Second

	FormContentType = "application/x-www-form-urlencoded"
)

// Form field names
const (
	FieldSingleCode = "SingleCode"
	FieldVersion    = "Ver"
	FieldMachine    = "Mac"
	FieldUserName   = "UserName"
)

// Response lengths, counted in characters
const (
	TokenLength = 32
	DateLength  = 10
)

// maxBodySize bounds how much of a response is read
const maxBodySize = 64 << 10

// Client handles license operations
type Client struct {
	baseURL      string
	httpClient   *http.Client
	localization *i18n.Localization
	logger       *zap.Logger
}

// NewClient creates a client for the default license host
func NewClient(localization *i18n.Localization, logger *zap.Logger) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, DefaultTimeout, localization, logger)
}

// NewClientWithBaseURL creates a client for a custom host, mainly for tests
func NewClientWithBaseURL(baseURL string, timeout time.Duration, localization *i18n.Localization, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if localization == nil {
		localization = i18n.NewLocalization()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		localization: localization,
		logger:       logger,
	}
}

// Login authenticates a single-code license key. A 32 character body is the
// session token; any other body is the server's error code.
func (c *Client) Login(ctx context.Context, key, version, machineID string) model.LoginResult {
	form := url.Values{}
	form.Set(FieldSingleCode, key)
	form.Set(FieldVersion, version)
	form.Set(FieldMachine, machineID)

	body, ok := c.post(ctx, LoginPath, form)
	if !ok {
		return model.LoginResult{Message: body}
	}
	if IsToken(body) {
		c.logger.Info("license login succeeded")
		return model.LoginResult{OK: true, Token: body, Message: body}
	}

	c.logger.Warn("license login failed", zap.String("code", body))
	return model.LoginResult{Message: body}
}

// Expiry looks up the expiry date of a license key. A 10 character body is
// the date; any other body is the server's error code.
func (c *Client) Expiry(ctx context.Context, userName string) model.ExpiryResult {
	form := url.Values{}
	form.Set(FieldUserName, userName)

	body, ok := c.post(ctx, ExpiryPath, form)
	if !ok {
		return model.ExpiryResult{Message: body}
	}
	if IsDate(body) {
		return model.ExpiryResult{OK: true, ExpiresAt: body, Message: body}
	}

	c.logger.Warn("license expiry lookup failed", zap.String("code", body))
	return model.ExpiryResult{Message: body}
}

// IsToken reports whether a response body is a login token
func IsToken(body string) bool {
	return utf8.RuneCountInString(body) == TokenLength
}

// IsDate reports whether a response body is an expiry date
func IsDate(body string) bool {
	return utf8.RuneCountInString(body) == DateLength
}

// post sends a form-encoded request and returns the raw body. On transport
// errors and non-200 statuses ok is false and the text is the localized
// network error message, never to be read as a server reply.
func (c *Client) post(ctx context.Context, path string, form url.Values) (text string, ok bool) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	body, err := c.doPost(ctx, c.baseURL+path, form)
	if err != nil {
		c.logger.Debug("license request failed", zap.String("path", path), zap.Error(err))
		return c.localization.GetText(i18n.KeyNetworkError), false
	}
	return body, true
}

func (c *Client) doPost(ctx context.Context, endpoint string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", FormContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(data), nil
}

var _ Authenticator = (*Client)(nil)
