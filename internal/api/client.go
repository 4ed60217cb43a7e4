package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// defaultTimeout bounds every request unless the caller overrides it with
// WithTimeout or replaces the HTTP client entirely.
const defaultTimeout = 30 * time.Second

// Proxy describes an outbound HTTP proxy.
type Proxy struct {
	Host     string
	Port     int
	Protocol string // "http" or "https"; defaults to "http"
	Username string
	Password string
}

// Client is the HTTP gateway to the archive service. Its configuration is
// fixed at construction; concurrent use requires no locking.
type Client struct {
	endpointURL string
	apiKey      string
	cloudID     string
	basicUser   string
	basicPass   string
	httpClient  *http.Client
	logger      zerolog.Logger

	// construction-only, consumed by New
	port  int
	proxy *Proxy
}

// Option configures the gateway.
type Option func(*Client)

// WithPort sets an explicit port appended to the base URL when the base
// carries none of its own.
func WithPort(port int) Option {
	return func(c *Client) {
		c.port = port
	}
}

// WithCloudID sets the tenant-selector header value.
func WithCloudID(cloudID string) Option {
	return func(c *Client) {
		c.cloudID = cloudID
	}
}

// WithBasicAuth sets basic-authentication credentials. The Authorization
// header is only emitted when both values are non-empty.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.basicUser = username
		c.basicPass = password
	}
}

// WithProxy routes requests through an HTTP proxy.
func WithProxy(p Proxy) Option {
	return func(c *Client) {
		c.proxy = &p
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client, including any timeout
// and proxy configured through other options.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the structured logger used for request tracing. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a gateway for the given base URL and API key. The effective
// endpoint URL is derived here, once.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	endpointURL, err := deriveEndpointURL(baseURL, c.port, c.proxy != nil)
	if err != nil {
		return nil, err
	}
	c.endpointURL = endpointURL

	if c.proxy != nil {
		proxyURL, err := c.proxy.url()
		if err != nil {
			return nil, err
		}
		if c.httpClient.Transport == nil {
			c.httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return c, nil
}

// url assembles the proxy URL, embedding credentials when present.
func (p *Proxy) url() (*url.URL, error) {
	protocol := p.Protocol
	if protocol == "" {
		protocol = "http"
	}
	raw := fmt.Sprintf("%s://%s:%d", protocol, p.Host, p.Port)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse proxy URL: %w", err)
	}
	if p.Username != "" && p.Password != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u, nil
}

// EndpointURL returns the derived endpoint URL.
func (c *Client) EndpointURL() string {
	return c.endpointURL
}

// Do performs one request against the archive API and decodes the response
// into result. body may be nil, a *Form (multipart), or any JSON-encodable
// value. A nil result discards the response body.
//
// Failures come back as *NetworkError (transport, no status), *APIError
// (non-2xx status), or *DecodeError (2xx with an undecodable body). The
// request is sent exactly once.
func (c *Client) Do(ctx context.Context, method, path string, q url.Values, body any, result any) error {
	var bodyReader io.Reader
	contentType := ""
	multipartBody := false

	switch b := body.(type) {
	case nil:
	case *Form:
		buf, ct, err := b.encode()
		if err != nil {
			return err
		}
		bodyReader = buf
		contentType = ct
		multipartBody = true
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	target := c.endpointURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("API-Key", c.apiKey)
	if c.cloudID != "" {
		req.Header.Set("Cloud-ID", c.cloudID)
	}
	if c.basicUser != "" && c.basicPass != "" {
		req.SetBasicAuth(c.basicUser, c.basicPass)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !multipartBody {
		req.Header.Set("Accept", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Msg("archive API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: target}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("read response body: %w", err), URL: target}
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Msg("archive API response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseErrorResponse(resp.StatusCode, raw)
	}

	if result == nil {
		return nil
	}

	// Empty success bodies yield the zero value of the result, never a
	// decode failure.
	if len(raw) == 0 || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeResponse(resp.Header.Get("Content-Type"), raw, result)
}

// decodeResponse interprets a successful response body. JSON (or untyped)
// content decodes into result; any other content type is handed back as raw
// text when the caller asked for a string.
func decodeResponse(contentType string, raw []byte, result any) error {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != "" && mediaType != "application/json" {
		if s, ok := result.(*string); ok {
			*s = string(raw)
			return nil
		}
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &DecodeError{Err: err, Body: string(raw)}
	}
	return nil
}
