package docarchive

import (
	"net/http"
	"time"

	"github.com/docarchive/client-go/internal/api"
	"github.com/rs/zerolog"
)

// Proxy describes an outbound HTTP proxy.
type Proxy = api.Proxy

// defaultTimeout bounds every request unless overridden with WithTimeout or
// WithHTTPClient.
const defaultTimeout = 30 * time.Second

// clientConfig holds configuration for the client.
type clientConfig struct {
	port       int
	cloudID    string
	basicUser  string
	basicPass  string
	proxy      *Proxy
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithPort sets an explicit port. It is appended to the base URL only when
// the base carries no port of its own; a port already present in the base
// always wins.
func WithPort(port int) Option {
	return func(c *clientConfig) {
		c.port = port
	}
}

// WithCloudID sets the cloud identifier sent as the Cloud-ID header. Only
// needed for multi-tenant deployments.
func WithCloudID(cloudID string) Option {
	return func(c *clientConfig) {
		c.cloudID = cloudID
	}
}

// WithBasicAuth sets basic-authentication credentials. The Authorization
// header is emitted only when both username and password are non-empty.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.basicUser = username
		c.basicPass = password
	}
}

// WithProxy routes all requests through an HTTP proxy. When the base URL
// carries no port, the default port 8081 is assumed for the endpoint.
func WithProxy(p Proxy) Option {
	return func(c *clientConfig) {
		c.proxy = &p
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely, including any
// timeout or proxy configured through other options.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a structured logger that receives one debug event per
// request and response. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
