package docarchive

import (
	"github.com/docarchive/client-go/internal/api"
	"github.com/rs/zerolog"
)

// Client is the document-archive API client. Its configuration is fixed at
// construction and never mutated, so a single Client is safe for concurrent
// use without locking.
type Client struct {
	api *api.Client
}

// New creates a client for the archive service at the given base URL. The
// effective endpoint URL (base, optional port, fixed /api/v2 prefix) is
// computed once here and reused for every request.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(baseURL, apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// buildAPIClient creates and configures the request gateway from the given config.
func buildAPIClient(baseURL, apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithTimeout(cfg.timeout),
		api.WithLogger(cfg.logger),
	}
	if cfg.port > 0 {
		apiOpts = append(apiOpts, api.WithPort(cfg.port))
	}
	if cfg.cloudID != "" {
		apiOpts = append(apiOpts, api.WithCloudID(cfg.cloudID))
	}
	if cfg.basicUser != "" || cfg.basicPass != "" {
		apiOpts = append(apiOpts, api.WithBasicAuth(cfg.basicUser, cfg.basicPass))
	}
	if cfg.proxy != nil {
		apiOpts = append(apiOpts, api.WithProxy(*cfg.proxy))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	return api.New(baseURL, apiKey, apiOpts...)
}

// EndpointURL returns the effective endpoint URL all requests are issued
// against, e.g. "https://archive.example.com:8081/api/v2".
func (c *Client) EndpointURL() string {
	return c.api.EndpointURL()
}
