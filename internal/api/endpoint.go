package api

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	// apiPrefix is the fixed path prefix of the archive API.
	apiPrefix = "/api/v2"

	// defaultPort is used when a proxy is configured but neither the base
	// URL nor the options carry a port.
	defaultPort = 8081
)

// deriveEndpointURL computes the effective endpoint URL from the configured
// base. The result always ends with exactly one apiPrefix segment, and a port
// already present in the base is never duplicated. The decision depends only
// on the URL's shape, never on the hostname.
func deriveEndpointURL(base string, port int, hasProxy bool) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL %q must include a scheme and host", base)
	}

	switch {
	case u.Port() != "":
		// The base already names a port; it wins.
	case port > 0 || hasProxy:
		if port == 0 {
			port = defaultPort
		}
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(port))
	}

	u.Path = strings.TrimRight(u.Path, "/") + apiPrefix
	return u.String(), nil
}
