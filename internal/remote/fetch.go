// Package remote downloads images over HTTP(S) so they can be extracted like
// local files.
package remote

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/jmylchreest/swatch/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBytes caps the size of a downloaded image.
	DefaultMaxBytes int64 = 50 << 20
)

// FetchOptions configures HTTP fetch behaviour.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string

	// MaxBytes limits the response body. If zero, DefaultMaxBytes is used.
	MaxBytes int64

	// AllowPrivateHosts permits plain http and loopback or private addresses.
	AllowPrivateHosts bool
}

// IsURL reports whether s looks like an http or https URL.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ValidateURL checks that rawURL is safe to download from: https only, with a
// public hostname. allowPrivate lifts both restrictions.
func ValidateURL(rawURL string, allowPrivate bool) error {
	if rawURL == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	switch {
	case scheme == "https":
	case scheme == "http" && allowPrivate:
	default:
		return fmt.Errorf("only HTTPS URLs are allowed (got %q)", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	host := strings.ToLower(parsed.Hostname())
	if !allowPrivate && isLocalOrPrivateHost(host) {
		return fmt.Errorf("URL cannot point to local or private hosts: %s", host)
	}

	return nil
}

// maxRedirects matches net/http's default redirect limit.
const maxRedirects = 10

// Fetch retrieves content from a URL with context and timeout support.
// It sets the User-Agent header and rejects non-200 responses and bodies
// larger than MaxBytes. Unless AllowPrivateHosts is set, every redirect is
// validated like the original URL and connections to private addresses are
// refused after DNS resolution.
func Fetch(ctx context.Context, rawURL string, opts FetchOptions) ([]byte, error) {
	return fetch(ctx, rawURL, opts, newTransport(opts.AllowPrivateHosts))
}

func fetch(ctx context.Context, rawURL string, opts FetchOptions, transport http.RoundTripper) ([]byte, error) {
	if err := ValidateURL(rawURL, opts.AllowPrivateHosts); err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	client := &http.Client{
		Timeout:       timeout,
		Transport:     transport,
		CheckRedirect: checkRedirect(opts.AllowPrivateHosts),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", version.UserAgent())
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("response too large: %d bytes (limit %d)", resp.ContentLength, maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("response too large: over %d bytes", maxBytes)
	}

	return data, nil
}

// checkRedirect applies ValidateURL to every redirect target.
func checkRedirect(allowPrivate bool) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		if err := ValidateURL(req.URL.String(), allowPrivate); err != nil {
			return fmt.Errorf("redirect rejected: %w", err)
		}
		return nil
	}
}

// newTransport returns a transport whose dialer refuses local and private
// addresses unless allowPrivate is set. Proxies are bypassed when guarding so
// the check applies to the image host itself.
func newTransport(allowPrivate bool) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if allowPrivate {
		return transport
	}
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
		Control:   rejectPrivateAddress,
	}
	transport.DialContext = dialer.DialContext
	transport.Proxy = nil
	return transport
}

// rejectPrivateAddress is a net.Dialer Control hook; address is the resolved
// "ip:port" about to be connected.
func rejectPrivateAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("invalid dial address %q: %w", address, err)
	}
	if i := strings.IndexByte(host, '%'); i >= 0 {
		host = host[:i]
	}
	if isLocalOrPrivateHost(host) {
		return fmt.Errorf("refusing to connect to local or private address %s", host)
	}
	return nil
}

// isLocalOrPrivateHost checks if a hostname is localhost or a private IP.
func isLocalOrPrivateHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}
