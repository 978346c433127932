package localapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// apiHost is the synthetic Host header the daemon expects on every LocalAPI
// request regardless of transport.
const apiHost = "local-tailscaled.sock"

// Client issues requests against the daemon's LocalAPI. The zero value is
// not usable; construct one with New or the transport-specific helpers.
type Client struct {
	transport Transport
	httpc     *http.Client
	logger    *slog.Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithTimeout bounds each request end to end. Zero means no client-imposed
// timeout; per-call context deadlines still apply.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// WithLogger routes request logging to l. The default logger discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a client that reaches the daemon over the given transport.
func New(t Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		httpc: &http.Client{
			Transport: &http.Transport{
				DialContext:       t.dialContext,
				DisableKeepAlives: true,
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSocketClient returns a client for a daemon listening on a unix socket.
func NewSocketClient(socketPath string, opts ...Option) *Client {
	return New(SocketTransport(socketPath), opts...)
}

// NewTCPClient returns a client for a daemon listening on loopback TCP with
// the given same-user password.
func NewTCPClient(port uint16, password string, opts ...Option) *Client {
	return New(TCPTransport(port, password), opts...)
}

// Transport returns the resolved transport descriptor the client connects
// with.
func (c *Client) Transport() Transport {
	return c.transport
}

// send performs one request against the LocalAPI and returns the raw
// response body. Non-2xx statuses become *APIError; transport failures
// become *RequestError. There is exactly one attempt per call.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, method, "http://"+apiHost+path, body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	if c.transport.usesTCP() {
		req.SetBasicAuth("", c.transport.Password)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Debug("localapi request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"endpoint", c.transport.Endpoint(),
			"error", err)
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Err: err}
	}

	c.logger.Debug("localapi request",
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(payload),
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Kind:       kindForStatus(resp.StatusCode),
			Message:    trimBody(payload),
		}
	}
	return payload, nil
}

// trimBody reduces an error response body to a single short line suitable
// for error messages.
func trimBody(body []byte) string {
	const max = 200
	s := string(body)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			s = s[:i]
			break
		}
	}
	if len(s) > max {
		s = s[:max]
	}
	return s
}
