package ttkia

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the service base URL. A trailing slash is stripped.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithAppToken sets the application token sent as a bearer credential.
func WithAppToken(token string) Option {
	return func(c *Client) { c.appToken = token }
}

// WithHTTPClient provides a custom *http.Client, overriding the default
// transport and any WithTimeout value.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithTimeout sets the per-request timeout. Default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger replaces the client's logger. By default the client builds a
// zap logger at the configured log level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithLogLevel sets the level of the client's default logger. Accepted values
// are DEBUG, INFO, WARNING and ERROR (case-insensitive). Ignored when
// WithLogger is used.
func WithLogLevel(level string) Option {
	return func(c *Client) { c.logLevel = level }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
	}
}
