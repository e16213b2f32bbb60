package signalrgb

import (
	"fmt"
	"time"
)

// Connection defaults for a local SignalRGB instance.
const (
	DefaultHost    = "localhost"
	DefaultPort    = 16038
	DefaultTimeout = 10 * time.Second
)

// Config holds the client configuration. All fields have sensible
// defaults for a SignalRGB instance running on the local machine.
//
//	config := signalrgb.DefaultConfig().
//	    WithHost("192.168.1.50").
//	    WithTimeout(5 * time.Second)
//	client, err := signalrgb.NewClient(config)
type Config struct {
	// Host of the SignalRGB API. Default: "localhost".
	Host string

	// Port of the SignalRGB API. Default: 16038.
	Port int

	// Timeout applies to every request, covering connection time and
	// reading the response body. Default: 10s.
	Timeout time.Duration

	// Headers are custom headers included in every request.
	Headers map[string]string

	// Observer receives hooks around requests and cache accesses.
	// If nil, NoopObserver is used.
	Observer Observer
}

// DefaultConfig returns a Config targeting localhost:16038 with a 10
// second request timeout.
func DefaultConfig() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Timeout:  DefaultTimeout,
		Headers:  make(map[string]string),
		Observer: &NoopObserver{},
	}
}

// WithHost sets the API host.
func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

// WithPort sets the API port.
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithHeader adds a custom header to every request.
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithObserver sets the observer notified around requests and cache
// accesses.
func (c *Config) WithObserver(observer Observer) *Config {
	c.Observer = observer
	return c
}

// BaseURL returns the root URL the client talks to.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// Validate checks the configuration and fills defaults for zero values.
// Called automatically by NewClient.
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Observer == nil {
		c.Observer = &NoopObserver{}
	}
	return nil
}
