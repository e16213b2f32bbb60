package signalrgb

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
)

// transport issues HTTP requests against the SignalRGB service and is the
// sole translator from raw HTTP outcomes into the client's error taxonomy.
// It performs no retries; retry policy belongs to the caller.
type transport struct {
	client   *http.Client
	baseURL  *url.URL
	headers  map[string]string
	observer Observer
}

func newTransport(config *Config) (*transport, error) {
	baseURL, err := url.Parse(config.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	httpTransport := &http.Transport{
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	}

	return &transport{
		client: &http.Client{
			Transport: httpTransport,
			Timeout:   config.Timeout,
		},
		baseURL:  baseURL,
		headers:  config.Headers,
		observer: config.Observer,
	}, nil
}

// do executes a single HTTP request and decodes the response envelope.
func (t *transport) do(ctx context.Context, method, path string, body interface{}) (*response, error) {
	t.observer.OnRequestStart(method, path)
	start := time.Now()

	env, err := t.roundTrip(ctx, method, path, body)

	t.observer.OnRequestEnd(method, path, time.Since(start), err)
	return env, err
}

func (t *transport) roundTrip(ctx context.Context, method, path string, body interface{}) (*response, error) {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	fullURL := t.baseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, method, fullURL.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "signalrgb-go/"+Version)
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &ConnectionError{Op: op, Err: err}
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, &ConnectionError{Op: op, Err: err}
	}

	var env response
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed response"}
		}
		if env.Status != "" && env.Status != "ok" {
			return nil, apiFailure(resp.StatusCode, env.Errors,
				fmt.Sprintf("API returned non-OK status: %s", env.Status))
		}
		return &env, nil
	}

	var details []APIErrorDetail
	if decodeErr == nil {
		details = env.Errors
	}
	message := http.StatusText(resp.StatusCode)
	if len(details) > 0 && details[0].Message() != "" {
		message = details[0].Message()
	}

	if resp.StatusCode == http.StatusNotFound || errorCode(details) == "not_found" {
		return nil, &NotFoundError{Resource: "resource " + path, Errors: details}
	}

	return nil, &APIError{StatusCode: resp.StatusCode, Message: message, Errors: details}
}

func (t *transport) get(ctx context.Context, path string) (*response, error) {
	return t.do(ctx, http.MethodGet, path, nil)
}

func (t *transport) post(ctx context.Context, path string, body interface{}) (*response, error) {
	return t.do(ctx, http.MethodPost, path, body)
}

func (t *transport) patch(ctx context.Context, path string, body interface{}) (*response, error) {
	return t.do(ctx, http.MethodPatch, path, body)
}

func (t *transport) delete(ctx context.Context, path string) (*response, error) {
	return t.do(ctx, http.MethodDelete, path, nil)
}

func (t *transport) close() {
	t.client.CloseIdleConnections()
}

func apiFailure(status int, details []APIErrorDetail, fallback string) error {
	message := fallback
	if len(details) > 0 && details[0].Message() != "" {
		message = details[0].Message()
	}
	if errorCode(details) == "not_found" {
		return &NotFoundError{Resource: "resource", Errors: details}
	}
	return &APIError{StatusCode: status, Message: message, Errors: details}
}

func errorCode(details []APIErrorDetail) string {
	if len(details) > 0 {
		return details[0].Code
	}
	return ""
}

// decodeData unmarshals an envelope's data payload into dest, failing with
// a malformed-response APIError when the payload is absent or mistyped.
func decodeData(env *response, dest interface{}) error {
	if len(env.Data) == 0 {
		return &APIError{Message: "malformed response: missing data"}
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return &APIError{Message: "malformed response: " + err.Error()}
	}
	return nil
}

// buildPath substitutes {0}, {1}, ... placeholders with URL-escaped
// arguments. Effect and layout IDs may contain spaces or slashes.
func buildPath(pattern string, args ...string) string {
	path := pattern
	for i, arg := range args {
		placeholder := fmt.Sprintf("{%d}", i)
		escaped := url.QueryEscape(arg)
		escaped = strings.ReplaceAll(escaped, "+", "%20")
		path = strings.Replace(path, placeholder, escaped, 1)
	}
	return path
}
