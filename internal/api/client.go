// Package api implements the shared HTTP transport for the HRMS backend:
// a single client carrying the base endpoint, the bearer token, a bounded
// request timeout, and the global 401 side effect.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenSource returns the current bearer token, or "" when unauthenticated.
type TokenSource func() string

// Envelope is the wire format every endpoint responds with.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *Error          `json:"error,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource

	mu             sync.Mutex
	onUnauthorized func()
}

type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, timeout time.Duration, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUnauthorizedHook registers the global 401 handler. It fires once per
// unauthorized response, independent of which call triggered it, and the
// 401 is still returned to the caller.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	payload, contentType, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, contentType, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	payload, contentType, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, payload, contentType, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// GetBlob fetches a binary payload (payslip PDFs, report artifacts). Blobs
// bypass the JSON envelope entirely.
func (c *Client) GetBlob(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireUnauthorized()
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeFailure(resp.StatusCode, data)
	}
	return data, nil
}

// Upload sends a multipart/form-data POST with the given form fields and a
// single file part named "file".
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return &Error{Message: err.Error()}
		}
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &Error{Message: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return &Error{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPost, path, nil, buf.Bytes(), writer.FormDataContentType(), out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method == http.MethodPost || method == http.MethodPut || method == http.MethodDelete {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		if IsTimeout(err) {
			return &Error{Message: fmt.Sprintf("request timed out: %s %s", method, path)}
		}
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireUnauthorized()
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeFailure(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("malformed response body: %v", err)}
	}
	if !envelope.Success {
		failure := &Error{Status: resp.StatusCode, Message: "request failed"}
		if envelope.Error != nil {
			failure.Code = envelope.Error.Code
			failure.Message = envelope.Error.Message
		}
		return failure
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: fmt.Sprintf("malformed response data: %v", err)}
	}
	return nil
}

func (c *Client) fireUnauthorized() {
	c.mu.Lock()
	hook := c.onUnauthorized
	c.mu.Unlock()
	if hook != nil {
		slog.Warn("unauthorized response, clearing session")
		hook()
	}
}

func decodeFailure(status int, raw []byte) *Error {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		return &Error{Status: status, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	return &Error{Status: status, Message: http.StatusText(status)}
}

func encodeJSON(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "application/json", nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", &Error{Message: err.Error()}
	}
	return payload, "application/json", nil
}
