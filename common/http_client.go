package common

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// Middleware decorates a single outgoing request.
type Middleware func(req *http.Request, next http.RoundTripper) (*http.Response, error)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClient returns a traced http client.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// WrapHTTPClient installs m in front of the current transport of client.
func WrapHTTPClient(client *http.Client, m Middleware) {
	if client == nil {
		return
	}
	next := client.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return m(req, next)
	})
}

func RateLimitHandler(limiter *rate.Limiter) Middleware {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if err := limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
		return next.RoundTrip(req)
	}
}

type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

func (c cachedResponse) toResponse(req *http.Request) *http.Response {
	return &http.Response{
		Status:        http.StatusText(c.status),
		StatusCode:    c.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        c.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(c.body)),
		ContentLength: int64(len(c.body)),
		Request:       req,
	}
}

// ResponseCache keeps successful GET responses for a fixed time.
type ResponseCache struct {
	entries *expirable.LRU[string, cachedResponse]
}

func NewResponseCache(size int, ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		entries: expirable.NewLRU[string, cachedResponse](size, nil, ttl),
	}
}

func (c *ResponseCache) Len() int {
	return c.entries.Len()
}

func (c *ResponseCache) Middleware() Middleware {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)
		if entry, ok := c.entries.Get(key); ok {
			slog.Debug("serving cached response", "host", req.URL.Host, "path", req.URL.Path)
			return entry.toResponse(req), nil
		}

		resp, err := next.RoundTrip(req)
		if err != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		entry := cachedResponse{status: resp.StatusCode, header: resp.Header.Clone(), body: body}
		c.entries.Add(key, entry)
		return entry.toResponse(req), nil
	}
}

// cacheKey never keeps credentials in plain text.
func cacheKey(req *http.Request) string {
	key := req.URL.String()
	auth := req.Header.Get("Authorization")
	if auth == "" && req.URL.Query().Get("access_token") == "" {
		return key
	}

	sum := sha256.Sum256([]byte(key + "\x00" + auth))
	return hex.EncodeToString(sum[:])
}
