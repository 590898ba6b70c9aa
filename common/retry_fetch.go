package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/govgoose/govgoose/monitoring"
)

const DefaultRetries = 3

var ErrInvalidURL = errors.New("invalid url")

type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("http error %d: %s %s", e.StatusCode, e.Status, e.Body)
}

type FetchOptions struct {
	// defaults to GET
	Method  string
	Headers http.Header
	Body    []byte
	// Sleep waits between attempts, replaced in tests
	Sleep func(ctx context.Context, d time.Duration) error
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the wait time after the given zero based attempt: 1s, 2s, 4s...
func Backoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

func validateURL(rawURL string) (*url.URL, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	return u, nil
}

// FetchWithRetry performs the request up to retries times and returns the first response with a 2xx status.
// Non 2xx responses are turned into a *HTTPStatusError. The caller has to close the body of the returned response.
func FetchWithRetry(ctx context.Context, client *http.Client, rawURL string, opts FetchOptions, retries int) (*http.Response, error) {
	u, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}
	if retries <= 0 {
		retries = DefaultRetries
	}
	if client == nil {
		client = http.DefaultClient
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := range retries {
		resp, err := doFetch(ctx, client, method, u.String(), opts)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		monitoring.FetchRetries.WithLabelValues(u.Host).Inc()
		slog.Warn("fetch attempt failed", "attempt", attempt+1, "retries", retries, "url", u.Redacted(), "err", err)

		if attempt == retries-1 {
			break
		}
		if err := sleep(ctx, Backoff(attempt)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func doFetch(ctx context.Context, client *http.Client, method, rawURL string, opts FetchOptions) (*http.Response, error) {
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range opts.Headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(b),
		}
	}

	return resp, nil
}
