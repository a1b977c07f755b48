package httpx

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

// acceptEncoding is advertised on every request. Setting it by hand turns off
// the transport's transparent gzip handling, so readBody decodes both.
const acceptEncoding = "br, gzip"

// HTTPError carries status/body for non-2xx responses.
// It lets callers decide if/when to retry.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, Snippet(e.Body, 900))
}

// Snippet trims b and cuts it to max bytes for log and error output.
func Snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// RetryConfig controls retry behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// If true, retry any 5xx.
	Retry5xx bool

	// Extra statuses to retry (e.g. 429, 408).
	RetryStatuses map[int]bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 8,
		BaseDelay:   700 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Retry5xx:    true,
		RetryStatuses: map[int]bool{
			http.StatusTooManyRequests:    true, // 429
			http.StatusRequestTimeout:     true, // 408
			http.StatusTooEarly:           true, // 425 (rare)
			http.StatusServiceUnavailable: true, // 503
			http.StatusBadGateway:         true, // 502
			http.StatusGatewayTimeout:     true, // 504
		},
	}
}

// SingleAttempt returns the default policy capped at one attempt.
// Used for non-idempotent calls such as page creation.
func SingleAttempt() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.MaxAttempts = 1
	return cfg
}

// WithAttempts returns the default policy with the given attempt budget.
// n <= 1 means a single attempt.
func WithAttempts(n int) RetryConfig {
	if n <= 1 {
		return SingleAttempt()
	}
	cfg := DefaultRetryConfig()
	cfg.MaxAttempts = n
	return cfg
}

// DoWithRetry executes a request (built by buildReq) with retries.
// It always reads the full body (even on error) so the underlying TCP connection
// can be reused by http.Transport.
func DoWithRetry(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	cfg RetryConfig,
) (*http.Response, []byte, error) {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 700 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.RetryStatuses == nil {
		cfg.RetryStatuses = DefaultRetryConfig().RetryStatuses
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		req, err := buildReq(ctx)
		if err != nil {
			return nil, nil, err
		}
		if req.Header.Get("Accept-Encoding") == "" {
			req.Header.Set("Accept-Encoding", acceptEncoding)
		}

		resp, err := client.Do(req)
		if err != nil {
			if isRetryableNetErr(err) {
				lastErr = err
				if attempt < cfg.MaxAttempts {
					if err := sleepBackoff(ctx, attempt, cfg.BaseDelay, cfg.MaxDelay, 0); err != nil {
						return nil, nil, err
					}
					continue
				}
			}
			return nil, nil, err
		}

		body, readErr := readBody(resp)
		if readErr != nil {
			if isRetryableNetErr(readErr) {
				lastErr = readErr
				if attempt < cfg.MaxAttempts {
					if err := sleepBackoff(ctx, attempt, cfg.BaseDelay, cfg.MaxDelay, 0); err != nil {
						return nil, nil, err
					}
					continue
				}
			}
			return resp, body, readErr
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, body, nil
		}

		herr := &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
		}

		retryAfter := ParseRetryAfter(resp)
		if isRetryableStatus(resp.StatusCode, cfg) {
			lastErr = herr
			if attempt < cfg.MaxAttempts {
				if err := sleepBackoff(ctx, attempt, cfg.BaseDelay, cfg.MaxDelay, retryAfter); err != nil {
					return nil, nil, err
				}
				continue
			}
		}

		return resp, body, herr
	}

	if lastErr != nil {
		return nil, nil, lastErr
	}
	return nil, nil, errors.New("httpx: request failed")
}

// readBody drains and closes resp.Body, undoing any Content-Encoding.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("httpx: gzip body: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

func isRetryableStatus(code int, cfg RetryConfig) bool {
	if cfg.RetryStatuses != nil && cfg.RetryStatuses[code] {
		return true
	}
	if cfg.Retry5xx && code >= 500 && code <= 599 {
		return true
	}
	return false
}

func sleepBackoff(ctx context.Context, attempt int, base, max time.Duration, retryAfter time.Duration) error {
	sleep := retryAfter
	if sleep <= 0 {
		sleep = base * time.Duration(1<<(attempt-1))
		if sleep > max {
			sleep = max
		}
		// jitter 0..400ms
		sleep += time.Duration(rand.IntN(400)) * time.Millisecond
	}

	t := time.NewTimer(sleep)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isRetryableNetErr(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return nerr.Timeout()
	}

	// common transient I/O errors
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe") || strings.Contains(msg, "eof") {
		return true
	}
	return false
}

// ParseRetryAfter parses Retry-After header (seconds or HTTP date).
// Returns 0 when header is missing/invalid.
func ParseRetryAfter(resp *http.Response) time.Duration {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			return 0
		}
		return d
	}
	return 0
}

// NextLink returns the rel="next" target of an RFC 5988 Link header,
// or "" when there is none.
func NextLink(h http.Header) string {
	for _, v := range h.Values("Link") {
		for _, part := range strings.Split(v, ",") {
			segs := strings.Split(part, ";")
			if len(segs) < 2 {
				continue
			}
			target := strings.TrimSpace(segs[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			for _, p := range segs[1:] {
				p = strings.TrimSpace(p)
				if strings.EqualFold(p, `rel="next"`) || strings.EqualFold(p, "rel=next") {
					return target[1 : len(target)-1]
				}
			}
		}
	}
	return ""
}

// DoJSON is a convenience wrapper over DoWithRetry that unmarshals JSON.
// It returns the response headers so callers can follow Link pagination.
func DoJSON(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	out any,
	cfg RetryConfig,
) (http.Header, error) {
	resp, body, err := DoWithRetry(ctx, client, buildReq, cfg)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return resp.Header, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.Header, fmt.Errorf("json parse error: %w body=%s", err, Snippet(body, 900))
	}
	return resp.Header, nil
}
