package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"canvas-notion-sync/internal/httpx"
)

const (
	contentTypeJSON = "application/json"
	acceptJSON      = contentTypeJSON

	// Version pins the API revision that introduced data sources.
	Version = "2025-09-03"
)

type Client struct {
	BaseURL string
	Token   string
	Version string
	HTTP    *http.Client

	// ReadRetry applies to queries only. Page creation is never retried.
	ReadRetry httpx.RetryConfig
}

func New(baseURL, token string) *Client {
	tr := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		Version: Version,
		HTTP: &http.Client{
			Timeout:   2 * time.Minute,
			Transport: tr,
		},
		ReadRetry: httpx.SingleAttempt(),
	}
}

// APIError is Notion's JSON error body. It unwraps to the *httpx.HTTPError.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`

	Err *httpx.HTTPError `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s %s: status=%d code=%s message=%s", e.Err.Method, e.Err.URL, e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// QueryDataSource returns one page of rows from a data source.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, q QueryRequest) (*QueryResponse, error) {
	if dataSourceID == "" {
		return nil, errors.New("notion: missing data source id")
	}

	var out QueryResponse
	err := c.postJSON(ctx, "/v1/data_sources/"+url.PathEscape(dataSourceID)+"/query", q, &out, c.ReadRetry)
	if err != nil {
		return nil, fmt.Errorf("notion: query data source failed: %w", err)
	}
	return &out, nil
}

// CreatePage creates one page. A single attempt is made.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error) {
	if req.Parent.DataSourceID == "" {
		return nil, errors.New("notion: missing parent data source id")
	}

	var out Page
	if err := c.postJSON(ctx, "/v1/pages", req, &out, httpx.SingleAttempt()); err != nil {
		return nil, fmt.Errorf("notion: create page failed: %w", err)
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any, retry httpx.RetryConfig) error {
	if c.Token == "" {
		return errors.New("notion: missing api token")
	}

	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	_, err = httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
			r.Header.Set("Content-Type", contentTypeJSON)
			r.Header.Set("Accept", acceptJSON)
			r.Header.Set("Authorization", "Bearer "+c.Token)
			r.Header.Set("Notion-Version", c.Version)
			return r, nil
		},
		out,
		retry,
	)
	return asAPIError(err)
}

func asAPIError(err error) error {
	var herr *httpx.HTTPError
	if !errors.As(err, &herr) {
		return err
	}
	apiErr := &APIError{Err: herr}
	if json.Unmarshal(herr.Body, apiErr) != nil || apiErr.Code == "" {
		return err
	}
	if apiErr.Status == 0 {
		apiErr.Status = herr.StatusCode
	}
	return apiErr
}
