package canvas

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"canvas-notion-sync/internal/httpx"
)

const defaultPerPage = 100

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Retry   httpx.RetryConfig
	PerPage int
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			Timeout: 2 * time.Minute, // per request
		},
		Retry:   httpx.SingleAttempt(),
		PerPage: defaultPerPage,
	}
}

// ActiveCourses lists courses the token's user is actively enrolled in.
// Pages are fetched as the sequence is consumed.
func (c *Client) ActiveCourses(ctx context.Context) iter.Seq2[Course, error] {
	return paginate[Course](ctx, c, "/api/v1/courses", url.Values{
		"enrollment_state": {"active"},
	})
}

// UpcomingAssignments lists a course's assignments in Canvas's "upcoming" bucket.
func (c *Client) UpcomingAssignments(ctx context.Context, courseID int64) iter.Seq2[Assignment, error] {
	return paginate[Assignment](ctx, c, "/api/v1/courses/"+strconv.FormatInt(courseID, 10)+"/assignments", url.Values{
		"bucket":    {"upcoming"},
		"include[]": {"due_at"},
	})
}

func paginate[T any](ctx context.Context, c *Client, path string, q url.Values) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		first, err := c.firstPageURL(path, q)
		if err != nil {
			yield(zero, err)
			return
		}

		for next, page := first, 1; next != ""; page++ {
			items, link, err := fetchPage[T](ctx, c, next)
			if err != nil {
				yield(zero, fmt.Errorf("canvas: list %s page=%d: %w", path, page, err))
				return
			}
			for _, it := range items {
				if !yield(it, nil) {
					return
				}
			}
			next = link
		}
	}
}

func (c *Client) firstPageURL(path string, q url.Values) (string, error) {
	if c.Token == "" {
		return "", errors.New("canvas: missing api token")
	}
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("canvas: invalid base url: %w", err)
	}
	vals := u.Query()
	for k, vs := range q {
		for _, v := range vs {
			vals.Add(k, v)
		}
	}
	perPage := c.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	vals.Set("per_page", strconv.Itoa(perPage))
	u.RawQuery = vals.Encode()
	return u.String(), nil
}

// fetchPage GETs one page and returns its items and the rel="next" URL.
func fetchPage[T any](ctx context.Context, c *Client, pageURL string) ([]T, string, error) {
	var out []T
	hdr, err := httpx.DoJSON(
		ctx,
		c.HTTP,
		func(ctx context.Context) (*http.Request, error) {
			r, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
			if err != nil {
				return nil, err
			}
			r.Header.Set("Accept", "application/json")
			r.Header.Set("Authorization", "Bearer "+c.Token)
			return r, nil
		},
		&out,
		c.Retry,
	)
	if err != nil {
		return nil, "", err
	}
	return out, httpx.NextLink(hdr), nil
}
