// Package directory is the HTTP client for the employee listing endpoint.
//
// The endpoint is paginated by limit/skip and returns a fixed field subset:
//
//	GET <base>/users?limit=10&skip=20&select=firstName,lastName,...
//	{"users": [{"id": 21, "firstName": "...", ...}], "total": 208, "skip": 20, "limit": 10}
package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/roster/internal/employee"
	"github.com/rshade/roster/internal/logging"
)

// PageSize is the fixed number of records requested per page.
const PageSize = 10

const (
	usersPath      = "/users"
	defaultTimeout = 10 * time.Second
	retryWait      = 200 * time.Millisecond
	retryMaxWait   = 2 * time.Second
)

// SelectFields is the field subset requested from the endpoint.
//
//nolint:gochecknoglobals // Read-only request constant.
var SelectFields = []string{"firstName", "lastName", "age", "gender", "company", "address", "image"}

// ErrFetchFailure is the single error kind of the fetcher: network failures,
// non-2xx responses and undecodable bodies all wrap it.
var ErrFetchFailure = errors.New("fetch failure")

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	UserAgent  string
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client fetches pages of users.
type Client struct {
	http    *resty.Client
	baseURL string
	group   singleflight.Group
}

// NewClient builds a Client. BaseURL is required.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("directory: base URL is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(base).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(retryCondition)
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{http: rc, baseURL: base}, nil
}

// BaseURL returns the normalized endpoint base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// retryCondition retries network errors, 5xx, 408 and 429. It is only
// consulted when RetryCount > 0.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= http.StatusInternalServerError ||
		code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout
}

// FetchPage requests page pageIndex (0-based). An empty result means the
// listing is exhausted. Identical concurrent calls share one request; the
// shared request is detached from any single caller's cancellation and each
// caller stops waiting when its own ctx is done.
func (c *Client) FetchPage(ctx context.Context, pageIndex int) ([]User, error) {
	if pageIndex < 0 {
		return nil, fmt.Errorf("%w: negative page index %d", ErrFetchFailure, pageIndex)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: requesting page %d: %w", ErrFetchFailure, pageIndex, err)
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(strconv.Itoa(pageIndex), func() (interface{}, error) {
		return c.fetch(shared, pageIndex)
	})

	log := logging.FromContext(ctx)
	select {
	case <-ctx.Done():
		log.Debug().
			Str("component", "directory").
			Str("operation", "fetch_page").
			Int("page", pageIndex).
			Msg("caller stopped waiting for page")
		return nil, fmt.Errorf("%w: requesting page %d: %w", ErrFetchFailure, pageIndex, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			log.Debug().
				Str("component", "directory").
				Str("operation", "fetch_page").
				Int("page", pageIndex).
				Bool("shared", res.Shared).
				Err(res.Err).
				Msg("page fetch failed")
			return nil, res.Err
		}

		users, _ := res.Val.([]User)
		log.Debug().
			Str("component", "directory").
			Str("operation", "fetch_page").
			Int("page", pageIndex).
			Int("count", len(users)).
			Bool("shared", res.Shared).
			Msg("page fetched")
		return users, nil
	}
}

// FetchRecords fetches page pageIndex and normalizes it into records.
func (c *Client) FetchRecords(ctx context.Context, pageIndex int) ([]employee.Record, error) {
	users, err := c.FetchPage(ctx, pageIndex)
	if err != nil {
		return nil, err
	}
	return Records(users), nil
}

func (c *Client) fetch(ctx context.Context, pageIndex int) ([]User, error) {
	var body listResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(PageQuery(pageIndex)).
		SetResult(&body).
		Get(usersPath)
	if err != nil {
		return nil, fmt.Errorf("%w: requesting page %d: %w", ErrFetchFailure, pageIndex, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: page %d: unexpected status %d", ErrFetchFailure, pageIndex, resp.StatusCode())
	}
	if body.Users == nil {
		// resty leaves the result untouched when the body is not JSON.
		if !strings.Contains(resp.Header().Get("Content-Type"), "json") {
			return nil, fmt.Errorf("%w: page %d: response is not JSON", ErrFetchFailure, pageIndex)
		}
		return nil, fmt.Errorf("%w: page %d: response has no users field", ErrFetchFailure, pageIndex)
	}
	return body.Users, nil
}

// PageQuery returns the query parameters for pageIndex.
func PageQuery(pageIndex int) map[string]string {
	return map[string]string{
		"limit":  strconv.Itoa(PageSize),
		"skip":   strconv.Itoa(pageIndex * PageSize),
		"select": strings.Join(SelectFields, ","),
	}
}
