// Package client fetches reports and status from a running cashflow server.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/cashflow/internal/model"
	"github.com/theirongolddev/cashflow/internal/server"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 4 << 20 // 4 MB
)

// ErrUnavailable indicates the server could not be reached or answered
// with a server-side failure.
var ErrUnavailable = errors.New("client: server unavailable")

// Client talks to the cashflow HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for addr, either "host:port" or a full http(s) URL.
func New(addr string) (*Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("%w: empty server address", model.ErrInvalidArgument)
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: server address %q", model.ErrInvalidArgument, addr)
	}
	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
	}, nil
}

// Query selects the report to build. Zero values defer to the server's
// defaults; a non-nil empty Months or SelectedYears asks for an empty report.
type Query struct {
	Years         int
	Months        []model.Month
	SelectedYears []int
	Seed          *int64
}

// Values encodes q as URL query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Years > 0 {
		v.Set("years", strconv.Itoa(q.Years))
	}
	if q.Months != nil {
		labels := make([]string, len(q.Months))
		for i, m := range q.Months {
			labels[i] = m.String()
		}
		v.Set("month", strings.Join(labels, ","))
	}
	if q.SelectedYears != nil {
		years := make([]string, len(q.SelectedYears))
		for i, y := range q.SelectedYears {
			years[i] = strconv.Itoa(y)
		}
		v.Set("year", strings.Join(years, ","))
	}
	if q.Seed != nil {
		v.Set("seed", strconv.FormatInt(*q.Seed, 10))
	}
	return v
}

// Health returns nil when the server answers /healthz.
func (c *Client) Health(ctx context.Context) error {
	var body map[string]string
	if err := c.getJSON(ctx, "/healthz", nil, &body); err != nil {
		return err
	}
	if body["status"] != "ok" {
		return fmt.Errorf("%w: health status %q", ErrUnavailable, body["status"])
	}
	return nil
}

// Status returns the server's counters.
func (c *Client) Status(ctx context.Context) (*server.Status, error) {
	var st server.Status
	if err := c.getJSON(ctx, "/v1/status", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Months returns the month labels the server accepts, in calendar order.
func (c *Client) Months(ctx context.Context) ([]model.Month, error) {
	var months []model.Month
	if err := c.getJSON(ctx, "/v1/months", nil, &months); err != nil {
		return nil, err
	}
	return months, nil
}

// Report builds a report on the server.
func (c *Client) Report(ctx context.Context, q Query) (*server.ReportResponse, error) {
	var rep server.ReportResponse
	if err := c.getJSON(ctx, "/v1/report", q.Values(), &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// getJSON performs a GET and decodes the JSON response into out. A 400
// answer is returned as model.ErrInvalidArgument carrying the server's message.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("client: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req) //nolint:gosec // URL is built from the user's configured address
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("client: reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", model.ErrInvalidArgument, errorMessage(body))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: HTTP %d: %s", ErrUnavailable, resp.StatusCode, errorMessage(body))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("client: unexpected status %d: %s", resp.StatusCode, errorMessage(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("client: parsing %s: %w", path, err)
	}
	return nil
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw text.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
