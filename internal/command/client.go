package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayoisaiah/pomodoro/store"
)

// Client forwards requests to a Server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Handler that talks to the server at addr. addr may be
// a bare host:port or a full URL.
func NewClient(addr string) *Client {
	base := strings.TrimRight(addr, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Handle implements Handler.
func (c *Client) Handle(ctx context.Context, req Request) (Response, error) {
	var resp Response

	body, err := json.Marshal(req)
	if err != nil {
		return resp, err
	}

	r, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+commandPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return resp, err
	}

	r.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(r)
	if err != nil {
		return resp, errUnreachable.Fmt(c.baseURL).Wrap(err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK &&
		res.StatusCode != http.StatusBadRequest {
		return resp, errUnexpectedStatus.Fmt(res.StatusCode, c.baseURL)
	}

	err = json.NewDecoder(res.Body).Decode(&resp)
	if err != nil {
		return resp, fmt.Errorf("decode response: %w", err)
	}

	return resp, nil
}

// Sessions lists the completed sessions recorded by the server.
func (c *Client) Sessions(
	ctx context.Context,
	since, until time.Time,
) ([]store.SessionRecord, error) {
	query := url.Values{}

	if !since.IsZero() {
		query.Set("since", since.Format(time.RFC3339Nano))
	}

	if !until.IsZero() {
		query.Set("until", until.Format(time.RFC3339Nano))
	}

	u := c.baseURL + historyPath
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(r)
	if err != nil {
		return nil, errUnreachable.Fmt(c.baseURL).Wrap(err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errUnexpectedStatus.Fmt(res.StatusCode, c.baseURL)
	}

	var records []store.SessionRecord

	err = json.NewDecoder(res.Body).Decode(&records)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return records, nil
}
