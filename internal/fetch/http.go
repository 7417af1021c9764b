package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type Client struct {
	client *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// HTTP fetches with one GET request.
type HTTP struct {
	client Doer
	url    string
}

func NewHTTP(url string, client Doer) *HTTP {
	return &HTTP{client: client, url: url}
}

func (h *HTTP) Fetch(ctx context.Context, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", h.url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("GET %s: unexpected status %s", h.url, resp.Status)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrap(err, "reading response body")
	}
	return nil
}
