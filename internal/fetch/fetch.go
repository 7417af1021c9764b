// Package fetch retrieves the raw source file in a single attempt.
package fetch

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Fetcher copies the remote resource into w.
type Fetcher interface {
	Fetch(ctx context.Context, w io.Writer) error
}

// New picks a Fetcher for the scheme of rawURL: http(s) or s3.
func New(rawURL string, timeout time.Duration) (Fetcher, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing source url %q", rawURL)
	}
	switch u.Scheme {
	case "http", "https":
		return NewHTTP(u.String(), NewClient(timeout)), nil
	case "s3":
		return NewS3(u.String(), timeout)
	default:
		return nil, errors.Errorf("unsupported source scheme %q", u.Scheme)
	}
}
