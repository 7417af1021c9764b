package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

// S3 reads a mirrored copy of the source file from a bucket.
type S3 struct {
	downloader *s3manager.Downloader
	bucket     string
	key        string
}

func NewS3(rawURL string, timeout time.Duration) (*S3, error) {
	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return nil, err
	}
	sess, err := session.NewSession(&aws.Config{
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating aws session")
	}
	return &S3{
		downloader: s3manager.NewDownloader(sess),
		bucket:     bucket,
		key:        key,
	}, nil
}

func (s *S3) Fetch(ctx context.Context, w io.Writer) error {
	buf := aws.NewWriteAtBuffer(nil)
	_, err := s.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return errors.Wrapf(err, "downloading s3://%s/%s", s.bucket, s.key)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing s3 object")
	}
	return nil
}

// ParseS3URL splits s3://bucket/some/key into bucket and key.
func ParseS3URL(rawURL string) (string, string, error) {
	if !strings.HasPrefix(rawURL, "s3://") {
		return "", "", errors.Errorf("not an s3 url: %q", rawURL)
	}
	parts := strings.SplitN(strings.TrimPrefix(rawURL, "s3://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("s3 url needs bucket and key: %q", rawURL)
	}
	return parts[0], parts[1], nil
}
