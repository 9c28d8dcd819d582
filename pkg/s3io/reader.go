package s3io

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Reader streams the body of a single GetObject request.
type Reader struct {
	body   io.ReadCloser
	bucket string
	key    string
	size   int64
}

func NewReader(ctx context.Context, path string, client s3iface.S3API) (*Reader, error) {
	bucket, key, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	out, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return &Reader{
		body:   out.Body,
		bucket: bucket,
		key:    key,
		size:   aws.Int64Value(out.ContentLength),
	}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.body.Read(p)
}

// Size returns the object's length as reported by S3.
func (r *Reader) Size() int64 {
	return r.size
}

func (r *Reader) Close() error {
	return r.body.Close()
}
