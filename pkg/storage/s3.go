package storage

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/brimdata/calc/pkg/s3io"
)

// S3Engine reads objects from Amazon S3.  The client is created on first
// use so that AWS configuration is only consulted for s3 URIs.
type S3Engine struct {
	once   sync.Once
	client s3iface.S3API
	err    error
}

var _ Engine = (*S3Engine)(nil)

func NewS3() *S3Engine {
	return &S3Engine{}
}

func NewS3WithClient(client s3iface.S3API) *S3Engine {
	s := &S3Engine{client: client}
	s.once.Do(func() {})
	return s
}

func (s *S3Engine) init() {
	s.client, s.err = s3io.NewClient(nil)
}

func (s *S3Engine) Get(ctx context.Context, u *URI) (Reader, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	r, err := s3io.NewReader(ctx, u.String(), s.client)
	if err != nil {
		if s3io.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", u, fs.ErrNotExist)
		}
		return nil, err
	}
	return r, nil
}
