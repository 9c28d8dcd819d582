package s3io

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGetter struct {
	s3iface.S3API
	get func(*s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

func (m *mockGetter) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	return m.get(in)
}

func TestParsePath(t *testing.T) {
	bucket, key, err := parsePath("s3://bucket/dir/values.txt")
	require.NoError(t, err)
	assert.Equal(t, "bucket", bucket)
	assert.Equal(t, "dir/values.txt", key)
	assert.True(t, IsS3Path("s3://bucket/key"))
	for _, path := range []string{"http://localhost/key", "s3://bucket", "s3:///key", "values.txt"} {
		assert.False(t, IsS3Path(path), path)
	}
}

func TestReadInvalidPath(t *testing.T) {
	_, err := NewReader(context.Background(), "http://localhost/values", &mockGetter{})
	require.Equal(t, ErrInvalidS3Path, err)
}

func TestReadSimple(t *testing.T) {
	data := "1\n2\n3\n"
	client := &mockGetter{
		get: func(in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
			assert.Equal(t, "bucket", aws.StringValue(in.Bucket))
			assert.Equal(t, "values.txt", aws.StringValue(in.Key))
			return &s3.GetObjectOutput{
				Body:          io.NopCloser(strings.NewReader(data)),
				ContentLength: aws.Int64(int64(len(data))),
			}, nil
		},
	}
	r, err := NewReader(context.Background(), "s3://bucket/values.txt", client)
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, string(b))
	assert.EqualValues(t, len(data), r.Size())
	require.NoError(t, r.Close())
}

func TestReadError(t *testing.T) {
	expected := errors.New("expected error")
	client := &mockGetter{
		get: func(*s3.GetObjectInput) (*s3.GetObjectOutput, error) {
			return nil, expected
		},
	}
	_, err := NewReader(context.Background(), "s3://bucket/values.txt", client)
	assert.Equal(t, expected, err)
	assert.False(t, IsNotFound(err))
}

func TestIsNotFound(t *testing.T) {
	noKey := awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)
	assert.True(t, IsNotFound(noKey))
	reqErr := awserr.NewRequestFailure(awserr.New("NotFound", "not found", nil), http.StatusNotFound, "req")
	assert.True(t, IsNotFound(reqErr))
	denied := awserr.NewRequestFailure(awserr.New("AccessDenied", "denied", nil), http.StatusForbidden, "req")
	assert.False(t, IsNotFound(denied))
	assert.False(t, IsNotFound(nil))
}
