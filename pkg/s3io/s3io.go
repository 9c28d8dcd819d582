package s3io

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var ErrInvalidS3Path = errors.New("path is not a valid s3 location")

func IsS3Path(path string) bool {
	_, _, err := parsePath(path)
	return err == nil
}

func parsePath(path string) (bucket, key string, err error) {
	var u *url.URL
	u, err = url.Parse(path)
	if err != nil {
		return
	}
	if u.Scheme != "s3" || u.Host == "" {
		err = ErrInvalidS3Path
		return
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		err = ErrInvalidS3Path
	}
	return
}

// NewClient returns an S3 client configured from cfg layered over the
// shared AWS configuration files and environment.
func NewClient(cfg *aws.Config) (s3iface.S3API, error) {
	opts := session.Options{SharedConfigState: session.SharedConfigEnable}
	if cfg != nil {
		opts.Config = *cfg
	}
	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

// IsNotFound reports whether err is S3's answer for a missing bucket or key.
func IsNotFound(err error) bool {
	var reqerr awserr.RequestFailure
	if errors.As(err, &reqerr) && reqerr.StatusCode() == http.StatusNotFound {
		return true
	}
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		switch awsErr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket:
			return true
		}
	}
	return false
}
