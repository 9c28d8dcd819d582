//go:generate mockgen -destination=./mock/mock_engine.go -package=mock github.com/brimdata/calc/pkg/storage Engine

package storage

import (
	"context"
	"errors"
	"io"
)

type Reader interface {
	io.Reader
	io.Closer
}

var ErrNotSupported = errors.New("method call on storage engine not supported")

// Engine opens the object named by a URI for sequential reading.  The
// caller must close the returned Reader.
type Engine interface {
	Get(context.Context, *URI) (Reader, error)
}

func NewRemoteEngine() *Router {
	router := NewRouter()
	router.Enable(HTTPScheme)
	router.Enable(HTTPSScheme)
	router.Enable(S3Scheme)
	return router
}

func NewLocalEngine() *Router {
	router := NewRemoteEngine()
	router.Enable(FileScheme)
	router.Enable(StdioScheme)
	return router
}

