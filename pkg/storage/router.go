package storage

import (
	"context"
	"fmt"
)

// Router dispatches each request to the Engine registered for the URI's
// scheme.
type Router struct {
	engines map[Scheme]Engine
}

var _ Engine = (*Router)(nil)

func NewRouter() *Router {
	return &Router{engines: make(map[Scheme]Engine)}
}

// Enable installs the default engine for scheme.
func (r *Router) Enable(scheme Scheme) {
	switch scheme {
	case FileScheme:
		r.engines[scheme] = NewFileSystem()
	case StdioScheme:
		r.engines[scheme] = NewStdioEngine()
	case HTTPScheme, HTTPSScheme:
		r.engines[scheme] = NewHTTP()
	case S3Scheme:
		r.engines[scheme] = NewS3()
	}
}

// Set installs engine for scheme, replacing any engine already there.
func (r *Router) Set(scheme Scheme, engine Engine) {
	r.engines[scheme] = engine
}

func (r *Router) lookup(u *URI) (Engine, error) {
	scheme, ok := getScheme(u)
	if !ok {
		return nil, fmt.Errorf("%s: unknown scheme", u)
	}
	engine, ok := r.engines[scheme]
	if !ok {
		return nil, fmt.Errorf("%s: scheme %q not supported", u, scheme)
	}
	return engine, nil
}

func (r *Router) Get(ctx context.Context, u *URI) (Reader, error) {
	engine, err := r.lookup(u)
	if err != nil {
		return nil, err
	}
	return engine.Get(ctx, u)
}
