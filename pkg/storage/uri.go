package storage

import (
	"net/url"
	"path/filepath"
	"strings"
)

type Scheme string

const (
	FileScheme  Scheme = "file"
	StdioScheme Scheme = "stdio"
	HTTPScheme  Scheme = "http"
	HTTPSScheme Scheme = "https"
	S3Scheme    Scheme = "s3"
)

func knownScheme(s Scheme) bool {
	switch s {
	case FileScheme, StdioScheme, HTTPScheme, HTTPSScheme, S3Scheme:
		return true
	}
	return false
}

func getScheme(u *URI) (Scheme, bool) {
	scheme := Scheme(u.Scheme)
	return scheme, knownScheme(scheme)
}

type URI url.URL

// ParseURI interprets path as a URI when it begins with a known scheme
// followed by "://".  Anything else is a file system path, taken as is,
// except for "-", which names standard input.  A file named "-" is reached
// as "./-".  If path is empty, a pointer
// to a zero-valued URI is returned.
func ParseURI(path string) (*URI, error) {
	if path == "" {
		return &URI{}, nil
	}
	if path == "-" {
		return &URI{Scheme: string(StdioScheme), Path: "/stdin"}, nil
	}
	scheme, _, ok := strings.Cut(path, "://")
	if !ok || !knownScheme(Scheme(scheme)) {
		return parseBarePath(path), nil
	}
	u, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	return (*URI)(u), nil
}

func MustParseURI(path string) *URI {
	u, err := ParseURI(path)
	if err != nil {
		panic(err)
	}
	return u
}

func parseBarePath(path string) *URI {
	return &URI{Scheme: string(FileScheme), Path: filepath.ToSlash(path)}
}

func (u URI) String() string {
	if Scheme(u.Scheme) == FileScheme && !strings.HasPrefix(u.Path, "/") {
		// Relative paths have no URL form, so show them as given.
		return u.Filepath()
	}
	return (*url.URL)(&u).String()
}

func (u *URI) HasScheme(s Scheme) bool {
	return Scheme(u.Scheme) == s
}

// Filepath returns the file system path of a file URI.
func (u URI) Filepath() string {
	return filepath.FromSlash(u.Path)
}

func (u *URI) IsZero() bool {
	return *u == URI{}
}
