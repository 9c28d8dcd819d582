package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(ctx context.Context, engine Engine, path string) (Reader, error) {
	u, err := ParseURI(path)
	if err != nil {
		return nil, err
	}
	return engine.Get(ctx, u)
}

func readAll(t *testing.T, engine Engine, path string) string {
	r, err := open(context.Background(), engine, path)
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(b)
}

func TestFileNamedDash(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "-"), []byte("7\n"), 0644))
	engine := NewLocalEngine()
	engine.Set(StdioScheme, NewStdioEngineWithReader(strings.NewReader("stdin\n")))
	assert.Equal(t, "7\n", readAll(t, engine, filepath.Join(dir, "-")))
	assert.Equal(t, "stdin\n", readAll(t, engine, "-"))
}

func TestFileSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0644))
	engine := NewLocalEngine()
	assert.Equal(t, "1\n2\n", readAll(t, engine, path))
	assert.Equal(t, "1\n2\n", readAll(t, engine, "file://"+filepath.ToSlash(path)))
}

func TestFileSystemNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := open(context.Background(), NewFileSystem(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	// The operating system's message is not rewritten.
	_, osErr := os.Open(path)
	assert.Equal(t, osErr.Error(), err.Error())
}

func TestStdio(t *testing.T) {
	router := NewLocalEngine()
	router.Set(StdioScheme, NewStdioEngineWithReader(strings.NewReader("5.5\n")))
	assert.Equal(t, "5.5\n", readAll(t, router, "-"))
	_, err := router.Get(context.Background(), &URI{Scheme: "stdio", Path: "/stdout"})
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/values":
			io.WriteString(w, "10\n20\n30\n")
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	engine := NewRouter()
	engine.Set(HTTPScheme, NewHTTPWithClient(srv.Client()))
	assert.Equal(t, "10\n20\n30\n", readAll(t, engine, srv.URL+"/values"))

	_, err := open(context.Background(), engine, srv.URL+"/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = open(context.Background(), engine, srv.URL+"/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestRouterSchemeNotEnabled(t *testing.T) {
	router := NewRouter()
	_, err := open(context.Background(), router, "values.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scheme "file" not supported`)
	_, err = router.Get(context.Background(), &URI{Scheme: "ftp", Path: "/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scheme")
}

type stubEngine struct{ err error }

func (s stubEngine) Get(context.Context, *URI) (Reader, error) { return nil, s.err }

func TestRouterSet(t *testing.T) {
	expected := errors.New("stub")
	router := NewRouter()
	router.Set(S3Scheme, stubEngine{expected})
	_, err := open(context.Background(), router, "s3://bucket/key")
	assert.Equal(t, expected, err)
}
