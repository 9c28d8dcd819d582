package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

// StdioEngine reads from standard input.  The process's stdin is never
// closed by the Reader it returns.
type StdioEngine struct {
	stdin io.Reader
}

var _ Engine = (*StdioEngine)(nil)

func NewStdioEngine() *StdioEngine {
	return NewStdioEngineWithReader(os.Stdin)
}

func NewStdioEngineWithReader(r io.Reader) *StdioEngine {
	return &StdioEngine{stdin: r}
}

func (s *StdioEngine) Get(_ context.Context, u *URI) (Reader, error) {
	if u.Path != "/stdin" {
		return nil, fmt.Errorf("%s: %w", u, ErrNotSupported)
	}
	return io.NopCloser(s.stdin), nil
}
