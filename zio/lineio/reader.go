// Package lineio reads newline-terminated lines from a stream.  Memory use
// is bounded by the longest line rather than by the size of the stream.
package lineio

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

type Reader struct {
	reader *bufio.Reader
	eof    bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// Read returns the next line with its terminating "\n" or "\r\n" removed,
// or nil and a nil error when no lines remain.  Read never returns io.EOF.
// A final line that lacks a terminator is still returned.  A line that is
// not valid UTF-8 is an error.
func (r *Reader) Read() (*string, error) {
	if r.eof {
		return nil, nil
	}
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		r.eof = true
		if line == "" {
			return nil, nil
		}
	}
	if !utf8.ValidString(line) {
		return nil, ErrInvalidUTF8
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return &line, nil
}
