package lineio

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) []string {
	var lines []string
	for {
		line, err := r.Read()
		require.NoError(t, err)
		if line == nil {
			return lines
		}
		lines = append(lines, *line)
	}
}

func TestReader(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"terminated", "10\n20\n", []string{"10", "20"}},
		{"unterminated", "10\n20", []string{"10", "20"}},
		{"crlf", "1\r\n2\r\n", []string{"1", "2"}},
		{"blank lines", "\n\n3\n", []string{"", "", "3"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(c.input))
			assert.Equal(t, c.expected, readAll(t, r))
			// Once exhausted, the reader stays exhausted.
			line, err := r.Read()
			assert.NoError(t, err)
			assert.Nil(t, line)
		})
	}
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("9", 1<<20)
	r := NewReader(strings.NewReader(long + "\n1\n"))
	assert.Equal(t, []string{long, "1"}, readAll(t, r))
}

func TestReaderError(t *testing.T) {
	expected := errors.New("read failed")
	src := io.MultiReader(strings.NewReader("1\n2\n"), iotest.ErrReader(expected))
	r := NewReader(src)
	for i := 0; i < 2; i++ {
		line, err := r.Read()
		require.NoError(t, err)
		require.NotNil(t, line)
	}
	_, err := r.Read()
	assert.ErrorIs(t, err, expected)
}

func TestReaderInvalidUTF8(t *testing.T) {
	r := NewReader(strings.NewReader("10\n\xff\xfe\n20\n"))
	line, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "10", *line)
	_, err = r.Read()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.EqualError(t, err, "stream did not contain valid UTF-8")

	// Valid multi-byte text is fine.
	r = NewReader(strings.NewReader("42 \u00b5s\n"))
	assert.Equal(t, []string{"42 \u00b5s"}, readAll(t, r))
}
