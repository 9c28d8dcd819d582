package storage

import (
	"context"
	"os"
)

type FileSystem struct{}

var _ Engine = (*FileSystem)(nil)

func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Get opens the file named by u.  Errors from the operating system are
// returned as is so their text reaches the user unchanged.
func (f *FileSystem) Get(_ context.Context, u *URI) (Reader, error) {
	file, err := os.Open(u.Filepath())
	if err != nil {
		return nil, err
	}
	return file, nil
}
