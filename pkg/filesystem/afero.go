//go:build linux || darwin

package filesystem

import (
	"io"
	"io/fs"

	"github.com/arthur-debert/dircolors/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation.
// Symlinks are only visible when the underlying afero.Fs implements
// afero.Lstater and afero.LinkReader (OsFs and BasePathFs do, MemMapFs
// does not). Directory descriptors cannot be resolved and fail with
// fs.ErrInvalid.
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) resolve(op string, dir types.DirRef, name string) (string, error) {
	path, ok := dir.Resolve(name)
	if !ok {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return path, nil
}

func (a *aferoFS) StatAt(dir types.DirRef, name string, followSymlinks bool) (uint32, error) {
	path, err := a.resolve("stat", dir, name)
	if err != nil {
		return 0, err
	}

	var info fs.FileInfo
	if lstater, ok := a.fs.(afero.Lstater); ok && !followSymlinks {
		info, _, err = lstater.LstatIfPossible(path)
	} else {
		info, err = a.fs.Stat(path)
	}
	if err != nil {
		return 0, err
	}
	return ModeFromFileInfo(info), nil
}

func (a *aferoFS) ReadlinkAt(dir types.DirRef, name string) (string, error) {
	path, err := a.resolve("readlink", dir, name)
	if err != nil {
		return "", err
	}
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: afero.ErrNoReadlink}
	}
	return reader.ReadlinkIfPossible(path)
}

func (a *aferoFS) OpenDir(path string) (types.DirRef, io.Closer, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return types.DirRef{}, nil, err
	}
	if !info.IsDir() {
		return types.DirRef{}, nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrInvalid}
	}
	return types.DirPath(path), nopCloser{}, nil
}

func (a *aferoFS) ReadDirNames(path string) ([]string, error) {
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
