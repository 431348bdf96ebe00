package store

import (
	"context"
	"io"
	"net/url"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"shopcore/errs"
)

// FileStore persists one file per key on a billy filesystem. Keys are
// path-escaped so that the key separator ':' and user emails map to safe
// file names. Tests run it over memfs; production runs it over the OS
// filesystem rooted at a data directory.
type FileStore struct {
	fs billy.Filesystem
}

// NewFileStore returns a FileStore over the given filesystem.
func NewFileStore(fs billy.Filesystem) *FileStore {
	return &FileStore{fs: fs}
}

// NewOSFileStore returns a FileStore rooted at dir on the native filesystem.
func NewOSFileStore(dir string) *FileStore {
	return &FileStore{fs: osfs.New(dir)}
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errs.Wrap(errs.CodeStoreIO, "get "+key, err)
	}
	file, err := f.fs.Open(keyFileName(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errs.Wrap(errs.CodeStoreIO, "get "+key, err)
	}
	defer file.Close()

	b, err := io.ReadAll(file)
	if err != nil {
		return "", false, errs.Wrap(errs.CodeStoreIO, "get "+key, err)
	}
	return string(b), true, nil
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(errs.CodeStoreIO, "set "+key, err)
	}
	if err := util.WriteFile(f.fs, keyFileName(key), []byte(value), 0o600); err != nil {
		return errs.Wrap(errs.CodeStoreIO, "set "+key, err)
	}
	return nil
}

func (f *FileStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(errs.CodeStoreIO, "remove "+key, err)
	}
	if err := f.fs.Remove(keyFileName(key)); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(errs.CodeStoreIO, "remove "+key, err)
	}
	return nil
}

func keyFileName(key string) string {
	return url.PathEscape(key) + ".json"
}
