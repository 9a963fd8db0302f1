package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const fileSuffix = ".json"

type fileStore struct {
	fs  afero.Fs
	dir string
}

// NewFile stores each slot as <dir>/<key>.json on the OS filesystem.
func NewFile(dir string) (Store, error) {
	return NewFileOnFs(afero.NewOsFs(), dir)
}

// NewFileOnFs is NewFile over an arbitrary afero filesystem.
func NewFileOnFs(fsys afero.Fs, dir string) (Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
	}
	return &fileStore{fs: fsys, dir: dir}, nil
}

func (s *fileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+fileSuffix), nil
}

func (s *fileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	v, err := afero.ReadFile(s.fs, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", p, err)
	}
	return v, true, nil
}

// Set writes to a temp file and renames it over the slot so readers never see a torn write.
func (s *fileStore) Set(ctx context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	tmp := p + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, p); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %q: %w", tmp, err)
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", p, err)
	}
	return nil
}

func (s *fileStore) Ping(ctx context.Context) error {
	_, err := s.fs.Stat(s.dir)
	return err
}

func (s *fileStore) Close() error { return nil }
