package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps blobs as flat files in one directory.
// References are generated file names: {uuid}{ext}.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir when missing.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Put writes to a temp file, fsyncs and renames it into place, so a
// reference is never visible before its content is complete.
func (s *LocalStore) Put(_ context.Context, p Payload) (string, error) {
	ref := uuid.NewString() + p.Ext()
	fullPath := filepath.Join(s.dir, ref)
	tmpPath := fullPath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(p.Data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write data: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("fsync: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close file: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("rename: %w", err)
	}

	return ref, nil
}

// Delete removes ref. A missing file is not an error.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	if err := CheckRef(ref); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", ref, err)
	}
	return nil
}

// Path resolves ref to an absolute path if the file exists.
func (s *LocalStore) Path(ref string) (string, bool) {
	if CheckRef(ref) != nil {
		return "", false
	}
	fullPath, err := filepath.Abs(filepath.Join(s.dir, ref))
	if err != nil {
		return "", false
	}
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return "", false
	}
	return fullPath, true
}

// PathLocator renders local references as URLs served by the API itself.
type PathLocator struct {
	base string
}

func NewPathLocator(base string) PathLocator {
	return PathLocator{base: strings.TrimRight(base, "/")}
}

func (l PathLocator) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return l.base + "/" + url.PathEscape(ref)
}
