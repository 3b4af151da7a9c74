// Package fsutil writes generated artifacts to disk without leaving partial
// files behind.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/systemshift/robo-identities/internal/errs"
)

// SafeWrite replaces path with data: tempfile in the same directory, fsync,
// chmod, rename. On failure the temp file is removed and path is untouched.
func SafeWrite(path string, data []byte, perm os.FileMode) (err error) {
	op := "write " + path
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return errs.New(errs.ErrIO, op, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return errs.New(errs.ErrIO, op, fmt.Errorf("write temp file: %w", err))
	}
	if err = f.Sync(); err != nil {
		return errs.New(errs.ErrIO, op, fmt.Errorf("fsync temp file: %w", err))
	}
	if err = f.Chmod(perm); err != nil {
		return errs.New(errs.ErrIO, op, fmt.Errorf("chmod temp file: %w", err))
	}
	if err = f.Close(); err != nil {
		return errs.New(errs.ErrIO, op, fmt.Errorf("close temp file: %w", err))
	}
	if err = os.Rename(tmp, path); err != nil {
		return errs.New(errs.ErrIO, op, fmt.Errorf("rename temp to target: %w", err))
	}
	return nil
}

// SafeAppend appends data to path, creating it if needed, and fsyncs.
func SafeAppend(path string, data []byte) error {
	op := "append " + path
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errs.New(errs.ErrIO, op, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errs.New(errs.ErrIO, op, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errs.New(errs.ErrIO, op, err)
	}
	if err := f.Close(); err != nil {
		return errs.New(errs.ErrIO, op, err)
	}
	return nil
}
