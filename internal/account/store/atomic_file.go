package store

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/allisson/azurecli/internal/errors"
)

// ioError wraps a file system failure as ErrIO while keeping the underlying
// error reachable with errors.Is (e.g. fs.ErrPermission).
func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", apperrors.ErrIO, op, path, err)
}

// writeFileAtomic writes data to path through a temporary file in the same
// directory followed by fsync and rename, so readers observe either the old
// content or the new one. The temporary file is removed on every failure path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, privateDirMode); err != nil {
		return ioError("creating directory", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return ioError("creating temporary file for", path, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	// Write, chmod, sync, close, in that order.
	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return ioError("writing", tmpPath, err)
	}
	if err := tmpFile.Chmod(perm); err != nil {
		_ = tmpFile.Close()
		return ioError("setting permissions on", tmpPath, err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return ioError("syncing", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return ioError("closing", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return ioError("renaming into place", path, err)
	}
	success = true

	// Make the rename durable. Failure here does not invalidate the write.
	if parent, err := os.Open(dir); err == nil {
		_ = parent.Sync()
		_ = parent.Close()
	}

	return nil
}
