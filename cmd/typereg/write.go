package main

import (
	"io"
	"os"
	"path/filepath"
)

// tempFile is the part of *os.File writeFileAtomic needs.
type tempFile interface {
	io.WriteCloser
	Name() string
}

// File system seams, replaced in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	removeFile     = os.Remove
	chmodFile      = os.Chmod
	renameFile     = os.Rename
)

// writeFileAtomic writes data next to targetPath and renames it into place,
// so readers never observe a partially written file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
