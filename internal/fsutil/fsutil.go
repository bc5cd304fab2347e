// Package fsutil holds the filesystem operations used to stage and publish
// generated documentation.
package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
)

// Exists reports whether path exists (without following a final symlink).
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CopyTree copies the directory src to dst recursively. dst is created when
// missing; existing files below dst are overwritten and unrelated files are
// left in place. File modes and symlinks are preserved.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fsError("failed to stat copy source", err, src, dst)
	}
	if !info.IsDir() {
		return ferrors.FileSystemError("copy source is not a directory").
			WithContext("src", src).
			Build()
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, target)
		case d.IsDir():
			fi, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, fi.Mode().Perm()|0o700)
		default:
			return copyFile(path, target)
		}
	})
	if err != nil {
		return fsError("failed to copy directory", err, src, dst)
	}
	return nil
}

// Move renames src to dst, falling back to copy and remove when the two paths
// are on different filesystems.
func Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fsError("failed to create move destination parent", err, src, dst)
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fsError("failed to move directory", err, src, dst)
	}
	if err := CopyTree(src, dst); err != nil {
		return err
	}
	if err := os.RemoveAll(src); err != nil {
		return fsError("failed to remove move source", err, src, dst)
	}
	return nil
}

func copyFile(src, dst string) error {
	// #nosec G304 -- paths come from the generated documentation tree
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}
	// #nosec G304 -- destination lies below the configured output root
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, fi.Mode().Perm())
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		return err
	}
	return os.Symlink(link, dst)
}

func fsError(msg string, err error, src, dst string) error {
	return ferrors.FileSystemError(msg).
		WithCause(err).
		WithContext("src", src).
		WithContext("dst", dst).
		Build()
}
