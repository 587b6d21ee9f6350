// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textio reads and writes whole UTF-8 text files.
//
// Reads reject invalid UTF-8 and normalize CRLF and lone CR line endings to
// LF. Writes go to a temporary file in the target directory that is renamed
// into place, so a failed write never leaves partial output behind.
package textio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadText returns the contents of path as LF-terminated text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(path, data)
}

// Decode validates data as UTF-8 and normalizes its line endings. name is
// used only in error messages.
func Decode(name string, data []byte) (string, error) {
	valid, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w: %v", name, ErrInvalidEncoding, err)
	}
	return newlines.Replace(string(valid)), nil
}

// WriteText creates or replaces path with text. A replaced file keeps its
// permission bits; a new one is created 0644. Missing parent directories are
// not created.
func WriteText(path, text string) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.WriteString(text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Chmod(tmp, targetMode(path)); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// targetMode returns the permission bits of an existing path, or 0644.
func targetMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0o644
	}
	return info.Mode().Perm()
}
