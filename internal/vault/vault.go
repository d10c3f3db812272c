// Package vault provides file operations scoped to a notes directory.
//
// Paths are vault-relative and use forward slashes; a leading "/" refers to
// the vault root, the way note-taking apps display them.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"todaysthought/internal/logs"
)

// ErrOutsideVault is returned for paths that resolve above the vault root.
var ErrOutsideVault = errors.New("path is outside the vault")

// Entry describes a file or folder in the vault.
type Entry struct {
	Path  string
	IsDir bool
}

// Vault implements file operations rooted at a directory.
type Vault struct {
	root string
}

// New creates a Vault for root. The directory is not created until something
// is written to it.
func New(root string) *Vault {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &Vault{root: abs}
}

// Root returns the absolute vault directory.
func (v *Vault) Root() string {
	return v.root
}

// Abs resolves a vault-relative path to an absolute filesystem path.
func (v *Vault) Abs(rel string) (string, error) {
	slashed := filepath.ToSlash(rel)
	if escapes(slashed) {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, rel)
	}
	clean := path.Clean("/" + slashed)
	return filepath.Join(v.root, filepath.FromSlash(clean)), nil
}

// escapes reports whether ".." segments climb above the start of rel.
// path.Clean would silently drop them.
func escapes(rel string) bool {
	depth := 0
	for _, seg := range strings.Split(rel, "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}

// Lookup returns the entry at rel, or false when nothing exists there.
func (v *Vault) Lookup(rel string) (Entry, bool) {
	abs, err := v.Abs(rel)
	if err != nil {
		return Entry{}, false
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Path: rel, IsDir: info.IsDir()}, true
}

// Exists reports whether a file or folder exists at rel.
func (v *Vault) Exists(rel string) bool {
	_, ok := v.Lookup(rel)
	return ok
}

// IsFile reports whether a regular file exists at rel.
func (v *Vault) IsFile(rel string) bool {
	entry, ok := v.Lookup(rel)
	return ok && !entry.IsDir
}

// Read returns the content of the file at rel.
func (v *Vault) Read(rel string) (string, error) {
	abs, err := v.Abs(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(data), nil
}

// Write replaces the content of the file at rel. The new content is written
// to a temporary file in the same folder and renamed over the original, so a
// failed write leaves the previous content in place. An existing file keeps
// its permission bits; a new one gets 0644.
func (v *Vault) Write(rel, content string) error {
	abs, err := v.Abs(rel)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(abs); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(abs)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(abs)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", rel, err)
	}
	if err := os.Rename(tmpPath, abs); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", rel, err)
	}

	logs.Logger.Printf("Wrote %s (%d bytes)", rel, len(content))
	return nil
}

// CreateFile creates a new file at rel with the given content. It fails with
// an error wrapping fs.ErrExist when the file is already there.
func (v *Vault) CreateFile(rel, content string) error {
	abs, err := v.Abs(rel)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", rel, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("create %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create %s: %w", rel, err)
	}

	logs.Logger.Printf("Created note %s", rel)
	return nil
}

// CreateFolder creates the folder at rel and any missing parents. It
// succeeds when the folder already exists.
func (v *Vault) CreateFolder(rel string) error {
	abs, err := v.Abs(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return fmt.Errorf("create folder %s: %w", rel, err)
	}
	logs.Logger.Printf("Ensured folder %s", rel)
	return nil
}
