// Package notes locates daily notes in a vault and reads or writes single
// fields in their front matter.
package notes

import (
	"errors"

	"todaysthought/internal/frontmatter"
)

// Extension is appended to every daily note file name.
const Extension = ".md"

// EmptyNote is the content of a freshly created daily note.
const EmptyNote = "---\n---\n\n"

// ErrConcurrentModification is returned by WriteField when the note changed
// on disk between reading it and writing the update.
var ErrConcurrentModification = errors.New("note was modified during update")

// NoteRef identifies a note in the vault. It is resolved fresh for every
// operation and never cached.
type NoteRef struct {
	Path string // Vault-relative path, e.g. "/Journal/2024-06-10.md"
}

// Layout holds the settings that map a date to a note path.
type Layout struct {
	Folder string // "/" or "" means the vault root
	Format string // moment.js pattern, e.g. "YYYY-MM-DD"
}

// Storage is the file access the notes package needs from a vault.
type Storage interface {
	Exists(path string) bool
	IsFile(path string) bool
	Read(path string) (string, error)
	Write(path, content string) error
	CreateFile(path, content string) error
	CreateFolder(path string) error
}

// FrontMatter splits note content into fields and body, and renders them
// back into a full note.
type FrontMatter interface {
	Split(content string) (*frontmatter.Fields, string, bool)
	Render(fields *frontmatter.Fields, body string) (string, error)
}
