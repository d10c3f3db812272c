package notes

import (
	"crypto/sha256"
	"fmt"

	"todaysthought/internal/logs"
)

// Accessor reads and writes single front-matter fields of a note.
type Accessor struct {
	store Storage
	fm    FrontMatter
}

// NewAccessor creates an Accessor over store using fm for the front matter.
func NewAccessor(store Storage, fm FrontMatter) *Accessor {
	return &Accessor{store: store, fm: fm}
}

// ReadField returns the value of name in the note's front matter. A note
// without a front-matter block, or without the field, reports false.
func (a *Accessor) ReadField(ref NoteRef, name string) (string, bool, error) {
	content, err := a.store.Read(ref.Path)
	if err != nil {
		return "", false, err
	}

	fields, _, _ := a.fm.Split(content)
	value, ok := fields.Get(name)
	return value, ok, nil
}

// WriteField sets name to value and rewrites the note, keeping every other
// field and the body as they were. If the note changes on disk while the
// update is prepared, nothing is written and ErrConcurrentModification is
// returned.
func (a *Accessor) WriteField(ref NoteRef, name, value string) error {
	content, err := a.store.Read(ref.Path)
	if err != nil {
		return err
	}
	original := sha256.Sum256([]byte(content))

	fields, body, _ := a.fm.Split(content)
	fields.Set(name, value)

	updated, err := a.fm.Render(fields, body)
	if err != nil {
		return fmt.Errorf("serialize front matter of %s: %w", ref.Path, err)
	}

	current, err := a.store.Read(ref.Path)
	if err != nil {
		return err
	}
	if sha256.Sum256([]byte(current)) != original {
		logs.Logger.Printf("Note %s changed while writing %s, aborting", ref.Path, name)
		return fmt.Errorf("%s: %w", ref.Path, ErrConcurrentModification)
	}

	if err := a.store.Write(ref.Path, updated); err != nil {
		return err
	}
	logs.Logger.Printf("Set %s in %s", name, ref.Path)
	return nil
}
