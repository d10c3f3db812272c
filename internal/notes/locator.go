package notes

import (
	"fmt"
	"path"
	"strings"
	"time"

	"todaysthought/internal/dateformat"
	"todaysthought/internal/logs"
)

// Locator maps dates to daily notes.
type Locator struct {
	store Storage
}

// NewLocator creates a Locator over store.
func NewLocator(store Storage) *Locator {
	return &Locator{store: store}
}

// Path returns the vault path of the daily note for date. A root folder
// produces a bare file name; any other folder produces "folder/filename".
func (l *Locator) Path(date time.Time, layout Layout) string {
	fileName := dateformat.Format(date, layout.Format) + Extension

	folder := strings.TrimRight(layout.Folder, "/")
	if folder == "" {
		return fileName
	}
	return folder + "/" + fileName
}

// Resolve returns the existing daily note for date, or false when there is
// none. It never creates anything.
func (l *Locator) Resolve(date time.Time, layout Layout) (NoteRef, bool) {
	p := l.Path(date, layout)
	if !l.store.IsFile(p) {
		return NoteRef{}, false
	}
	return NoteRef{Path: p}, true
}

// ResolveOrCreate returns the daily note for date, creating its folder and an
// empty note when needed. Calling it repeatedly returns the same note.
func (l *Locator) ResolveOrCreate(date time.Time, layout Layout) (NoteRef, error) {
	p := l.Path(date, layout)

	if dir := path.Dir(p); dir != "." && dir != "/" && !l.store.Exists(dir) {
		if err := l.store.CreateFolder(dir); err != nil {
			return NoteRef{}, fmt.Errorf("create folder for %s: %w", p, err)
		}
	}

	if l.store.IsFile(p) {
		return NoteRef{Path: p}, nil
	}

	if err := l.store.CreateFile(p, EmptyNote); err != nil {
		// Another writer may have created it first.
		if l.store.IsFile(p) {
			logs.Logger.Printf("Note %s appeared during create, using it", p)
			return NoteRef{Path: p}, nil
		}
		return NoteRef{}, fmt.Errorf("create note %s: %w", p, err)
	}

	return NoteRef{Path: p}, nil
}
