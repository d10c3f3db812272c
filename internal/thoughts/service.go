// Package thoughts records the daily thought in a note's front matter and
// looks up the thoughts recorded on earlier days.
package thoughts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todaysthought/internal/logs"
	"todaysthought/internal/notes"
)

// FieldName is the front-matter key the thought is stored under.
const FieldName = "todaysThought"

// NoThoughts is recorded when the user has no thought or no time for one.
const NoThoughts = "no thoughts or time"

// NoThoughtRecorded is shown for days without a thought.
const NoThoughtRecorded = "No thought recorded"

// ErrEmptyThought is returned by ValidateThought for blank input.
var ErrEmptyThought = errors.New(`please enter a thought or choose "No thoughts or time"`)

// Entry is the thought recorded for one day.
type Entry struct {
	Label  string    // "Today", "Yesterday", ...
	Offset int       // Days relative to the reference date (0, -1, -3, -7)
	Date   time.Time // Day the entry belongs to
	Path   string    // Note path, set even when the note does not exist
	Value  string    // The thought, when Found
	Found  bool      // A thought was recorded for this day
	Err    error     // Storage failure reading this day's note
}

// Text returns the entry as display text: the thought exactly as stored, the
// read error, or NoThoughtRecorded.
func (e Entry) Text() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("Error loading thought: %v", e.Err)
	case !e.Found || strings.TrimSpace(e.Value) == "":
		return NoThoughtRecorded
	default:
		return e.Value
	}
}

// Recent holds the thoughts for the four reference dates.
type Recent struct {
	Today        Entry
	Yesterday    Entry
	ThreeDaysAgo Entry
	LastWeek     Entry
}

// Entries returns the four entries, most recent first.
func (r Recent) Entries() []Entry {
	return []Entry{r.Today, r.Yesterday, r.ThreeDaysAgo, r.LastWeek}
}

// ThoughtService defines the operations on daily thoughts.
type ThoughtService interface {
	Record(date time.Time, thought string, layout notes.Layout) error
	RecordNone(date time.Time, layout notes.Layout) error
	FetchRecent(now time.Time, layout notes.Layout) Recent
	Fetch(date time.Time, layout notes.Layout) Entry
	History(now time.Time, days int, layout notes.Layout) ([]Entry, error)
	NotePath(date time.Time, layout notes.Layout) string
}

type thoughtServiceImpl struct {
	locator  *notes.Locator
	accessor *notes.Accessor
}

// NewThoughtService creates a ThoughtService over the given storage and
// front-matter handling.
func NewThoughtService(store notes.Storage, fm notes.FrontMatter) ThoughtService {
	return &thoughtServiceImpl{
		locator:  notes.NewLocator(store),
		accessor: notes.NewAccessor(store, fm),
	}
}

// ValidateThought rejects input that is empty once trimmed, and returns the
// trimmed thought otherwise.
func ValidateThought(thought string) (string, error) {
	trimmed := strings.TrimSpace(thought)
	if trimmed == "" {
		return "", ErrEmptyThought
	}
	return trimmed, nil
}

func (s *thoughtServiceImpl) Record(date time.Time, thought string, layout notes.Layout) error {
	ref, err := s.locator.ResolveOrCreate(date, layout)
	if err != nil {
		return fmt.Errorf("record thought: %w", err)
	}
	if err := s.accessor.WriteField(ref, FieldName, thought); err != nil {
		return fmt.Errorf("record thought: %w", err)
	}
	logs.Logger.Printf("Service: Recorded thought in %s", ref.Path)
	return nil
}

func (s *thoughtServiceImpl) RecordNone(date time.Time, layout notes.Layout) error {
	return s.Record(date, NoThoughts, layout)
}

var referenceOffsets = []struct {
	label  string
	offset int
}{
	{"Today", 0},
	{"Yesterday", -1},
	{"3 Days Ago", -3},
	{"Last Week", -7},
}

func (s *thoughtServiceImpl) FetchRecent(now time.Time, layout notes.Layout) Recent {
	entries := make([]Entry, len(referenceOffsets))
	for i, ref := range referenceOffsets {
		entries[i] = s.Fetch(now.AddDate(0, 0, ref.offset), layout)
		entries[i].Label = ref.label
		entries[i].Offset = ref.offset
	}
	return Recent{
		Today:        entries[0],
		Yesterday:    entries[1],
		ThreeDaysAgo: entries[2],
		LastWeek:     entries[3],
	}
}

// Fetch returns the thought recorded on date. A missing note or field is
// reported through Found; only storage failures set Err.
func (s *thoughtServiceImpl) Fetch(date time.Time, layout notes.Layout) Entry {
	entry := Entry{
		Label: date.Format("Mon Jan 2"),
		Date:  date,
		Path:  s.locator.Path(date, layout),
	}

	ref, ok := s.locator.Resolve(date, layout)
	if !ok {
		return entry
	}

	value, found, err := s.accessor.ReadField(ref, FieldName)
	if err != nil {
		logs.Logger.Printf("Service: Could not read %s: %v", ref.Path, err)
		entry.Err = err
		return entry
	}
	entry.Value = value
	entry.Found = found
	return entry
}

// History walks back from now over the given number of days and returns the
// days that have a thought, newest first. Days whose notes cannot be read are
// included with Err set.
func (s *thoughtServiceImpl) History(now time.Time, days int, layout notes.Layout) ([]Entry, error) {
	if days <= 0 {
		return nil, fmt.Errorf("history: days must be positive, got %d", days)
	}

	var entries []Entry
	for offset := 0; offset > -days; offset-- {
		entry := s.Fetch(now.AddDate(0, 0, offset), layout)
		entry.Offset = offset
		if entry.Found || entry.Err != nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *thoughtServiceImpl) NotePath(date time.Time, layout notes.Layout) string {
	return s.locator.Path(date, layout)
}
