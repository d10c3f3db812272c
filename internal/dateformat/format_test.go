package dateformat

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, time.June, 10, 14, 5, 9, 0, time.Local)

	tests := []struct {
		pattern  string
		expected string
	}{
		{"YYYY-MM-DD", "2024-06-10"},
		{"YYYY/MM/DD", "2024/06/10"},
		{"YY.M.D", "24.6.10"},
		{"dddd, MMMM Do YYYY", "Monday, June 10th 2024"},
		{"ddd MMM D", "Mon Jun 10"},
		{"dd", "Mo"},
		{"DDD DDDD", "162 162"},
		{"Q Qo", "2 2nd"},
		{"[Week] WW", "Week 24"},
		{"GGGG-[W]WW-E", "2024-W24-1"},
		{"gggg-ww-e", "2024-24-1"},
		{"HH:mm:ss", "14:05:09"},
		{"h:mm a", "2:05 pm"},
		{"hh A", "02 PM"},
		{"Hmm", "1405"},
		{"[Journal] YYYY", "Journal 2024"},
		{"\\YYYY", "YYYY"},
		{"YYYY[_note]", "2024_note"},
		{"YYY", "242024"},
		{"[YYYY", "[2024"},
		{"123 -_/", "123 -_/"},
		{"yyyy-MM-DD", "2024-06-10"},
		{"yy yyy y", "2024 2024 2024"},
		{"yo", "2024th"},
		{"N NN NNN", "AD AD AD"},
		{"NNNN", "Anno Domini"},
		{"NNNNN", "AD"},
		{"YYYY N", "2024 AD"},
		{"", ""},
	}

	for _, tt := range tests {
		got := Format(date, tt.pattern)
		if got != tt.expected {
			t.Errorf("Format(%q): expected %q, got %q", tt.pattern, tt.expected, got)
		}
	}
}

func TestFormat_EraYear(t *testing.T) {
	tests := []struct {
		date     time.Time
		pattern  string
		expected string
	}{
		{time.Date(33, time.March, 1, 0, 0, 0, 0, time.UTC), "yyyy N", "0033 AD"},
		{time.Date(33, time.March, 1, 0, 0, 0, 0, time.UTC), "yy", "33"},
		{time.Date(0, time.March, 1, 0, 0, 0, 0, time.UTC), "y NNNN", "1 Before Christ"},
		{time.Date(-43, time.March, 1, 0, 0, 0, 0, time.UTC), "yyy NN", "044 BC"},
	}

	for _, tt := range tests {
		if got := Format(tt.date, tt.pattern); got != tt.expected {
			t.Errorf("Format(%q): expected %q, got %q", tt.pattern, tt.expected, got)
		}
	}
}

func TestFormat_LiteralLettersPassThrough(t *testing.T) {
	date := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local)

	// Only 'e' (locale weekday) is a token in "-note".
	got := Format(date, "YYYY-MM-DD-note")
	if got != "2024-01-02-not2" {
		t.Errorf("expected %q, got %q", "2024-01-02-not2", got)
	}
}

func TestFormat_LocaleWeekAcrossYearBoundary(t *testing.T) {
	// Sunday Dec 31 2023 starts the week containing Jan 1 2024.
	date := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local)

	if got := Format(date, "gggg-w"); got != "2024-1" {
		t.Errorf("expected 2024-1, got %q", got)
	}
	if got := Format(date, "GGGG-W"); got != "2023-52" {
		t.Errorf("expected 2023-52, got %q", got)
	}
}

func TestFormat_Midnight(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)

	if got := Format(date, "h k a"); got != "12 24 am" {
		t.Errorf("expected %q, got %q", "12 24 am", got)
	}
}

func TestFormat_Fraction(t *testing.T) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 123*int(time.Millisecond), time.Local)

	tests := map[string]string{
		"S":    "1",
		"SS":   "12",
		"SSS":  "123",
		"SSSS": "1230",
	}
	for pattern, expected := range tests {
		if got := Format(date, pattern); got != expected {
			t.Errorf("Format(%q): expected %q, got %q", pattern, expected, got)
		}
	}
}

func TestFormat_Offset(t *testing.T) {
	zone := time.FixedZone("test", -(5*3600 + 30*60))
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, zone)

	if got := Format(date, "Z"); got != "-05:30" {
		t.Errorf("expected -05:30, got %q", got)
	}
	if got := Format(date, "ZZ"); got != "-0530" {
		t.Errorf("expected -0530, got %q", got)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		101: "101st",
		111: "111th",
	}
	for n, expected := range tests {
		if got := Ordinal(n); got != expected {
			t.Errorf("Ordinal(%d): expected %q, got %q", n, expected, got)
		}
	}
}
