// Package dateformat renders dates using the moment.js token vocabulary that
// daily-note plugins store in their settings (e.g. "YYYY-MM-DD").
//
// Characters that are not part of a token are copied through unchanged, text
// inside [brackets] is copied verbatim, and a backslash copies the token that
// follows it literally.
package dateformat

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// tokens is ordered the way the moment.js format regex tries alternatives,
// longest variant of each group first.
var tokens = []string{
	"Hmmss", "Hmm", "hmmss", "hmm",
	"Mo", "MMMM", "MMM", "MM", "M",
	"Do", "DDDo", "DDDD", "DDD", "DD", "D",
	"dddd", "ddd", "dd", "do", "d",
	"wo", "ww", "w",
	"Wo", "WW", "W",
	"Qo", "Q",
	"NNNNN", "NNNN", "NNN", "NN", "N",
	"YYYYYY", "YYYYY", "YYYY", "YY",
	"yyyy", "yyy", "yy", "yo", "y",
	"ggggg", "gggg", "gg",
	"GGGGG", "GGGG", "GG",
	"e", "E", "a", "A",
	"hh", "h", "HH", "H", "kk", "k",
	"mm", "m", "ss", "s",
	"SSSSSSSSS", "SSSSSSSS", "SSSSSSS", "SSSSSS", "SSSSS", "SSSS", "SSS", "SS", "S",
	"x", "X", "zz", "z", "ZZ", "Z",
	"Y",
}

// Format renders t according to pattern.
func Format(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := literalEnd(pattern, i); end > 0 {
				b.WriteString(pattern[i+1 : end])
				i = end + 1
				continue
			}
		}

		escaped := false
		if pattern[i] == '\\' && i+1 < len(pattern) {
			escaped = true
			i++
		}

		tok := matchToken(pattern[i:])
		if tok == "" {
			// Not a token: copy one rune.
			r := []rune(pattern[i:])[0]
			b.WriteRune(r)
			i += len(string(r))
			continue
		}
		if escaped {
			b.WriteString(tok)
		} else {
			b.WriteString(formatToken(t, tok))
		}
		i += len(tok)
	}
	return b.String()
}

// literalEnd returns the index of the ']' closing the bracket at start, or -1
// when another '[' appears first or the bracket is never closed.
func literalEnd(pattern string, start int) int {
	for j := start + 1; j < len(pattern); j++ {
		switch pattern[j] {
		case ']':
			return j
		case '[':
			return -1
		}
	}
	return -1
}

func matchToken(s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func formatToken(t time.Time, tok string) string {
	switch tok {
	case "Hmmss":
		return strconv.Itoa(t.Hour()) + pad(t.Minute(), 2) + pad(t.Second(), 2)
	case "Hmm":
		return strconv.Itoa(t.Hour()) + pad(t.Minute(), 2)
	case "hmmss":
		return strconv.Itoa(hour12(t)) + pad(t.Minute(), 2) + pad(t.Second(), 2)
	case "hmm":
		return strconv.Itoa(hour12(t)) + pad(t.Minute(), 2)

	case "M":
		return strconv.Itoa(int(t.Month()))
	case "Mo":
		return Ordinal(int(t.Month()))
	case "MM":
		return pad(int(t.Month()), 2)
	case "MMM":
		return t.Month().String()[:3]
	case "MMMM":
		return t.Month().String()

	case "D":
		return strconv.Itoa(t.Day())
	case "Do":
		return Ordinal(t.Day())
	case "DD":
		return pad(t.Day(), 2)
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "DDDo":
		return Ordinal(t.YearDay())
	case "DDDD":
		return pad(t.YearDay(), 3)

	case "d", "e":
		return strconv.Itoa(int(t.Weekday()))
	case "do":
		return Ordinal(int(t.Weekday()))
	case "dd":
		return t.Weekday().String()[:2]
	case "ddd":
		return t.Weekday().String()[:3]
	case "dddd":
		return t.Weekday().String()
	case "E":
		return strconv.Itoa(isoWeekday(t))

	case "w":
		_, w := localeWeek(t)
		return strconv.Itoa(w)
	case "wo":
		_, w := localeWeek(t)
		return Ordinal(w)
	case "ww":
		_, w := localeWeek(t)
		return pad(w, 2)
	case "W":
		_, w := t.ISOWeek()
		return strconv.Itoa(w)
	case "Wo":
		_, w := t.ISOWeek()
		return Ordinal(w)
	case "WW":
		_, w := t.ISOWeek()
		return pad(w, 2)

	case "Q":
		return strconv.Itoa(quarter(t))
	case "Qo":
		return Ordinal(quarter(t))

	case "Y":
		if t.Year() <= 9999 {
			return pad(t.Year(), 4)
		}
		return "+" + strconv.Itoa(t.Year())
	case "YY":
		return pad(abs(t.Year())%100, 2)
	case "YYYY":
		return pad(t.Year(), 4)
	case "YYYYY":
		return pad(t.Year(), 5)
	case "YYYYYY":
		sign := "+"
		if t.Year() < 0 {
			sign = "-"
		}
		return sign + pad(abs(t.Year()), 6)

	case "y":
		return strconv.Itoa(eraYear(t))
	case "yo":
		return Ordinal(eraYear(t))
	case "yy", "yyy", "yyyy":
		return pad(eraYear(t), len(tok))

	case "N", "NN", "NNN", "NNNNN":
		if t.Year() <= 0 {
			return "BC"
		}
		return "AD"
	case "NNNN":
		if t.Year() <= 0 {
			return "Before Christ"
		}
		return "Anno Domini"

	case "gg":
		y, _ := localeWeek(t)
		return pad(abs(y)%100, 2)
	case "gggg":
		y, _ := localeWeek(t)
		return pad(y, 4)
	case "ggggg":
		y, _ := localeWeek(t)
		return pad(y, 5)
	case "GG":
		y, _ := t.ISOWeek()
		return pad(abs(y)%100, 2)
	case "GGGG":
		y, _ := t.ISOWeek()
		return pad(y, 4)
	case "GGGGG":
		y, _ := t.ISOWeek()
		return pad(y, 5)

	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"

	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return pad(t.Hour(), 2)
	case "h":
		return strconv.Itoa(hour12(t))
	case "hh":
		return pad(hour12(t), 2)
	case "k":
		return strconv.Itoa(hour24(t))
	case "kk":
		return pad(hour24(t), 2)
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return pad(t.Minute(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)

	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)

	case "z", "zz":
		// Abbreviations need a timezone database; local dates render empty.
		return ""
	case "Z":
		return offset(t, ":")
	case "ZZ":
		return offset(t, "")
	}

	if strings.HasPrefix(tok, "S") {
		return fraction(t, len(tok))
	}
	return tok
}

// Ordinal renders n with its English ordinal suffix (1st, 2nd, 11th, 23rd).
func Ordinal(n int) string {
	suffix := "th"
	if (n%100)/10 != 1 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// localeWeek returns the week-year and week number using the English locale
// rules: weeks start on Sunday and week 1 contains January 1st.
func localeWeek(t time.Time) (int, int) {
	saturday := t.AddDate(0, 0, 6-int(t.Weekday()))
	return saturday.Year(), (saturday.YearDay()-1)/7 + 1
}

// eraYear counts years within the era: AD starts at year 1, and year 0 is
// 1 BC.
func eraYear(t time.Time) int {
	if t.Year() <= 0 {
		return 1 - t.Year()
	}
	return t.Year()
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func hour24(t time.Time) int {
	if t.Hour() == 0 {
		return 24
	}
	return t.Hour()
}

// fraction renders fractional seconds with n digits, derived from
// milliseconds and zero-filled past the third digit.
func fraction(t time.Time, n int) string {
	ms := t.Nanosecond() / int(time.Millisecond)
	if n <= 3 {
		for i := n; i < 3; i++ {
			ms /= 10
		}
		return pad(ms, n)
	}
	return pad(ms, 3) + strings.Repeat("0", n-3)
}

func offset(t time.Time, sep string) string {
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, secs/3600, sep, (secs%3600)/60)
}

func pad(n, width int) string {
	if n < 0 {
		return "-" + pad(-n, width)
	}
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
