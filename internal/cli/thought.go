package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"todaysthought/internal/markdown"
	"todaysthought/internal/thoughts"
)

func runRecord(args []string, env *Env) int {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	fs.SetOutput(env.errOut())
	none := fs.Bool("none", false, `Record "no thoughts or time"`)
	dateFlag := fs.String("date", "", "Date to record for (yyyy-MM-dd)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	date, err := parseDate(*dateFlag, env.now())
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}

	layout := env.Config.Layout()

	if *none {
		if err := env.Thoughts.RecordNone(date, layout); err != nil {
			fmt.Fprintf(env.errOut(), "Error saving thought: %v\n", err)
			return 1
		}
		fmt.Fprintln(env.out(), `Saved: "No thoughts or time"`)
		return 0
	}

	thought, err := thoughts.ValidateThought(strings.Join(fs.Args(), " "))
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		fmt.Fprintln(env.errOut(), `Usage: todaysthought record "your thought" | record --none`)
		return 1
	}

	if err := env.Thoughts.Record(date, thought, layout); err != nil {
		fmt.Fprintf(env.errOut(), "Error saving thought: %v\n", err)
		return 1
	}

	fmt.Fprintln(env.out(), "Thought saved!")
	fmt.Fprintf(env.out(), "Note: %s\n", env.Thoughts.NotePath(date, layout))
	return 0
}

func runReview(args []string, env *Env) int {
	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	fs.SetOutput(env.errOut())
	dateFlag := fs.String("date", "", "Review as of this date (yyyy-MM-dd)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	now, err := parseDate(*dateFlag, env.now())
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}

	recent := env.Thoughts.FetchRecent(now, env.Config.Layout())
	printRecent(env.out(), recent)
	return 0
}

// printRecent renders the reference dates. Today is only shown when a
// thought exists or its note could not be read.
func printRecent(w io.Writer, recent thoughts.Recent) {
	fmt.Fprintln(w, "Previous Thoughts")
	fmt.Fprintln(w)

	for _, entry := range recent.Entries() {
		if entry.Offset == 0 && !entry.Found && entry.Err == nil {
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", entry.Label, entry.Date.Format("2006-01-02"))
		fmt.Fprintf(w, "  %s\n\n", strings.ReplaceAll(entry.Text(), "\n", "\n  "))
	}
}

func runHistory(args []string, env *Env) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(env.errOut())
	days := fs.Int("n", 30, "Number of days to look back")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	entries, err := env.Thoughts.History(env.now(), *days, env.Config.Layout())
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}

	if len(entries) == 0 {
		fmt.Fprintf(env.out(), "No thoughts recorded in the last %d days.\n", *days)
		return 0
	}

	for _, entry := range entries {
		line := markdown.FirstLine(entry.Value, 72)
		if entry.Err != nil {
			line = entry.Text()
		}
		fmt.Fprintf(env.out(), "%s  %s\n", entry.Date.Format("2006-01-02"), line)
	}
	fmt.Fprintf(env.out(), "\n%d thought(s)\n", len(entries))
	return 0
}

func runPath(args []string, env *Env) int {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	fs.SetOutput(env.errOut())
	dateFlag := fs.String("date", "", "Date of the note (yyyy-MM-dd)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	date, err := parseDate(*dateFlag, env.now())
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(env.out(), env.Thoughts.NotePath(date, env.Config.Layout()))
	return 0
}
