package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"todaysthought/internal/config"
	"todaysthought/internal/prompts"
	"todaysthought/internal/thoughts"
)

// Env carries what the commands need. Zero-valued writers and clock fall
// back to stdout, stderr and time.Now.
type Env struct {
	Config   *config.Config
	Thoughts thoughts.ThoughtService
	Selector *prompts.Selector
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
}

func (e *Env) out() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Env) errOut() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Run executes the CLI with the given arguments and returns the exit code.
func Run(args []string, env *Env) int {
	if len(args) == 0 {
		printUsage(env.out())
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "record", "rec", "r":
		return runRecord(cmdArgs, env)
	case "review", "rv":
		return runReview(cmdArgs, env)
	case "history", "hist":
		return runHistory(cmdArgs, env)
	case "prompt":
		fmt.Fprintln(env.out(), env.Selector.Choose(env.Config.Prompts))
		return 0
	case "prompts":
		return runPromptsCommand(cmdArgs, env)
	case "config":
		return runConfigCommand(cmdArgs, env)
	case "path":
		return runPath(cmdArgs, env)
	case "help", "-h", "--help":
		printUsage(env.out())
		return 0
	default:
		fmt.Fprintf(env.errOut(), "Unknown command: %s\n", command)
		printUsage(env.errOut())
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `todaysthought - One reflective question a day, kept in your daily note

Usage: todaysthought [flags] [command] [arguments]

Commands:
  record      Record today's thought
  review      Show thoughts from today, yesterday, 3 days ago and last week
  history     List recorded thoughts from recent days
  prompt      Print a random prompt
  prompts     Manage the prompt list
  config      Show or change settings
  path        Print the daily note path for a date

Flags:
  -V, --vault <dir>      Vault directory
      --folder <path>    Daily notes folder inside the vault ("/" for the root)
      --format <fmt>     Daily note file name format (moment.js tokens)

Running todaysthought without arguments launches the interactive capture.
Use "todaysthought prompts help" for prompt subcommands.`)
}

// parseDate parses a YYYY-MM-DD flag value as a local date, defaulting to now.
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use yyyy-MM-dd", value)
	}
	return date, nil
}
