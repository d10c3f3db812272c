package cli

import (
	"fmt"
	"strings"
)

func runConfigCommand(args []string, env *Env) int {
	if len(args) == 0 || args[0] == "show" {
		printConfig(env)
		return 0
	}

	if args[0] != "set" || len(args) < 3 {
		fmt.Fprintln(env.errOut(), "Usage: todaysthought config [show]")
		fmt.Fprintln(env.errOut(), "       todaysthought config set <vault|folder|format> <value>")
		return 1
	}

	key := args[1]
	value := strings.Join(args[2:], " ")
	previous := *env.Config

	switch key {
	case "vault":
		env.Config.Vault = value
	case "folder":
		env.Config.DailyNoteFolder = value
	case "format":
		env.Config.DailyNoteFormat = value
	default:
		fmt.Fprintf(env.errOut(), "Unknown setting: %s\n", key)
		return 1
	}

	if err := env.Config.Validate(); err != nil {
		*env.Config = previous
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}
	if err := env.Config.Save(); err != nil {
		fmt.Fprintf(env.errOut(), "Error saving settings: %v\n", err)
		return 1
	}

	fmt.Fprintf(env.out(), "Set %s to %q\n", key, value)
	return 0
}

func printConfig(env *Env) {
	cfg := env.Config
	fmt.Fprintf(env.out(), "config:  %s\n", cfg.Path())
	fmt.Fprintf(env.out(), "vault:   %s\n", cfg.Vault)
	fmt.Fprintf(env.out(), "folder:  %s\n", cfg.DailyNoteFolder)
	fmt.Fprintf(env.out(), "format:  %s\n", cfg.DailyNoteFormat)
	fmt.Fprintf(env.out(), "today:   %s\n", env.Thoughts.NotePath(env.now(), cfg.Layout()))
	fmt.Fprintf(env.out(), "prompts: %d\n", len(cfg.Prompts))
}
