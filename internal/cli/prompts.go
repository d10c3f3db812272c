package cli

import (
	"fmt"
	"strconv"
	"strings"

	"todaysthought/internal/logs"
	"todaysthought/internal/prompts"
)

func runPromptsCommand(args []string, env *Env) int {
	if len(args) == 0 {
		return runPromptsList(env)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return runPromptsList(env)
	case "add", "a":
		return runPromptsAdd(cmdArgs, env)
	case "set", "edit":
		return runPromptsSet(cmdArgs, env)
	case "delete", "rm", "del":
		return runPromptsRemove(cmdArgs, env)
	case "find", "f":
		return runPromptsFind(cmdArgs, env)
	case "reset":
		env.Config.Prompts = prompts.Defaults()
		return savePrompts(env, "Restored the default prompts")
	case "help", "-h", "--help":
		printPromptsUsage(env)
		return 0
	default:
		fmt.Fprintf(env.errOut(), "Unknown prompts command: %s\n", command)
		printPromptsUsage(env)
		return 1
	}
}

func printPromptsUsage(env *Env) {
	fmt.Fprintln(env.out(), `todaysthought prompts - Manage the prompt list

Usage: todaysthought prompts <command> [arguments]

Commands:
  list, ls      List prompts with their numbers
  add, a        Add a prompt
                todaysthought prompts add "What made you smile today?"
  set, edit     Replace prompt <n>
                todaysthought prompts set 2 "New wording"
  delete, rm    Delete prompt <n>, or the best fuzzy match for a query
                todaysthought prompts rm 3
                todaysthought prompts rm curious
  find, f       Fuzzy-search prompts
  reset         Restore the built-in prompts
  help          Show this help message`)
}

func runPromptsList(env *Env) int {
	if len(env.Config.Prompts) == 0 {
		fmt.Fprintf(env.out(), "No prompts configured. The default is used: %s\n", prompts.DefaultPrompt)
		return 0
	}
	for i, p := range env.Config.Prompts {
		fmt.Fprintf(env.out(), "%2d. %s\n", i+1, p)
	}
	return 0
}

func runPromptsAdd(args []string, env *Env) int {
	env.Config.Prompts = prompts.Add(env.Config.Prompts, strings.Join(args, " "))
	added := env.Config.Prompts[len(env.Config.Prompts)-1]
	return savePrompts(env, fmt.Sprintf("Added prompt %d: %s", len(env.Config.Prompts), added))
}

func runPromptsSet(args []string, env *Env) int {
	if len(args) < 2 {
		fmt.Fprintln(env.errOut(), "Error: prompt number and text required")
		fmt.Fprintln(env.errOut(), `Usage: todaysthought prompts set <n> "text"`)
		return 1
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: invalid prompt number %q\n", args[0])
		return 1
	}

	updated, err := prompts.Set(env.Config.Prompts, n-1, strings.Join(args[1:], " "))
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}
	env.Config.Prompts = updated
	return savePrompts(env, fmt.Sprintf("Updated prompt %d: %s", n, updated[n-1]))
}

func runPromptsRemove(args []string, env *Env) int {
	if len(args) == 0 {
		fmt.Fprintln(env.errOut(), "Error: prompt number or search text required")
		fmt.Fprintln(env.errOut(), "Usage: todaysthought prompts rm <n|query>")
		return 1
	}

	index, err := findPromptIndex(env.Config.Prompts, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}

	removed := env.Config.Prompts[index]
	updated, err := prompts.Remove(env.Config.Prompts, index)
	if err != nil {
		fmt.Fprintf(env.errOut(), "Error: %v\n", err)
		return 1
	}
	env.Config.Prompts = updated
	return savePrompts(env, fmt.Sprintf("Deleted: %s", removed))
}

func runPromptsFind(args []string, env *Env) int {
	query := strings.Join(args, " ")
	indices := prompts.Find(env.Config.Prompts, query)
	if len(indices) == 0 {
		fmt.Fprintln(env.out(), "No prompts found.")
		return 0
	}
	for _, i := range indices {
		fmt.Fprintf(env.out(), "%2d. %s\n", i+1, env.Config.Prompts[i])
	}
	return 0
}

// findPromptIndex resolves a 1-based number or a fuzzy query to a single
// prompt index.
func findPromptIndex(list []string, ref string) (int, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return 0, fmt.Errorf("%w: %d", prompts.ErrIndexOutOfRange, n)
		}
		return n - 1, nil
	}

	matches := prompts.Find(list, ref)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no prompt matches %q", ref)
	}
	return matches[0], nil
}

func savePrompts(env *Env, message string) int {
	if err := env.Config.Save(); err != nil {
		logs.Logger.Printf("Error saving config: %v", err)
		fmt.Fprintf(env.errOut(), "Error saving settings: %v\n", err)
		return 1
	}
	fmt.Fprintln(env.out(), message)
	return 0
}
