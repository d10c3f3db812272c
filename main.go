package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"todaysthought/internal/cli"
	"todaysthought/internal/config"
	"todaysthought/internal/frontmatter"
	"todaysthought/internal/logs"
	"todaysthought/internal/prompts"
	"todaysthought/internal/thoughts"
	"todaysthought/internal/tui"
	"todaysthought/internal/tui/messages"
	"todaysthought/internal/vault"
)

func main() {
	// Parse CLI flags
	vaultFlag := flag.String("vault", "", "Vault directory")
	flag.StringVar(vaultFlag, "V", "", "Vault directory (shorthand)")
	folderFlag := flag.String("folder", "", `Daily notes folder inside the vault ("/" for the root)`)
	formatFlag := flag.String("format", "", "Daily note file name format (moment.js tokens)")
	viewFlag := flag.String("view", "", "Initial view: capture, review, prompts")
	flag.Parse()

	cliFlags := config.CLIFlags{
		Vault:  *vaultFlag,
		Folder: *folderFlag,
		Format: *formatFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger
	if err := logs.Initialize(cfg.Dir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	thoughtSvc := thoughts.NewThoughtService(vault.New(cfg.Vault), frontmatter.Codec{})
	selector := prompts.NewSelector()

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, &cli.Env{
			Config:   cfg,
			Thoughts: thoughtSvc,
			Selector: selector,
		})
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Printf("Starting app in TUI mode (vault %s)", cfg.Vault)
	appModel := tui.NewAppModel(cfg, thoughtSvc, selector, messages.ParseView(*viewFlag))
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	_, err = p.Run()
	logs.Close()
	if err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
