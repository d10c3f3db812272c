package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"todaysthought/internal/config"
	"todaysthought/internal/frontmatter"
	"todaysthought/internal/prompts"
	"todaysthought/internal/thoughts"
	"todaysthought/internal/vault"
)

func setupApp(t *testing.T) (AppModel, *vault.Vault, *config.Config) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TODAYSTHOUGHT_CONFIG", filepath.Join(home, "config.json"))
	t.Setenv("TODAYSTHOUGHT_VAULT", "")
	t.Setenv("TODAYSTHOUGHT_FOLDER", "")
	t.Setenv("TODAYSTHOUGHT_FORMAT", "")

	cfg, err := config.Load(config.CLIFlags{Vault: filepath.Join(home, "vault")})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	v := vault.New(cfg.Vault)
	svc := thoughts.NewThoughtService(v, frontmatter.Codec{})
	m := NewAppModel(cfg, svc, prompts.NewSelectorWith(func(int) int { return 0 }), ViewCapture)
	m.SetClock(func() time.Time { return time.Date(2024, time.June, 10, 8, 0, 0, 0, time.Local) })

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(AppModel), v, cfg
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(AppModel), cmd
}

func TestSaveThought_SwitchesToReview(t *testing.T) {
	m, v, _ := setupApp(t)

	m, _ = update(m, SaveThoughtMsg{Thought: "a calm morning"})

	if m.currentView != ViewReview {
		t.Errorf("expected review view, got %v", m.currentView)
	}
	content, err := v.Read("/Journal/2024-06-10.md")
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(content, "todaysThought: a calm morning") {
		t.Errorf("unexpected note %q", content)
	}

	view := m.View()
	if !strings.Contains(view, "Thought saved!") || !strings.Contains(view, "a calm morning") {
		t.Errorf("expected confirmation and today's thought in view, got %q", view)
	}
}

func TestSaveThought_None(t *testing.T) {
	m, v, _ := setupApp(t)

	update(m, SaveThoughtMsg{None: true})

	content, _ := v.Read("/Journal/2024-06-10.md")
	if !strings.Contains(content, "todaysThought: "+thoughts.NoThoughts) {
		t.Errorf("unexpected note %q", content)
	}
}

func TestSaveThought_Failure(t *testing.T) {
	m, v, _ := setupApp(t)
	if err := v.CreateFolder("/"); err != nil {
		t.Fatal(err)
	}
	// A file where the folder should be
	if err := v.CreateFile("/Journal", "x"); err != nil {
		t.Fatal(err)
	}

	m, _ = update(m, SaveThoughtMsg{Thought: "lost"})

	if m.currentView != ViewCapture {
		t.Errorf("expected to stay on capture, got %v", m.currentView)
	}
	if !m.statusErr || !strings.Contains(m.status, "Error saving thought") {
		t.Errorf("expected error status, got %q", m.status)
	}
}

func TestPromptsChanged_Persists(t *testing.T) {
	m, _, cfg := setupApp(t)

	m, _ = update(m, PromptsChangedMsg{Prompts: []string{"Only one"}, Status: "Deleted prompt"})

	if m.status != "Deleted prompt" {
		t.Errorf("expected status, got %q", m.status)
	}
	reloaded, err := config.Load(config.CLIFlags{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Prompts) != 1 || reloaded.Prompts[0] != "Only one" {
		t.Errorf("expected saved prompts, got %v", reloaded.Prompts)
	}
	if len(cfg.Prompts) != 1 {
		t.Errorf("expected in-memory config updated, got %v", cfg.Prompts)
	}
}

func TestLayoutChanged(t *testing.T) {
	m, _, cfg := setupApp(t)

	m, _ = update(m, LayoutChangedMsg{Folder: "Daily", Format: "  "})
	if !m.statusErr {
		t.Error("expected an error for an empty format")
	}
	if cfg.DailyNoteFormat != "YYYY-MM-DD" || cfg.DailyNoteFolder != "/Journal" {
		t.Errorf("expected layout to be restored, got %q %q", cfg.DailyNoteFolder, cfg.DailyNoteFormat)
	}

	m, _ = update(m, LayoutChangedMsg{Folder: "Daily", Format: "YYYY/MM/DD"})
	if m.statusErr {
		t.Fatalf("unexpected error %q", m.status)
	}
	if m.status != "Daily notes: Daily/2024/06/10.md" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestGlobalKeys(t *testing.T) {
	m, _, _ := setupApp(t)

	// Letters go to the editor on the capture view
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.captureView.Value() != "q" {
		t.Errorf("expected q typed into the editor, got %q", m.captureView.Value())
	}

	m, _ = update(m, SwitchViewMsg{View: ViewReview})
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if msg, ok := cmd().(SwitchViewMsg); !ok || msg.View != ViewPrompts {
		t.Errorf("expected switch to prompts, got %#v", cmd())
	}

	_, cmd = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected quit, got %#v", cmd())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help popup")
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.showHelp {
		t.Error("expected any key to close help")
	}
}
