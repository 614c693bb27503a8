package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/berkano/mvndash/internal/session"
)

func main() {
	root := flag.String("C", ".", "Project root containing the reactor pom.xml")
	mvn := flag.String("mvn", "", "Build binary to invoke (overrides the configured one)")
	theme := flag.String("theme", "", "Help rendering theme: auto, light, or dark (overrides the configured one)")
	flag.Parse()

	project, err := discoverProject(*root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	cfg, cfgPath := loadUIConfig()
	if *mvn != "" {
		cfg.Mvn = *mvn
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	setMarkdownTheme(markdownThemeFromString(cfg.Theme))

	slog, err := session.Open(resolveConfigDir())
	if err != nil {
		slog = session.Discard()
	}
	defer func() {
		slog.Flush()
		_ = slog.Close()
	}()

	// History is best-effort: a missing or unwritable store never blocks
	// the dashboard.
	history, err := openHistoryStore()
	if err != nil {
		history = nil
	}
	defer history.Close()
	if history != nil {
		_ = history.TouchProject(project.Root)
	}

	if _, err := tea.NewProgram(
		initialModel(project, cfg, cfgPath, slog, history),
		tea.WithAltScreen(),
	).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
