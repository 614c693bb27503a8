package main

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# mvndash

## Build
| Key | Action |
|---|---|
| enter | run the selected goal on the current module |
| r | re-run the module's last command |
| p | open the goal palette |
| c | cancel the running build |

## Navigate
| Key | Action |
|---|---|
| tab / shift+tab | next / previous module |
| up / down | scroll one row |
| pgup / pgdn | scroll one page |
| g / G | jump to top / bottom |

## Search
| Key | Action |
|---|---|
| / | search output (regular expression, live) |
| enter | keep the search, return to the output |
| esc | cancel the search |
| n / N | next / previous match |
| y | copy the current match's line |

Press ? or esc to close this help.
`

type markdownTheme string

const (
	markdownThemeAuto  markdownTheme = "auto"
	markdownThemeDark  markdownTheme = "dark"
	markdownThemeLight markdownTheme = "light"
)

var (
	markdownMu       sync.Mutex
	markdownRenderer *glamour.TermRenderer
	markdownErr      error
	markdownStyle    = markdownThemeAuto
	markdownWordWrap = 72
)

// renderHelp returns the glamour-rendered help overlay body, falling back to
// the raw markdown when the renderer cannot be built.
func renderHelp() string {
	renderer := ensureMarkdownRenderer()
	if renderer == nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

func ensureMarkdownRenderer() *glamour.TermRenderer {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	if markdownRenderer != nil && markdownErr == nil {
		return markdownRenderer
	}
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(markdownWordWrap),
	}
	switch markdownStyle {
	case markdownThemeLight:
		options = append(options, glamour.WithStandardStyle("light"))
	case markdownThemeDark:
		options = append(options, glamour.WithStandardStyle("dark"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	markdownRenderer, markdownErr = glamour.NewTermRenderer(options...)
	if markdownErr != nil {
		return nil
	}
	return markdownRenderer
}

func setMarkdownTheme(theme markdownTheme) {
	markdownMu.Lock()
	if markdownStyle != theme {
		markdownStyle = theme
		markdownRenderer = nil
		markdownErr = nil
	}
	markdownMu.Unlock()
}

func markdownThemeFromString(value string) markdownTheme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return markdownThemeLight
	case "dark":
		return markdownThemeDark
	default:
		return markdownThemeAuto
	}
}
