package main

import "github.com/charmbracelet/lipgloss"

var (
	dashAccent     = lipgloss.Color("39")
	dashFaint      = lipgloss.Color("242")
	dashErrColor   = lipgloss.Color("203")
	dashOkColor    = lipgloss.Color("42")
	dashMatchBg    = lipgloss.Color("58")
	dashCurrentBg  = lipgloss.Color("94")
	dashSurface    = lipgloss.Color("236")
	dashToastColor = lipgloss.Color("229")
)

type styles struct {
	app, topBar                      lipgloss.Style
	tabActive, tabInactive, tabsRow  lipgloss.Style
	panel                            lipgloss.Style
	outLine, errLine, failLine       lipgloss.Style
	matchLine, currentMatchLine      lipgloss.Style
	scrollTrack, scrollThumb         lipgloss.Style
	statusBar, statusSeg, statusHint lipgloss.Style
	statusOk, statusFail             lipgloss.Style
	searchPrompt, searchError        lipgloss.Style
	paletteOverlay, paletteSel       lipgloss.Style
	paletteItem, paletteHint         lipgloss.Style
	helpOverlay                      lipgloss.Style
	toast                            lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	panelBorder := lipgloss.NormalBorder()

	return styles{
		app:              base,
		topBar:           base.Padding(0, 1).Bold(true),
		tabActive:        base.Padding(0, 1).Bold(true).Foreground(dashAccent).Underline(true),
		tabInactive:      base.Padding(0, 1).Foreground(dashFaint),
		tabsRow:          base,
		panel:            base.BorderStyle(panelBorder),
		outLine:          base,
		errLine:          base.Foreground(dashErrColor),
		failLine:         base.Foreground(dashErrColor).Bold(true),
		matchLine:        base.Background(dashMatchBg),
		currentMatchLine: base.Background(dashCurrentBg),
		scrollTrack:      base.Foreground(dashFaint),
		scrollThumb:      base.Foreground(dashAccent),
		statusBar:        base.Padding(0, 1),
		statusSeg:        base.MarginRight(2),
		statusHint:       base.Foreground(dashFaint),
		statusOk:         base.Foreground(dashOkColor).Bold(true),
		statusFail:       base.Foreground(dashErrColor).Bold(true),
		searchPrompt:     base.Bold(true).Foreground(dashAccent),
		searchError:      base.Foreground(dashErrColor),
		paletteOverlay:   base.Border(lipgloss.RoundedBorder()).Padding(1, 2),
		paletteSel:       base.Padding(0, 1).Bold(true).Foreground(dashAccent),
		paletteItem:      base.Padding(0, 1),
		paletteHint:      base.Faint(true),
		helpOverlay:      base.Border(lipgloss.RoundedBorder()).Padding(0, 1),
		toast:            base.Padding(0, 1).Foreground(dashToastColor).Background(dashSurface),
	}
}
