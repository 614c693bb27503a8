package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/berkano/mvndash/internal/outbuf"
	"github.com/berkano/mvndash/internal/runner"
	"github.com/berkano/mvndash/internal/search"
	"github.com/berkano/mvndash/internal/session"
)

type taskUpdateMsg struct {
	task   string
	update runner.CommandUpdate
}

type taskStreamClosedMsg struct {
	task string
}

type tickMsg time.Time

type animTickMsg time.Time

// waitForUpdate blocks (in its own goroutine) for the next event on a
// task's update channel. The UI loop itself never blocks on process I/O.
func waitForUpdate(task string, updates <-chan runner.CommandUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return taskStreamClosedMsg{task: task}
		}
		return taskUpdateMsg{task: task, update: update}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func animTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return animTickMsg(t) })
}

type model struct {
	styles  styles
	cfg     *uiConfig
	cfgPath string
	slog    *session.Log
	history *historyStore
	project *mavenProject
	store   *outbuf.Store

	active       int
	handles      map[string]*runner.Handle
	updates      map[string]<-chan runner.CommandUpdate
	pids         map[string]int
	terminalSeen map[string]bool
	followTail   map[string]bool
	lastFailed   map[string]bool

	goalEntries  []goalEntry
	paletteOpen  bool
	paletteIndex int
	customOpen   bool
	customInput  textinput.Model

	searching    bool
	searchInput  textinput.Model
	searchStates map[string]*search.State
	searchErr    string

	spinner  spinner.Model
	showHelp bool
	helpBody string

	width, height           int
	panelWidth, panelHeight int

	spring       harmonica.Spring
	scrollPos    float64
	scrollVel    float64
	scrollTarget int
	animating    bool

	toastMessage string
	toastExpires time.Time
}

func initialModel(project *mavenProject, cfg *uiConfig, cfgPath string, slog *session.Log, history *historyStore) model {
	searchInput := textinput.New()
	searchInput.Prompt = ""
	searchInput.Placeholder = "pattern"
	searchInput.CharLimit = 256

	customInput := textinput.New()
	customInput.Prompt = ""
	customInput.Placeholder = "goals and flags, e.g. clean install -DskipTests"
	customInput.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return model{
		styles:       newStyles(),
		cfg:          cfg,
		cfgPath:      cfgPath,
		slog:         slog,
		history:      history,
		project:      project,
		store:        outbuf.NewStore(),
		handles:      make(map[string]*runner.Handle),
		updates:      make(map[string]<-chan runner.CommandUpdate),
		pids:         make(map[string]int),
		terminalSeen: make(map[string]bool),
		followTail:   make(map[string]bool),
		lastFailed:   make(map[string]bool),
		goalEntries:  defaultGoalEntries(),
		customInput:  customInput,
		searchInput:  searchInput,
		searchStates: make(map[string]*search.State),
		spinner:      sp,
		spring:       harmonica.NewSpring(harmonica.FPS(60), 7.0, 0.8),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m *model) orderedModules() []mavenModule {
	if len(m.cfg.Pinned) == 0 {
		return m.project.Modules
	}
	pinned := make(map[string]bool, len(m.cfg.Pinned))
	for _, id := range m.cfg.Pinned {
		pinned[id] = true
	}
	ordered := make([]mavenModule, 0, len(m.project.Modules))
	for _, module := range m.project.Modules {
		if pinned[module.ID] {
			ordered = append(ordered, module)
		}
	}
	for _, module := range m.project.Modules {
		if !pinned[module.ID] {
			ordered = append(ordered, module)
		}
	}
	return ordered
}

func (m *model) activeModule() mavenModule {
	modules := m.orderedModules()
	if m.active < 0 || m.active >= len(modules) {
		return modules[0]
	}
	return modules[m.active]
}

func (m *model) activeID() string {
	return m.activeModule().ID
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case tickMsg:
		if !m.toastExpires.IsZero() && time.Now().After(m.toastExpires) {
			m.toastMessage = ""
			m.toastExpires = time.Time{}
		}
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.anyRunning() {
			return m, cmd
		}
		return m, nil

	case animTickMsg:
		return m.updateAnimation()

	case taskUpdateMsg:
		return m.handleTaskUpdate(msg)

	case taskStreamClosedMsg:
		if !m.terminalSeen[msg.task] {
			// The producer contract guarantees a terminal event; a bare
			// close is an integration bug and is surfaced, not swallowed.
			m.store.FinishRun(msg.task, "channel closed unexpectedly")
			delete(m.handles, msg.task)
			delete(m.updates, msg.task)
			m.lastFailed[msg.task] = true
			m.setToast(msg.task+": channel closed unexpectedly", 5*time.Second)
			if msg.task == m.activeID() {
				m.recomputeActive()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleTaskUpdate(msg taskUpdateMsg) (tea.Model, tea.Cmd) {
	id := msg.task
	switch update := msg.update.(type) {
	case runner.Started:
		m.pids[id] = update.PID
	case runner.OutputLine:
		m.store.Append(id, update.Text)
		if id == m.activeID() {
			m.recomputeActive()
			if m.followTail[id] {
				m.snapToBottom(id)
			}
		}
	case runner.Completed:
		m.finishRun(id, "")
		return m, nil
	case runner.Error:
		m.finishRun(id, update.Message)
		return m, nil
	}
	return m, waitForUpdate(id, m.updates[id])
}

func (m *model) finishRun(id, errMessage string) {
	m.terminalSeen[id] = true
	duration := m.store.Elapsed(id)
	m.store.FinishRun(id, errMessage)
	delete(m.handles, id)
	delete(m.updates, id)

	exitCode := 0
	if errMessage != "" {
		exitCode = runner.ParseExitCode(errMessage)
	}
	m.lastFailed[id] = errMessage != ""
	if m.history != nil {
		_ = m.history.RecordRun(runRecord{
			Project:  m.project.Root,
			Module:   id,
			Command:  m.store.LastCommand(id),
			ExitCode: exitCode,
			Duration: duration,
		})
	}
	if errMessage == "" {
		m.setToast(id+": build succeeded", 3*time.Second)
	} else {
		m.setToast(id+": "+errMessage, 5*time.Second)
	}
	if id == m.activeID() {
		m.recomputeActive()
		if m.followTail[id] {
			m.snapToBottom(id)
		}
	}
}

func (m model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch key.String() {
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(key)
	}
	if m.customOpen {
		return m.handleCustomKey(key)
	}
	if m.paletteOpen {
		return m.handlePaletteKey(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		for _, handle := range m.handles {
			handle.Kill()
		}
		return m, tea.Quit
	case "tab":
		m.switchTab(1)
	case "shift+tab":
		m.switchTab(-1)
	case "enter":
		return m, m.startRun(m.goalEntries[m.paletteIndex], nil)
	case "r":
		return m, m.rerunLast()
	case "p":
		m.paletteOpen = true
	case "c":
		m.cancelActive()
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup":
		m.scrollBy(-m.panelHeight)
	case "pgdown", " ":
		m.scrollBy(m.panelHeight)
	case "g", "home":
		m.scrollTo(0)
	case "G", "end":
		m.snapToBottom(m.activeID())
		m.followTail[m.activeID()] = true
	case "/":
		m.searching = true
		m.searchErr = ""
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink
	case "n":
		return m, m.cycleMatch(true)
	case "N":
		return m, m.cycleMatch(false)
	case "y":
		m.copyCurrentLine()
	case "?":
		if m.helpBody == "" {
			m.helpBody = renderHelp()
		}
		m.showHelp = true
	}
	return m, nil
}

func (m model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		// Cancel discards the search state entirely.
		m.searching = false
		m.searchErr = ""
		m.searchInput.Blur()
		delete(m.searchStates, m.activeID())
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, m.ensureMatchVisible()
	case "ctrl+c":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	if value := m.searchInput.Value(); value != before {
		m.runSearch(value)
	}
	return m, cmd
}

// runSearch re-scans the task's current buffer on every keystroke. An
// invalid pattern reports the error and leaves the previous state alone.
func (m *model) runSearch(query string) {
	id := m.activeID()
	state, err := search.Find(m.store.Lines(id), query)
	if err != nil {
		m.searchErr = err.Error()
		return
	}
	m.searchErr = ""
	m.searchStates[id] = state
}

func (m model) handleCustomKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.customOpen = false
		m.customInput.Blur()
		return m, nil
	case "enter":
		goals := parseCustomGoals(m.customInput.Value())
		m.customOpen = false
		m.customInput.Blur()
		if len(goals) == 0 {
			return m, nil
		}
		entry := goalEntry{label: "Custom", custom: true}
		return m, m.startRun(entry, goals)
	}
	var cmd tea.Cmd
	m.customInput, cmd = m.customInput.Update(key)
	return m, cmd
}

func (m model) handlePaletteKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.paletteOpen = false
	case "up", "k":
		if m.paletteIndex > 0 {
			m.paletteIndex--
		}
	case "down", "j":
		if m.paletteIndex < len(m.goalEntries)-1 {
			m.paletteIndex++
		}
	case "enter":
		entry := m.goalEntries[m.paletteIndex]
		m.paletteOpen = false
		if entry.custom {
			m.customOpen = true
			m.customInput.SetValue("")
			m.customInput.Focus()
			return m, textinput.Blink
		}
		return m, m.startRun(entry, nil)
	}
	return m, nil
}

// startRun kicks off one invocation for the active module. At most one live
// process exists per module; a second request is refused, not queued.
func (m *model) startRun(entry goalEntry, customGoals []string) tea.Cmd {
	id := m.activeID()
	if m.store.Running(id) {
		m.setToast(id+": a build is already running", 3*time.Second)
		return nil
	}
	goals := entry.goals
	if entry.custom {
		goals = customGoals
	}
	if len(goals) == 0 {
		return nil
	}
	run := entry
	run.goals = goals
	args := buildArgs(run, id, m.project.Modules[0].ID, m.cfg.Profiles, m.cfg.Flags)
	commandLine := m.cfg.Mvn + " " + strings.Join(args, " ")

	m.store.BeginRun(id, commandLine, m.cfg.Profiles)
	delete(m.searchStates, id) // output replaced, matches are stale
	m.lastFailed[id] = false

	launch := runner.Launch
	if entry.interactive || m.cfg.UsePTY {
		launch = runner.LaunchPTY
	}
	handle, updates, err := launch(m.slog, id, m.cfg.Mvn, args, m.project.Root)
	if err != nil {
		// Spawn failures are synchronous: no events were produced.
		m.store.FinishRun(id, err.Error())
		m.lastFailed[id] = true
		m.setToast(id+": "+err.Error(), 5*time.Second)
		m.recomputeActive()
		return nil
	}
	m.handles[id] = handle
	m.updates[id] = updates
	m.terminalSeen[id] = false
	m.followTail[id] = true
	m.recomputeActive()
	return tea.Batch(waitForUpdate(id, updates), m.spinner.Tick)
}

func (m *model) rerunLast() tea.Cmd {
	id := m.activeID()
	last := m.store.LastCommand(id)
	if last == "" {
		m.setToast(id+": nothing to re-run", 3*time.Second)
		return nil
	}
	fields := strings.Fields(last)
	if len(fields) < 2 {
		return nil
	}
	// The recorded command line already carries -pl/-P/flags; run it as-is.
	m.store.BeginRun(id, last, m.cfg.Profiles)
	delete(m.searchStates, id)
	m.lastFailed[id] = false
	launch := runner.Launch
	if m.cfg.UsePTY {
		launch = runner.LaunchPTY
	}
	handle, updates, err := launch(m.slog, id, fields[0], fields[1:], m.project.Root)
	if err != nil {
		m.store.FinishRun(id, err.Error())
		m.lastFailed[id] = true
		m.setToast(id+": "+err.Error(), 5*time.Second)
		m.recomputeActive()
		return nil
	}
	m.handles[id] = handle
	m.updates[id] = updates
	m.terminalSeen[id] = false
	m.followTail[id] = true
	m.recomputeActive()
	return tea.Batch(waitForUpdate(id, updates), m.spinner.Tick)
}

// cancelActive kills the running build, if any. Kill is idempotent, so a
// stray cancel on an idle module is harmless.
func (m *model) cancelActive() {
	id := m.activeID()
	handle, ok := m.handles[id]
	if !ok {
		m.setToast(id+": nothing to cancel", 2*time.Second)
		return
	}
	handle.Kill()
	m.setToast(id+": cancel requested", 2*time.Second)
}

func (m *model) switchTab(delta int) {
	modules := m.orderedModules()
	m.active = (m.active + delta + len(modules)) % len(modules)
	m.animating = false
	m.searching = false
	m.searchErr = ""
	m.recomputeActive()
}

func (m *model) anyRunning() bool {
	return len(m.handles) > 0
}

func (m *model) scrollBy(delta int) {
	id := m.activeID()
	m.animating = false
	m.store.SetOffset(id, m.store.Offset(id)+delta, m.panelHeight)
	m.followTail[id] = m.atBottom(id)
}

func (m *model) scrollTo(offset int) {
	id := m.activeID()
	m.animating = false
	m.store.SetOffset(id, offset, m.panelHeight)
	m.followTail[id] = m.atBottom(id)
}

func (m *model) snapToBottom(id string) {
	metrics := m.store.Metrics(id)
	m.store.SetOffset(id, metrics.TotalRows, m.panelHeight)
}

func (m *model) atBottom(id string) bool {
	metrics := m.store.Metrics(id)
	return m.store.Offset(id) >= outbuf.ClampOffset(metrics.TotalRows, metrics.TotalRows, m.panelHeight)
}

func (m *model) cycleMatch(forward bool) tea.Cmd {
	id := m.activeID()
	state := m.searchStates[id]
	if state == nil || len(state.Matches) == 0 {
		return nil
	}
	if forward {
		state.Next()
	} else {
		state.Previous()
	}
	return m.ensureMatchVisible()
}

// ensureMatchVisible scrolls so the current match's visual row is inside
// the viewport, animating the transition with a spring.
func (m *model) ensureMatchVisible() tea.Cmd {
	id := m.activeID()
	state := m.searchStates[id]
	match := state.CurrentMatch()
	if match == nil {
		return nil
	}
	lines := m.store.Lines(id)
	if match.Line >= len(lines) {
		return nil
	}
	metrics := m.store.Metrics(id)
	row := metrics.RowForOffset(lines[match.Line], match.Line, match.Start)
	offset := m.store.Offset(id)
	target := search.EnsureVisible(offset, row, m.panelHeight)
	if target == offset {
		return nil
	}
	m.followTail[id] = false
	m.scrollPos = float64(offset)
	m.scrollVel = 0
	m.scrollTarget = target
	m.animating = true
	return animTickCmd()
}

func (m model) updateAnimation() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	id := m.activeID()
	pos, vel := m.spring.Update(m.scrollPos, m.scrollVel, float64(m.scrollTarget))
	m.scrollPos = pos
	m.scrollVel = vel
	m.store.SetOffset(id, int(math.Round(pos)), m.panelHeight)
	if math.Abs(pos-float64(m.scrollTarget)) < 0.5 && math.Abs(vel) < 0.5 {
		m.animating = false
		m.store.SetOffset(id, m.scrollTarget, m.panelHeight)
		return m, nil
	}
	return m, animTickCmd()
}

func (m *model) copyCurrentLine() {
	id := m.activeID()
	lines := m.store.Lines(id)
	if len(lines) == 0 {
		return
	}
	index := len(lines) - 1
	if state := m.searchStates[id]; state != nil {
		if match := state.CurrentMatch(); match != nil && match.Line < len(lines) {
			index = match.Line
		}
	}
	if err := clipboard.WriteAll(ansi.Strip(lines[index])); err != nil {
		m.setToast("copy failed: "+err.Error(), 3*time.Second)
		return
	}
	m.setToast("line copied to clipboard", 2*time.Second)
}

func (m *model) setToast(message string, ttl time.Duration) {
	m.toastMessage = message
	m.toastExpires = time.Now().Add(ttl)
}

func (m *model) relayout() {
	frame := m.styles.panel.GetHorizontalFrameSize()
	m.panelWidth = m.width - frame - 1 // one cell for the scrollbar
	if m.panelWidth < 1 {
		m.panelWidth = 1
	}
	// Top bar, tabs, search bar, status bar; the search bar row is reserved
	// even when idle so the layout never jumps.
	chrome := 4 + m.styles.panel.GetVerticalFrameSize()
	m.panelHeight = m.height - chrome
	if m.panelHeight < 1 {
		m.panelHeight = 1
	}
	m.recomputeActive()
}

func (m *model) recomputeActive() {
	m.store.Recompute(m.activeID(), m.panelWidth, m.panelHeight)
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		overlay := m.styles.helpOverlay.Render(m.helpBody)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	if m.paletteOpen {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderPalette())
	}
	if m.customOpen {
		body := m.styles.paletteOverlay.Render("mvn " + m.customInput.View() + "\n" + m.styles.paletteHint.Render("enter to run · esc to cancel"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}

	var b strings.Builder
	b.WriteString(m.styles.topBar.Width(m.width).Render("mvndash · " + m.project.Name))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderPanel())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m model) renderTabs() string {
	var tabs []string
	for i, module := range m.orderedModules() {
		label := module.ID
		if m.store.Running(module.ID) {
			label = m.spinner.View() + " " + label
		} else if m.lastFailed[module.ID] {
			label = "✗ " + label
		}
		if i == m.active {
			tabs = append(tabs, m.styles.tabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.tabInactive.Render(label))
		}
	}
	return m.styles.tabsRow.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m model) renderPanel() string {
	id := m.activeID()
	lines := m.store.Lines(id)
	metrics := m.store.Metrics(id)
	offset := m.store.Offset(id)
	rows := renderOutputRows(m.styles, lines, metrics, m.searchStates[id], offset, m.panelWidth, m.panelHeight)
	bar := renderScrollBar(m.styles, m.panelHeight, metrics.TotalRows, m.panelHeight, offset)
	for i := range rows {
		rows[i] = bar[i] + rows[i]
	}
	return m.styles.panel.Width(m.width - m.styles.panel.GetHorizontalFrameSize()).Render(strings.Join(rows, "\n"))
}

func (m model) renderSearchBar() string {
	if m.searching {
		bar := m.styles.searchPrompt.Render(" / ") + m.searchInput.View()
		if m.searchErr != "" {
			bar += "  " + m.styles.searchError.Render(m.searchErr)
		} else if state := m.searchStates[m.activeID()]; state != nil {
			bar += "  " + m.styles.statusHint.Render(fmt.Sprintf("%d matches", len(state.Matches)))
		}
		return bar
	}
	if state := m.searchStates[m.activeID()]; state != nil && state.Query != "" {
		if len(state.Matches) == 0 {
			return m.styles.statusHint.Render(" search: " + state.Query + " (no matches)")
		}
		return m.styles.statusHint.Render(fmt.Sprintf(" search: %s (%d/%d) · n/N to cycle", state.Query, state.Current+1, len(state.Matches)))
	}
	return m.styles.statusHint.Render(" enter run · p palette · c cancel · / search · ? help")
}

func (m model) renderStatusBar() string {
	id := m.activeID()
	var segments []string

	if m.store.Running(id) {
		segments = append(segments, m.styles.statusSeg.Render(
			m.spinner.View()+" running "+formatElapsed(m.store.Elapsed(id))))
		if pid := m.pids[id]; pid != 0 {
			segments = append(segments, m.styles.statusSeg.Render(fmt.Sprintf("pid %d", pid)))
		}
	} else if last := m.store.LastCommand(id); last != "" {
		if m.lastFailed[id] {
			segments = append(segments, m.styles.statusFail.Render("failed"))
		} else {
			segments = append(segments, m.styles.statusOk.Render("ok"))
		}
		segments = append(segments, m.styles.statusSeg.Render(formatElapsed(m.store.Elapsed(id))))
	} else {
		segments = append(segments, m.styles.statusHint.Render("idle"))
	}

	if last := m.store.LastCommand(id); last != "" {
		segments = append(segments, m.styles.statusHint.Render(last))
	}
	if profiles := m.store.Profiles(id); len(profiles) > 0 {
		segments = append(segments, m.styles.statusHint.Render("-P"+strings.Join(profiles, ",")))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, segments...)
	if m.toastMessage != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.styles.toast.Render(m.toastMessage))
	}
	return m.styles.statusBar.Width(m.width).Render(content)
}

func (m model) renderPalette() string {
	var b strings.Builder
	b.WriteString(m.styles.searchPrompt.Render("Run goal on " + m.activeID()))
	b.WriteString("\n\n")
	for i, entry := range m.goalEntries {
		line := entry.label
		if entry.description != "" {
			line += "  " + m.styles.paletteHint.Render(entry.description)
		}
		if i == m.paletteIndex {
			b.WriteString(m.styles.paletteSel.Render("> " + line))
		} else {
			b.WriteString(m.styles.paletteItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.paletteHint.Render("enter to run · esc to close"))
	return m.styles.paletteOverlay.Render(b.String())
}

func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}
