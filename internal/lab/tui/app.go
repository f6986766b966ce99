// Package tui is the interactive front-end: three tabs, one per
// protocol, each re-encoding its byte view on every keystroke. All state
// lives in this single bubbletea model; there is no shared mutable state
// between views and nothing is cached between edits.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haukened/framelab/internal/lab/common/log"
	"github.com/haukened/framelab/internal/lab/render"
	"github.com/haukened/framelab/internal/lab/repos/history"
	"github.com/haukened/framelab/internal/lab/repos/presets"
)

// labView is one protocol tab.
type labView interface {
	title() string
	protocol() string
	update(msg tea.KeyMsg) tea.Cmd
	view(th Theme, width int) string
	cyclePreset()
	presetName() string
	snapshotLabel() string
	bytes() []byte
}

// App is the root bubbletea model.
type App struct {
	theme  Theme
	views  []labView
	active int

	store       *history.Store
	logger      log.Logger
	showHistory bool
	status      string

	width  int
	height int
}

// New assembles the application model from its collaborators.
func New(theme Theme, catalog presets.File, store *history.Store, logger log.Logger) *App {
	return &App{
		theme:  theme,
		store:  store,
		logger: logger,
		views: []labView{
			newDNSView(catalog.DNS),
			newTCPView(catalog.TCP),
			newHTTPView(catalog.HTTP),
		},
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Global keys are handled here; everything
// else goes to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit

		case "ctrl+t":
			a.active = (a.active + 1) % len(a.views)
			a.status = ""
			return a, nil

		case "ctrl+p":
			v := a.views[a.active]
			v.cyclePreset()
			a.status = "preset: " + v.presetName()
			return a, nil

		case "ctrl+s":
			v := a.views[a.active]
			snap := a.store.Capture(v.protocol(), v.snapshotLabel(), v.bytes())
			a.status = fmt.Sprintf("captured %q (%d bytes)", snap.Label, len(snap.Bytes))
			a.logger.Debug(map[string]any{
				"protocol": snap.Protocol,
				"label":    snap.Label,
				"size":     len(snap.Bytes),
			}, "Captured snapshot")
			return a, nil

		case "ctrl+g":
			a.showHistory = !a.showHistory
			return a, nil
		}

		cmd := a.views[a.active].update(msg)
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	sections := []string{a.tabBar(), a.views[a.active].view(a.theme, a.width)}
	if a.showHistory {
		sections = append(sections, a.historyPane())
	}
	sections = append(sections, a.footer())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) tabBar() string {
	var tabs []string
	for i, v := range a.views {
		style := a.theme.Tab
		if i == a.active {
			style = a.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(v.title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		a.theme.Title.Render("framelab"),
		strings.Join(tabs, " "),
	)
}

func (a *App) historyPane() string {
	snaps := a.store.Recent(8)
	if len(snaps) == 0 {
		return a.theme.Hint.Render("history empty; ctrl+s captures the current bytes")
	}
	var lines []string
	for _, s := range snaps {
		lines = append(lines, fmt.Sprintf("%s  %-24s %s",
			s.Captured.Format("15:04:05"), s.Label, render.Hex(s.Bytes)))
	}
	return a.theme.Pane.Render(strings.Join(lines, "\n"))
}

func (a *App) footer() string {
	help := "tab: field  ctrl+t: protocol  ctrl+p: preset  ctrl+s: capture  ctrl+g: history  ctrl+c: quit"
	if a.status != "" {
		help = a.status + "  |  " + help
	}
	return a.theme.Footer.Render(help)
}
