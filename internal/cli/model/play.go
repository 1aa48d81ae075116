// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/cli/styles"
	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/infrastructure/config"
	"github.com/bnema/panemux/internal/logging"
	"github.com/bnema/panemux/internal/parser"
)

// chromeHeight is the rows used by the tab bar and the status line.
const chromeHeight = 2

// ConfigChangedMsg carries a reloaded configuration.
type ConfigChangedMsg struct {
	Config *config.Config
}

// PlayModel is an interactive preview: keys and clicks become engine
// commands and the layout is drawn as boxes.
type PlayModel struct {
	help help.Model
	keys playKeyMap

	width    int
	height   int
	status   string
	lastCmd  string
	showHelp bool

	resizeStep int

	ctx    context.Context
	engine *engine.Engine
	theme  *styles.Theme
}

type playKeyMap struct {
	Left      key.Binding
	Down      key.Binding
	Up        key.Binding
	Right     key.Binding
	GrowLeft  key.Binding
	GrowDown  key.Binding
	GrowUp    key.Binding
	GrowRight key.Binding
	SplitH    key.Binding
	SplitV    key.Binding
	Remove    key.Binding
	Zoom      key.Binding
	Swap      key.Binding
	Next      key.Binding
	Prev      key.Binding
	NewView   key.Binding
	CloseView key.Binding
	NextView  key.Binding
	PrevView  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.GrowLeft, k.SplitH, k.SplitV, k.Remove, k.Zoom, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Up, k.Right, k.Next, k.Prev},
		{k.GrowLeft, k.GrowDown, k.GrowUp, k.GrowRight},
		{k.SplitH, k.SplitV, k.Remove, k.Zoom, k.Swap},
		{k.NewView, k.CloseView, k.NextView, k.PrevView},
		{k.Help, k.Quit},
	}
}

func defaultPlayKeyMap() playKeyMap {
	return playKeyMap{
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/j/k/l", "focus")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "focus down")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "focus up")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "focus right")),
		GrowLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H/J/K/L", "resize")),
		GrowDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "resize down")),
		GrowUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "resize up")),
		GrowRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "resize right")),
		SplitH:    key.NewBinding(key.WithKeys("|", "%"), key.WithHelp("|", "split side by side")),
		SplitV:    key.NewBinding(key.WithKeys("-", "\""), key.WithHelp("-", "split stacked")),
		Remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close pane")),
		Zoom:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
		Swap:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap with next")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),
		NewView:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new view")),
		CloseView: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "close view")),
		NextView:  key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next view")),
		PrevView:  key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "previous view")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// PlayModelConfig holds configuration for the play model.
type PlayModelConfig struct {
	Engine     *engine.Engine
	ResizeStep int
}

// NewPlayModel creates the preview model.
func NewPlayModel(ctx context.Context, theme *styles.Theme, cfg PlayModelConfig) PlayModel {
	step := cfg.ResizeStep
	if step <= 0 {
		step = 1
	}
	b := cfg.Engine.Bounds()
	return PlayModel{
		help:       help.New(),
		keys:       defaultPlayKeyMap(),
		width:      b.W,
		height:     b.H + chromeHeight,
		resizeStep: step,
		ctx:        logging.WithComponent(ctx, "play"),
		engine:     cfg.Engine,
		theme:      theme,
	}
}

// Init implements tea.Model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.exec(engine.TerminalResize{Width: msg.Width, Height: max(msg.Height-chromeHeight, 0)})
		return m, nil

	case ConfigChangedMsg:
		if msg.Config != nil && msg.Config.Resize.Step > 0 {
			m.resizeStep = msg.Config.Resize.Step
			m.status = fmt.Sprintf("config reloaded, resize step %d", m.resizeStep)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y >= 1 {
			m.exec(engine.FocusAt{X: msg.X, Y: msg.Y - 1})
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Left):
		m.exec(engine.FocusDirection{Direction: entity.DirLeft, Count: 1})
	case key.Matches(msg, m.keys.Down):
		m.exec(engine.FocusDirection{Direction: entity.DirDown, Count: 1})
	case key.Matches(msg, m.keys.Up):
		m.exec(engine.FocusDirection{Direction: entity.DirUp, Count: 1})
	case key.Matches(msg, m.keys.Right):
		m.exec(engine.FocusDirection{Direction: entity.DirRight, Count: 1})
	case key.Matches(msg, m.keys.GrowLeft):
		m.exec(engine.Resize{Direction: entity.DirLeft, Delta: m.resizeStep, Count: 1})
	case key.Matches(msg, m.keys.GrowDown):
		m.exec(engine.Resize{Direction: entity.DirDown, Delta: m.resizeStep, Count: 1})
	case key.Matches(msg, m.keys.GrowUp):
		m.exec(engine.Resize{Direction: entity.DirUp, Delta: m.resizeStep, Count: 1})
	case key.Matches(msg, m.keys.GrowRight):
		m.exec(engine.Resize{Direction: entity.DirRight, Delta: m.resizeStep, Count: 1})
	case key.Matches(msg, m.keys.SplitH):
		m.exec(engine.Split{Direction: entity.SplitHorizontal})
	case key.Matches(msg, m.keys.SplitV):
		m.exec(engine.Split{Direction: entity.SplitVertical})
	case key.Matches(msg, m.keys.Remove):
		// Closing the final pane closes the preview.
		if err := m.exec(engine.Remove{}); errors.Is(err, entity.ErrLastPaneRemoved) {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Zoom):
		m.exec(engine.ToggleZoom{})
	case key.Matches(msg, m.keys.Swap):
		m.swapWithNext()
	case key.Matches(msg, m.keys.Next):
		m.exec(engine.FocusNext{Step: 1})
	case key.Matches(msg, m.keys.Prev):
		m.exec(engine.FocusNext{Step: -1})
	case key.Matches(msg, m.keys.NewView):
		m.exec(engine.NewView{})
	case key.Matches(msg, m.keys.CloseView):
		m.exec(engine.CloseView{})
	case key.Matches(msg, m.keys.NextView):
		m.exec(engine.SwitchView{Step: 1})
	case key.Matches(msg, m.keys.PrevView):
		m.exec(engine.SwitchView{Step: -1})
	}
	return m, nil
}

// swapWithNext swaps the focused pane with the next one in traversal order.
func (m *PlayModel) swapWithNext() {
	v := m.engine.Snapshot().ActiveView()
	if len(v.Panes) < 2 {
		return
	}
	for i, id := range v.Panes {
		if id == v.Focus {
			m.exec(engine.Swap{B: v.Panes[(i+1)%len(v.Panes)]})
			return
		}
	}
}

func (m *PlayModel) exec(cmd engine.Command) error {
	m.lastCmd = parser.Format(cmd)
	_, err := m.engine.Execute(m.ctx, cmd)
	m.status = ""
	if err != nil {
		if !engine.IsPartial(err) {
			logging.FromContext(m.ctx).Debug().Err(err).Str("command", m.lastCmd).Msg("command rejected")
		}
		m.status = err.Error()
	}
	return err
}

// View implements tea.Model.
func (m PlayModel) View() string {
	s := m.engine.Snapshot()

	tabs := make([]styles.Tab, len(s.Views))
	for i, v := range s.Views {
		tabs[i] = styles.Tab{Label: v.Title, Panes: len(v.Panes)}
	}
	bar := styles.NewTabs(m.theme, tabs...)
	bar.SetActive(s.Active)
	bar.Width = m.width

	var boxes []styles.PaneBox
	if s.Layout != nil {
		focus := s.ActiveView().Focus
		boxes = make([]styles.PaneBox, 0, len(s.Layout.Panes))
		for _, pr := range s.Layout.Panes {
			boxes = append(boxes, styles.PaneBox{
				Label:   string(pr.PaneID),
				Detail:  fmt.Sprintf("%dx%d+%d+%d", pr.W, pr.H, pr.X, pr.Y),
				X:       pr.X,
				Y:       pr.Y,
				W:       pr.W,
				H:       pr.H,
				Focused: pr.PaneID == focus,
				Zoomed:  pr.PaneID == s.Layout.Zoomed,
			})
		}
	}
	panes := m.theme.RenderPanes(s.Bounds.W, s.Bounds.H, boxes)

	parts := []string{bar.View()}
	if panes != "" {
		parts = append(parts, panes)
	}
	parts = append(parts, m.statusLine(s))
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m PlayModel) statusLine(s *engine.Snapshot) string {
	v := s.ActiveView()
	left := fmt.Sprintf(" %s %s  %s %s", styles.IconTab, v.ID, styles.IconPane, v.Focus)
	if v.Zoomed != "" {
		left += " " + styles.IconExpand
	}
	right := m.lastCmd
	if m.status != "" {
		right = m.theme.WarningStyle.Render(m.status)
	}
	if !m.showHelp {
		right = strings.TrimSpace(right + "  " + m.theme.HelpKey.Render("?") + " " + m.theme.HelpDesc.Render("help"))
	}
	line := left + "  " + right
	if m.width > 0 {
		return m.theme.StatusBar.Width(m.width).Render(ansi.Truncate(line, m.width, "…"))
	}
	return m.theme.StatusBar.Render(line)
}
