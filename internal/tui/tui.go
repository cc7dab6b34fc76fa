// Package tui is the interactive terminal front end: a text input with an
// add trigger above the incomplete and complete lists.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todolist/internal/output"
	"todolist/internal/todo"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusIncomplete
	focusComplete
	focusCount
)

// Options configures the UI.
type Options struct {
	Title  string
	Logger *log.Logger
}

// Model is the bubbletea model. All state lives in the controller; the model
// only tracks focus, cursors and the input field.
type Model struct {
	ctrl   *todo.Controller
	input  textinput.Model
	help   help.Model
	keys   keyMap
	focus  focusArea
	cursor [2]int // incomplete, complete
	title  string
	status string
	width  int
	log    *log.Logger
}

// New returns a model with the input focused.
func New(ctrl *todo.Controller, opts Options) Model {
	in := textinput.New()
	in.Placeholder = "new item"
	in.Prompt = "> "
	in.Focus()

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	title := opts.Title
	if title == "" {
		title = "TODO"
	}

	return Model{
		ctrl:  ctrl,
		input: in,
		help:  help.New(),
		keys:  defaultKeyMap(),
		title: title,
		log:   logger,
	}
}

// Run starts the UI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *todo.Controller, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctrl, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-4)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		id := m.ctrl.Add(m.input.Value())
		m.input.Reset()
		m.log.Debug("item added", "id", id)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Edit):
		m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case m.focus == focusIncomplete && key.Matches(msg, m.keys.Complete):
		m.apply("complete", m.ctrl.Complete)
	case m.focus == focusIncomplete && key.Matches(msg, m.keys.Delete):
		m.apply("delete", m.ctrl.Delete)
	case m.focus == focusComplete && key.Matches(msg, m.keys.Return):
		m.apply("return", m.ctrl.Return)
	case m.focus == focusComplete && key.Matches(msg, m.keys.Delete):
		m.status = "completed items can only be returned"
	}
	return m, nil
}

// apply runs op on the selected item of the focused list.
func (m *Model) apply(name string, op func(todo.ItemID) error) {
	item, ok := m.selected()
	if !ok {
		return
	}
	if err := op(item.ID); err != nil {
		m.status = err.Error()
		m.log.Warn("action failed", "action", name, "id", item.ID, "err", err)
		return
	}
	m.log.Debug("item "+name, "id", item.ID)
	m.clampCursors()
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.clampCursors()
}

func (m *Model) focusedItems() []todo.Item {
	switch m.focus {
	case focusIncomplete:
		return m.ctrl.Incomplete()
	case focusComplete:
		return m.ctrl.Completed()
	}
	return nil
}

func (m *Model) selected() (todo.Item, bool) {
	items := m.focusedItems()
	if len(items) == 0 {
		return todo.Item{}, false
	}
	return items[m.cursor[m.focus-focusIncomplete]], true
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusInput {
		return
	}
	m.cursor[m.focus-focusIncomplete] += delta
	m.clampCursors()
}

func (m *Model) clampCursors() {
	inc, comp := m.ctrl.Len()
	m.cursor[0] = clamp(m.cursor[0], inc)
	m.cursor[1] = clamp(m.cursor[1], comp)
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	activeHeader  = headerStyle.Foreground(lipgloss.Color("39"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("39")).Bold(true)
	doneStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")).Strikethrough(true)
	emptyStyle    = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderSection(output.IncompleteTitle, m.ctrl.Incomplete(), focusIncomplete))
	b.WriteString(m.renderSection(output.CompleteTitle, m.ctrl.Completed(), focusComplete))

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.helpFor(m.focus)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSection(title string, items []todo.Item, area focusArea) string {
	var b strings.Builder
	hs := headerStyle
	if m.focus == area {
		hs = activeHeader
	}
	b.WriteString(hs.Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(emptyStyle.Render("(none)"))
		b.WriteString("\n")
		return b.String()
	}

	cursor := m.cursor[area-focusIncomplete]
	for i, item := range items {
		line := item.ID.String() + "  " + output.DisplayText(item.Text)
		style := itemStyle
		switch {
		case m.focus == area && i == cursor:
			style = selectedStyle
			line = "> " + line
		case area == focusComplete:
			style = doneStyle
			line = "  " + line
		default:
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
