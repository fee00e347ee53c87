package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

type editState struct {
	taskID   int
	original string
}

type Model struct {
	store      *todo.Store
	cfg        config.Config
	keys       KeyMap
	styles     Styles
	logger     *log.Logger
	cursor     int
	mode       mode
	input      textinput.Model
	edit       *editState
	pendingDel *todo.Task
	status     string
	statusErr  bool
	help       help.Model
	showHelp   bool
	helpText   string
	copyText   func(string) error
}

type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		if fn != nil {
			m.copyText = fn
		}
	}
}

func New(store *todo.Store, cfg config.Config, logger *log.Logger, opts ...Option) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:    store,
		cfg:      cfg,
		keys:     NewKeyMap(cfg.Keys),
		styles:   NewStyles(PaletteByName(cfg.Theme)),
		logger:   logger,
		mode:     modeList,
		input:    ti,
		help:     help.New(),
		copyText: clipboard.WriteAll,
	}
	m.status = fmt.Sprintf("Press '%s' to add, '%s' to toggle, '%s' for help.",
		m.keys.Add.Help().Key, m.keys.Toggle.Help().Key, m.keys.Help.Help().Key)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func Run(store *todo.Store, cfg config.Config, logger *log.Logger) error {
	program := tea.NewProgram(New(store, cfg, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		case modeConfirmDelete:
			return m.updateDeleteConfirm(msg.String())
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.store.SetInput("")
		m.setStatus("Cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if strings.TrimSpace(m.store.Input()) == "" {
			m.setError("Title cannot be empty")
			return m, nil
		}
		t := m.store.Submit()
		m.logger.Debug("task added", "id", t.ID, "text", t.Text)
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.selectTask(t.ID)
		if m.store.Filter().Match(t) {
			m.setStatus("Added task")
		} else {
			m.setStatus(fmt.Sprintf("Added task (hidden by filter %q)", m.store.Filter().Label()))
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.SetInput(m.input.Value())
		return m, cmd
	}
}

// updateEditMode applies every keystroke to the task right away; cancel
// puts the text it had when editing started back.
func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.edit == nil {
		m.mode = modeList
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.store.Edit(m.edit.taskID, m.edit.original)
		m.logger.Debug("edit reverted", "id", m.edit.taskID)
		m.finishEdit()
		m.setStatus("Edit cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.logger.Debug("task edited", "id", m.edit.taskID, "text", m.input.Value())
		m.finishEdit()
		m.setStatus("Saved")
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.Edit(m.edit.taskID, m.input.Value())
		return m, cmd
	}
}

func (m *Model) finishEdit() {
	m.edit = nil
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.clamp()
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) {
			m.showHelp = false
			return m, nil
		}
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		if m.helpText == "" {
			m.helpText = renderHelp(m.keys, m.styles.GlamourStyle)
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clamp()
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clamp()
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue(m.store.Input())
		m.input.Placeholder = "Task title"
		m.setStatus("Add mode: type a title and press Enter")
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.FilterNext):
		m.applyFilter(m.store.Filter().Next())
	case key.Matches(msg, m.keys.FilterPrev):
		m.applyFilter(m.store.Filter().Prev())
	case key.Matches(msg, m.keys.FilterJump):
		idx := int(msg.String()[0] - '0')
		m.applyFilter(todo.Filters()[idx])
	default:
		return m.updateSelected(msg)
	}
	return m, nil
}

// updateSelected handles the row controls of the task under the cursor.
func (m Model) updateSelected(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.store.ToggleChecked(t.ID)
		m.logger.Debug("task toggled", "id", t.ID, "completed", !t.Completed)
		m.setStatus(fmt.Sprintf("Marked %s", humanDone(!t.Completed)))
	case key.Matches(msg, m.keys.StatusNext):
		m.changeStatus(t, t.Status.Next())
	case key.Matches(msg, m.keys.StatusPrev):
		m.changeStatus(t, t.Status.Prev())
	case key.Matches(msg, m.keys.Edit):
		if t.Completed {
			m.setError("Task is completed; uncheck it to edit")
			return m, nil
		}
		m.mode = modeEdit
		m.edit = &editState{taskID: t.ID, original: t.Text}
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		m.input.Placeholder = "Task text"
		m.setStatus("Editing: Enter to finish, Esc to revert")
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		if !m.cfg.ConfirmDelete {
			m.remove(t)
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.pendingDel = &t
		m.setStatus(fmt.Sprintf("Delete \"%s\"? y/n", t.Text))
	case key.Matches(msg, m.keys.Yank):
		if err := m.copyText(t.Text); err != nil {
			m.logger.Warn("clipboard write failed", "id", t.ID, "err", err)
			m.setError(fmt.Sprintf("copy failed: %v", err))
			return m, nil
		}
		m.setStatus("Copied task text")
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.setStatus("Delete cancelled")
		m.mode = modeList
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.setStatus("Nothing to delete")
			m.mode = modeList
			return m, nil
		}
		m.remove(*m.pendingDel)
		m.mode = modeList
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) remove(t todo.Task) {
	if !m.store.Remove(t.ID) {
		m.setStatus("Nothing to delete")
		return
	}
	m.logger.Debug("task removed", "id", t.ID)
	m.clamp()
	m.setStatus("Deleted task")
}

func (m *Model) changeStatus(t todo.Task, s todo.Status) {
	m.store.SetStatus(t.ID, s)
	m.logger.Debug("status changed", "id", t.ID, "from", t.Status, "to", s)
	m.clamp()
	m.setStatus(fmt.Sprintf("Status: %s", s.Label()))
}

func (m *Model) applyFilter(f todo.Filter) {
	if !m.store.SetFilter(f) {
		return
	}
	m.logger.Debug("filter changed", "filter", f)
	m.cursor = 0
	m.setStatus(fmt.Sprintf("Showing %s (%d)", strings.ToLower(f.Label()), len(m.store.Visible())))
}

// selectTask moves the cursor onto id if the active filter shows it.
func (m *Model) selectTask(id int) {
	for i, t := range m.store.Visible() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clamp()
}

func (m *Model) clamp() {
	m.cursor = clampCursor(m.cursor, len(m.store.Visible()))
}

func (m Model) selected() (todo.Task, bool) {
	visible := m.store.Visible()
	if len(visible) == 0 {
		return todo.Task{}, false
	}
	return visible[clampCursor(m.cursor, len(visible))], true
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Todo list"))
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.helpText)
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatusLine.Render(fmt.Sprintf("%s or %s to close", m.keys.Help.Help().Key, m.keys.Cancel.Help().Key)))
		return b.String()
	}

	if m.mode == modeAdd {
		b.WriteString(m.styles.Panel.Render("New task: " + m.input.View()))
		b.WriteString("\n\n")
	}

	visible := m.store.Visible()
	switch {
	case m.store.Len() == 0:
		b.WriteString(fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.keys.Add.Help().Key))
		b.WriteString("\n")
	case len(visible) == 0:
		b.WriteString(fmt.Sprintf("No tasks match %q.", m.store.Filter().Label()))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTaskList(visible))
	}

	b.WriteString("\n")
	if m.statusErr {
		b.WriteString(m.styles.Error.Render(m.status))
	} else {
		b.WriteString(m.styles.StatusLine.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderFilterBar() string {
	parts := make([]string, 0, len(todo.Filters())+1)
	parts = append(parts, "Filter:")
	for i, f := range todo.Filters() {
		label := fmt.Sprintf("%d %s", i, f.Label())
		if f == m.store.Filter() {
			parts = append(parts, m.styles.FilterActive.Render("["+label+"]"))
			continue
		}
		parts = append(parts, m.styles.Filter.Render(label))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTaskList(visible []todo.Task) string {
	var b strings.Builder
	cur := clampCursor(m.cursor, len(visible))
	for i, t := range visible {
		cursor := " "
		if cur == i && m.mode != modeAdd {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		text := t.Text
		if m.mode == modeEdit && m.edit != nil && m.edit.taskID == t.ID {
			text = m.input.View()
		} else {
			switch {
			case t.Completed:
				text = m.styles.RowDone.Render(text)
			case cur == i:
				text = m.styles.RowSelected.Render(text)
			default:
				text = m.styles.Row.Render(text)
			}
		}

		badge := m.styles.Status[t.Status].Render("(" + t.Status.Label() + ")")
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, text, badge))
	}
	return b.String()
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}
