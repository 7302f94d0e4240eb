package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskdeck/internal/config"
	"taskdeck/internal/storage"
	"taskdeck/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeNotes
	modeDue
	modeSearch
)

const progressBarWidth = 24

type Model struct {
	store  *task.Store
	prefs  *storage.Store
	cfg    config.Config
	logger *log.Logger

	query   task.Query
	visible []task.Task
	cursor  int
	mode    mode
	input   textinput.Model
	status  string

	dark  bool
	theme Theme

	confirmDel bool
	pendingDel *task.Task
	editID     int
}

func Run(store *task.Store, prefs *storage.Store, cfg config.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 256
	ti.Width = 40

	dark := prefs.LoadDarkMode()
	query := task.DefaultQuery()
	switch task.StatusFilter(strings.ToLower(cfg.DefaultFilter)) {
	case task.StatusActive:
		query.Status = task.StatusActive
	case task.StatusCompleted:
		query.Status = task.StatusCompleted
	}
	switch task.SortKey(strings.ToLower(cfg.DefaultSort)) {
	case task.SortPriority:
		query.Sort = task.SortPriority
	case task.SortAlphabetical:
		query.Sort = task.SortAlphabetical
	case task.SortDue:
		query.Sort = task.SortDue
	}

	m := Model{
		store:  store,
		prefs:  prefs,
		cfg:    cfg,
		logger: logger.WithPrefix("ui"),
		query:  query,
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
		input:  ti,
		mode:   modeList,
		dark:   dark,
		theme:  themeFor(dark),
	}
	m.refresh()

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.mode == modeList {
			return m.updateListMode(msg.String())
		}
		return m.updateInputMode(msg.String(), msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// refresh recomputes the visible list from the full collection and the
// current query, then clamps the cursor.
func (m *Model) refresh() {
	m.visible = m.query.Apply(m.store.Tasks())
	m.cursor = clampCursor(m.cursor, len(m.visible))
}

func (m Model) selected() *task.Task {
	if len(m.visible) == 0 {
		return nil
	}
	t := m.visible[clampCursor(m.cursor, len(m.visible))]
	return &t
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.visible) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(m.visible))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.visible))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Task text"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add mode: type the task text and press Enter"
	case m.cfg.Keys.Toggle:
		t := m.selected()
		if t == nil {
			return m, nil
		}
		m.store.Toggle(t.ID)
		m.refresh()
		m.status = "Toggled task"
	case m.cfg.Keys.Delete:
		t := m.selected()
		if t == nil {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = t
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", t.Text)
	case m.cfg.Keys.Edit:
		t := m.selected()
		if t == nil {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.mode = modeEdit
		m.editID = t.ID
		m.input.Placeholder = "Task text"
		m.input.SetValue(t.Text)
		m.input.Focus()
		m.status = "Edit mode: change the text and press Enter"
	case m.cfg.Keys.Notes:
		t := m.selected()
		if t == nil {
			return m, nil
		}
		m.mode = modeNotes
		m.editID = t.ID
		m.input.Placeholder = "Notes"
		m.input.SetValue(t.Notes)
		m.input.Focus()
		m.status = "Notes: press Enter to save (empty clears)"
	case m.cfg.Keys.Due:
		t := m.selected()
		if t == nil {
			return m, nil
		}
		m.mode = modeDue
		m.editID = t.ID
		m.input.Placeholder = "YYYY-MM-DD"
		if t.Due != nil {
			m.input.SetValue(t.Due.String())
		} else {
			m.input.SetValue("")
		}
		m.input.Focus()
		m.status = "Due date: YYYY-MM-DD, empty clears"
	case m.cfg.Keys.Priority:
		t := m.selected()
		if t == nil {
			return m, nil
		}
		next := t.Priority.Next()
		m.store.SetPriority(t.ID, next)
		m.refresh()
		m.status = "Priority: " + string(next)
	case m.cfg.Keys.Category:
		t := m.selected()
		if t == nil {
			return m, nil
		}
		next := t.Category.Next()
		m.store.SetCategory(t.ID, next)
		m.refresh()
		m.status = "Category: " + string(next)
	case m.cfg.Keys.FilterStatus:
		m.query.Status = m.query.Status.Next()
		m.refresh()
		m.status = "Status filter: " + string(m.query.Status)
	case m.cfg.Keys.FilterCategory:
		m.query.Category = m.query.Category.Next()
		m.refresh()
		m.status = "Category filter: " + string(m.query.Category)
	case m.cfg.Keys.Sort:
		m.query.Sort = m.query.Sort.Next()
		m.refresh()
		m.status = "Sort: " + string(m.query.Sort)
	case m.cfg.Keys.Search:
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		m.input.SetValue(m.query.Search)
		m.input.Focus()
		m.status = "Search: type to filter, Enter to keep, Esc to clear"
	case m.cfg.Keys.ClearDone:
		if m.store.ClearCompleted() {
			m.refresh()
			m.status = "Cleared completed tasks"
		} else {
			m.status = "Nothing to clear"
		}
	case m.cfg.Keys.Theme:
		m.dark = !m.dark
		m.theme = themeFor(m.dark)
		if err := m.prefs.SaveDarkMode(m.dark); err != nil {
			m.logger.Error("save theme preference failed", "err", err)
		}
		if m.dark {
			m.status = "Dark mode"
		} else {
			m.status = "Light mode"
		}
	}
	return m, nil
}

func (m Model) updateInputMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		if m.mode == modeSearch {
			m.query.Search = ""
			m.refresh()
		}
		return m.closeInput("Cancelled"), nil
	case m.cfg.Keys.Confirm, "enter":
		return m.commitInput()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.mode == modeSearch {
			m.query.Search = m.input.Value()
			m.refresh()
		}
		return m, cmd
	}
}

func (m Model) commitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	switch m.mode {
	case modeAdd:
		added := m.store.Add(value, task.PriorityMedium, task.CategoryPersonal, nil, "")
		if added == nil {
			m.status = "Task text cannot be empty"
			return m, nil
		}
		m = m.closeInput("Added task")
		m.moveCursorTo(added.ID)
		return m, nil
	case modeEdit:
		if !m.store.EditText(m.editID, value) {
			m.status = "Task text cannot be empty"
			return m, nil
		}
		return m.closeInput("Saved text"), nil
	case modeNotes:
		m.store.SetNotes(m.editID, strings.TrimSpace(value))
		return m.closeInput("Saved notes"), nil
	case modeDue:
		value = strings.TrimSpace(value)
		if value == "" {
			m.store.SetDue(m.editID, nil)
			return m.closeInput("Cleared due date"), nil
		}
		due, err := task.ParseDate(value)
		if err != nil {
			m.status = "Invalid date, use YYYY-MM-DD"
			return m, nil
		}
		m.store.SetDue(m.editID, &due)
		return m.closeInput("Saved due date"), nil
	case modeSearch:
		m.query.Search = value
		return m.closeInput("Search: " + strings.TrimSpace(value)), nil
	default:
		return m, nil
	}
}

func (m Model) closeInput(status string) Model {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.status = status
	m.refresh()
	return m
}

func (m *Model) moveCursorTo(id int) {
	for i, t := range m.visible {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		m.store.Remove(m.pendingDel.ID)
		m.refresh()
		m.status = "Deleted task"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Header.Render("taskdeck"))
	b.WriteString("\n")
	b.WriteString(m.theme.FilterBar.Render(m.renderFilterBar()))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		if m.store.Len() == 0 {
			b.WriteString("No tasks yet. Press 'a' to add one.")
		} else {
			b.WriteString("No tasks match the current filters.")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	if m.mode != modeList {
		b.WriteString("\n")
		b.WriteString(m.inputLabel())
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(m.theme.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderFilterBar() string {
	parts := []string{
		"status:" + string(m.query.Status),
		"category:" + string(m.query.Category),
		"sort:" + string(m.query.Sort),
	}
	if q := strings.TrimSpace(m.query.Search); q != "" {
		parts = append(parts, "search:"+q)
	}
	return strings.Join(parts, " • ")
}

func (m Model) renderTaskList() string {
	now := time.Now()
	var b strings.Builder
	for i, t := range m.visible {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		text := t.Text
		switch {
		case t.Completed:
			text = m.theme.Done.Render(text)
		case t.Overdue(now):
			text = m.theme.Overdue.Render(text)
		case t.DueToday(now):
			text = m.theme.DueToday.Render(text)
		}

		extras := make([]string, 0, 4)
		if t.Priority == task.PriorityHigh {
			extras = append(extras, m.theme.High.Render("high"))
		} else if t.Priority == task.PriorityLow {
			extras = append(extras, "low")
		}
		extras = append(extras, string(t.Category))
		if t.Due != nil {
			due := "due:" + t.Due.String()
			switch {
			case t.Completed:
				// keep it plain
			case t.Overdue(now):
				due = m.theme.Overdue.Render(due)
			case t.DueToday(now):
				due = m.theme.DueToday.Render(due)
			}
			extras = append(extras, due)
		}
		if strings.TrimSpace(t.Notes) != "" {
			extras = append(extras, "notes")
		}

		line := fmt.Sprintf("%s %s %s %s", cursor, checkbox, text,
			m.theme.Badge.Render("["+strings.Join(extras, " | ")+"]"))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStats() string {
	st := task.Summarize(m.store.Tasks())
	counts := fmt.Sprintf("%d tasks • %d active • %d done • %d high priority",
		st.Total, st.Active, st.Completed, st.HighPriority)
	return counts + "\n" + m.renderProgressBar(st.ProgressPercent)
}

func (m Model) renderProgressBar(percent int) string {
	filled := percent * progressBarWidth / 100
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := m.theme.BarFill.Render(strings.Repeat("█", filled)) +
		m.theme.BarEmpty.Render(strings.Repeat("░", progressBarWidth-filled))
	return fmt.Sprintf("%s %d%%", bar, percent)
}

func (m Model) inputLabel() string {
	switch m.mode {
	case modeAdd:
		return "Add: "
	case modeEdit:
		return "Edit: "
	case modeNotes:
		return "Notes: "
	case modeDue:
		return "Due: "
	case modeSearch:
		return "Search: "
	default:
		return ""
	}
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s edit • %s notes • %s due • %s prio • %s cat • %s/%s filter • %s sort • %s search • %s clear done • %s theme • %s quit",
		k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Edit, k.Notes, k.Due, k.Priority, k.Category,
		k.FilterStatus, k.FilterCategory, k.Sort, k.Search, k.ClearDone, k.Theme, k.Quit)
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
