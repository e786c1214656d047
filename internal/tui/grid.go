package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"abtrack/internal/dates"
	"abtrack/internal/ledger"
	"abtrack/internal/model"
	"abtrack/internal/validate"
)

// editField identifies which entry field is being edited.
type editField int

const (
	fieldCode editField = iota
	fieldMinutes
	fieldComment
)

// tickMsg clears expired status messages.
type tickMsg time.Time

// GridModel is the bubbletea model for the interactive month grid editor.
// Navigation moves a cursor over active-employee x day cells; entering a
// cell opens the entry set for that date, and accepting the edit reconciles
// it back into the ledger. Saving is explicit.
type GridModel struct {
	ledger *ledger.Ledger
	year   int
	month  time.Month

	// Save writes the ledger's current state through the persistence
	// adapter. Injected so the model holds no file handles.
	Save func() error

	// Cursor position over active employees x day labels.
	row int
	col int

	// Edit state for the open cell.
	editing  bool
	entries  []model.Absence
	entryIdx int
	field    editField

	dirty      bool
	message    string
	messageErr bool
	messageExp time.Time

	width  int
	height int
}

// NewGridModel creates a grid editor for the given month.
func NewGridModel(l *ledger.Ledger, year int, month time.Month, save func() error) *GridModel {
	return &GridModel{
		ledger: l,
		year:   year,
		month:  month,
		Save:   save,
	}
}

// Init initializes the model.
func (m *GridModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *GridModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m *GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleGridKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// setMessage shows a transient status message.
func (m *GridModel) setMessage(text string, isErr bool, d time.Duration) {
	m.message = text
	m.messageErr = isErr
	m.messageExp = time.Now().Add(d)
}

// cursorDate returns the date key under the cursor.
func (m *GridModel) cursorDate() string {
	labels := dates.DayLabels(m.year, m.month)
	if m.col >= len(labels) {
		m.col = len(labels) - 1
	}
	return dates.KeyFromLabel(m.year, m.month, labels[m.col])
}

// cursorEmployee returns the employee record under the cursor, or nil when
// the month view has no active employees.
func (m *GridModel) cursorEmployee() *model.Employee {
	active := m.ledger.ActiveEmployees()
	if len(active) == 0 {
		return nil
	}
	if m.row >= len(active) {
		m.row = len(active) - 1
	}
	return active[m.row]
}

// handleGridKey handles keyboard input in navigation mode.
func (m *GridModel) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.ledger.ActiveEmployees()
	days := dates.DaysInMonth(m.year, m.month)

	switch msg.String() {
	case "q", "ctrl+c":
		if m.dirty {
			m.setMessage("Unsaved changes. Press 'w' to save or 'Q' to discard and quit", true, 3*time.Second)
			return m, nil
		}
		return m, tea.Quit

	case "Q":
		return m, tea.Quit

	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(active)-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < days-1 {
			m.col++
		}

	case "n":
		m.year, m.month = nextMonth(m.year, m.month)
		m.col = 0
	case "p":
		m.year, m.month = prevMonth(m.year, m.month)
		m.col = 0

	case "enter":
		emp := m.cursorEmployee()
		if emp == nil {
			m.setMessage("No active employees. Add one with 'abtrack employee add'", true, 3*time.Second)
			return m, nil
		}
		date := m.cursorDate()
		entries := m.ledger.EntriesOn(emp.Name, date)
		if len(entries) == 0 {
			// Seed a blank placeholder for editing.
			entries = []model.Absence{{Date: date}}
		}
		m.entries = entries
		m.entryIdx = 0
		m.field = fieldCode
		m.editing = true

	case "w":
		return m.save()
	}

	return m, nil
}

// save persists the ledger through the injected adapter.
func (m *GridModel) save() (tea.Model, tea.Cmd) {
	if m.Save == nil {
		return m, nil
	}
	if err := m.Save(); err != nil {
		// Prior in-memory state is retained; the user may retry.
		m.setMessage("Save failed: "+err.Error(), true, 5*time.Second)
		return m, nil
	}
	m.dirty = false
	m.setMessage("Saved", false, 2*time.Second)
	return m, nil
}

// handleEditKey handles keyboard input while a cell is open for editing.
func (m *GridModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil

	case "enter":
		return m.commitEdit()

	case "tab":
		m.field = (m.field + 1) % 3
	case "shift+tab":
		m.field = (m.field + 2) % 3

	case "up":
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case "down":
		if m.entryIdx < len(m.entries)-1 {
			m.entryIdx++
		}

	case "ctrl+a":
		m.entries = append(m.entries, model.Absence{Date: m.cursorDate()})
		m.entryIdx = len(m.entries) - 1
		m.field = fieldCode

	case "ctrl+d":
		if len(m.entries) > 0 {
			m.entries = append(m.entries[:m.entryIdx], m.entries[m.entryIdx+1:]...)
			if m.entryIdx >= len(m.entries) && m.entryIdx > 0 {
				m.entryIdx--
			}
		}

	case "backspace":
		m.editCurrentField(func(s string) string {
			if s == "" {
				return s
			}
			// Drop the last rune, not the last byte.
			_, size := utf8.DecodeLastRuneInString(s)
			return s[:len(s)-size]
		})

	default:
		if msg.Type == tea.KeyRunes {
			text := string(msg.Runes)
			m.editCurrentField(func(s string) string {
				return s + text
			})
		} else if msg.Type == tea.KeySpace {
			m.editCurrentField(func(s string) string {
				return s + " "
			})
		}
	}

	return m, nil
}

// editCurrentField applies a text transform to the field under the cursor.
func (m *GridModel) editCurrentField(transform func(string) string) {
	if m.entryIdx >= len(m.entries) {
		return
	}
	entry := &m.entries[m.entryIdx]

	switch m.field {
	case fieldCode:
		entry.Code = transform(entry.Code)
	case fieldMinutes:
		text := ""
		if entry.Minutes > 0 {
			text = strconv.Itoa(entry.Minutes)
		}
		text = transform(text)
		if text == "" {
			entry.Minutes = 0
		} else if n, err := strconv.Atoi(text); err == nil {
			entry.Minutes = n
		}
	case fieldComment:
		entry.Comment = transform(entry.Comment)
	}
}

// commitEdit validates the open entry set and reconciles it into the ledger.
func (m *GridModel) commitEdit() (tea.Model, tea.Cmd) {
	for _, a := range m.entries {
		if err := validate.Entry(a); err != nil {
			m.setMessage(err.Error(), true, 3*time.Second)
			return m, nil
		}
	}

	emp := m.cursorEmployee()
	if emp == nil {
		m.editing = false
		return m, nil
	}

	// Unknown employees cannot happen here (the cursor walks ledger
	// records), but a reconcile miss must never crash the view.
	if err := m.ledger.ReconcileDate(emp.Name, m.cursorDate(), m.entries); err != nil {
		m.setMessage(err.Error(), true, 3*time.Second)
		m.editing = false
		return m, nil
	}

	m.dirty = true
	m.editing = false
	m.setMessage("Updated "+emp.Name+" on "+m.cursorDate(), false, 2*time.Second)
	return m, nil
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// View renders the grid editor.
func (m *GridModel) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.message != "" {
		style := StyleMessage
		if m.messageErr {
			style = StyleErrMessage
		}
		sections = append(sections, style.Render(m.message))
	}

	sections = append(sections, m.renderGrid())

	if m.editing {
		sections = append(sections, m.renderEditBox())
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the month heading and the dirty marker.
func (m *GridModel) renderHeader() string {
	title := StyleTitle.Render(fmt.Sprintf("Absences: %s %d", m.month, m.year))
	if m.dirty {
		return title + "  " + StyleDirty.Render("[unsaved]")
	}
	return title
}

// renderGrid renders the employee x day grid with the cursor highlighted.
func (m *GridModel) renderGrid() string {
	labels := dates.DayLabels(m.year, m.month)
	active := m.ledger.ActiveEmployees()

	nameWidth := lipgloss.Width("Employee")
	for _, emp := range active {
		if w := lipgloss.Width(emp.Name); w > nameWidth {
			nameWidth = w
		}
	}

	colWidths := make([]int, len(labels))
	for i, label := range labels {
		colWidths[i] = lipgloss.Width(label)
		for _, emp := range active {
			cell := emp.CellText(dates.KeyFromLabel(m.year, m.month, label))
			if w := lipgloss.Width(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(pad("Employee", nameWidth)))
	for i, label := range labels {
		b.WriteString(" ")
		b.WriteString(StyleHeader.Render(pad(label, colWidths[i])))
	}
	b.WriteString("\n")

	for r, emp := range active {
		b.WriteString(StyleRowLabel.Render(pad(emp.Name, nameWidth)))
		for c, label := range labels {
			cell := pad(emp.CellText(dates.KeyFromLabel(m.year, m.month, label)), colWidths[c])
			b.WriteString(" ")
			if r == m.row && c == m.col {
				b.WriteString(StyleCursor.Render(cell))
			} else {
				b.WriteString(StyleCell.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	if len(active) == 0 {
		b.WriteString(StyleHelp.Render("No active employees.\n"))
	}

	return b.String()
}

// renderEditBox renders the entry form for the open cell.
func (m *GridModel) renderEditBox() string {
	emp := m.cursorEmployee()
	if emp == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Edit: "+emp.Name+" "+m.cursorDate()) + "\n")

	for i, a := range m.entries {
		marker := "  "
		if i == m.entryIdx {
			marker = "> "
		}

		code := a.Code
		if code == "" {
			code = "(code)"
		}
		minutes := ""
		if a.Minutes > 0 {
			minutes = strconv.Itoa(a.Minutes)
		}
		if minutes == "" {
			minutes = "(minutes)"
		}
		comment := a.Comment
		if comment == "" {
			comment = "(comment)"
		}

		if i == m.entryIdx {
			switch m.field {
			case fieldCode:
				code = StyleFieldActive.Render(code)
			case fieldMinutes:
				minutes = StyleFieldActive.Render(minutes)
			case fieldComment:
				comment = StyleFieldActive.Render(comment)
			}
		}

		b.WriteString(marker + code + "  " + minutes + "  " + comment + "\n")
	}

	return StyleEditBox.Render(b.String())
}

// renderHelp renders the key binding help bar.
func (m *GridModel) renderHelp() string {
	key := func(k, desc string) string {
		return StyleHelpKey.Render(k) + StyleHelp.Render(" "+desc)
	}

	if m.editing {
		return strings.Join([]string{
			key("enter", "apply"),
			key("esc", "cancel"),
			key("tab", "next field"),
			key("ctrl+a", "add row"),
			key("ctrl+d", "delete row"),
			key("↑/↓", "row"),
		}, StyleHelp.Render("  ·  "))
	}

	return strings.Join([]string{
		key("←↑↓→", "move"),
		key("enter", "edit cell"),
		key("n/p", "month"),
		key("w", "save"),
		key("q", "quit"),
	}, StyleHelp.Render("  ·  "))
}
