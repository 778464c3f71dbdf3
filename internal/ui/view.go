package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/remtui/rem/internal/format/table"
	"github.com/remtui/rem/internal/reminders"
	"github.com/remtui/rem/internal/theme"
	"github.com/remtui/rem/internal/ui/state"
)

const (
	headerTitle    = "Reminders"
	checkboxOpen   = "☐"
	checkboxDone   = "☑"
	cursorMarker   = "▶ "
	noCursorMarker = "  "
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.session.View().Kind {
	case ViewLoading:
		return m.viewLoading()
	case ViewCollections:
		return m.viewCollections()
	case ViewItems:
		return m.viewItems()
	case ViewCreate:
		return m.viewCreate()
	}
	return ""
}

func (m *Model) viewLoading() string {
	lines := []string{
		styled(styles.Header, headerTitle),
		"",
		m.spin.View() + styled(styles.Loading, "Loading reminder lists…"),
	}
	if m.backendErr != "" {
		lines = append(lines, styled(styles.Error, "❌ "+m.backendErr))
	}
	lines = append(lines, "", m.footer("q quit"))
	return m.clip(lines)
}

func (m *Model) viewCollections() string {
	s := m.session
	lines := []string{styled(styles.Header, headerTitle), ""}

	if len(s.collections) == 0 {
		lines = append(lines, styled(styles.Notes, "No reminder lists found"))
	} else {
		rows := make([][]string, len(s.collections))
		for i, c := range s.collections {
			rows[i] = []string{c.Name, countText(c.Count)}
		}
		padded := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})

		maxVisible := m.maxVisibleRows(len(lines) + 3)
		s.collectionList.EnsureVisible(maxVisible)
		from, to := window(len(padded), s.collectionList.Offset, maxVisible)
		for i := from; i < to; i++ {
			c := s.collections[i]
			dot := theme.CollectionDot(c.Color).Render("●")
			if i == s.collectionList.Cursor {
				lines = append(lines, cursorMarker+dot+" "+styled(styles.SelectedItem, padded[i]))
			} else {
				lines = append(lines, noCursorMarker+dot+" "+styled(styles.Item, padded[i]))
			}
		}
	}

	lines = m.appendStatus(lines)
	lines = append(lines, "", m.footer("↑/↓ move · enter open · c new · / search all · q quit"))
	return m.clip(lines)
}

func (m *Model) viewItems() string {
	s := m.session
	lines := []string{m.itemsHeader(), ""}

	if bar, ok := m.searchBar(); ok {
		lines = append(lines, bar, "")
	}
	if m.loadingMsg != "" {
		lines = append(lines, m.spin.View()+styled(styles.Loading, m.loadingMsg), "")
	}

	visibleGlobal := s.visibleGlobal()
	visibleLocal := s.visibleItems()
	count := len(visibleLocal)
	if s.view.Global {
		count = len(visibleGlobal)
	}

	if count == 0 {
		if m.loadingMsg == "" {
			lines = append(lines, styled(styles.Notes, m.emptyItemsText()))
		}
	} else {
		maxVisible := m.maxVisibleRows(len(lines) + 3)
		s.itemList.EnsureVisible(maxVisible)
		from, to := window(count, s.itemList.Offset, maxVisible)
		for i := from; i < to; i++ {
			if s.view.Global {
				lines = append(lines, m.itemLine(visibleGlobal[i].Item, visibleGlobal[i].CollectionName, i == s.itemList.Cursor))
			} else {
				lines = append(lines, m.itemLine(visibleLocal[i], "", i == s.itemList.Cursor))
			}
		}
	}

	lines = m.appendStatus(lines)
	lines = append(lines, "", m.footer(m.itemsFooter()))
	return m.clip(lines)
}

func (m *Model) itemsHeader() string {
	s := m.session
	if s.view.Global {
		return styled(styles.Header, headerTitle+" › all lists")
	}
	for _, c := range s.collections {
		if c.ID == s.view.CollectionID {
			return styled(styles.Header, headerTitle+" › "+c.Name)
		}
	}
	return styled(styles.Header, headerTitle)
}

func (m *Model) itemLine(it reminders.Item, collectionName string, selected bool) string {
	box := styled(styles.Checkbox, checkboxOpen)
	if it.Completed {
		box = styled(styles.CheckboxDone, checkboxDone)
	}

	title := it.Title
	var titleStyle *lipgloss.Style
	switch {
	case selected:
		titleStyle = styles.SelectedItem
	case it.Completed:
		titleStyle = styles.CompletedItem
	default:
		titleStyle = styles.Item
	}

	marker := noCursorMarker
	if selected {
		marker = cursorMarker
	}

	line := marker + box + " " + styled(titleStyle, title)
	if collectionName != "" {
		line += styled(styles.Notes, " · "+collectionName)
	}
	if it.DueDate != "" {
		line += styled(styles.Notes, " ("+it.DueDate+")")
	}
	if it.Priority > reminders.MinPriority {
		line += styled(styles.Count, fmt.Sprintf(" !%d", it.Priority))
	}
	return line
}

func (m *Model) emptyItemsText() string {
	s := m.session
	if s.search.Query != "" {
		return "No reminders match \"" + s.search.Query + "\""
	}
	if s.view.Global {
		return "No reminders found"
	}
	return "No reminders in this list"
}

func (m *Model) searchBar() (string, bool) {
	s := m.session
	if !s.search.Active && s.search.Query == "" {
		return "", false
	}
	prompt := styled(styles.FilterPrompt, "/")
	if !s.search.Active {
		return prompt + styled(styles.FilterPlaceholder, s.search.Query), true
	}
	if s.search.Query == "" {
		return prompt + styled(styles.Filter, "▌") + styled(styles.FilterPlaceholder, " type to search"), true
	}
	return prompt + styled(styles.Filter, s.search.Query) + styled(styles.Filter, "▌"), true
}

func (m *Model) itemsFooter() string {
	s := m.session
	if s.search.Active {
		return "enter confirm · esc exit (esc esc clear)"
	}
	show := "show done"
	if s.showCompleted {
		show = "hide done"
	}
	return "space toggle · dd delete · c new · / search · h " + show + " · q back"
}

func (m *Model) viewCreate() string {
	f := m.session.form
	if f == nil {
		return ""
	}
	lines := []string{styled(styles.Header, headerTitle+" › new reminder"), ""}

	textRows := []struct {
		label string
		field int
	}{
		{"Title", state.FieldTitle},
		{"Notes", state.FieldNotes},
		{"Due", state.FieldDueDate},
	}
	for _, row := range textRows {
		lines = append(lines, m.formLabel(row.label, f.Field() == row.field)+f.InputView(row.field))
	}

	collection := "(no lists)"
	if c, ok := f.SelectedCollection(); ok {
		collection = "‹ " + c.Name + " ›"
	}
	lines = append(lines, m.formLabel("List", f.Field() == state.FieldCollection)+styled(styles.Item, collection))
	lines = append(lines, m.formLabel("Priority", f.Field() == state.FieldPriority)+styled(styles.Item, fmt.Sprintf("‹ %d ›", f.Priority())))

	lines = m.appendStatus(lines)
	lines = append(lines, "", m.footer("tab next · ctrl+s save · esc cancel"))
	return m.clip(lines)
}

func (m *Model) formLabel(label string, active bool) string {
	padded := fmt.Sprintf("%-9s", label)
	if active {
		return cursorMarker + styled(styles.FormLabelActive, padded)
	}
	return noCursorMarker + styled(styles.FormLabel, padded)
}

func (m *Model) appendStatus(lines []string) []string {
	status := m.session.Status()
	if m.backendErr != "" {
		status = append(append([]string{}, status...), "❌ "+m.backendErr)
	}
	if len(status) == 0 {
		return lines
	}
	lines = append(lines, "")
	for _, msg := range status {
		style := styles.Status
		if strings.HasPrefix(msg, "❌") {
			style = styles.Error
		}
		lines = append(lines, styled(style, msg))
	}
	return lines
}

func (m *Model) footer(hints string) string {
	return styled(styles.Footer, hints)
}

// maxVisibleRows returns how many list rows fit given the fixed chrome
// already emitted plus the trailing status and footer block.
func (m *Model) maxVisibleRows(chrome int) int {
	if m.height <= 0 {
		return 1 << 30
	}
	rows := m.height - chrome - len(m.session.Status())
	if rows < 1 {
		return 1
	}
	return rows
}

func window(total, offset, maxVisible int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if maxVisible > 0 && offset+maxVisible < end {
		end = offset + maxVisible
	}
	return offset, end
}

func (m *Model) clip(lines []string) string {
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(m.width))
		}
	}
	return strings.Join(lines, "\n")
}

func styled(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func countText(n uint32) string {
	switch n {
	case 0:
		return "Empty"
	case 1:
		return "1 reminder"
	default:
		return fmt.Sprintf("%d reminders", n)
	}
}
