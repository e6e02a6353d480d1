package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusDelete
)

// confirmState is the pending delete decision. While set, the modal owns the
// keyboard; declining leaves everything untouched.
type confirmState struct {
	id    int64
	name  string
	focus confirmFocus
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	switch msg.String() {
	case "esc", "n":
		m.confirm = nil
		m.status = "Cancelled"
		return m, nil
	case "y":
		m.confirm = nil
		cmd := m.deleteCmd(c.id, c.name)
		return m, cmd
	case "tab", "left", "right":
		if c.focus == confirmFocusCancel {
			c.focus = confirmFocusDelete
		} else {
			c.focus = confirmFocusCancel
		}
		return m, nil
	case "enter":
		m.confirm = nil
		if c.focus == confirmFocusDelete {
			cmd := m.deleteCmd(c.id, c.name)
			return m, cmd
		}
		m.status = "Cancelled"
		return m, nil
	}
	return m, nil
}

func (c *confirmState) render(width int) string {
	// No borders on the buttons; nested borders inside a colored box render
	// badly on some terminals.
	btnBase := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg)
	btnActive := btnBase.Background(colorSelectedBg).Bold(true)

	cancel := btnBase.Render("Cancel")
	del := btnBase.Render("Delete")
	if c.focus == confirmFocusCancel {
		cancel = btnActive.Render("Cancel")
	} else {
		del = btnActive.Render("Delete")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", del)

	body := fmt.Sprintf("Are you sure you want to delete '%s'?", c.name)
	help := styleMuted.Render("tab: focus   enter: select   y/n   esc: cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, body, "", controls, "", help)
	box := styleModal.Width(min(width-4, 60)).Render(
		lipgloss.JoinVertical(lipgloss.Left, styleTitle.Render("Confirm Deletion"), "", content))
	return box
}
