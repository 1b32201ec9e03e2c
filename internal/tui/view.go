package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/deskshell/internal/host/memory"
)

// View renders the simulator.
func (m Model) View() string {
	sections := []string{
		headerStyle.Render("deskshell simulator"),
		"",
		m.renderTray(),
		"",
		m.renderWindows(),
		"",
		m.renderActivity(),
		"",
		m.renderStatus(),
		m.help.View(keys),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderTray() string {
	menu, tooltip, ok := m.sim.host.Menu()
	if !ok {
		return sectionHeaderStyle.Render("Tray") + "  " + dimStyle.Render("not installed")
	}

	items := make([]string, 0, len(menu.Items()))
	for _, it := range menu.Items() {
		if it.Separator {
			items = append(items, dimStyle.Render("│"))
			continue
		}
		items = append(items, menuItemStyle.Render(it.Label))
	}

	title := sectionHeaderStyle.Render("Tray") + "  " + dimStyle.Render(tooltip)
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, items...)
}

func (m Model) renderWindows() string {
	lines := []string{sectionHeaderStyle.Render("Windows")}

	snaps := m.sim.host.Snapshots()
	if len(snaps) == 0 {
		return lines[0] + "\n  " + dimStyle.Render("none open")
	}

	selected, _ := m.selectedLabel()
	for _, s := range snaps {
		line := fmt.Sprintf("  %-10s %s  %s", s.Label, windowBadges(s), geometry(s))
		if s.Label == selected {
			line = selectedItemStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func windowBadges(s memory.Snapshot) string {
	var badges []string
	if s.Visible {
		badges = append(badges, badgeVisibleStyle.Render("visible"))
	} else {
		badges = append(badges, badgeHiddenStyle.Render("hidden "))
	}
	if s.Focused {
		badges = append(badges, badgeFocusedStyle.Render("focused"))
	}
	if s.Minimized {
		badges = append(badges, badgeMinimizedStyle.Render("minimized"))
	}
	if s.Maximized {
		badges = append(badges, badgeMinimizedStyle.Render("maximized"))
	}
	return strings.Join(badges, " ")
}

func geometry(s memory.Snapshot) string {
	size := fmt.Sprintf("%gx%g", s.Width, s.Height)
	if !s.HasPosition {
		return size + dimStyle.Render(" (placed by host)")
	}
	return fmt.Sprintf("%s at %d,%d", size, s.X, s.Y)
}

func (m Model) renderActivity() string {
	lines := []string{sectionHeaderStyle.Render("Activity")}
	for _, l := range m.activity.Lines() {
		lines = append(lines, "  "+dimStyle.Render(l))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	switch {
	case m.err != nil && m.fatal:
		return errorStyle.Render("fatal: " + m.err.Error() + " (a real shell would stop here)")
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.saved != "":
		return savedStyle.Render("saved " + m.saved + " window state")
	}
	return ""
}
