// Package tui is a terminal preview of the tour content model: the same
// waypoint ordering and panel text the GUI shows, navigable with the
// keyboard, without opening a window.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/markup"
)

type model struct {
	tour   *content.Model
	panels map[string]content.Panel
	cursor int
	width  int
	height int
}

// NewModel builds the preview over a loaded tour model.
func NewModel(tour *content.Model) tea.Model {
	panels := make(map[string]content.Panel, len(tour.Panels))
	for _, p := range tour.Panels {
		panels[p.ID] = p
	}
	return model{tour: tour, panels: panels, width: 80, height: 24}
}

// Run loads the preview into a bubbletea program and blocks until quit.
func Run(tour *content.Model) error {
	_, err := tea.NewProgram(NewModel(tour), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tour.Waypoints)-1 {
				m.cursor++
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.tour.Waypoints) - 1
		}
	}
	return m, nil
}

func (m model) View() string {
	if len(m.tour.Waypoints) == 0 {
		return dimStyle.Render("no waypoints loaded") + "\n"
	}

	var list strings.Builder
	list.WriteString(titleStyle.Render("WAYPOINTS") + "\n\n")
	for i, wp := range m.tour.Waypoints {
		line := fmt.Sprintf("%2d  %s", i+1, wp.Title)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = listStyle.Render("  " + line)
		}
		list.WriteString(line + "\n")
	}
	list.WriteString("\n" + keyHintStyle.Render("j/k move  g/G ends  q quit"))

	detail := m.detailView(m.tour.Waypoints[m.cursor])

	return lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", detail)
}

func (m model) detailView(wp content.WayPoint) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(wp.Title) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("id %s  position [%.4g %.4g %.4g]",
		wp.ID, wp.Position.X, wp.Position.Y, wp.Position.Z)) + "\n")
	if wp.LookAt != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("look at [%.4g %.4g %.4g]",
			wp.LookAt.X, wp.LookAt.Y, wp.LookAt.Z)) + "\n")
	}

	if p, ok := m.panels[wp.ID]; ok {
		b.WriteString("\n")
		blocks, err := markup.ParseBlocks(p.Content)
		if err != nil {
			b.WriteString(dimStyle.Render("(unreadable panel markup)"))
		} else {
			for _, blk := range blocks {
				switch blk.Kind {
				case markup.Heading:
					b.WriteString(headingStyle.Render(blk.Text) + "\n")
				case markup.ListItem:
					b.WriteString(listStyle.Render("  • "+blk.Text) + "\n")
				default:
					b.WriteString(listStyle.Render(blk.Text) + "\n")
				}
			}
		}
		if p.AnchorID != "" {
			b.WriteString("\n" + dimStyle.Render("anchored to "+p.AnchorID))
		}
	} else {
		b.WriteString("\n" + dimStyle.Render("(no panel)"))
	}

	return panelStyle.Width(min(60, m.width/2)).Render(b.String())
}
