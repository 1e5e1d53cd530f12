package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"verse-order/internal/game"
)

var paneLabels = [2]string{"Scrambled verses", "Your order"}

// refresh re-renders both panes from the session and records where each
// card landed, so pointer positions can be mapped back to cards.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.clampCursor()

	var view game.View
	if m.session != nil {
		view = m.session.View()
	}
	for r := range m.panes {
		region := game.Region(r)
		content, boxes := m.renderPane(view.Regions[r], region)
		m.boxes[r] = boxes
		m.panes[r].SetContent(content)
	}
}

func (m *Model) renderPane(rv game.RegionView, r game.Region) (string, map[int]game.Box) {
	boxes := make(map[int]game.Box, len(rv.Cards))
	if len(rv.Cards) == 0 {
		hint := "Drop verses here"
		if r == game.RegionSource {
			hint = ""
		}
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(hint), boxes
	}

	width := m.panes[r].Width
	cards := make([]string, 0, len(rv.Cards))
	top := 0
	for pos, c := range rv.Cards {
		cursor := !m.mouseDrag && m.session.Draggable() && r == m.focus && pos == m.cursor[r]
		card := m.renderCard(c, width, cursor)
		h := lipgloss.Height(card)
		boxes[c.Index] = game.Box{Top: float64(top), Height: float64(h)}
		top += h
		cards = append(cards, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...), boxes
}

func (m *Model) renderCard(c game.CardView, width int, cursor bool) string {
	t := m.theme

	textColor := t.Text
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.CardBorder).
		Padding(0, 1).
		Width(max(1, width-2))

	switch c.Mark {
	case game.MarkCorrect:
		style = style.Background(t.Correct)
		textColor = t.TextOnMark
	case game.MarkIncorrect:
		style = style.Background(t.Incorrect)
		textColor = t.TextOnMark
	}

	switch {
	case c.Dragging:
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(t.Dragging)
	case cursor:
		style = style.BorderForeground(t.Cursor)
	}

	var lines []string
	if c.ShowReference {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Reference).Bold(true).Render(c.Reference))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(textColor).Render(c.Text))

	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	t := m.theme

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Title)
	mutedStyle := lipgloss.NewStyle().Foreground(t.Muted)

	chapter := m.chapter
	if chapter == "" {
		chapter = "-"
	}
	title := titleStyle.Render("Verse Order") + "  " +
		mutedStyle.Render(fmt.Sprintf("chapter: %s  mode: %s  theme: %s", chapter, modeSelector(m.selected), t.Name))

	labels := lipgloss.JoinHorizontal(lipgloss.Top,
		mutedStyle.Width(m.paneWidth(game.RegionSource)).Render(" "+paneLabels[game.RegionSource]),
		mutedStyle.Width(m.paneWidth(game.RegionTarget)).Render(" "+paneLabels[game.RegionTarget]),
	)

	var hover [2]bool
	if m.session != nil {
		v := m.session.View()
		hover = [2]bool{v.Regions[game.RegionSource].Hover, v.Regions[game.RegionTarget].Hover}
	}
	panes := make([]string, 0, len(m.panes))
	for r := range m.panes {
		border := t.Pane
		if hover[r] {
			border = t.PaneHover
		}
		panes = append(panes, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Render(m.panes[r].View()))
	}

	statusStyle := lipgloss.NewStyle().Foreground(t.Status)
	if m.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	}
	status := m.status
	if !m.canVerify && !m.loading && !m.statusErr {
		status += mutedStyle.Render("  (check order unavailable)")
	}

	return strings.Join([]string{
		title,
		labels,
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		statusStyle.Render(status),
		m.help.View(m.keys),
	}, "\n")
}

func modeSelector(selected game.Mode) string {
	radio := func(mode game.Mode) string {
		if mode == selected {
			return "(•) " + mode.String()
		}
		return "( ) " + mode.String()
	}
	return radio(game.ModeGame) + " " + radio(game.ModeStudy)
}
