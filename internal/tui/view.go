package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuircle/internal/canvas"
	"github.com/verte-zerg/tuircle/internal/engine"
	"github.com/verte-zerg/tuircle/internal/i18n"
	"github.com/verte-zerg/tuircle/internal/share"
	"github.com/verte-zerg/tuircle/internal/stats"
)

const (
	gridLayer   = 0
	strokeLayer = 1
	// footerSparkline is the number of recent scores shown in the footer.
	footerSparkline = 12
)

var (
	gridStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	strokeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8C8C8C")).
			Padding(1, 3)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	cols, rows := m.surfaceSize()
	surface := m.renderSurface(cols, rows)

	var b strings.Builder
	header := ""
	if !m.showingInstructions() {
		header = titleStyle.Render(m.loc.T(i18n.KeyDrawPerfectCircle))
	}
	b.WriteString(lipgloss.Place(m.width, headerRows, lipgloss.Center, lipgloss.Center, header))
	b.WriteString("\n")
	b.WriteString(strings.Join(surface, "\n"))
	if m.height > headerRows+footerRows {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}
	return b.String()
}

// renderSurface paints the stroke and grid and splices the overlay box, if
// any, into the middle of the surface.
func (m *Model) renderSurface(cols, rows int) []string {
	c := canvas.New(cols, rows, 2)
	if m.frame.ShowGrid {
		c.Grid(gridLayer, m.gridSize)
	}
	c.Polyline(strokeLayer, m.frame.Points)
	style := func(layer int, s string) string {
		switch layer {
		case gridLayer:
			return gridStyle.Render(s)
		case strokeLayer:
			return strokeStyle.Render(s)
		default:
			return s
		}
	}

	box := m.renderOverlay(cols)
	if box == "" {
		return c.Rows(style)
	}
	lines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	if boxW > cols {
		return c.Rows(style)
	}
	top := (rows - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	left := (cols - boxW) / 2
	out := make([]string, rows)
	for y := 0; y < rows; y++ {
		i := y - top
		if i < 0 || i >= len(lines) {
			out[y] = c.Span(y, 0, cols, style)
			continue
		}
		out[y] = c.Span(y, 0, left, style) + lines[i] + c.Span(y, left+boxW, cols, style)
	}
	return out
}

func (m *Model) renderOverlay(cols int) string {
	switch {
	case m.sharing && m.frame.Result != nil:
		return m.renderShareBox(cols)
	case m.frame.Result != nil:
		r := m.frame.Result
		body := lipgloss.JoinVertical(lipgloss.Center,
			scoreStyle.Render(fmt.Sprintf("%d/100", r.Score)),
			"",
			messageStyle.Render(m.loc.T(r.Tier.MessageKey())),
			"",
			hintStyle.Render(m.statsLine()),
		)
		return boxStyle.Render(body)
	case m.showingInstructions():
		return lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render(m.loc.T(i18n.KeyDrawPerfectCircle)),
			hintStyle.Render(m.loc.T(i18n.KeyClickAndDrag)),
		)
	default:
		return ""
	}
}

// showingInstructions reports whether the empty surface carries the title
// and drawing hint, in which case the header stays blank.
func (m *Model) showingInstructions() bool {
	return m.frame.State == engine.Idle && len(m.frame.Points) == 0
}

func (m *Model) renderShareBox(cols int) string {
	payload, ok := m.machine.Share()
	if !ok {
		return ""
	}
	text := share.Text(m.loc, payload)
	urls := share.URLs(text, payload)
	// Room for the border, padding and platform label.
	maxW := cols - 20
	if maxW < 10 {
		maxW = 10
	}
	lines := []string{titleStyle.Render(m.loc.T(i18n.KeyShareTitle)), "", text, ""}
	for _, p := range share.Platforms {
		link := urls[p]
		if len(link) > maxW {
			link = link[:maxW-1] + "…"
		}
		lines = append(lines, hintStyle.Render(string(p)+": ")+link)
	}
	lines = append(lines, "", hintStyle.Render(payload.Link))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) statsLine() string {
	return fmt.Sprintf("%s: %d | %s: %d", m.loc.T(i18n.KeyBestScore), m.frame.Stats.BestScore, m.loc.T(i18n.KeyAttempts), m.frame.Stats.Attempts)
}

func (m *Model) renderFooter() string {
	segments := []string{footerStyle.Render(m.statsLine())}
	if spark := stats.ScoreSparkline(m.frame.Stats.Scores, footerSparkline); spark != "" {
		segments = append(segments, footerStyle.Render("["+spark+"]"))
	}
	if m.status != "" {
		if m.failed {
			segments = append(segments, errorStyle.Render(m.status))
		} else {
			segments = append(segments, messageStyle.Render(m.status))
		}
	}
	segments = append(segments, m.help.View(m.keys))
	footer := strings.Join(segments, "  ")
	return lipgloss.NewStyle().MaxWidth(m.width).Render(footer)
}
