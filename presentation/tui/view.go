package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sobadon/wappuradio/internal/timeutil"
)

const (
	glyphPlay  = "▶"
	glyphPause = "⏸"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	songStyle    = lipgloss.NewStyle().Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	nowStyle     = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Rakkauden Wappuradio."))
	b.WriteString("\n\n")
	b.WriteString(m.viewControls())
	b.WriteString("\n")

	if m.program != nil {
		b.WriteString("\n")
		b.WriteString(m.viewProgram())
	}

	if m.nowPlaying != nil {
		b.WriteString("\n")
		b.WriteString(m.viewNowPlaying())
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("space/p toista/tauko · l live · q lopeta"))
	b.WriteString("\n")
	return b.String()
}

// 停止中は再生ボタン、再生中は一時停止ボタンを出す
func (m model) viewControls() string {
	glyph := glyphPlay
	if m.playing {
		glyph = glyphPause
	}

	parts := []string{
		glyph,
		timeutil.FormatElapsed(m.elapsed),
		mutedStyle.Render("[l]") + " Hyppää liveen",
	}
	if m.loading {
		parts = append(parts, m.spinner.View())
	}
	line := strings.Join(parts, "  ")
	if m.seekErr != nil {
		line += "\n" + errorStyle.Render("Yhdistäminen epäonnistui")
	}
	return line
}

func (m model) viewProgram() string {
	p := m.program
	descStyle := lipgloss.NewStyle()
	if m.width > 0 {
		descStyle = descStyle.Width(m.width)
	}

	lines := []string{
		titleStyle.Render(p.Title),
		mutedStyle.Render(timeutil.FormatRange(p.Start, p.End, m.loc)),
		descStyle.Render(compactDesc(p.Desc)),
		labelStyle.Render("Äänessä") + "  " + p.Host,
		labelStyle.Render("Tuottaja") + "  " + p.Prod,
	}
	if p.Photo != "" {
		lines = append(lines, mutedStyle.Render(p.Photo))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m model) viewNowPlaying() string {
	width := m.width
	if width <= 0 {
		width = 40
	}
	return mutedStyle.Render(strings.Repeat("─", width)) + "\n" +
		nowStyle.Render("NYT SOI") + "\n" +
		songStyle.Render(m.nowPlaying.Song) + "\n"
}
