package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/statnerf/internal/nerf"
)

// Inspector layout constants
const (
	barWidth     = 20 // Cells in a stat bar
	barFullValue = 10 // Stat value that fills a bar
)

// fieldStyles maps each stat to its bar color.
var fieldStyles = map[nerf.FieldID]lipgloss.Style{
	nerf.FieldGain:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	nerf.FieldGrowth:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	nerf.FieldStrength: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	withinStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// RenderBar draws a stat as a bar of filled and empty cells.
// Values past barFullValue fill the whole bar; values below 1 draw empty.
func RenderBar(value int) string {
	filled := value * barWidth / barFullValue
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// RenderScoreLine renders "score N / M" colored by whether N fits under M.
func RenderScoreLine(score int64, maxScore int) string {
	style := withinStyle
	verdict := "within bound"
	if score > int64(maxScore) {
		style = overStyle
		verdict = "over bound"
	}
	return fmt.Sprintf("score %s / %d  %s",
		style.Render(fmt.Sprintf("%d", score)),
		maxScore,
		mutedStyle.Render(verdict))
}

// RenderSteps renders the nerf sequence as a compact trail, e.g. "gain -2, strength -1".
func RenderSteps(steps []nerf.FieldID) string {
	if len(steps) == 0 {
		return "no change"
	}

	counts := make(map[nerf.FieldID]int, 3)
	for _, id := range steps {
		counts[id]++
	}

	parts := make([]string, 0, 3)
	for _, f := range nerf.Fields() {
		if n := counts[f.ID]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s -%d", f.Name(), n))
		}
	}
	return strings.Join(parts, ", ")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
