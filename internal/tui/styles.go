package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-course-sheet/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	labelStyle        = lipgloss.NewStyle().Bold(true)
	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle       = lipgloss.NewStyle().Reverse(true)
	suggestionsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	selectedStyle     = lipgloss.NewStyle().Reverse(true)
)

var disciplineColors = map[models.Discipline]lipgloss.Color{
	models.Striking: lipgloss.Color("9"),
	models.Lutte:    lipgloss.Color("12"),
	models.Sol:      lipgloss.Color("10"),
	models.MMA:      lipgloss.Color("13"),
}

func disciplineBadge(d models.Discipline) string {
	color, ok := disciplineColors[d]
	if !ok {
		color = lipgloss.Color("8")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(color).
		Padding(0, 1).
		Render(string(d))
}
