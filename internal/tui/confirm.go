package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "o oui    n non"
	return overlayBoxStyle.Render(content)
}
