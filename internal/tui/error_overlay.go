package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Erreur") + "\n\n" + m.message + "\n\nentrée / échap fermer"
	return overlayBoxStyle.Render(content)
}
