package tui

func renderConfirm(name string) string {
	content := "Delete client \"" + name + "\"?\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
