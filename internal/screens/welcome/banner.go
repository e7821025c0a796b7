package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/makhraj/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ██╗  ██╗██╗  ██╗██████╗  █████╗      ██╗
 ████╗ ████║██╔══██╗██║ ██╔╝██║  ██║██╔══██╗██╔══██╗     ██║
 ██╔████╔██║███████║█████╔╝ ███████║██████╔╝███████║     ██║
 ██║╚██╔╝██║██╔══██║██╔═██╗ ██╔══██║██╔══██╗██╔══██║██   ██║
 ██║ ╚═╝ ██║██║  ██║██║  ██╗██║  ██║██║  ██║██║  ██║╚█████╔╝
 ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚════╝`

const bannerCompact = "M A K H R A J"

// RenderBanner returns the banner styled in the primary color, falling back
// to a compact form for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
