package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

const bannerArt = ` ██████╗ ██╗   ██╗██╗███████╗ ██████╗ ███████╗███╗   ██╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝ ██╔════╝████╗  ██║
██║   ██║██║   ██║██║  ███╔╝ ██║  ███╗█████╗  ██╔██╗ ██║
██║▄▄ ██║██║   ██║██║ ███╔╝  ██║   ██║██╔══╝  ██║╚██╗██║
╚██████╔╝╚██████╔╝██║███████╗╚██████╔╝███████╗██║ ╚████║
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝`

const bannerCompact = "Q U I Z G E N"

// bannerWidth is the widest line of bannerArt in cells.
const bannerWidth = 56

// RenderBanner returns the QUIZGEN banner styled in the primary color,
// falling back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
