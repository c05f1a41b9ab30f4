package components

import (
	"github.com/Rorical/sentinel/ui/styles"
)

func RenderHeader(profile, endpoint string, width int) string {
	title := styles.HeaderStyle(width).Render("📰 Fake News Sentinel")
	meta := styles.SubtleStyle().Render(" profile " + profile + " · " + endpoint)
	return title + "\n" + meta + "\n"
}
