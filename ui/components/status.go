package components

import (
	"github.com/Rorical/sentinel/ui/styles"
)

func RenderStatus(status string, width int) string {
	return styles.StatusStyle(width).Render(status)
}
