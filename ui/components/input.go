package components

import (
	"fmt"

	"github.com/Rorical/sentinel/internal/core"
	"github.com/Rorical/sentinel/ui/styles"
)

// RenderInput draws the article editor with its character counter
func RenderInput(editor, text string, minChars int, width int) string {
	v := core.NewValidator(minChars).Validate(text)

	counter := styles.SubtleStyle().Render(fmt.Sprintf("%d characters", v.Chars))
	hint := styles.SubtleStyle().Render(fmt.Sprintf("Minimum %d characters recommended", minChars))
	if v.OK && v.Advisory {
		hint = styles.AdvisoryStyle().Render(fmt.Sprintf("Minimum %d characters recommended", minChars))
	}

	return styles.InputStyle(width).Render(editor) + "\n" + " " + counter + "  ·  " + hint + "\n"
}
