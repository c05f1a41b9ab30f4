package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Rorical/sentinel/internal/core"
	"github.com/Rorical/sentinel/internal/models"
	"github.com/Rorical/sentinel/internal/update"
	"github.com/Rorical/sentinel/ui/styles"
)

// RenderActions draws the verify and clear buttons plus key hints
func RenderActions(canSubmit, loading bool, spinnerView string, keys update.KeyMap) string {
	verify := "🔍 Verify Authenticity"
	if loading {
		verify = spinnerView + " Analyzing Article..."
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(styles.ButtonStyle(canSubmit).Render(verify))
	b.WriteString(styles.ButtonStyle(true).Render("Clear"))
	b.WriteString("\n ")
	b.WriteString(styles.SubtleStyle().Render(helpLine(keys.ShortHelp())))
	b.WriteString("\n")
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// RenderSubmission draws whatever the latest state has to show: a verdict
// card, an error, or nothing.
func RenderSubmission(state models.State, width int) string {
	switch state.Phase {
	case models.Succeeded:
		return RenderResult(core.Present(state.Result), width) + "\n"
	case models.Failed:
		return RenderError(state.Err, width) + "\n"
	}
	return ""
}

// RenderResult draws a verdict card
func RenderResult(p core.Presentation, width int) string {
	body := strings.Join([]string{
		p.Icon,
		p.Label,
		"",
		p.Explanation,
		"",
		styles.SubtleStyle().Render(p.Confidence),
	}, "\n")
	return styles.ResultStyle(p.Tone == core.Positive, width).Render(body)
}

func RenderError(e *models.ErrorInfo, width int) string {
	if e == nil {
		return ""
	}
	message := e.Message
	if e.Kind == models.ValidationFailure {
		message = "Please paste some news text first! (" + e.Message + ")"
	}
	return styles.ErrorStyle(width).Render("⚠️ Error\n" + message)
}
