package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/sentinel/internal/update"
	"github.com/Rorical/sentinel/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.appModel.ProfileName, m.appModel.Endpoint, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(m.appModel.Input.View(), m.appModel.Input.Value(), m.appModel.MinChars, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderActions(update.CanSubmit(&m.appModel), m.appModel.Loading, m.appModel.Spinner.View(), update.DefaultKeyMap))
	b.WriteString("\n")
	b.WriteString(components.RenderSubmission(m.appModel.Submission, m.appModel.Width))
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Width))

	return b.String()
}
