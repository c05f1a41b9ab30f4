package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/sentinel/internal/eventbus"
	"github.com/Rorical/sentinel/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case spinner.TickMsg:
		return HandleSpinnerTick(appModel, msg)
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}

	// Cursor blink and other textarea internals
	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(msg)
	return cmd
}
