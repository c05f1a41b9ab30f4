package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/sentinel/internal/eventbus"
	"github.com/Rorical/sentinel/internal/models"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch {
	case key.Matches(keyMsg, DefaultKeyMap.Quit):
		return tea.Quit

	case key.Matches(keyMsg, DefaultKeyMap.Submit):
		// Mirrors the disabled button; the core enforces the same guard
		if appModel.Loading {
			return nil
		}
		if !appModel.ServiceReady {
			appModel.Status = "Classifier not configured"
			return nil
		}
		if err := eb.SendToCore(eventbus.SubmitEvent{Text: appModel.Input.Value()}); err != nil {
			appModel.Status = "Error sending request: " + err.Error()
		}
		return nil

	case key.Matches(keyMsg, DefaultKeyMap.Clear):
		appModel.Input.Reset()
		if err := eb.SendToCore(eventbus.ClearEvent{}); err != nil {
			appModel.Status = "Error clearing: " + err.Error()
		}
		return nil
	}

	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	return cmd
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		wasLoading := appModel.Loading
		appModel.Submission = event.State
		appModel.Loading = event.State.IsRequesting()
		appModel.Status = StatusFor(event.State)

		// Start the spinner on the way into a request
		if appModel.Loading && !wasLoading {
			return appModel.Spinner.Tick
		}
	}

	return nil
}

// StatusFor is the status bar text for a submission snapshot
func StatusFor(state models.State) string {
	switch state.Phase {
	case models.Validating:
		return "Validating"
	case models.Requesting:
		return "Analyzing Article"
	case models.Succeeded:
		return "Verdict: " + state.Result.String()
	case models.Failed:
		return "Error"
	}
	return "Ready"
}

// CanSubmit reports whether the verify action is enabled
func CanSubmit(appModel *models.AppModel) bool {
	return appModel.ServiceReady && !appModel.Loading && strings.TrimSpace(appModel.Input.Value()) != ""
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	if sizeMsg.Width > 6 {
		appModel.Input.SetWidth(sizeMsg.Width - 6)
	}
}

func HandleSpinnerTick(appModel *models.AppModel, tick spinner.TickMsg) tea.Cmd {
	// Only animate while a request is in flight
	if !appModel.Loading {
		return nil
	}
	var cmd tea.Cmd
	appModel.Spinner, cmd = appModel.Spinner.Update(tick)
	return cmd
}
