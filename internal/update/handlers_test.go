package update

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/sentinel/internal/eventbus"
	"github.com/Rorical/sentinel/internal/models"
)

func newTestAppModel(text string) *models.AppModel {
	ta := textarea.New()
	ta.SetWidth(80)
	ta.SetHeight(5)
	ta.Focus()
	ta.SetValue(text)

	return &models.AppModel{
		Input:        ta,
		Spinner:      spinner.New(),
		Status:       "Ready",
		MinChars:     100,
		ServiceReady: true,
	}
}

func pending(eb *eventbus.EventBus) []eventbus.UIEvent {
	var events []eventbus.UIEvent
	for {
		select {
		case ev := <-eb.UIToCore():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestSubmitKeySendsInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestAppModel("Some article text")

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlS}, eb)

	assert.Equal(t, []eventbus.UIEvent{eventbus.SubmitEvent{Text: "Some article text"}}, pending(eb))
}

func TestSubmitKeyIgnoredWhileLoading(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestAppModel("Some article text")
	m.Loading = true

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlS}, eb)

	assert.Empty(t, pending(eb))
}

func TestSubmitKeyWithoutClassifier(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestAppModel("Some article text")
	m.ServiceReady = false

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlS}, eb)

	assert.Empty(t, pending(eb))
	assert.Equal(t, "Classifier not configured", m.Status)
}

func TestClearKeyResetsInputAndNotifiesCore(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestAppModel("Some article text")
	m.Loading = true

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlX}, eb)

	assert.Empty(t, m.Input.Value())
	assert.Equal(t, []eventbus.UIEvent{eventbus.ClearEvent{}}, pending(eb))
}

func TestQuitKey(t *testing.T) {
	m := newTestAppModel("")
	cmd := HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyCtrlC}, eventbus.NewEventBus())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTypingGoesToTextarea(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestAppModel("")

	HandleKeyMsgWithEventBus(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, eb)

	assert.Equal(t, "hi", m.Input.Value())
	assert.Empty(t, pending(eb))
}

func TestHandleCoreEvent(t *testing.T) {
	m := newTestAppModel("text")

	cmd := HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		State: models.State{Phase: models.Requesting, SubmissionID: "s1"},
	}})
	assert.True(t, m.Loading)
	assert.Equal(t, "Analyzing Article", m.Status)
	assert.NotNil(t, cmd, "spinner should start")

	cmd = HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		State: models.State{Phase: models.Succeeded, SubmissionID: "s1", Result: models.Genuine},
	}})
	assert.False(t, m.Loading)
	assert.Equal(t, "Verdict: Genuine", m.Status)
	assert.Equal(t, models.Genuine, m.Submission.Result)
	assert.Nil(t, cmd)
}

func TestCanSubmit(t *testing.T) {
	assert.True(t, CanSubmit(newTestAppModel("article")))
	assert.False(t, CanSubmit(newTestAppModel("   ")))

	m := newTestAppModel("article")
	m.Loading = true
	assert.False(t, CanSubmit(m))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, "Ready", StatusFor(models.State{}))
	assert.Equal(t, "Error", StatusFor(models.State{Phase: models.Failed}))
	assert.Equal(t, "Verdict: Fake", StatusFor(models.State{Phase: models.Succeeded, Result: models.Fake}))
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := newTestAppModel("")
	assert.Nil(t, HandleSpinnerTick(m, spinner.TickMsg{}))
}

func TestWindowSize(t *testing.T) {
	m := newTestAppModel("")
	HandleUpdateWithEventBus(m, tea.WindowSizeMsg{Width: 100, Height: 40}, eventbus.NewEventBus())
	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 40, m.Height)
}
