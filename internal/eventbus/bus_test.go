package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/sentinel/internal/models"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(SubmitEvent{Text: "article"}))
	require.NoError(t, eb.SendToUI(StateUpdateEvent{State: models.State{Phase: models.Requesting}}))

	assert.Equal(t, SubmitEvent{Text: "article"}, <-eb.UIToCore())
	assert.Equal(t, StateUpdateEvent{State: models.State{Phase: models.Requesting}}, <-eb.CoreToUI())
}

func TestEventBus_FullQueueReportsError(t *testing.T) {
	eb := NewEventBusWithSize(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	require.NoError(t, eb.SendToCore(ClearEvent{}))
	err := eb.SendToCore(ClearEvent{})
	assert.ErrorIs(t, err, ErrCoreQueueFull)

	require.NoError(t, eb.SendToUI(StateUpdateEvent{}))
	err = eb.SendToUI(StateUpdateEvent{})
	assert.ErrorIs(t, err, ErrUIQueueFull)

	require.Len(t, reported, 2)
	assert.Equal(t, "SendToCore", reported[0].Operation)
	assert.Equal(t, "SendToUI", reported[1].Operation)
}
