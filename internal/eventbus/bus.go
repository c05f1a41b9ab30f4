package eventbus

import (
	"errors"
	"time"

	"github.com/Rorical/sentinel/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SubmitEvent - UI asks core to verify an article
type SubmitEvent struct {
	Text string
}

func (e SubmitEvent) UIEvent() {}

// ClearEvent - UI dismisses the current result, error or pending request
type ClearEvent struct{}

func (e ClearEvent) UIEvent() {}

// StateUpdateEvent - Core pushes a submission snapshot to UI
type StateUpdateEvent struct {
	State models.State
}

func (e StateUpdateEvent) CoreEvent() {}

var (
	ErrCoreQueueFull = errors.New("UI to Core channel is full")
	ErrUIQueueFull   = errors.New("Core to UI channel is full")
)

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// EventBus handles communication between UI and Core
type EventBus struct {
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return NewEventBusWithSize(100)
}

func NewEventBusWithSize(size int) *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, size),
		coreToUI: make(chan CoreEvent, size),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

// SendToCore never blocks; a full queue is reported as an error
func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case eb.uiToCore <- event:
		return nil
	default:
		return eb.reportError("SendToCore", ErrCoreQueueFull)
	}
}

// SendToUI never blocks; a full queue is reported as an error
func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case eb.coreToUI <- event:
		return nil
	default:
		return eb.reportError("SendToUI", ErrUIQueueFull)
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
