package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/sentinel/internal/eventbus"
	"github.com/Rorical/sentinel/internal/models"
)

// Service connects the event bus to a Controller. UI events are handled on
// the service goroutine; state snapshots are pushed back as they happen.
type Service struct {
	controller  *Controller
	eventBus    *eventbus.EventBus
	logger      *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
	done        chan struct{}
	started     bool
	stopOnce    sync.Once
}

// NewService creates a Service regardless of classifier availability.
// A nil classifier yields a service whose submissions fail with a
// connectivity error.
func NewService(classifier Classifier, validator Validator, eb *eventbus.EventBus, logger *zap.Logger) *Service {
	if classifier == nil {
		classifier = unavailableClassifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		controller: NewController(ctx, classifier, validator),
		eventBus:   eb,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Start runs the core logic in a goroutine
func (s *Service) Start() {
	// Send initial state to UI immediately
	s.pushStateToUI(s.controller.State())
	s.unsubscribe = s.controller.Subscribe(s.pushStateToUI)
	s.started = true
	go s.eventLoop()
}

// Stop shuts the loop down and waits for in-flight requests, which are
// aborted through the service context. Safe to call more than once.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if s.started {
			<-s.done
		}
		s.controller.Wait()
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}

func (s *Service) Controller() *Controller {
	return s.controller
}

func (s *Service) eventLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *Service) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitEvent:
		s.logger.Debug("Submit requested", zap.Int("chars", len(e.Text)))
		s.controller.Submit(e.Text)
	case eventbus.ClearEvent:
		s.logger.Debug("Clear requested")
		s.controller.Clear()
	}
}

func (s *Service) pushStateToUI(state models.State) {
	fields := []zap.Field{
		zap.Stringer("phase", state.Phase),
		zap.String("submission", state.SubmissionID),
	}
	switch state.Phase {
	case models.Succeeded:
		s.logger.Info("Verdict received", append(fields, zap.Stringer("verdict", state.Result))...)
	case models.Failed:
		s.logger.Info("Submission failed", append(fields, zap.Stringer("kind", state.Err.Kind))...)
	default:
		s.logger.Debug("State changed", fields...)
	}

	if err := s.eventBus.SendToUI(eventbus.StateUpdateEvent{State: state}); err != nil {
		s.logger.Warn("Dropped state update", zap.Error(err))
	}
}

type unavailableClassifier struct{}

func (unavailableClassifier) Classify(context.Context, string) (models.Verdict, error) {
	return 0, errClassifierUnavailable
}
