package core

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Rorical/sentinel/internal/models"
)

// Classifier asks the remote service for a verdict on text
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Verdict, error)
}

// Controller owns the submission state machine for one input widget.
// Every transition goes through Transition under mu, so observers see them
// in order: validate, request, resolve.
type Controller struct {
	ctx        context.Context
	classifier Classifier
	validator  Validator
	newID      func() string

	mu        sync.Mutex
	state     models.State
	observers map[int]func(models.State)
	nextObs   int

	inflight sync.WaitGroup
}

// NewController creates a controller in the Idle phase. ctx is handed to the
// classifier unchanged; Clear never cancels it.
func NewController(ctx context.Context, classifier Classifier, validator Validator) *Controller {
	return &Controller{
		ctx:        ctx,
		classifier: classifier,
		validator:  validator,
		newID:      uuid.NewString,
		observers:  make(map[int]func(models.State)),
	}
}

// Submit starts a submission unless one is already in flight. It never blocks
// on the classifier.
func (c *Controller) Submit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == models.Requesting {
		return
	}

	c.apply(ValidateEvent{})
	if v := c.validator.Validate(text); !v.OK {
		c.apply(RejectEvent{Reason: v.Reason})
		return
	}

	id := c.newID()
	c.apply(RequestEvent{SubmissionID: id})

	c.inflight.Add(1)
	go c.request(id, text)
}

func (c *Controller) request(id, text string) {
	defer c.inflight.Done()

	verdict, err := c.classifier.Classify(c.ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(ResolveEvent{SubmissionID: id, Verdict: verdict, Err: err})
}

// Clear returns to Idle and drops any result or error. An in-flight request
// keeps running, but its outcome will be discarded.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(ClearEvent{})
}

func (c *Controller) State() models.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for every state change. fn runs with the controller
// locked and must not call back into it.
func (c *Controller) Subscribe(fn func(models.State)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Wait blocks until every classifier call started by Submit has returned
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// apply must be called with mu held
func (c *Controller) apply(ev Event) {
	next, changed := Transition(c.state, ev)
	if !changed {
		return
	}
	c.state = next
	for _, fn := range c.observers {
		fn(next)
	}
}
