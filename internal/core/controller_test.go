package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/sentinel/internal/models"
)

const article = "Scientists confirm that the city council approved the new budget for public libraries on Tuesday."

type reply struct {
	verdict models.Verdict
	err     error
}

// stubClassifier answers each text from its own reply channel, so tests
// decide when and how every call resolves.
type stubClassifier struct {
	mu      sync.Mutex
	calls   []string
	replies map[string]chan reply
}

func newStubClassifier() *stubClassifier {
	return &stubClassifier{replies: make(map[string]chan reply)}
}

func (s *stubClassifier) replyTo(text string) chan reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.replies[text]
	if !ok {
		ch = make(chan reply, 1)
		s.replies[text] = ch
	}
	return ch
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (models.Verdict, error) {
	s.mu.Lock()
	s.calls = append(s.calls, text)
	s.mu.Unlock()

	select {
	case r := <-s.replyTo(text):
		return r.verdict, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (s *stubClassifier) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestController(stub *stubClassifier) *Controller {
	c := NewController(context.Background(), stub, NewValidator(DefaultMinChars))
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("sub-%d", n)
	}
	return c
}

// recordPhases subscribes and returns a getter for every phase observed
func recordPhases(c *Controller) func() []models.Phase {
	var mu sync.Mutex
	var phases []models.Phase
	c.Subscribe(func(s models.State) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, s.Phase)
	})
	return func() []models.Phase {
		mu.Lock()
		defer mu.Unlock()
		return append([]models.Phase(nil), phases...)
	}
}

func TestController_BlankInputNeverCallsTransport(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		stub := newStubClassifier()
		c := newTestController(stub)
		phases := recordPhases(c)

		c.Submit(text)
		c.Wait()

		state := c.State()
		assert.Equal(t, models.Failed, state.Phase)
		require.NotNil(t, state.Err)
		assert.Equal(t, models.ValidationFailure, state.Err.Kind)
		assert.Equal(t, ReasonEmpty, state.Err.Message)
		assert.Zero(t, stub.callCount())
		assert.Equal(t, []models.Phase{models.Validating, models.Failed}, phases())
	}
}

func TestController_Genuine(t *testing.T) {
	stub := newStubClassifier()
	stub.replyTo(article) <- reply{verdict: models.Genuine}
	c := newTestController(stub)
	phases := recordPhases(c)

	c.Submit(article)
	c.Wait()

	state := c.State()
	assert.Equal(t, models.Succeeded, state.Phase)
	assert.Equal(t, models.Genuine, state.Result)
	assert.Equal(t, Positive, Present(state.Result).Tone)
	assert.Equal(t, 1, stub.callCount())
	assert.Equal(t, []models.Phase{models.Validating, models.Requesting, models.Succeeded}, phases())
}

func TestController_Fake(t *testing.T) {
	stub := newStubClassifier()
	stub.replyTo(article) <- reply{verdict: models.Fake}
	c := newTestController(stub)

	c.Submit(article)
	c.Wait()

	state := c.State()
	assert.Equal(t, models.Succeeded, state.Phase)
	assert.Equal(t, models.Fake, state.Result)
	assert.Equal(t, Negative, Present(state.Result).Tone)
}

func TestController_ShortTextIsStillSubmitted(t *testing.T) {
	stub := newStubClassifier()
	stub.replyTo("Short.") <- reply{verdict: models.Fake}
	c := newTestController(stub)

	c.Submit("Short.")
	c.Wait()

	assert.Equal(t, 1, stub.callCount())
	assert.Equal(t, models.Succeeded, c.State().Phase)
}

func TestController_TransportErrorIsConnectivityFailure(t *testing.T) {
	stub := newStubClassifier()
	stub.replyTo(article) <- reply{err: errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")}
	c := newTestController(stub)

	c.Submit(article)
	c.Wait()

	state := c.State()
	assert.Equal(t, models.Failed, state.Phase)
	require.NotNil(t, state.Err)
	assert.Equal(t, models.ConnectivityFailure, state.Err.Kind)
	assert.Equal(t, ConnectivityMessage, state.Err.Message)
}

func TestController_UnrecognizedVerdictFailsClosed(t *testing.T) {
	stub := newStubClassifier()
	stub.replyTo(article) <- reply{verdict: models.Verdict(7)}
	c := newTestController(stub)

	c.Submit(article)
	c.Wait()

	state := c.State()
	assert.Equal(t, models.Failed, state.Phase)
	assert.Equal(t, models.ConnectivityFailure, state.Err.Kind)
}

func TestController_SubmitWhileRequestingIsNoop(t *testing.T) {
	stub := newStubClassifier()
	c := newTestController(stub)

	c.Submit(article)
	before := c.State()
	require.Equal(t, models.Requesting, before.Phase)

	c.Submit(article)
	c.Submit("another article entirely")
	assert.Equal(t, before, c.State())

	stub.replyTo(article) <- reply{verdict: models.Genuine}
	c.Wait()

	assert.Equal(t, 1, stub.callCount())
	assert.Equal(t, models.Succeeded, c.State().Phase)
}

func TestController_ClearDuringRequestDiscardsLateResponse(t *testing.T) {
	stub := newStubClassifier()
	c := newTestController(stub)

	c.Submit(article)
	require.Equal(t, models.Requesting, c.State().Phase)

	c.Clear()
	assert.Equal(t, models.State{}, c.State())

	stub.replyTo(article) <- reply{verdict: models.Fake}
	c.Wait()

	assert.Equal(t, models.State{}, c.State())
}

func TestController_LateResponseDoesNotOverwriteNewSubmission(t *testing.T) {
	stub := newStubClassifier()
	c := newTestController(stub)
	first, second := article, article+" Updated."

	c.Submit(first)
	c.Clear()
	c.Submit(second)
	require.Equal(t, "sub-2", c.State().SubmissionID)

	// The cleared submission answers first
	stub.replyTo(first) <- reply{verdict: models.Fake}
	require.Eventually(t, func() bool { return stub.callCount() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, models.Requesting, c.State().Phase)
	assert.Equal(t, "sub-2", c.State().SubmissionID)

	stub.replyTo(second) <- reply{verdict: models.Genuine}
	c.Wait()

	state := c.State()
	assert.Equal(t, models.Succeeded, state.Phase)
	assert.Equal(t, models.Genuine, state.Result)
	assert.Equal(t, "sub-2", state.SubmissionID)
}

func TestController_ClearIsIdempotent(t *testing.T) {
	stub := newStubClassifier()
	stub.replyTo(article) <- reply{verdict: models.Genuine}
	c := newTestController(stub)
	c.Submit(article)
	c.Wait()

	phases := recordPhases(c)
	c.Clear()
	once := c.State()
	c.Clear()

	assert.Equal(t, once, c.State())
	assert.Equal(t, models.State{}, once)
	assert.Equal(t, []models.Phase{models.Idle}, phases())
}

func TestController_ResubmitAfterFailure(t *testing.T) {
	stub := newStubClassifier()
	c := newTestController(stub)

	c.Submit("  ")
	require.Equal(t, models.Failed, c.State().Phase)

	stub.replyTo(article) <- reply{verdict: models.Fake}
	c.Submit(article)
	c.Wait()

	state := c.State()
	assert.Equal(t, models.Succeeded, state.Phase)
	assert.Nil(t, state.Err)
}

func TestController_Unsubscribe(t *testing.T) {
	stub := newStubClassifier()
	c := newTestController(stub)

	calls := 0
	unsubscribe := c.Subscribe(func(models.State) { calls++ })
	c.Submit("")
	require.Equal(t, 2, calls)

	unsubscribe()
	c.Clear()
	assert.Equal(t, 2, calls)
}
