package forms_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/forms"
)

// navRecorder counts the navigation requests made by a form.
type navRecorder struct {
	count  atomic.Int32
	target atomic.Value
}

func (n *navRecorder) navigate(p domain.PageID) error {
	n.count.Add(1)
	n.target.Store(p)
	return nil
}

// eventRecorder collects lifecycle events in order.
type eventRecorder struct {
	mu     sync.Mutex
	events []forms.EventType
}

func (r *eventRecorder) observe(e forms.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e.Type)
}

func (r *eventRecorder) get() []forms.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]forms.EventType(nil), r.events...)
}

func newLoginForm(t *testing.T, clock *clockwork.FakeClock, nav *navRecorder, rec *eventRecorder) *forms.Form {
	t.Helper()
	f := forms.New(context.Background(), forms.KindLogin,
		forms.WithClock(clock),
		forms.WithNavigate(nav.navigate),
		forms.WithObserver(rec.observe),
	)
	require.NoError(t, f.Set(forms.FieldEmail, forms.Text("a@b.co")))
	require.NoError(t, f.Set(forms.FieldPassword, forms.Text("abcdef")))
	return f
}

func waitDone(t *testing.T, f *forms.Form) {
	t.Helper()
	select {
	case <-f.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("round trip did not finish; form is stuck")
	}
}

func assertNeverBoth(t *testing.T, s forms.State) {
	t.Helper()
	assert.False(t, s.Submitting && s.Success, "submitting and success must never both be true")
}

func TestForm_InitialState(t *testing.T) {
	f := forms.New(context.Background(), forms.KindSignup)
	s := f.Snapshot()

	assert.Equal(t, forms.KindSignup, s.Kind)
	assert.Empty(t, s.Errors)
	assert.False(t, s.Submitting)
	assert.False(t, s.Success)
	assert.Len(t, s.Fields, len(forms.KindSignup.Specs()))
	assert.Nil(t, f.Done())
}

func TestForm_SubmitValidLogin(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	nav := &navRecorder{}
	rec := &eventRecorder{}
	f := newLoginForm(t, clock, nav, rec)

	require.NoError(t, f.Submit())
	s := f.Snapshot()
	assert.True(t, s.Submitting)
	assert.False(t, s.Success)

	// Just before the first delay elapses nothing has changed.
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(forms.DefaultDelays.Submit - time.Millisecond)
	s = f.Snapshot()
	assert.True(t, s.Submitting)
	assert.Zero(t, nav.count.Load())

	clock.Advance(time.Millisecond)
	// The round trip waits on the redirect delay only after flipping to success.
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	s = f.Snapshot()
	assertNeverBoth(t, s)
	assert.False(t, s.Submitting)
	assert.True(t, s.Success)
	assert.Zero(t, nav.count.Load(), "navigation must wait for the second delay")

	clock.Advance(forms.DefaultDelays.Redirect)
	waitDone(t, f)

	assert.Equal(t, int32(1), nav.count.Load())
	assert.Equal(t, domain.PageHome, nav.target.Load())
	assert.Equal(t, []forms.EventType{forms.EventSubmitted, forms.EventSucceeded}, rec.get())
}

func TestForm_SubmitInvalidDoesNotLoad(t *testing.T) {
	clock := clockwork.NewFakeClock()
	nav := &navRecorder{}
	rec := &eventRecorder{}
	f := forms.New(context.Background(), forms.KindLogin,
		forms.WithClock(clock), forms.WithNavigate(nav.navigate), forms.WithObserver(rec.observe))

	err := f.Submit()

	assert.ErrorIs(t, err, domain.ErrValidation)
	s := f.Snapshot()
	assert.False(t, s.Submitting)
	assert.False(t, s.Success)
	assert.Len(t, s.Errors, 2)
	assert.Nil(t, f.Done())
	assert.Empty(t, rec.get())
}

func TestForm_SetClearsOnlyThatFieldsError(t *testing.T) {
	f := forms.New(context.Background(), forms.KindSignup)
	require.ErrorIs(t, f.Submit(), domain.ErrValidation)
	before := f.Snapshot().Errors
	require.Contains(t, before, forms.FieldEmail)
	require.Contains(t, before, forms.FieldPhone)

	require.NoError(t, f.Set(forms.FieldEmail, forms.Text("x")))

	after := f.Snapshot().Errors
	assert.NotContains(t, after, forms.FieldEmail)
	delete(before, forms.FieldEmail)
	assert.Equal(t, before, after, "other error entries stay untouched")
}

func TestForm_SetSameValueKeepsError(t *testing.T) {
	f := forms.New(context.Background(), forms.KindLogin)
	require.ErrorIs(t, f.Submit(), domain.ErrValidation)

	require.NoError(t, f.Set(forms.FieldEmail, forms.Text("")))

	assert.Contains(t, f.Snapshot().Errors, forms.FieldEmail)
}

func TestForm_ErrorsRecomputedOnSubmit(t *testing.T) {
	f := forms.New(context.Background(), forms.KindLogin, forms.WithClock(clockwork.NewFakeClock()))
	require.ErrorIs(t, f.Submit(), domain.ErrValidation)
	require.Len(t, f.Snapshot().Errors, 2)

	require.NoError(t, f.Set(forms.FieldEmail, forms.Text("not-an-email")))
	require.ErrorIs(t, f.Submit(), domain.ErrValidation)

	errs := f.Snapshot().Errors
	assert.Equal(t, "فرمت ایمیل صحیح نیست", errs[forms.FieldEmail])
	assert.Contains(t, errs, forms.FieldPassword)
}

func TestForm_SetRejectsUnknownField(t *testing.T) {
	f := forms.New(context.Background(), forms.KindLogin)
	assert.Error(t, f.Set(forms.FieldPhone, forms.Text("0912")))
}

func TestForm_CheckboxKeepsOnlyCheckedFlag(t *testing.T) {
	f := forms.New(context.Background(), forms.KindLogin)
	require.NoError(t, f.Set(forms.FieldRememberMe, forms.Value{Text: "on", Checked: true}))
	assert.Equal(t, forms.Checked(true), f.Snapshot().Fields[forms.FieldRememberMe])
}

func TestForm_SubmitWhileInFlight(t *testing.T) {
	clock := clockwork.NewFakeClock()
	f := newLoginForm(t, clock, &navRecorder{}, &eventRecorder{})

	require.NoError(t, f.Submit())
	assert.ErrorIs(t, f.Submit(), domain.ErrSubmitInFlight)

	f.Discard()
	waitDone(t, f)
}

func TestForm_SubmitAfterSuccess(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	f := newLoginForm(t, clock, &navRecorder{}, &eventRecorder{})
	require.NoError(t, f.Submit())
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(forms.DefaultDelays.Submit)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	assert.ErrorIs(t, f.Submit(), domain.ErrAlreadySubmitted)

	clock.Advance(forms.DefaultDelays.Redirect)
	waitDone(t, f)
}

func TestForm_DiscardDuringSubmission(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	nav := &navRecorder{}
	rec := &eventRecorder{}
	f := newLoginForm(t, clock, nav, rec)

	require.NoError(t, f.Submit())
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	f.Discard()
	waitDone(t, f)
	clock.Advance(forms.DefaultDelays.Submit + forms.DefaultDelays.Redirect)

	s := f.Snapshot()
	assert.False(t, s.Success, "a discarded form is never mutated by the round trip")
	assert.Zero(t, nav.count.Load())
	assert.Equal(t, []forms.EventType{forms.EventSubmitted, forms.EventDiscarded}, rec.get())
	assert.ErrorIs(t, f.Set(forms.FieldEmail, forms.Text("b@c.de")), domain.ErrFormDiscarded)
	assert.ErrorIs(t, f.Submit(), domain.ErrFormDiscarded)
}

func TestForm_DiscardDuringRedirectDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	clock := clockwork.NewFakeClock()
	nav := &navRecorder{}
	f := newLoginForm(t, clock, nav, &eventRecorder{})

	require.NoError(t, f.Submit())
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(forms.DefaultDelays.Submit)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	f.Discard()
	waitDone(t, f)

	assert.Zero(t, nav.count.Load(), "leaving the page cancels the pending redirect")
}

func TestForm_ParentCancellationStopsRoundTrip(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	clock := clockwork.NewFakeClock()
	nav := &navRecorder{}
	f := forms.New(parent, forms.KindLogin, forms.WithClock(clock), forms.WithNavigate(nav.navigate))
	require.NoError(t, f.Set(forms.FieldEmail, forms.Text("a@b.co")))
	require.NoError(t, f.Set(forms.FieldPassword, forms.Text("abcdef")))

	require.NoError(t, f.Submit())
	cancelParent()
	waitDone(t, f)

	assert.Zero(t, nav.count.Load())
}

func TestForm_RealClockNeverHangs(t *testing.T) {
	nav := &navRecorder{}
	f := forms.New(context.Background(), forms.KindLogin,
		forms.WithDelays(forms.Delays{Submit: time.Millisecond, Redirect: time.Millisecond}),
		forms.WithNavigate(nav.navigate),
	)
	require.NoError(t, f.Set(forms.FieldEmail, forms.Text("a@b.co")))
	require.NoError(t, f.Set(forms.FieldPassword, forms.Text("abcdef")))

	require.NoError(t, f.Submit())
	waitDone(t, f)

	s := f.Snapshot()
	assert.False(t, s.Submitting)
	assert.True(t, s.Success)
	assert.Equal(t, int32(1), nav.count.Load())
}
