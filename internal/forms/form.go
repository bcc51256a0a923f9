package forms

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// Delays are the fixed waits of the simulated round trip.
type Delays struct {
	// Submit stands in for network latency; the form shows its loading state meanwhile.
	Submit time.Duration
	// Redirect is how long the success view stays before navigating home.
	Redirect time.Duration
}

// DefaultDelays are 2s of loading state and 1.5s of success view.
var DefaultDelays = Delays{
	Submit:   2000 * time.Millisecond,
	Redirect: 1500 * time.Millisecond,
}

// EventType names a change in a form's lifecycle.
type EventType string

const (
	EventSubmitted EventType = "submitted"
	EventSucceeded EventType = "succeeded"
	EventFailed    EventType = "failed"
	EventDiscarded EventType = "discarded"
)

// Event is delivered to the form's observer after the state changed.
type Event struct {
	Kind Kind
	Type EventType
}

// State is an immutable snapshot of a form, suitable for rendering.
type State struct {
	Kind       Kind
	Fields     Fields
	Errors     ErrorMap
	General    string
	Submitting bool
	Success    bool
}

// Form is one mounted instance of the login or signup form together with its
// submission simulator. It is safe for concurrent use: HTTP requests and the
// round-trip goroutine both touch it.
type Form struct {
	mu         sync.Mutex
	kind       Kind
	fields     Fields
	errors     ErrorMap
	general    string
	submitting bool
	success    bool
	discarded  bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	clock     clockwork.Clock
	delays    Delays
	validator *Validator
	tracer    trace.Tracer
	navigate  func(domain.PageID) error
	observer  func(Event)
	logger    *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithClock replaces the wall clock used for the simulated delays.
func WithClock(c clockwork.Clock) Option {
	return func(f *Form) { f.clock = c }
}

// WithDelays overrides DefaultDelays.
func WithDelays(d Delays) Option {
	return func(f *Form) { f.delays = d }
}

// WithValidator sets the validator; the shared default is used otherwise.
func WithValidator(v *Validator) Option {
	return func(f *Form) { f.validator = v }
}

// WithTracer traces each round trip as a span.
func WithTracer(t trace.Tracer) Option {
	return func(f *Form) { f.tracer = t }
}

// WithNavigate sets the handle used to request the transition home after success.
func WithNavigate(fn func(domain.PageID) error) Option {
	return func(f *Form) { f.navigate = fn }
}

// WithObserver sets a callback for lifecycle events. It runs without the form's lock held.
func WithObserver(fn func(Event)) Option {
	return func(f *Form) { f.observer = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) { f.logger = l }
}

// New mounts a form of kind k with empty fields. The form lives until parent is
// cancelled or Discard is called.
func New(parent context.Context, k Kind, opts ...Option) *Form {
	ctx, cancel := context.WithCancel(parent)
	f := &Form{
		kind:   k,
		fields: EmptyFields(k),
		errors: ErrorMap{},
		ctx:    ctx,
		cancel: cancel,
		clock:  clockwork.NewRealClock(),
		delays: DefaultDelays,
		tracer: noop.NewTracerProvider().Tracer("forms"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.validator == nil {
		defaultValidatorOnce.Do(func() { defaultValidator = NewValidator() })
		f.validator = defaultValidator
	}
	f.logger = f.logger.With("form", string(k))
	return f
}

// Kind returns which form this is.
func (f *Form) Kind() Kind { return f.kind }

// Snapshot copies the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Kind:       f.kind,
		Fields:     f.fields.Clone(),
		Errors:     f.errors.Clone(),
		General:    f.general,
		Submitting: f.submitting,
		Success:    f.success,
	}
}

// Set changes one field. If the value differs from the current one, the field's
// error entry is removed; other entries are left as they are.
func (f *Form) Set(name string, v Value) error {
	spec, ok := f.kind.Spec(name)
	if !ok {
		return fmt.Errorf("set %s.%s: unknown field", f.kind, name)
	}
	if spec.Type == TypeCheckbox {
		v = Value{Checked: v.Checked}
	} else {
		v = Value{Text: v.Text}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.discarded {
		return domain.ErrFormDiscarded
	}
	if f.fields[name] == v {
		return nil
	}
	f.fields[name] = v
	delete(f.errors, name)
	return nil
}

// Submit validates the form and, if valid, starts the simulated round trip in the
// background. Validation failures are stored on the form and reported as
// domain.ErrValidation without entering the loading state.
func (f *Form) Submit() error {
	f.mu.Lock()
	switch {
	case f.discarded:
		f.mu.Unlock()
		return domain.ErrFormDiscarded
	case f.submitting:
		f.mu.Unlock()
		return domain.ErrSubmitInFlight
	case f.success:
		f.mu.Unlock()
		return domain.ErrAlreadySubmitted
	}

	f.errors = f.validator.Validate(f.kind, f.fields)
	f.general = ""
	if len(f.errors) > 0 {
		n := len(f.errors)
		f.mu.Unlock()
		f.logger.Debug("Form submission rejected", "invalid_fields", n)
		return domain.ErrValidation
	}

	f.submitting = true
	f.done = make(chan struct{})
	done := f.done
	f.mu.Unlock()

	f.emit(EventSubmitted)
	go f.roundTrip(done)
	return nil
}

// Done is closed when the current round trip has finished, whatever its outcome.
// It is nil if Submit never started one.
func (f *Form) Done() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Discard unmounts the form. Any in-flight round trip stops without touching the
// state or requesting navigation.
func (f *Form) Discard() {
	f.mu.Lock()
	if f.discarded {
		f.mu.Unlock()
		return
	}
	f.discarded = true
	f.mu.Unlock()

	f.cancel()
	f.emit(EventDiscarded)
}

func (f *Form) roundTrip(done chan struct{}) {
	defer close(done)

	ctx, span := f.tracer.Start(f.ctx, "forms.submit",
		trace.WithAttributes(attribute.String("form.kind", string(f.kind))),
	)
	defer span.End()

	if err := f.sleep(ctx, f.delays.Submit); err != nil {
		span.SetStatus(codes.Error, "discarded while submitting")
		return
	}

	outcome := f.simulateResponse()

	f.mu.Lock()
	if f.discarded {
		f.mu.Unlock()
		return
	}
	f.submitting = false
	if outcome != nil {
		f.general = generalMessages[f.kind]
		f.mu.Unlock()
		span.RecordError(outcome)
		span.SetStatus(codes.Error, outcome.Error())
		f.logger.Warn("Simulated submission failed", "error", outcome)
		f.emit(EventFailed)
		return
	}
	f.success = true
	f.mu.Unlock()

	f.logger.Info("Simulated submission succeeded")
	f.emit(EventSucceeded)

	if err := f.sleep(ctx, f.delays.Redirect); err != nil {
		return
	}

	f.mu.Lock()
	discarded := f.discarded
	f.mu.Unlock()
	if discarded || f.navigate == nil {
		return
	}
	if err := f.navigate(domain.PageHome); err != nil {
		span.RecordError(err)
		f.logger.Error("Failed to navigate home after submission", "error", err)
	}
}

// simulateResponse stands in for the server reply. It has no failure branch yet;
// a real integration would return domain.ErrSubmissionFailed from here.
func (f *Form) simulateResponse() error {
	return nil
}

func (f *Form) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.clock.After(d):
		return nil
	}
}

func (f *Form) emit(t EventType) {
	if f.observer != nil {
		f.observer(Event{Kind: f.kind, Type: t})
	}
}
