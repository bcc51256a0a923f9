// Package site holds the per-visitor application state and the store that keeps it
// between requests.
package site

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/forms"
	"github.com/nfrund/lifeheroes/internal/navigator"
	"github.com/nfrund/lifeheroes/internal/pubsub"
)

// Snapshot is a consistent copy of an App, taken for rendering.
type Snapshot struct {
	ID       string
	Page     domain.PageID
	MenuOpen bool
	Muted    bool
	// Form is nil unless the current page carries a form.
	Form *forms.State
}

// App is the state behind one loaded document: which page is shown, the mobile
// menu, the hero audio preference and the mounted form.
type App struct {
	id  string
	nav *navigator.Navigator

	mu       sync.Mutex
	menuOpen bool
	muted    bool
	form     *forms.Form
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc

	publisher   pubsub.Publisher
	formOptions []forms.Option
	logger      *slog.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithPublisher publishes the app's events on the bus.
func WithPublisher(p pubsub.Publisher) AppOption {
	return func(a *App) { a.publisher = p }
}

// WithFormOptions applies opts to every form the app mounts.
func WithFormOptions(opts ...forms.Option) AppOption {
	return func(a *App) { a.formOptions = append(a.formOptions, opts...) }
}

// WithAppLogger sets the logger.
func WithAppLogger(l *slog.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// NewApp creates an App on the home page. The hero video starts muted, as
// browsers only autoplay muted media.
func NewApp(parent context.Context, opts ...AppOption) *App {
	ctx, cancel := context.WithCancel(parent)
	a := &App{
		id:     uuid.NewString(),
		nav:    navigator.New(),
		muted:  true,
		ctx:    ctx,
		cancel: cancel,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("app_id", a.id)
	a.nav.OnNavigate(a.onNavigate)
	a.publish(pubsub.AppEvent{Type: pubsub.EventAppStarted, To: string(domain.PageHome)})
	return a
}

// ID identifies the app in the visitor's session.
func (a *App) ID() string { return a.id }

// Context is cancelled when the app is closed.
func (a *App) Context() context.Context { return a.ctx }

// Page returns the current page.
func (a *App) Page() domain.PageID { return a.nav.Current() }

// Navigate switches the current page on behalf of the visitor.
func (a *App) Navigate(target domain.PageID) error {
	return a.navigate(target, false)
}

func (a *App) navigate(target domain.PageID, background bool) error {
	from := a.nav.Current()
	if err := a.nav.Navigate(target); err != nil {
		return err
	}
	a.logger.Debug("Navigated", "from", from, "to", target, "background", background)
	a.publish(pubsub.AppEvent{
		Type:       pubsub.EventNavigated,
		From:       string(from),
		To:         string(target),
		Background: background,
	})
	return nil
}

// onNavigate keeps the mounted form in step with the current page. Listeners of
// concurrent transitions may run out of order, so the page is read back from the
// navigator instead of trusting to.
func (a *App) onNavigate(from, to domain.PageID) {
	a.mu.Lock()
	a.menuOpen = false
	if from == to || a.closed {
		a.mu.Unlock()
		return
	}
	old := a.form
	a.form = nil
	if kind, ok := forms.KindForPage(a.nav.Current()); ok {
		a.form = a.mountForm(kind)
	}
	a.mu.Unlock()

	if old != nil {
		old.Discard()
	}
}

// mountForm must be called with a.mu held.
func (a *App) mountForm(kind forms.Kind) *forms.Form {
	opts := make([]forms.Option, 0, len(a.formOptions)+3)
	opts = append(opts, a.formOptions...)
	opts = append(opts,
		forms.WithLogger(a.logger),
		forms.WithNavigate(func(p domain.PageID) error { return a.navigate(p, true) }),
		forms.WithObserver(a.onFormEvent),
	)
	return forms.New(a.ctx, kind, opts...)
}

func (a *App) onFormEvent(ev forms.Event) {
	out := pubsub.AppEvent{Form: string(ev.Kind)}
	switch ev.Type {
	case forms.EventSubmitted:
		out.Type = pubsub.EventFormSubmitted
	case forms.EventSucceeded:
		out.Type = pubsub.EventFormSucceeded
		out.Background = true
	case forms.EventFailed:
		out.Type = pubsub.EventFormFailed
		out.Background = true
	case forms.EventDiscarded:
		out.Type = pubsub.EventFormDiscarded
	default:
		return
	}
	a.publish(out)
}

// MenuOpen reports whether the mobile menu is expanded.
func (a *App) MenuOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.menuOpen
}

// ToggleMenu flips the mobile menu and returns the new state.
func (a *App) ToggleMenu() bool {
	a.mu.Lock()
	a.menuOpen = !a.menuOpen
	open := a.menuOpen
	a.mu.Unlock()
	a.publish(pubsub.AppEvent{Type: pubsub.EventMenuToggled})
	return open
}

// Muted reports the hero audio preference.
func (a *App) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// ToggleAudio flips the hero audio preference and returns whether it is now muted.
func (a *App) ToggleAudio() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = !a.muted
	return a.muted
}

// Form returns the mounted form, or domain.ErrNoForm when the current page has none.
func (a *App) Form() (*forms.Form, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.form == nil {
		return nil, domain.ErrNoForm
	}
	return a.form, nil
}

// SetField updates one field of the mounted form.
func (a *App) SetField(name string, v forms.Value) error {
	f, err := a.Form()
	if err != nil {
		return err
	}
	return f.Set(name, v)
}

// Submit submits the mounted form.
func (a *App) Submit() error {
	f, err := a.Form()
	if err != nil {
		return err
	}
	return f.Submit()
}

// Snapshot copies the state needed to render the app.
func (a *App) Snapshot() Snapshot {
	page := a.nav.Current()
	a.mu.Lock()
	s := Snapshot{
		ID:       a.id,
		Page:     page,
		MenuOpen: a.menuOpen,
		Muted:    a.muted,
	}
	f := a.form
	a.mu.Unlock()

	if f != nil {
		st := f.Snapshot()
		s.Form = &st
	}
	return s
}

// Close discards the mounted form and cancels everything bound to the app.
// It is safe to call more than once.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	f := a.form
	a.form = nil
	a.mu.Unlock()

	if f != nil {
		f.Discard()
	}
	a.cancel()
	a.publish(pubsub.AppEvent{Type: pubsub.EventAppEvicted})
}

func (a *App) publish(ev pubsub.AppEvent) {
	if a.publisher == nil {
		return
	}
	ev.AppID = a.id
	// The app context may already be cancelled on Close; publishing must still happen.
	if err := pubsub.PublishAppEvent(context.WithoutCancel(a.ctx), a.publisher, ev); err != nil {
		a.logger.Warn("Failed to publish app event", "type", ev.Type, "error", err)
	}
}
