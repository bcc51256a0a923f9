// Package navigator holds the page-selection state of one visitor application.
//
// The state machine has three states (home, login, signup), every state can reach
// every other state directly, the initial state is home and there is no terminal
// state.
package navigator

import (
	"fmt"
	"sync"

	"github.com/nfrund/lifeheroes/internal/domain"
)

// Listener observes a transition. It is called after the current page changed,
// outside the navigator's lock, so it may read Current or call Navigate again.
type Listener func(from, to domain.PageID)

// Navigator owns the identifier of the page currently displayed.
type Navigator struct {
	mu        sync.RWMutex
	current   domain.PageID
	listeners []Listener
}

// New creates a Navigator positioned on the home page.
func New() *Navigator {
	return &Navigator{current: domain.PageHome}
}

// Current returns the page that should be rendered.
func (n *Navigator) Current() domain.PageID {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// OnNavigate registers a listener for every subsequent transition.
func (n *Navigator) OnNavigate(l Listener) {
	n.mu.Lock()
	n.listeners = append(n.listeners, l)
	n.mu.Unlock()
}

// Navigate makes target the current page. Navigating to the current page is a
// valid self transition and still notifies listeners.
func (n *Navigator) Navigate(target domain.PageID) error {
	if !target.Valid() {
		return fmt.Errorf("navigate to %q: %w", target, domain.ErrUnknownPage)
	}

	n.mu.Lock()
	from := n.current
	n.current = target
	listeners := make([]Listener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, l := range listeners {
		l(from, target)
	}
	return nil
}
