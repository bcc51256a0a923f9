package navigator_test

import (
	"testing"

	"github.com/nfrund/lifeheroes/internal/domain"
	"github.com/nfrund/lifeheroes/internal/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_StartsOnHome(t *testing.T) {
	n := navigator.New()
	assert.Equal(t, domain.PageHome, n.Current())
}

func TestNavigator_FullyConnected(t *testing.T) {
	for _, from := range domain.Pages {
		for _, to := range domain.Pages {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				n := navigator.New()
				require.NoError(t, n.Navigate(from))
				require.NoError(t, n.Navigate(to))
				assert.Equal(t, to, n.Current())
			})
		}
	}
}

func TestNavigator_RejectsUnknownPage(t *testing.T) {
	n := navigator.New()
	require.NoError(t, n.Navigate(domain.PageLogin))

	err := n.Navigate(domain.PageID("admin"))
	assert.ErrorIs(t, err, domain.ErrUnknownPage)
	assert.Equal(t, domain.PageLogin, n.Current(), "a rejected transition must not change the page")
}

func TestNavigator_NotifiesListeners(t *testing.T) {
	n := navigator.New()

	type transition struct{ from, to domain.PageID }
	var seen []transition
	n.OnNavigate(func(from, to domain.PageID) {
		seen = append(seen, transition{from, to})
		// Listeners run outside the lock.
		assert.Equal(t, to, n.Current())
	})

	require.NoError(t, n.Navigate(domain.PageSignup))
	require.NoError(t, n.Navigate(domain.PageSignup))
	require.NoError(t, n.Navigate(domain.PageHome))

	assert.Equal(t, []transition{
		{domain.PageHome, domain.PageSignup},
		{domain.PageSignup, domain.PageSignup},
		{domain.PageSignup, domain.PageHome},
	}, seen)
}
