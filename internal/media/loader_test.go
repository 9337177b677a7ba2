package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle runs the loader to completion, failing every candidate in fail.
func settle(t *testing.T, l *Loader, fail map[string]bool) []string {
	var attempted []string
	for i := 0; i < 100; i++ {
		attempt, ok := l.Attempt()
		if !ok {
			return attempted
		}

		attempted = append(attempted, attempt.URL)
		if fail[attempt.URL] {
			l.OnLoadFailure(attempt)
		} else {
			l.OnLoadSuccess(attempt)
		}
	}

	t.Fatal("Loader did not settle")
	return nil
}

const driveLink = "https://drive.google.com/file/d/ABC123/view?usp=sharing"

func TestLoaderAdvancesInOrder(t *testing.T) {
	var loaded []string
	errors := 0
	l := NewLoader(driveLink,
		WithOnLoad(func(url string) { loaded = append(loaded, url) }),
		WithOnError(func() { errors++ }),
	)
	candidates := l.Candidates()
	require.Len(t, candidates, 4)
	assert.Equal(t, LoadIdle, l.State())

	attempted := settle(t, l, map[string]bool{candidates[0]: true, candidates[1]: true})
	assert.Equal(t, candidates[:3], attempted)
	assert.Equal(t, LoadLoaded, l.State())
	assert.Equal(t, []string{candidates[2]}, loaded)
	assert.Equal(t, 0, errors)
	assert.Equal(t, candidates[2], l.Current())
}

func TestLoaderExhausts(t *testing.T) {
	errors := 0
	loads := 0
	l := NewLoader(driveLink,
		WithOnLoad(func(string) { loads++ }),
		WithOnError(func() { errors++ }),
	)
	candidates := l.Candidates()

	fail := map[string]bool{}
	for _, c := range candidates {
		fail[c] = true
	}

	attempted := settle(t, l, fail)
	assert.Equal(t, candidates, attempted)
	assert.Equal(t, LoadExhausted, l.State())
	assert.True(t, l.Failed())
	assert.Equal(t, 1, errors)
	assert.Equal(t, 0, loads)
	assert.Equal(t, driveLink, l.Current())

	_, ok := l.Attempt()
	assert.False(t, ok)
}

func TestLoaderWithoutCallbacks(t *testing.T) {
	l := NewLoader("https://example.com/a.png")
	attempt, ok := l.Attempt()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", attempt.URL)

	assert.NotPanics(t, func() { l.OnLoadFailure(attempt) })
	assert.Equal(t, LoadExhausted, l.State())
}

func TestLoaderIgnoresStaleNotifications(t *testing.T) {
	errors := 0
	l := NewLoader(driveLink, WithOnError(func() { errors++ }))

	first, _ := l.Attempt()
	l.OnLoadFailure(first)
	second, _ := l.Attempt()
	assert.Equal(t, 1, second.Index)

	// a duplicate error for the first candidate must not skip the second
	l.OnLoadFailure(first)
	assert.Equal(t, 1, l.Index())

	l.OnLoadSuccess(first)
	assert.Equal(t, LoadLoading, l.State())

	l.OnLoadSuccess(second)
	assert.Equal(t, LoadLoaded, l.State())

	// terminal states ignore everything
	l.OnLoadFailure(second)
	assert.Equal(t, LoadLoaded, l.State())
	assert.Equal(t, 0, errors)
}

func TestLoaderReset(t *testing.T) {
	l := NewLoader(driveLink)
	attempt, _ := l.Attempt()
	l.OnLoadFailure(attempt)
	assert.Equal(t, 1, l.Index())

	l.SetURL(driveLink)
	assert.Equal(t, 1, l.Index(), "same url must not reset")

	stale, _ := l.Attempt()
	l.SetURL("https://example.com/b.png")
	assert.Equal(t, 0, l.Index())
	assert.Equal(t, LoadIdle, l.State())
	assert.Equal(t, []string{"https://example.com/b.png"}, l.Candidates())

	l.OnLoadSuccess(stale)
	assert.Equal(t, LoadIdle, l.State())
}

func TestLoaderClose(t *testing.T) {
	loads := 0
	l := NewLoader(driveLink, WithOnLoad(func(string) { loads++ }))
	attempt, _ := l.Attempt()
	l.Close()

	l.OnLoadSuccess(attempt)
	assert.Equal(t, 0, loads)

	_, ok := l.Attempt()
	assert.False(t, ok)
}

func TestLoadStateString(t *testing.T) {
	assert.Equal(t, "exhausted", LoadExhausted.String())
	assert.Equal(t, "unknown", LoadState(42).String())
}
