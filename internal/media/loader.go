package media

import "log/slog"

type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadExhausted
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadExhausted:
		return "exhausted"
	}

	return "unknown"
}

// Attempt identifies one load of one candidate. Notifications must hand the
// Attempt back so that late ones can be told apart from the live one.
type Attempt struct {
	URL        string
	Index      int
	generation uint64
}

// Loader walks the image candidates of a link, advancing on every load
// failure until one loads or the list is exhausted. A Loader belongs to one
// displayed image and is not safe for concurrent use.
type Loader struct {
	url        string
	candidates []string
	index      int
	state      LoadState
	generation uint64
	closed     bool

	onLoad  func(url string)
	onError func()
}

type LoaderOption func(*Loader)

// WithOnLoad registers a callback fired with the candidate that loaded.
func WithOnLoad(callback func(url string)) LoaderOption {
	return func(l *Loader) {
		l.onLoad = callback
	}
}

// WithOnError registers a callback fired once when all candidates failed.
func WithOnError(callback func()) LoaderOption {
	return func(l *Loader) {
		l.onError = callback
	}
}

func NewLoader(url string, opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}

	l.reset(url)
	return l
}

func (l *Loader) reset(url string) {
	l.url = url
	l.candidates = ResolveImage(url).Candidates
	l.index = 0
	l.state = LoadIdle
	l.generation++
}

// SetURL restarts the loader from the first candidate when url differs from
// the current one.
func (l *Loader) SetURL(url string) {
	if l.closed || url == l.url {
		return
	}

	l.reset(url)
}

// Attempt returns the candidate to load next. It reports false once the
// loader reached a terminal state or was closed.
func (l *Loader) Attempt() (Attempt, bool) {
	if l.closed || l.state == LoadLoaded || l.state == LoadExhausted {
		return Attempt{}, false
	}

	l.state = LoadLoading
	return Attempt{URL: l.candidates[l.index], Index: l.index, generation: l.generation}, true
}

func (l *Loader) stale(a Attempt) bool {
	return l.closed || l.state != LoadLoading || a.generation != l.generation
}

func (l *Loader) OnLoadSuccess(a Attempt) {
	if l.stale(a) {
		return
	}

	l.state = LoadLoaded
	if l.onLoad != nil {
		l.onLoad(a.URL)
	}
}

func (l *Loader) OnLoadFailure(a Attempt) {
	if l.stale(a) {
		return
	}

	if l.index < len(l.candidates)-1 {
		l.index++
		l.generation++
		slog.Debug("Trying fallback image URL",
			"index", l.index+1, "count", len(l.candidates), "url", l.candidates[l.index])
		return
	}

	l.state = LoadExhausted
	slog.Warn("All image URLs failed", "url", l.url)
	if l.onError != nil {
		l.onError()
	}
}

// Close discards the loader. Notifications arriving afterwards are ignored.
func (l *Loader) Close() {
	l.closed = true
}

func (l *Loader) State() LoadState {
	return l.state
}

// Current is the candidate being (or last) attempted.
func (l *Loader) Current() string {
	return l.candidates[l.index]
}

func (l *Loader) Index() int {
	return l.index
}

func (l *Loader) Failed() bool {
	return l.state == LoadExhausted
}

func (l *Loader) Candidates() []string {
	return append([]string(nil), l.candidates...)
}
