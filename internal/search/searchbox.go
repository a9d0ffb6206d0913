package search

import (
	"strings"
	"sync"
	"time"

	"github.com/psaswat/testyourmodels/internal/models"
)

type BoxState string

const (
	StateIdle           BoxState = "idle"
	StateTyping         BoxState = "typing"
	StateShowingResults BoxState = "showingResults"
	StateDismissed      BoxState = "dismissed"
)

// Box is the search-as-you-type state machine, independent of any rendering
// framework. Two external events drive it (text input, click-outside) plus one
// internal debounce timer. Results come from Filter over an already-loaded
// in-memory corpus.
type Box struct {
	mu        sync.Mutex
	state     BoxState
	query     string
	results   []models.Post
	corpus    func() []models.Post
	debounce  time.Duration
	timer     *time.Timer
	seq       int
	onResults func([]models.Post)
}

// NewBox builds a search box over corpus. onResults may be nil; when set it
// fires after every debounced evaluation.
func NewBox(corpus func() []models.Post, debounce time.Duration, onResults func([]models.Post)) *Box {
	return &Box{
		state:     StateIdle,
		corpus:    corpus,
		debounce:  debounce,
		onResults: onResults,
	}
}

// Input records a text change and arms the debounce timer. The evaluation
// runs once the user pauses for the debounce window.
func (b *Box) Input(query string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.query = query
	b.state = StateTyping
	b.seq++

	if b.timer != nil {
		b.timer.Stop()
	}

	seq := b.seq
	b.timer = time.AfterFunc(b.debounce, func() {
		b.evaluate(seq)
	})
}

// ClickOutside dismisses the box. Any pending evaluation is discarded.
func (b *Box) ClickOutside() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.state = StateDismissed
	b.results = nil
}

// Flush runs the pending evaluation immediately. Used for the Enter key and
// for deterministic tests.
func (b *Box) Flush() {
	b.mu.Lock()
	seq := b.seq
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	b.evaluate(seq)
}

func (b *Box) evaluate(seq int) {
	b.mu.Lock()

	// A newer input or a dismissal superseded this evaluation.
	if seq != b.seq || b.state != StateTyping {
		b.mu.Unlock()
		return
	}

	if strings.TrimSpace(b.query) == "" {
		b.state = StateIdle
		b.results = []models.Post{}
	} else {
		b.results = Filter(b.query, b.corpus())
		b.state = StateShowingResults
	}

	results := b.results
	notify := b.onResults
	b.mu.Unlock()

	if notify != nil {
		notify(results)
	}
}

func (b *Box) State() BoxState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Box) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

func (b *Box) Results() []models.Post {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.results
}
