package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/courseos/backend/internal/models"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last keystroke before a search is dispatched
const DefaultDebounce = 300 * time.Millisecond

// Lookup runs one search request
type Lookup interface {
	Search(ctx context.Context, query string) models.SearchResults
}

// State is a snapshot of a search session
type State struct {
	Query       string               `json:"query"`
	IsSearching bool                 `json:"isSearching"`
	Results     models.SearchResults `json:"results"`
}

// Listener receives every state change of an engine
type Listener func(State)

// EngineConfig holds the tunables of an engine
type EngineConfig struct {
	// Debounce defaults to DefaultDebounce when zero
	Debounce time.Duration
	// LookupTimeout bounds each dispatched lookup; zero means no bound
	LookupTimeout time.Duration
	// Clock defaults to the wall clock when nil
	Clock Clock
}

// Engine is one debounced search session where only the latest query may publish results.
//
// Every query change and every dispatch advances a generation counter. A lookup result is applied
// only if the generation it captured is still current, so a slow response to an earlier query can never
// overwrite the results of a later one.
type Engine struct {
	lookup        Lookup
	clock         Clock
	debounce      time.Duration
	lookupTimeout time.Duration
	logger        *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// notifyMu is taken before mu is released so listeners see states in order
	notifyMu sync.Mutex

	mu           sync.Mutex
	state        State
	generation   uint64
	timer        Timer
	listeners    map[int]Listener
	nextListener int
	closed       bool
}

// NewEngine creates a new idle search engine
func NewEngine(lookup Lookup, cfg EngineConfig, logger *zap.Logger) *Engine {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		lookup:        lookup,
		clock:         cfg.Clock,
		debounce:      cfg.Debounce,
		lookupTimeout: cfg.LookupTimeout,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		state:         State{Results: emptyResults()},
		listeners:     make(map[int]Listener),
	}
}

// State returns the current state snapshot
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe registers "fn" for state changes and returns a function that removes it.
// Listeners are called one at a time, in state order, and must not call back into the engine.
func (e *Engine) Subscribe(fn Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextListener
	e.nextListener++
	e.listeners[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

// SetQuery records a keystroke.
//
// A blank query clears the session immediately. Any other new query marks the session as searching
// and restarts the debounce timer; the lookup is dispatched once the timer expires.
func (e *Engine) SetQuery(text string) {
	if strings.TrimSpace(text) == "" {
		e.ClearSearch()
		return
	}

	e.mu.Lock()
	if e.closed || text == e.state.Query {
		e.mu.Unlock()
		return
	}

	e.generation++
	armed := e.generation
	e.state.Query = text
	e.state.IsSearching = true
	e.stopTimerLocked()
	e.timer = e.clock.AfterFunc(e.debounce, func() {
		e.dispatch(armed)
	})

	e.unlockAndPublish()
}

// ClearSearch resets the query and results and drops any pending or in-flight request
func (e *Engine) ClearSearch() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	e.stopTimerLocked()
	e.generation++
	changed := e.state.Query != "" || e.state.IsSearching || e.state.Results.Len() > 0
	e.state = State{Results: emptyResults()}

	if !changed {
		e.mu.Unlock()
		return
	}
	e.unlockAndPublish()
}

// Close stops the engine. Pending timers are stopped, in-flight lookups are cancelled and
// no listener is called afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.stopTimerLocked()
	e.cancel()
	e.listeners = make(map[int]Listener)
}

// dispatch runs when the debounce timer armed at generation "armed" expires
func (e *Engine) dispatch(armed uint64) {
	e.mu.Lock()
	if e.closed || armed != e.generation {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	e.generation++
	generation := e.generation
	query := e.state.Query
	e.mu.Unlock()

	go e.run(generation, query)
}

func (e *Engine) run(generation uint64, query string) {
	ctx := e.ctx
	if e.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.lookupTimeout)
		defer cancel()
	}

	results := e.lookup.Search(ctx, query)

	e.mu.Lock()
	if e.closed || generation != e.generation {
		e.mu.Unlock()
		e.logger.Debug("discarding stale search response", zap.String("query", query))
		return
	}
	e.state.Results = results
	e.state.IsSearching = false

	e.unlockAndPublish()
}

func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// unlockAndPublish releases mu and hands the current state to every listener
func (e *Engine) unlockAndPublish() {
	state := e.state
	listeners := make([]Listener, 0, len(e.listeners))
	for _, fn := range e.listeners {
		listeners = append(listeners, fn)
	}

	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
