package search

import (
	"context"
	"sync"
	"time"

	"github.com/courseos/backend/internal/models"
)

// manualClock is a Clock whose timers only run when fired by the test
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu       sync.Mutex
	d        time.Duration
	f        func()
	stopped  bool
	finished bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.finished {
		return false
	}
	t.stopped = true
	return true
}

// pending returns the timers that were neither stopped nor fired
func (c *manualClock) pending() []*manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending := make([]*manualTimer, 0)
	for _, t := range c.timers {
		t.mu.Lock()
		if !t.stopped && !t.finished {
			pending = append(pending, t)
		}
		t.mu.Unlock()
	}
	return pending
}

// Fire runs every pending timer and returns how many ran
func (c *manualClock) Fire() int {
	pending := c.pending()
	for _, t := range pending {
		t.mu.Lock()
		t.finished = true
		t.mu.Unlock()
		t.f()
	}
	return len(pending)
}

// blockingLookup is a Lookup whose responses are released by the test, one query at a time
type blockingLookup struct {
	mu       sync.Mutex
	calls    []string
	channels map[string]chan models.SearchResults
}

func newBlockingLookup() *blockingLookup {
	return &blockingLookup{channels: make(map[string]chan models.SearchResults)}
}

func (l *blockingLookup) channel(query string) chan models.SearchResults {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.channels[query]
	if !ok {
		ch = make(chan models.SearchResults, 1)
		l.channels[query] = ch
	}
	return ch
}

func (l *blockingLookup) Search(ctx context.Context, query string) models.SearchResults {
	l.mu.Lock()
	l.calls = append(l.calls, query)
	l.mu.Unlock()

	select {
	case results := <-l.channel(query):
		return results
	case <-ctx.Done():
		return emptyResults()
	}
}

func (l *blockingLookup) release(query string, results models.SearchResults) {
	l.channel(query) <- results
}

func (l *blockingLookup) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

// fakeSearcher is a Searcher over fixed catalog data
type fakeSearcher struct {
	mu        sync.Mutex
	modules   []models.Module
	lessons   []models.Lesson
	moduleErr error
	lessonErr error
	queries   []string
}

func (f *fakeSearcher) SearchModules(ctx context.Context, query string) ([]models.Module, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.moduleErr != nil {
		return nil, f.moduleErr
	}
	return f.modules, nil
}

func (f *fakeSearcher) SearchLessons(ctx context.Context, query string) ([]models.Lesson, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.lessonErr != nil {
		return nil, f.lessonErr
	}
	return f.lessons, nil
}

func resultsWithModule(id, title string) models.SearchResults {
	results := emptyResults()
	results.Modules = append(results.Modules, models.SearchResult{Type: models.SearchResultModule, ID: id, Title: title})
	return results
}
