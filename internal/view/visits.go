package view

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// DefaultVisitLimit is how many recent visits keep their view.
const DefaultVisitLimit = 256

type visit struct {
	view *View
	// resume is set by a delete and cleared by the page load that shows it.
	resume bool
}

// Visits hands out one View per page visit. Every visit is a new activation
// with its own load. A visit's view is shown again only once per delete, on
// the redirect back to the table, so the local removal stays visible.
type Visits struct {
	backend Backend
	logger  *log.Logger
	limit   int

	mu     sync.Mutex
	visits map[string]*visit
	order  []string

	inflight sync.WaitGroup
}

func NewVisits(backend Backend, logger *log.Logger, limit int) *Visits {
	if limit <= 0 {
		limit = DefaultVisitLimit
	}
	return &Visits{
		backend: backend,
		logger:  logger,
		limit:   limit,
		visits:  make(map[string]*visit),
	}
}

// Start begins a new activation. The oldest visit is forgotten once more
// than limit are kept.
func (s *Visits) Start() *View {
	v := newView(s.backend, s.logger, uuid.NewString(), &s.inflight)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits[v.token] = &visit{view: v}
	s.order = append(s.order, v.token)
	for len(s.order) > s.limit {
		delete(s.visits, s.order[0])
		s.order = s.order[1:]
	}
	return v
}

// Resume returns the view of token when a delete on it has not been shown
// yet.
func (s *Visits) Resume(token string) (*View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vis, ok := s.visits[token]
	if !ok || !vis.resume {
		return nil, false
	}
	vis.resume = false
	return vis.view, true
}

// Delete removes id from the view of token and sends the backend delete. It
// reports false for an unknown token; the backend delete is sent anyway.
func (s *Visits) Delete(token, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	vis, ok := s.visits[token]
	if !ok {
		newView(s.backend, s.logger, "", &s.inflight).Delete(id)
		return false
	}
	vis.view.Delete(id)
	vis.resume = true
	return true
}

// Wait blocks until every backend delete sent by any visit has returned.
func (s *Visits) Wait() {
	s.inflight.Wait()
}
