// Package view holds the dashboard's list-and-delete state for proxy requests.
package view

import (
	"context"
	"log"
	"sync"

	"github.com/suar-net/suar-dash/internal/model"
)

// Backend is the subset of the API client the view needs.
type Backend interface {
	ListProxyRequests(ctx context.Context) ([]model.ProxyRequest, error)
	DeleteProxyRequest(ctx context.Context, id string) error
}

// View is one activation of the proxy request table. Its records are loaded
// once, on Mount, and afterwards only change through Delete.
type View struct {
	backend Backend
	logger  *log.Logger

	mu      sync.Mutex
	records []model.ProxyRequest

	mount    sync.Once
	inflight *sync.WaitGroup
	token    string
}

// New returns a standalone view. Page visits get theirs from Visits.
func New(backend Backend, logger *log.Logger) *View {
	return newView(backend, logger, "", &sync.WaitGroup{})
}

func newView(backend Backend, logger *log.Logger, token string, inflight *sync.WaitGroup) *View {
	return &View{
		backend:  backend,
		logger:   logger,
		records:  []model.ProxyRequest{},
		inflight: inflight,
		token:    token,
	}
}

// Token identifies the visit this view belongs to. It is empty for
// standalone views.
func (v *View) Token() string {
	return v.token
}

// Mount activates the view. Only the first call loads records; it blocks
// concurrent callers until the load has finished. The load is detached from
// ctx cancellation, so an abandoned page request does not abort it.
func (v *View) Mount(ctx context.Context) {
	v.mount.Do(func() {
		v.load(context.WithoutCancel(ctx))
	})
}

func (v *View) load(ctx context.Context) {
	records, err := v.backend.ListProxyRequests(ctx)
	if err != nil {
		v.logger.Printf("ERROR: failed to load proxy requests: %v", err)
		return
	}

	v.mu.Lock()
	v.records = records
	v.mu.Unlock()
}

// Records returns a copy of the current snapshot.
func (v *View) Records() []model.ProxyRequest {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]model.ProxyRequest, len(v.records))
	copy(out, v.records)
	return out
}

// Delete removes id from the snapshot immediately and then asks the backend
// to delete it. The backend call is fire-and-forget: its outcome is only
// logged and the local removal is never rolled back. An id that is not in
// the snapshot still produces a backend request.
func (v *View) Delete(id string) {
	v.mu.Lock()
	v.records = model.FilterByID(v.records, id)
	v.mu.Unlock()

	v.inflight.Add(1)
	go func() {
		defer v.inflight.Done()
		if err := v.backend.DeleteProxyRequest(context.Background(), id); err != nil {
			v.logger.Printf("ERROR: failed to delete proxy request %s: %v", id, err)
		}
	}()
}

// Wait blocks until every backend delete dispatched through the view's wait
// group has returned.
func (v *View) Wait() {
	v.inflight.Wait()
}
