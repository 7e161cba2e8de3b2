package session

import (
	"sync"

	"storefront-gateway/internal/model"
)

// Registry holds the live checkout sessions. Each entry admits one
// in-flight step at a time: Acquire marks the session busy and a second
// caller gets ErrBusy until the first releases. Sessions are independent
// of each other and of the auth cookie.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session *model.CheckoutSession
	busy    bool
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Put registers a session under its checkout id.
func (r *Registry) Put(cs *model.CheckoutSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[cs.ID] = &entry{session: cs}
}

// Acquire returns the session and marks it busy. The caller must invoke
// release exactly once when its step finishes, success or not.
func (r *Registry) Acquire(id string) (*model.CheckoutSession, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, nil, model.ErrCheckoutNotFound
	}
	if e.busy {
		return nil, nil, model.ErrBusy
	}
	e.busy = true

	release := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if e, ok := r.sessions[id]; ok {
			e.busy = false
		}
	}
	return e.session, release, nil
}

// Get returns the session without acquiring it (read-only snapshots).
func (r *Registry) Get(id string) (*model.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrCheckoutNotFound
	}
	return e.session, nil
}

// Remove discards an abandoned or completed session. The backend aggregate
// is simply orphaned; it carries no committed payment.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
