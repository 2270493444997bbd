package main

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/jmlim/smartstore-lister/smartstore"
)

// Lister is a marketplace handler capable of registering listings. Each
// supported platform provides one implementation.
type Lister interface {
	Register(ctx context.Context, input smartstore.ListingInput) (smartstore.SubmitResponse, error)
	RegisterGroup(ctx context.Context, input smartstore.GroupListingInput) (smartstore.SubmitResponse, error)
}

// Ensure the smartstore service satisfies Lister
var _ Lister = (*smartstore.Service)(nil)

// Registry maps platform identifiers to their Lister handlers. It is
// populated explicitly at startup; there is no lookup by naming convention.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Lister
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Lister)}
}

func (r *Registry) Add(platform string, handler Lister) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[platform] = handler
}

func (r *Registry) Get(platform string) (Lister, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[platform]
	if !ok {
		return nil, errors.Errorf("no handler registered for platform %q", platform)
	}
	return handler, nil
}
