package services

import (
	"PanaderiaApp/app/database"
	"PanaderiaApp/app/store"
)

// BaseService provides the store handle and the persistence trigger shared
// by all services. The store is passed in by the composition root; services
// never reach for global state.
type BaseService struct {
	store     *store.Store
	persister *database.Persister
}

// NewBaseService creates a base service around the given store. The
// persister may be nil (e.g. in tests), in which case persist is a no-op.
func NewBaseService(st *store.Store, persister *database.Persister) *BaseService {
	return &BaseService{store: st, persister: persister}
}

// Store returns the underlying entity store.
func (b *BaseService) Store() *store.Store {
	return b.store
}

// persist schedules a fire-and-forget snapshot write. It is called after
// every successful mutation; failures never surface here.
func (b *BaseService) persist() {
	if b.persister != nil {
		b.persister.Enqueue(b.store.Snapshot())
	}
}
