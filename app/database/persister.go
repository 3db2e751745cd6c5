package database

import (
	"log"
	"sync"

	"PanaderiaApp/app/store"
)

// Persister writes store snapshots to the local database in the background.
// Saves are fire-and-forget: Enqueue never blocks the mutating operation and
// a failed write is logged and swallowed. The in-memory store remains the
// authoritative state for the session, and the next mutation will persist
// again by natural flow.
type Persister struct {
	db   *LocalDB
	ch   chan store.Snapshot
	wg   sync.WaitGroup
	once sync.Once
}

// NewPersister starts the background save worker.
func NewPersister(db *LocalDB) *Persister {
	p := &Persister{
		db: db,
		ch: make(chan store.Snapshot, 16),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Enqueue schedules a snapshot write. When the buffer is full the oldest
// pending snapshot is dropped: only the latest state matters.
func (p *Persister) Enqueue(snap store.Snapshot) {
	for {
		select {
		case p.ch <- snap:
			return
		default:
		}
		select {
		case <-p.ch:
		default:
		}
	}
}

func (p *Persister) run() {
	defer p.wg.Done()
	for snap := range p.ch {
		if err := p.db.SaveSnapshot(snap); err != nil {
			log.Printf("[WARNING] snapshot save failed: %v", err)
		}
	}
}

// Close drains pending writes and stops the worker.
func (p *Persister) Close() {
	p.once.Do(func() {
		close(p.ch)
	})
	p.wg.Wait()
}
