package commands

import (
	"sync"

	"github.com/gridsnake/engine/session"
)

// boardFeed holds the most recent snapshot pushed over the api socket. A
// one-slot signal channel wakes the render loop without ever blocking the
// socket reader.
type boardFeed struct {
	sync.RWMutex
	latest session.Snapshot
	primed bool
	dirty  chan struct{}
}

func newBoardFeed() *boardFeed {
	return &boardFeed{dirty: make(chan struct{}, 1)}
}

func (bf *boardFeed) put(snap session.Snapshot) {
	bf.Lock()
	bf.latest = snap
	bf.primed = true
	bf.Unlock()

	select {
	case bf.dirty <- struct{}{}:
	default:
	}
}

func (bf *boardFeed) get() (session.Snapshot, bool) {
	bf.RLock()
	defer bf.RUnlock()

	return bf.latest, bf.primed
}

func (bf *boardFeed) updates() <-chan struct{} {
	return bf.dirty
}
