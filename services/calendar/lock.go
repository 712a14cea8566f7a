package calendar

import (
	"sync"

	"waybook/models"
)

// windowLocks hands out one mutex per booking window, keyed by the window's
// time bounds. It is the serialization point that closes the gap between
// the conflict check and the insert.
type windowLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (wl *windowLocks) LockWindow(w models.Window) (release func()) {
	wl.mu.Lock()
	if wl.locks == nil {
		wl.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := wl.locks[w.Key()]
	if !ok {
		lock = &sync.Mutex{}
		wl.locks[w.Key()] = lock
	}
	wl.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
