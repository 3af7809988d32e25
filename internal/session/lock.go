package session

import "sync"

type refMutex struct {
	sync.Mutex
	refs int
}

// keyedMutex serializes work per session ID. Unused locks are removed.
type keyedMutex struct {
	// locks stores a mutex per session ID that is currently locked or waited for
	locks map[string]*refMutex

	// mutex protects locks
	mutex sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock locks id and returns the function that unlocks it.
func (k *keyedMutex) Lock(id string) func() {
	k.mutex.Lock()
	lock, ok := k.locks[id]
	if !ok {
		lock = &refMutex{}
		k.locks[id] = lock
	}
	lock.refs++
	k.mutex.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		k.mutex.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(k.locks, id)
		}
		k.mutex.Unlock()
	}
}

// Len returns the number of IDs that are locked or waited for.
func (k *keyedMutex) Len() int {
	k.mutex.Lock()
	defer k.mutex.Unlock()

	return len(k.locks)
}
