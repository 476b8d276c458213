package engine

import "sync"

// userLock serializes mutations per user so that concurrent toggles or
// weight submissions cannot interleave their read-modify-write, and the
// day-completion boundary check sees a consistent snapshot even when the
// toggles hit different exercises of the same day. Different users
// proceed independently. Mutexes are never released from the map; the
// key space is bounded by the number of users.
type userLock struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLock() *userLock {
	return &userLock{locks: make(map[int64]*sync.Mutex)}
}

func (k *userLock) get(userID int64) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		k.locks[userID] = l
	}
	return l
}
