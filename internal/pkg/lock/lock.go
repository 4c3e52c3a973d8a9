// Package lock provides per-chat locking for handlers that read and
// update per-chat state in multiple steps.
package lock

import "sync"

// chatMutex is the mutex stored per chat ID.
type chatMutex struct {
	mu sync.Mutex
}

// ChatLock serializes handling within a single chat. The bot processes
// each incoming update on its own goroutine, so two commands from the
// same chat can otherwise interleave between a state check and the
// update that follows it. Locks for different chats are independent.
type ChatLock struct {
	locks sync.Map // map[int64]*chatMutex
	pool  sync.Pool
}

// NewChatLock creates a new ChatLock instance.
func NewChatLock() *ChatLock {
	return &ChatLock{
		pool: sync.Pool{
			New: func() any {
				return &chatMutex{}
			},
		},
	}
}

// getLock retrieves or creates the mutex for the given chat ID.
func (cl *ChatLock) getLock(chatID int64) *chatMutex {
	if v, ok := cl.locks.Load(chatID); ok {
		return v.(*chatMutex)
	}

	newLock := cl.pool.Get().(*chatMutex)

	// Another goroutine may have stored a mutex for this chat in the
	// meantime; keep theirs and return ours to the pool.
	actual, loaded := cl.locks.LoadOrStore(chatID, newLock)
	if loaded {
		cl.pool.Put(newLock)
	}
	return actual.(*chatMutex)
}

// Lock acquires the lock for a chat, blocking until it is available.
func (cl *ChatLock) Lock(chatID int64) {
	cl.getLock(chatID).mu.Lock()
}

// Unlock releases the lock for a chat.
func (cl *ChatLock) Unlock(chatID int64) {
	if v, ok := cl.locks.Load(chatID); ok {
		v.(*chatMutex).mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false otherwise.
func (cl *ChatLock) TryLock(chatID int64) bool {
	return cl.getLock(chatID).mu.TryLock()
}

// WithLock executes fn while holding the chat's lock.
func (cl *ChatLock) WithLock(chatID int64, fn func() error) error {
	cl.Lock(chatID)
	defer cl.Unlock(chatID)
	return fn()
}

// IsLocked checks if a chat's lock is currently held.
// Note: This is a point-in-time check and may change immediately after.
func (cl *ChatLock) IsLocked(chatID int64) bool {
	if v, ok := cl.locks.Load(chatID); ok {
		lock := v.(*chatMutex)
		if lock.mu.TryLock() {
			lock.mu.Unlock()
			return false
		}
		return true
	}
	return false
}
