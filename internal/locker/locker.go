package locker

import "sync"

// Locker serializes work per account. Implementations guarantee that two
// calls for the same account never run fn concurrently, while calls for
// different accounts proceed independently.
type Locker interface {
	WithAccount(accountID int64, fn func() error) error
}

// AccountLocks owns one mutex per account identifier, created lazily on
// first demand and retained for the process lifetime.
type AccountLocks struct {
	locks sync.Map // accountID -> *sync.Mutex
}

// NewAccountLocks constructs an empty registry.
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{}
}

// WithAccount runs fn while holding the account's lock and always releases
// it, including when fn returns an error or panics.
func (l *AccountLocks) WithAccount(accountID int64, fn func() error) error {
	mu := l.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func (l *AccountLocks) lockFor(accountID int64) *sync.Mutex {
	// LoadOrStore resolves concurrent first-acquisitions atomically: both
	// racers converge on a single shared mutex instance.
	v, _ := l.locks.LoadOrStore(accountID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Noop runs fn without mutual exclusion. It substitutes for AccountLocks in
// unit tests that exercise the update sequence in isolation from locking.
type Noop struct{}

// WithAccount invokes fn directly.
func (Noop) WithAccount(_ int64, fn func() error) error {
	return fn()
}
