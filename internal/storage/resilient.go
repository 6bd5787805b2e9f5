package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Resilient wraps a durable Store and degrades to an in-memory store for
// the remainder of the session on the first failure. The simulation must
// keep running with no durable persistence, so there is no retry and no
// recovery back to the primary.
type Resilient struct {
	mu       sync.Mutex
	primary  Store
	fallback *Memory
	degraded bool
	logger   *log.Logger
}

var _ Store = (*Resilient)(nil)

// NewResilient wraps primary. A nil primary starts degraded immediately.
func NewResilient(primary Store, logger *log.Logger) *Resilient {
	if logger == nil {
		logger = log.Default()
	}
	return &Resilient{
		primary:  primary,
		fallback: NewMemory(),
		degraded: primary == nil,
		logger:   logger,
	}
}

// Degraded reports whether the store has fallen back to memory.
func (r *Resilient) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.degraded
}

// degrade switches to the in-memory fallback. Caller holds the lock.
func (r *Resilient) degrade(op string, err error) {
	r.degraded = true
	r.logger.Warn("storage degraded to in-memory fallback", "op", op, "err", err)
}

// Get returns the value stored under key, if any.
func (r *Resilient) Get(key string) ([]byte, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.degraded {
		v, ok, err := r.primary.Get(key)
		if err == nil {
			return v, ok, nil
		}
		r.degrade("get", err)
	}
	return r.fallback.Get(key)
}

// Put stores value under key.
func (r *Resilient) Put(key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.degraded {
		if err := r.primary.Put(key, value); err != nil {
			r.degrade("put", err)
		} else {
			return nil
		}
	}
	return r.fallback.Put(key, value)
}

// Delete removes key.
func (r *Resilient) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.degraded {
		if err := r.primary.Delete(key); err != nil {
			r.degrade("delete", err)
		} else {
			return nil
		}
	}
	return r.fallback.Delete(key)
}

// Clear removes every key.
func (r *Resilient) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.degraded {
		if err := r.primary.Clear(); err != nil {
			r.degrade("clear", err)
		} else {
			return nil
		}
	}
	return r.fallback.Clear()
}

// Close closes the primary store, if it is still attached.
func (r *Resilient) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.primary != nil {
		return r.primary.Close()
	}
	return nil
}
