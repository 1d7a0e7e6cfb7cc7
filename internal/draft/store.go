// Package draft keeps in-progress editor sessions in memory. A draft belongs to
// the operator who opened it and expires after an idle TTL.
package draft

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
)

// ErrLimitReached is returned by Put when the owner already holds the maximum
// number of drafts.
var ErrLimitReached = errors.New("draft limit reached")

// Store holds drafts of type T keyed by id. The store only guards its own map;
// T is expected to synchronize its own mutations.
type Store[T any] struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]*entry[T]
	ttl         time.Duration
	maxPerOwner int
	now         func() time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

type entry[T any] struct {
	owner   uuid.UUID
	value   T
	touched time.Time
}

// New creates a store. ttl is the idle lifetime of a draft and maxPerOwner
// caps how many drafts a single operator may hold (0 means unlimited).
func New[T any](ttl time.Duration, maxPerOwner int) *Store[T] {
	return &Store[T]{
		entries:     make(map[uuid.UUID]*entry[T]),
		ttl:         ttl,
		maxPerOwner: maxPerOwner,
		now:         time.Now,
		stop:        make(chan struct{}),
	}
}

// StartJanitor removes expired drafts every interval until Stop is called.
func (s *Store[T]) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Stop terminates the janitor goroutine. It is safe to call more than once.
func (s *Store[T]) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Put stores value for owner under a fresh id.
func (s *Store[T]) Put(owner uuid.UUID, value T) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.maxPerOwner > 0 {
		held := 0
		for _, e := range s.entries {
			if e.owner == owner && !s.expired(e, now) {
				held++
			}
		}
		if held >= s.maxPerOwner {
			return uuid.Nil, fmt.Errorf("%w: %d drafts open", ErrLimitReached, held)
		}
	}

	id := uuid.New()
	s.entries[id] = &entry[T]{owner: owner, value: value, touched: now}
	return id, nil
}

// Get returns the draft and refreshes its idle timer. Drafts of other owners
// and expired drafts are reported as domain.ErrNotFound.
func (s *Store[T]) Get(owner, id uuid.UUID) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e, ok := s.entries[id]
	if !ok || e.owner != owner {
		return zero, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, id)
		return zero, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	e.touched = now
	return e.value, nil
}

// Delete discards a draft.
func (s *Store[T]) Delete(owner, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || e.owner != owner {
		return fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
	}
	delete(s.entries, id)
	return nil
}

// Sweep removes expired drafts and returns how many were removed.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored drafts, expired ones included.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store[T]) expired(e *entry[T], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.touched) > s.ttl
}
