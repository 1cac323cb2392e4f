// SPDX-License-Identifier: MIT

// Package indexpq implements an indexed min-priority queue over integer keys [0, n).
//
// Each key is present at most once. DecreaseKey updates an enqueued key in place,
// which is what eager Dijkstra and eager Prim need: at most V entries ever live in
// the heap, instead of the lazy "push duplicates, skip stale" pattern.
//
// Ordering: smaller priority first; equal priorities are broken by the smaller key.
// The tie-break does not depend on insertion history, so DeleteMin is deterministic
// for a given set of (key, priority) pairs.
//
// Complexity: Insert, DecreaseKey, DeleteMin O(log n); Contains, Len O(1).
package indexpq

import (
	"cmp"
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors for queue misuse.
var (
	// ErrAlreadyPresent is returned by Insert for a key that is already enqueued.
	ErrAlreadyPresent = errors.New("indexpq: key already present")

	// ErrNotPresent is returned by DecreaseKey and Priority for a key that is not enqueued.
	ErrNotPresent = errors.New("indexpq: key not present")

	// ErrKeyOutOfRange is returned for keys outside [0, n).
	ErrKeyOutOfRange = errors.New("indexpq: key out of range")

	// ErrEmpty is returned by DeleteMin on an empty queue.
	ErrEmpty = errors.New("indexpq: queue is empty")
)

// IndexMinPQ is a binary heap of keys ordered by a comparable priority.
type IndexMinPQ[P cmp.Ordered] struct {
	h entries[P]
}

// New creates an empty queue accepting keys in [0, n).
func New[P cmp.Ordered](n int) *IndexMinPQ[P] {
	q := &IndexMinPQ[P]{h: entries[P]{
		keys: make([]int, 0, n),
		pos:  make([]int, n),
		prio: make([]P, n),
	}}
	for i := range q.h.pos {
		q.h.pos[i] = -1 // absent
	}

	return q
}

// Insert enqueues key k with priority p.
//
// Errors:
//   - ErrKeyOutOfRange if k is outside [0, n).
//   - ErrAlreadyPresent if k is already enqueued.
func (q *IndexMinPQ[P]) Insert(k int, p P) error {
	if err := q.check(k); err != nil {
		return err
	}
	if q.h.pos[k] >= 0 {
		return fmt.Errorf("%w: %d", ErrAlreadyPresent, k)
	}
	q.h.prio[k] = p
	heap.Push(&q.h, k)

	return nil
}

// DecreaseKey lowers the priority of an enqueued key to p.
//
// p must not exceed the current priority; that is a precondition, not a checked error.
// The heap is restored either way, so a violation reorders correctly but defeats
// the caller's invariants.
//
// Errors:
//   - ErrKeyOutOfRange if k is outside [0, n).
//   - ErrNotPresent if k is not enqueued.
func (q *IndexMinPQ[P]) DecreaseKey(k int, p P) error {
	if err := q.check(k); err != nil {
		return err
	}
	i := q.h.pos[k]
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotPresent, k)
	}
	q.h.prio[k] = p
	heap.Fix(&q.h, i)

	return nil
}

// DeleteMin removes and returns the key with the smallest priority together with that priority.
//
// Errors:
//   - ErrEmpty if the queue holds no keys.
func (q *IndexMinPQ[P]) DeleteMin() (int, P, error) {
	if q.h.Len() == 0 {
		var zero P
		return -1, zero, ErrEmpty
	}
	k := heap.Pop(&q.h).(int)

	return k, q.h.prio[k], nil
}

// Priority returns the current priority of an enqueued key.
func (q *IndexMinPQ[P]) Priority(k int) (P, error) {
	if err := q.check(k); err != nil {
		var zero P
		return zero, err
	}
	if q.h.pos[k] < 0 {
		var zero P
		return zero, fmt.Errorf("%w: %d", ErrNotPresent, k)
	}

	return q.h.prio[k], nil
}

// Contains reports whether k is enqueued. Out-of-range keys are never contained.
func (q *IndexMinPQ[P]) Contains(k int) bool {
	return k >= 0 && k < len(q.h.pos) && q.h.pos[k] >= 0
}

// IsEmpty reports whether the queue holds no keys.
func (q *IndexMinPQ[P]) IsEmpty() bool { return q.h.Len() == 0 }

// Len returns the number of enqueued keys.
func (q *IndexMinPQ[P]) Len() int { return q.h.Len() }

func (q *IndexMinPQ[P]) check(k int) error {
	if k < 0 || k >= len(q.h.pos) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrKeyOutOfRange, k, len(q.h.pos))
	}

	return nil
}

// entries implements heap.Interface over keys, keeping pos in sync on every swap.
//
//	keys[i] = key stored at heap slot i
//	pos[k]  = heap slot of key k, or -1
//	prio[k] = priority of key k (stale once k leaves the heap)
type entries[P cmp.Ordered] struct {
	keys []int
	pos  []int
	prio []P
}

func (h entries[P]) Len() int { return len(h.keys) }

func (h entries[P]) Less(i, j int) bool {
	a, b := h.keys[i], h.keys[j]
	if c := cmp.Compare(h.prio[a], h.prio[b]); c != 0 {
		return c < 0
	}

	return a < b
}

func (h entries[P]) Swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.pos[h.keys[i]] = i
	h.pos[h.keys[j]] = j
}

// Push is called by heap.Push; x must be an int key.
func (h *entries[P]) Push(x any) {
	k := x.(int)
	h.pos[k] = len(h.keys)
	h.keys = append(h.keys, k)
}

// Pop is called by heap.Pop after the minimum was swapped to the end.
func (h *entries[P]) Pop() any {
	n := len(h.keys)
	k := h.keys[n-1]
	h.keys = h.keys[:n-1]
	h.pos[k] = -1

	return k
}
