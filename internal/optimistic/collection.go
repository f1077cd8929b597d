// Package optimistic implements local-first mutation of a keyed collection:
// the collection is changed immediately, a remote write is attempted, and the
// change is committed or rolled back when the write settles.
//
// A Mutation operates on a caller-supplied slice and keeps no state beyond the
// single in-flight change. The rollback contract is whole-collection
// snapshot/restore: concurrent local edits made to the same collection while a
// mutation is pending are overwritten by a rollback. Callers must therefore
// keep at most one mutation per collection in flight; the package does not
// queue or reject overlap.
package optimistic

import (
	"context"
	"slices"

	"github.com/pkg/errors"
)

// State tracks a mutation through its lifecycle.
type State int

const (
	// StatePending means the local change is applied and the remote write
	// has not settled.
	StatePending State = iota
	// StateCommitted means the remote write succeeded and the staged
	// collection is authoritative.
	StateCommitted
	// StateRolledBack means the remote write failed and the pre-mutation
	// snapshot is authoritative.
	StateRolledBack
)

// ErrSettled is returned when a mutation is driven past its terminal state.
var ErrSettled = errors.New("optimistic: mutation already settled")

// Mutation is one local-first change to a collection. Obtain one via Add,
// AddAt, Remove, or Replace; read the immediate local view with Staged; settle
// it with Commit, Resolve, Rollback, or Reconcile.
type Mutation[T any] struct {
	snapshot []T
	staged   []T
	state    State
}

// Add inserts item at the front of the collection.
func Add[T any](collection []T, item T) *Mutation[T] {
	return AddAt(collection, 0, item)
}

// AddAt inserts item at the given position. Positions beyond the end append.
func AddAt[T any](collection []T, index int, item T) *Mutation[T] {
	if index < 0 {
		index = 0
	}
	if index > len(collection) {
		index = len(collection)
	}

	staged := make([]T, 0, len(collection)+1)
	staged = append(staged, collection[:index]...)
	staged = append(staged, item)
	staged = append(staged, collection[index:]...)

	return &Mutation[T]{
		snapshot: slices.Clone(collection),
		staged:   staged,
	}
}

// Remove deletes every item matching the predicate.
func Remove[T any](collection []T, match func(T) bool) *Mutation[T] {
	staged := make([]T, 0, len(collection))
	for _, item := range collection {
		if !match(item) {
			staged = append(staged, item)
		}
	}

	return &Mutation[T]{
		snapshot: slices.Clone(collection),
		staged:   staged,
	}
}

// Replace swaps every item matching the predicate for the given item,
// preserving positions.
func Replace[T any](collection []T, match func(T) bool, item T) *Mutation[T] {
	staged := slices.Clone(collection)
	for i := range staged {
		if match(staged[i]) {
			staged[i] = item
		}
	}

	return &Mutation[T]{
		snapshot: slices.Clone(collection),
		staged:   staged,
	}
}

// Staged returns the collection with the local change applied. Valid in every
// state; after a rollback it still shows the change that was reverted.
func (m *Mutation[T]) Staged() []T {
	return m.staged
}

// State returns the mutation's current lifecycle state.
func (m *Mutation[T]) State() State {
	return m.state
}

// Changed reports whether the staged collection differs in length from the
// snapshot. A Remove whose predicate matched nothing is unchanged.
func (m *Mutation[T]) Changed() bool {
	return len(m.staged) != len(m.snapshot)
}

// Commit settles the mutation and returns the staged collection.
func (m *Mutation[T]) Commit() ([]T, error) {
	if m.state != StatePending {
		return nil, ErrSettled
	}
	m.state = StateCommitted

	return m.staged, nil
}

// Resolve settles an add whose server response carries an authoritative
// replacement record: the temporary entry (located by match) is swapped for
// resolved in place, preserving collection order, then the mutation commits.
func (m *Mutation[T]) Resolve(match func(T) bool, resolved T) ([]T, error) {
	if m.state != StatePending {
		return nil, ErrSettled
	}

	for i := range m.staged {
		if match(m.staged[i]) {
			m.staged[i] = resolved
		}
	}
	m.state = StateCommitted

	return m.staged, nil
}

// Rollback settles the mutation and returns the exact pre-mutation snapshot.
// The whole collection is restored; nothing is merged.
func (m *Mutation[T]) Rollback() ([]T, error) {
	if m.state != StatePending {
		return nil, ErrSettled
	}
	m.state = StateRolledBack

	return m.snapshot, nil
}

// Reconcile drives the mutation against a remote call: nil error commits and
// returns the staged collection, any error rolls back and returns the
// snapshot along with the remote error for the caller to surface. The engine
// never retries.
func (m *Mutation[T]) Reconcile(ctx context.Context, remote func(context.Context) error) ([]T, error) {
	if m.state != StatePending {
		return nil, ErrSettled
	}

	if err := remote(ctx); err != nil {
		restored, _ := m.Rollback()

		return restored, err
	}

	return m.Commit()
}
