package optimistic

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID      string
	Content string
}

func TestAdd_StagedImmediately(t *testing.T) {
	m := Add([]entry{{ID: "a"}}, entry{ID: "tmp_1", Content: "hello"})

	staged := m.Staged()
	require.Len(t, staged, 2)
	assert.Equal(t, "tmp_1", staged[0].ID)
	assert.Equal(t, "a", staged[1].ID)
	assert.Equal(t, StatePending, m.State())
}

func TestAddAt_Positions(t *testing.T) {
	base := []entry{{ID: "a"}, {ID: "b"}}

	tail := AddAt(base, 99, entry{ID: "c"}).Staged()
	require.Len(t, tail, 3)
	assert.Equal(t, "c", tail[2].ID)

	middle := AddAt(base, 1, entry{ID: "c"}).Staged()
	assert.Equal(t, []string{"a", "c", "b"}, ids(middle))
}

func TestResolve_ReplacesTempEntry(t *testing.T) {
	temp := entry{ID: "tmp_1", Content: "hello"}
	m := Add(nil, temp)

	final, err := m.Resolve(
		func(e entry) bool { return e.ID == "tmp_1" },
		entry{ID: "r1", Content: "hello"},
	)
	require.NoError(t, err)

	// Replaced, not appended: still one entry, now server-identified.
	require.Len(t, final, 1)
	assert.Equal(t, "r1", final[0].ID)
	assert.Equal(t, StateCommitted, m.State())
}

func TestReconcile_FailureRestoresSnapshot(t *testing.T) {
	base := []entry{{ID: "a"}, {ID: "b"}}
	m := Add(base, entry{ID: "tmp_1"})

	remoteErr := errors.New("network down")
	restored, err := m.Reconcile(context.Background(), func(context.Context) error {
		return remoteErr
	})

	require.ErrorIs(t, err, remoteErr)
	assert.Equal(t, []string{"a", "b"}, ids(restored))
	assert.Equal(t, StateRolledBack, m.State())
}

func TestReconcile_SuccessCommitsStaged(t *testing.T) {
	m := Remove([]entry{{ID: "a"}, {ID: "b"}}, func(e entry) bool { return e.ID == "a" })

	final, err := m.Reconcile(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(final))
	assert.Equal(t, StateCommitted, m.State())
}

func TestRemove_WholeSnapshotRestore(t *testing.T) {
	base := []entry{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m := Remove(base, func(e entry) bool { return e.ID == "b" })

	assert.Equal(t, []string{"a", "c"}, ids(m.Staged()))
	assert.True(t, m.Changed())

	restored, err := m.Rollback()
	require.NoError(t, err)
	// The full pre-mutation collection comes back, not just the removed item.
	assert.Equal(t, []string{"a", "b", "c"}, ids(restored))
}

func TestRemove_NoMatchUnchanged(t *testing.T) {
	m := Remove([]entry{{ID: "a"}}, func(e entry) bool { return e.ID == "z" })
	assert.False(t, m.Changed())
}

func TestReplace_PreservesPositions(t *testing.T) {
	base := []entry{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m := Replace(base, func(e entry) bool { return e.ID == "b" }, entry{ID: "b", Content: "edited"})

	staged := m.Staged()
	assert.Equal(t, []string{"a", "b", "c"}, ids(staged))
	assert.Equal(t, "edited", staged[1].Content)
}

func TestSettledMutationRejectsFurtherTransitions(t *testing.T) {
	m := Add(nil, entry{ID: "tmp_1"})

	_, err := m.Commit()
	require.NoError(t, err)

	_, err = m.Rollback()
	assert.ErrorIs(t, err, ErrSettled)

	_, err = m.Commit()
	assert.ErrorIs(t, err, ErrSettled)

	_, err = m.Reconcile(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrSettled)
}

func TestSnapshotIsolatedFromCallerSlice(t *testing.T) {
	base := []entry{{ID: "a"}}
	m := Remove(base, func(e entry) bool { return e.ID == "a" })

	// Caller keeps writing to its own slice during the pending window.
	base[0].ID = "mutated"

	restored, err := m.Rollback()
	require.NoError(t, err)
	assert.Equal(t, "a", restored[0].ID)
}

func ids(entries []entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}

	return out
}
