package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycalc/internal/domain"
	"keycalc/internal/engine"
	"keycalc/internal/services/session"
	"keycalc/internal/store"
)

func TestService_SubmitKeyPersists(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := session.New(st)

	for _, k := range []domain.Key{"1", "2", "+", "3"} {
		_, err := svc.SubmitKey(ctx, "pad", k)
		require.NoError(t, err)
	}

	// A fresh service over the same store continues the expression.
	display, err := session.New(st).SubmitKey(ctx, "pad", "=")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayState{Text: "15", ShowClear: domain.ClearEntry}, display)

	stored, ok, err := st.LoadSession("pad")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "15", stored.RawInput)
	assert.NotZero(t, stored.UpdatedUTC)
}

func TestService_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := session.New(store.NewMemoryStore())

	_, err := svc.SubmitKey(ctx, "a", "7")
	require.NoError(t, err)
	_, err = svc.SubmitKey(ctx, "b", "9")
	require.NoError(t, err)

	a, err := svc.Display(ctx, "a")
	require.NoError(t, err)
	b, err := svc.Display(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "7", a.Text)
	assert.Equal(t, "9", b.Text)
}

func TestService_UnknownKey(t *testing.T) {
	ctx := context.Background()
	svc := session.New(store.NewMemoryStore())
	_, err := svc.SubmitKey(ctx, "pad", "4")
	require.NoError(t, err)

	display, err := svc.SubmitKey(ctx, "pad", "^")
	assert.ErrorIs(t, err, session.ErrUnknownKey)
	assert.Equal(t, "4", display.Text)
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	svc := session.New(store.NewMemoryStore())
	_, err := svc.SubmitKey(ctx, "pad", "4")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, "pad"))
	display, err := svc.Display(ctx, "pad")
	require.NoError(t, err)
	assert.Equal(t, domain.DisplayState{Text: "0", ShowClear: domain.ClearAll}, display)
}

func TestService_Evaluate(t *testing.T) {
	ctx := context.Background()
	svc := session.New(store.NewMemoryStore())

	got, err := svc.Evaluate(ctx, "3+4*2")
	require.NoError(t, err)
	assert.Equal(t, "11", got)

	_, err = svc.Evaluate(ctx, "10/0")
	assert.ErrorIs(t, err, engine.ErrDivisionByZero)
}

func TestService_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := session.New(store.NewMemoryStore())

	_, err := svc.SubmitKey(ctx, "pad", "1")
	assert.ErrorIs(t, err, context.Canceled)
}

type failingStore struct{ *store.MemoryStore }

func (failingStore) SaveSession(domain.SessionID, domain.Session) error {
	return errors.New("disk full")
}

func TestService_SaveError(t *testing.T) {
	st := failingStore{store.NewMemoryStore()}
	_, err := session.New(st).SubmitKey(context.Background(), "pad", "1")
	assert.ErrorContains(t, err, "disk full")
}

func TestService_ConcurrentKeysOnOneSession(t *testing.T) {
	ctx := context.Background()
	svc := session.New(store.NewMemoryStore())
	_, err := svc.SubmitKey(ctx, "pad", "+/-")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SubmitKey(ctx, "pad", "1")
		}()
	}
	wg.Wait()

	sess, err := svc.Session("pad")
	require.NoError(t, err)
	// "-0" takes the first digit in place of the zero, the rest append.
	assert.Len(t, sess.RawInput, 51)
	assert.Zero(t, svc.LockCount())
}

func TestService_LocksAreReleased(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := session.New(st)

	const n = 1000
	for i := 0; i < n; i++ {
		_, err := svc.SubmitKey(ctx, domain.SessionID(fmt.Sprintf("s%d", i)), "1")
		require.NoError(t, err)
	}
	assert.Zero(t, svc.LockCount())

	for i := 0; i < n; i += 2 {
		require.NoError(t, svc.Reset(ctx, domain.SessionID(fmt.Sprintf("s%d", i))))
	}
	assert.Zero(t, svc.LockCount())
	assert.Equal(t, n/2, st.Len())

	assert.Equal(t, n/2, st.PruneIdle(time.Now().Add(time.Hour)))
	assert.Zero(t, st.Len())
	assert.Zero(t, svc.LockCount())
}
