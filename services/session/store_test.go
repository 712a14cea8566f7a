package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"waybook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, time.Minute), mr
}

func TestPutGetDeleteRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := models.NewDateSelection("15550001", []string{"2024-06-03", "2024-06-04"})
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "15550001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StepAwaitingDate, got.Step)
	assert.Equal(t, []string{"2024-06-03", "2024-06-04"}, got.Dates)

	require.NoError(t, store.Delete(ctx, "15550001"))
	got, err = store.Get(ctx, "15550001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetReturnsNilForUnknownSender(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionsExpire(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, models.NewStartSession("15550001")))
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "15550001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPutRejectsIllegalSession(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Put(context.Background(), models.Session{Sender: "s", Step: models.StepAwaitingDate})
	assert.Error(t, err)
}

func TestWithSenderLockSerializesPerSender(t *testing.T) {
	store, _ := newTestStore(t)

	// A plain counter incremented under the lock; races would lose updates.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithSenderLock("15550001", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}
