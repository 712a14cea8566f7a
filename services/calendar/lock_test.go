package calendar

import (
	"sync"
	"testing"

	"waybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockWindowSerializesSameWindow(t *testing.T) {
	var wl windowLocks
	w, err := models.WindowForDate("2024-06-04", 9, 17)
	require.NoError(t, err)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := wl.LockWindow(w)
			counter++
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockWindowIsIndependentAcrossWindows(t *testing.T) {
	var wl windowLocks
	a, err := models.WindowForDate("2024-06-04", 9, 17)
	require.NoError(t, err)
	b, err := models.WindowForDate("2024-06-06", 9, 17)
	require.NoError(t, err)

	releaseA := wl.LockWindow(a)
	defer releaseA()

	// Locking a different window must not block.
	done := make(chan struct{})
	go func() {
		release := wl.LockWindow(b)
		release()
		close(done)
	}()
	<-done
}
