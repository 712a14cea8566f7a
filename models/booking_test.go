package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowForDate(t *testing.T) {
	w, err := WindowForDate("2024-06-04", 9, 17)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.June, 4, 9, 0, 0, 0, time.Local), w.Start)
	assert.Equal(t, time.Date(2024, time.June, 4, 17, 0, 0, 0, time.Local), w.End)
	assert.True(t, w.Start.Before(w.End))
}

func TestWindowForDateRejectsBadInput(t *testing.T) {
	_, err := WindowForDate("tomorrow", 9, 17)
	assert.Error(t, err)
}

func TestWindowKeyIsStable(t *testing.T) {
	a, err := WindowForDate("2024-06-04", 9, 17)
	require.NoError(t, err)
	b, err := WindowForDate("2024-06-04", 9, 17)
	require.NoError(t, err)
	c, err := WindowForDate("2024-06-06", 9, 17)
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
