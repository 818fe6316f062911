package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanakku/internal/core"
)

func TestShowAndCurrent(t *testing.T) {
	c := NewCenter()
	n := c.Show("saved", core.NotifySuccess)
	assert.NotEmpty(t, n.ID)

	got, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "saved", got.Message)
	assert.Equal(t, core.NotifySuccess, got.Kind)
}

func TestAutoDismiss(t *testing.T) {
	c := NewCenterTTL(20 * time.Millisecond)
	c.Show("gone soon", core.NotifyInfo)

	assert.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestShowSupersedesPrevious(t *testing.T) {
	c := NewCenterTTL(40 * time.Millisecond)
	c.Show("first", core.NotifyInfo)
	time.Sleep(25 * time.Millisecond)

	// The replacement resets the clock: after another 25ms the second
	// notification must still be visible even though the first timer
	// would have fired by now.
	c.Show("second", core.NotifyError)
	time.Sleep(25 * time.Millisecond)

	got, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "second", got.Message)

	assert.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestDismiss(t *testing.T) {
	c := NewCenter()
	c.Show("bye", core.NotifyInfo)
	c.Dismiss()
	_, ok := c.Current()
	assert.False(t, ok)

	// Dismissing with nothing visible is a no-op.
	c.Dismiss()
}
