package state

import (
	"context"
	"testing"

	"github.com/cbodonnell/purgatorium/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	initial, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, initial.Bullets)

	assert.Error(t, m.Set(ctx, nil))

	require.NoError(t, m.Set(ctx, &messages.WorldSnapshot{Frame: 7, Bullets: []messages.BulletSnapshot{{ID: "a"}}}))

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Frame)

	got.Bullets[0].ID = "changed"
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Bullets[0].ID, "Get should return a copy")
}
