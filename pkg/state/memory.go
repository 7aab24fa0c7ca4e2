package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/purgatorium/pkg/messages"
)

type InMemoryStateManager struct {
	lock     sync.RWMutex
	snapshot *messages.WorldSnapshot
}

var _ StateManager = &InMemoryStateManager{}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		snapshot: &messages.WorldSnapshot{
			Bullets: make([]messages.BulletSnapshot, 0),
		},
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*messages.WorldSnapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.snapshot.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, snapshot *messages.WorldSnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = snapshot
	return nil
}
