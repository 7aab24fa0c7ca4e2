package messages

import (
	"testing"

	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *WorldSnapshot {
	return &WorldSnapshot{
		Timestamp: 1,
		Frame:     42,
		Elapsed:   0.7,
		Player:    kinematic.Body{Position: kinematic.Vector{X: 10, Y: 20}, Width: 20, Height: 20},
		Anchor:    kinematic.Vector{X: 640, Y: 360},
		Bullets: []BulletSnapshot{
			{
				ID:            "b1",
				Body:          kinematic.Body{Position: kinematic.Vector{X: 1, Y: 2}, Width: 10, Height: 10},
				Velocity:      kinematic.Vector{X: -3, Y: 4},
				Speed:         5,
				VelocityBoost: 2.5,
				BounceCount:   1,
				MaxBounces:    3,
				Active:        true,
				Animation:     "bullet",
				Frame:         2,
				Color:         "#ff0000",
				Alpha:         0.8,
			},
			{
				ID:         "b2",
				Body:       kinematic.Body{Position: kinematic.Vector{X: 100, Y: 0}, Width: 30, Height: 30},
				MaxBounces: 3,
				Animation:  "spark",
				Color:      "#00ff00",
			},
		},
		Stats: WorldStats{Spawned: 3, Swept: 2, PlayerHits: 1},
	}
}

func TestSerializeDeserializeWorldSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *WorldSnapshot
	}{
		{name: "Populated world", snapshot: testSnapshot()},
		{name: "Empty world", snapshot: &WorldSnapshot{Frame: 1, Bullets: []BulletSnapshot{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := NewWorldSnapshotMessage(tt.snapshot)
			require.NoError(t, err)

			b, err := SerializeMessage(msg)
			require.NoError(t, err)

			got, err := DeserializeMessage(b)
			require.NoError(t, err)
			assert.Equal(t, MessageTypeWorldSnapshot, got.Type)

			decoded, err := DeserializeWorldSnapshot(got)
			require.NoError(t, err)
			assert.Equal(t, tt.snapshot, decoded)
		})
	}
}

func TestSerializeDeserializeMessageFlatbuffer(t *testing.T) {
	msg := &Message{Type: MessageTypeBulletSwept, Payload: []byte(`{"frame":3}`)}

	b, err := SerializeMessageFlatbuffer(msg)
	require.NoError(t, err)

	got, err := DeserializeMessageFlatbuffer(b)
	require.NoError(t, err)
	assert.Equal(t, msg.Type, got.Type)
	assert.Equal(t, msg.Payload, got.Payload)

	_, err = SerializeMessageFlatbuffer(nil)
	assert.Error(t, err)
}

func TestDeserializeMessageFlatbuffer_Truncated(t *testing.T) {
	_, err := DeserializeMessageFlatbuffer([]byte{1, 2})
	assert.Error(t, err)
}

func TestBulletEventsRoundTrip(t *testing.T) {
	events := &BulletEvents{Frame: 9, Bullets: testSnapshot().Bullets}
	msg, err := NewMessage(MessageTypeBulletSpawned, events)
	require.NoError(t, err)

	b, err := SerializeMessage(msg)
	require.NoError(t, err)
	got, err := DeserializeMessage(b)
	require.NoError(t, err)

	decoded, err := DeserializeBulletEvents(got)
	require.NoError(t, err)
	assert.Equal(t, events, decoded)

	_, err = DeserializeWorldSnapshot(got)
	assert.Error(t, err, "event payloads are not snapshots")
}

func TestDeserializeWorldSnapshot_WrongType(t *testing.T) {
	_, err := DeserializeWorldSnapshot(&Message{Type: MessageTypeBulletSwept, Payload: []byte(`{}`)})
	assert.Error(t, err)

	_, err = DeserializeBulletEvents(&Message{Type: MessageTypeWorldSnapshot, Payload: []byte(`{}`)})
	assert.Error(t, err)
}

func TestDeserializeWorldSnapshot_Truncated(t *testing.T) {
	_, err := DeserializeWorldSnapshot(&Message{Type: MessageTypeWorldSnapshot, Payload: []byte{0}})
	assert.Error(t, err)
}

func TestDeserializeMessage_Garbage(t *testing.T) {
	_, err := DeserializeMessage([]byte("definitely not zstd"))
	assert.Error(t, err)
}

func TestWorldSnapshot_Copy(t *testing.T) {
	s := &WorldSnapshot{Frame: 1, Bullets: []BulletSnapshot{{ID: "a"}}}
	c := s.Copy()
	c.Bullets[0].ID = "b"
	assert.Equal(t, "a", s.Bullets[0].ID)

	found, ok := s.FindBullet("a")
	assert.True(t, ok)
	assert.Equal(t, "a", found.ID)
	_, ok = s.FindBullet("b")
	assert.False(t, ok)
}
