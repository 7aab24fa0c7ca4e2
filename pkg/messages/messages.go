package messages

import (
	"encoding/json"

	"github.com/cbodonnell/purgatorium/pkg/kinematic"
)

type MessageType string

// Message types
const (
	MessageTypeWorldSnapshot MessageType = "snapshot"
	MessageTypeBulletSpawned MessageType = "spawn"
	MessageTypeBulletSwept   MessageType = "sweep"
)

// Message represents a generic message for serialization/deserialization.
// Snapshot payloads are flatbuffers; bullet event payloads are JSON.
type Message struct {
	Type    MessageType
	Payload []byte
}

// BulletSnapshot is the externally visible state of one bullet.
type BulletSnapshot struct {
	ID            string           `json:"id"`
	Body          kinematic.Body   `json:"body"`
	Velocity      kinematic.Vector `json:"velocity"`
	Speed         float64          `json:"speed"`
	VelocityBoost float64          `json:"velocityBoost"`
	BounceCount   int              `json:"bounceCount"`
	MaxBounces    int              `json:"maxBounces"`
	Active        bool             `json:"active"`
	Animation     string           `json:"animation"`
	Frame         int              `json:"frame"`
	Color         string           `json:"color"`
	Alpha         float64          `json:"alpha"`
}

// WorldStats are running totals kept by the world.
type WorldStats struct {
	Spawned    uint64 `json:"spawned"`
	Swept      uint64 `json:"swept"`
	PlayerHits uint64 `json:"playerHits"`
}

// WorldSnapshot is the state of the simulation after one frame.
type WorldSnapshot struct {
	// Timestamp is the wall clock time the frame finished, in milliseconds
	Timestamp int64            `json:"timestamp"`
	Frame     uint64           `json:"frame"`
	Elapsed   float64          `json:"elapsed"`
	Player    kinematic.Body   `json:"player"`
	Anchor    kinematic.Vector `json:"anchor"`
	Bullets   []BulletSnapshot `json:"bullets"`
	Stats     WorldStats       `json:"stats"`
}

// Copy returns a deep copy of the snapshot.
func (s *WorldSnapshot) Copy() *WorldSnapshot {
	c := *s
	c.Bullets = make([]BulletSnapshot, len(s.Bullets))
	copy(c.Bullets, s.Bullets)
	return &c
}

// FindBullet returns the bullet with the given id.
func (s *WorldSnapshot) FindBullet(id string) (BulletSnapshot, bool) {
	for _, b := range s.Bullets {
		if b.ID == id {
			return b, true
		}
	}
	return BulletSnapshot{}, false
}

// BulletEvents lists the bullets spawned or swept during one frame.
type BulletEvents struct {
	Frame   uint64           `json:"frame"`
	Bullets []BulletSnapshot `json:"bullets"`
}

// NewMessage wraps a JSON encoded payload in a Message.
func NewMessage(t MessageType, payload interface{}) (*Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: t, Payload: b}, nil
}

// NewWorldSnapshotMessage wraps a flatbuffer encoded snapshot in a Message.
func NewWorldSnapshotMessage(snapshot *WorldSnapshot) (*Message, error) {
	b, err := SerializeWorldSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return &Message{Type: MessageTypeWorldSnapshot, Payload: b}, nil
}
