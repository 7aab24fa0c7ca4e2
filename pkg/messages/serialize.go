package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	messagefb "github.com/cbodonnell/purgatorium/flatbuffers/message"
	snapshotfb "github.com/cbodonnell/purgatorium/flatbuffers/snapshot"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// SerializeMessage encodes a message as a zstd compressed flatbuffer.
func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DeserializeMessage decodes a message written by SerializeMessage.
func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("message is nil")
	}
	builder := flatbuffers.NewBuilder(0)

	messageType := builder.CreateString(string(m.Type))
	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddType(builder, messageType)
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)

	return builder.FinishedBytes(), nil
}

// DeserializeMessageFlatbuffer reads an envelope. The payload aliases b.
func DeserializeMessageFlatbuffer(b []byte) (message *Message, err error) {
	// flatbuffers index straight into b, so a truncated buffer panics
	defer func() {
		if r := recover(); r != nil {
			message, err = nil, fmt.Errorf("malformed message flatbuffer: %v", r)
		}
	}()
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("message flatbuffer too short: %d bytes", len(b))
	}

	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	message = &Message{
		Type:    MessageType(messageFlatbuffer.Type()),
		Payload: messageFlatbuffer.PayloadBytes(),
	}

	return message, nil
}

// SerializeWorldSnapshot encodes a snapshot as a standalone flatbuffer.
func SerializeWorldSnapshot(snapshot *WorldSnapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}
	builder := flatbuffers.NewBuilder(1024)
	worldSnapshot := SerializeWorldSnapshotFlatbuffer(builder, snapshot)
	builder.Finish(worldSnapshot)
	return builder.FinishedBytes(), nil
}

// DeserializeWorldSnapshot decodes the payload of a snapshot message.
func DeserializeWorldSnapshot(m *Message) (snapshot *WorldSnapshot, err error) {
	if m.Type != MessageTypeWorldSnapshot {
		return nil, fmt.Errorf("unexpected message type %s", m.Type)
	}
	defer func() {
		if r := recover(); r != nil {
			snapshot, err = nil, fmt.Errorf("malformed world snapshot flatbuffer: %v", r)
		}
	}()
	if len(m.Payload) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("world snapshot flatbuffer too short: %d bytes", len(m.Payload))
	}

	return WorldSnapshotFlatbufferToWorldSnapshot(snapshotfb.GetRootAsWorldSnapshot(m.Payload, 0)), nil
}

// DeserializeBulletEvents decodes the payload of a spawn or sweep message.
func DeserializeBulletEvents(m *Message) (*BulletEvents, error) {
	if m.Type != MessageTypeBulletSpawned && m.Type != MessageTypeBulletSwept {
		return nil, fmt.Errorf("unexpected message type %s", m.Type)
	}
	events := &BulletEvents{}
	if err := json.Unmarshal(m.Payload, events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bullet events: %v", err)
	}
	return events, nil
}

func SerializeWorldSnapshotFlatbuffer(builder *flatbuffers.Builder, snapshot *WorldSnapshot) flatbuffers.UOffsetT {
	bulletOffsets := make([]flatbuffers.UOffsetT, 0, len(snapshot.Bullets))
	for i := range snapshot.Bullets {
		bulletOffsets = append(bulletOffsets, SerializeBulletSnapshotFlatbuffer(builder, &snapshot.Bullets[i]))
	}
	snapshotfb.WorldSnapshotStartBulletsVector(builder, len(bulletOffsets))
	for i := len(bulletOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(bulletOffsets[i])
	}
	bullets := builder.EndVector(len(bulletOffsets))

	player := serializeBodyFlatbuffer(builder, snapshot.Player)
	anchor := serializeVectorFlatbuffer(builder, snapshot.Anchor)

	snapshotfb.StatsStart(builder)
	snapshotfb.StatsAddSpawned(builder, snapshot.Stats.Spawned)
	snapshotfb.StatsAddSwept(builder, snapshot.Stats.Swept)
	snapshotfb.StatsAddPlayerHits(builder, snapshot.Stats.PlayerHits)
	stats := snapshotfb.StatsEnd(builder)

	snapshotfb.WorldSnapshotStart(builder)
	snapshotfb.WorldSnapshotAddTimestamp(builder, snapshot.Timestamp)
	snapshotfb.WorldSnapshotAddFrame(builder, snapshot.Frame)
	snapshotfb.WorldSnapshotAddElapsed(builder, snapshot.Elapsed)
	snapshotfb.WorldSnapshotAddPlayer(builder, player)
	snapshotfb.WorldSnapshotAddAnchor(builder, anchor)
	snapshotfb.WorldSnapshotAddBullets(builder, bullets)
	snapshotfb.WorldSnapshotAddStats(builder, stats)
	return snapshotfb.WorldSnapshotEnd(builder)
}

func SerializeBulletSnapshotFlatbuffer(builder *flatbuffers.Builder, b *BulletSnapshot) flatbuffers.UOffsetT {
	id := builder.CreateString(b.ID)
	animation := builder.CreateString(b.Animation)
	color := builder.CreateString(b.Color)
	body := serializeBodyFlatbuffer(builder, b.Body)
	velocity := serializeVectorFlatbuffer(builder, b.Velocity)

	snapshotfb.BulletStart(builder)
	snapshotfb.BulletAddId(builder, id)
	snapshotfb.BulletAddBody(builder, body)
	snapshotfb.BulletAddVelocity(builder, velocity)
	snapshotfb.BulletAddSpeed(builder, b.Speed)
	snapshotfb.BulletAddVelocityBoost(builder, b.VelocityBoost)
	snapshotfb.BulletAddBounceCount(builder, int32(b.BounceCount))
	snapshotfb.BulletAddMaxBounces(builder, int32(b.MaxBounces))
	snapshotfb.BulletAddActive(builder, b.Active)
	snapshotfb.BulletAddAnimation(builder, animation)
	snapshotfb.BulletAddFrame(builder, int32(b.Frame))
	snapshotfb.BulletAddColor(builder, color)
	snapshotfb.BulletAddAlpha(builder, b.Alpha)
	return snapshotfb.BulletEnd(builder)
}

func serializeBodyFlatbuffer(builder *flatbuffers.Builder, body kinematic.Body) flatbuffers.UOffsetT {
	position := serializeVectorFlatbuffer(builder, body.Position)

	snapshotfb.BodyStart(builder)
	snapshotfb.BodyAddPosition(builder, position)
	snapshotfb.BodyAddWidth(builder, body.Width)
	snapshotfb.BodyAddHeight(builder, body.Height)
	return snapshotfb.BodyEnd(builder)
}

func serializeVectorFlatbuffer(builder *flatbuffers.Builder, v kinematic.Vector) flatbuffers.UOffsetT {
	snapshotfb.VectorStart(builder)
	snapshotfb.VectorAddX(builder, v.X)
	snapshotfb.VectorAddY(builder, v.Y)
	return snapshotfb.VectorEnd(builder)
}

func WorldSnapshotFlatbufferToWorldSnapshot(fb *snapshotfb.WorldSnapshot) *WorldSnapshot {
	snapshot := &WorldSnapshot{
		Timestamp: fb.Timestamp(),
		Frame:     fb.Frame(),
		Elapsed:   fb.Elapsed(),
		Player:    bodyFlatbufferToBody(fb.Player(nil)),
		Anchor:    vectorFlatbufferToVector(fb.Anchor(nil)),
		Bullets:   make([]BulletSnapshot, 0, fb.BulletsLength()),
	}

	bulletFlatbuffer := &snapshotfb.Bullet{}
	for i := 0; i < fb.BulletsLength(); i++ {
		if fb.Bullets(bulletFlatbuffer, i) {
			snapshot.Bullets = append(snapshot.Bullets, BulletFlatbufferToBulletSnapshot(bulletFlatbuffer))
		}
	}

	if stats := fb.Stats(nil); stats != nil {
		snapshot.Stats = WorldStats{
			Spawned:    stats.Spawned(),
			Swept:      stats.Swept(),
			PlayerHits: stats.PlayerHits(),
		}
	}

	return snapshot
}

func BulletFlatbufferToBulletSnapshot(fb *snapshotfb.Bullet) BulletSnapshot {
	return BulletSnapshot{
		ID:            string(fb.Id()),
		Body:          bodyFlatbufferToBody(fb.Body(nil)),
		Velocity:      vectorFlatbufferToVector(fb.Velocity(nil)),
		Speed:         fb.Speed(),
		VelocityBoost: fb.VelocityBoost(),
		BounceCount:   int(fb.BounceCount()),
		MaxBounces:    int(fb.MaxBounces()),
		Active:        fb.Active(),
		Animation:     string(fb.Animation()),
		Frame:         int(fb.Frame()),
		Color:         string(fb.Color()),
		Alpha:         fb.Alpha(),
	}
}

func bodyFlatbufferToBody(fb *snapshotfb.Body) kinematic.Body {
	if fb == nil {
		return kinematic.Body{}
	}
	return kinematic.Body{
		Position: vectorFlatbufferToVector(fb.Position(nil)),
		Width:    fb.Width(),
		Height:   fb.Height(),
	}
}

func vectorFlatbufferToVector(fb *snapshotfb.Vector) kinematic.Vector {
	if fb == nil {
		return kinematic.Vector{}
	}
	return kinematic.Vector{X: fb.X(), Y: fb.Y()}
}
