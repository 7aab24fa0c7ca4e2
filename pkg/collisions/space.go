package collisions

import (
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagPlayer string = "player"
	CollisionSpaceTagBullet string = "bullet"
	CollisionSpaceTagLevel  string = "level"

	// CellSize is the edge length of a broad-phase cell
	CellSize int = 16
	// wallThickness is the depth of the walls around the playfield
	wallThickness float64 = 16
)

// NewCollisionSpace creates a broad-phase space covering the playfield with
// walls just outside each edge.
func NewCollisionSpace(width, height float64) *resolv.Space {
	w := int(width+2*wallThickness) + CellSize
	h := int(height+2*wallThickness) + CellSize
	space := resolv.NewSpace(w, h, CellSize, CellSize)
	space.Add(
		resolv.NewObject(0, 0, width+2*wallThickness, wallThickness, CollisionSpaceTagLevel),
		resolv.NewObject(0, height+wallThickness, width+2*wallThickness, wallThickness, CollisionSpaceTagLevel),
		resolv.NewObject(0, wallThickness, wallThickness, height, CollisionSpaceTagLevel),
		resolv.NewObject(width+wallThickness, wallThickness, wallThickness, height, CollisionSpaceTagLevel),
	)
	return space
}

// NewObject creates a space object for a body. Playfield coordinates are
// offset by the wall thickness so the walls sit outside the playfield.
func NewObject(body kinematic.Body, tags ...string) *resolv.Object {
	return resolv.NewObject(body.Position.X+wallThickness, body.Position.Y+wallThickness, body.Width, body.Height, tags...)
}

// SyncObject moves obj to the body's position and refreshes its cells.
func SyncObject(obj *resolv.Object, body kinematic.Body) {
	obj.Position.X = body.Position.X + wallThickness
	obj.Position.Y = body.Position.Y + wallThickness
	obj.Update()
}

// Touching returns the objects with any of tags that share a broad-phase cell
// with obj. Callers narrow the result with their own bounds test.
func Touching(obj *resolv.Object, tags ...string) []*resolv.Object {
	collision := obj.Check(0, 0, tags...)
	if collision == nil {
		return nil
	}
	return collision.Objects
}
