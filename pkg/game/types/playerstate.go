package types

import (
	"math"

	"github.com/cbodonnell/purgatorium/pkg/collisions"
	"github.com/cbodonnell/purgatorium/pkg/game/constants"
	"github.com/cbodonnell/purgatorium/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// PlayerState is the scripted player the bullets home in on. It follows a
// Lissajous path around the playfield centre instead of reading input.
type PlayerState struct {
	Body     kinematic.Body   `json:"body"`
	Velocity kinematic.Vector `json:"velocity"`
	// Object is the player's hitbox in the collision space
	Object *resolv.Object `json:"-"`

	// clock is the time spent on the path so far
	clock     float64
	playfield kinematic.Vector
}

func NewPlayerState(playfieldWidth, playfieldHeight float64) *PlayerState {
	body := kinematic.Body{
		Position: kinematic.Vector{
			X: playfieldWidth/2 - constants.PlayerWidth/2,
			Y: playfieldHeight/2 - constants.PlayerHeight/2,
		},
		Width:  constants.PlayerWidth,
		Height: constants.PlayerHeight,
	}
	return &PlayerState{
		Body:      body,
		Object:    collisions.NewObject(body, collisions.CollisionSpaceTagPlayer),
		playfield: kinematic.Vector{X: playfieldWidth, Y: playfieldHeight},
	}
}

// CurrentPosition returns the player's centre, which is what bullets aim for.
func (p *PlayerState) CurrentPosition() kinematic.Vector {
	return p.Body.Center()
}

// Update moves the player along its path and keeps it on the playfield.
func (p *PlayerState) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	p.clock += deltaTime

	// target velocity of a 3:2 Lissajous curve with amplitude a third of the playfield
	ax, ay := p.playfield.X/3, p.playfield.Y/3
	wx := constants.PlayerSpeed / ax
	wy := wx * 2 / 3
	p.Velocity = kinematic.Vector{
		X: ax * wx * math.Cos(wx*p.clock),
		Y: ay * wy * math.Cos(wy*p.clock),
	}

	p.Body.Position.X += kinematic.Displacement(p.Velocity.X, deltaTime, 0)
	p.Body.Position.Y += kinematic.Displacement(p.Velocity.Y, deltaTime, 0)

	p.Body.Position.X = kinematic.Clamp(p.Body.Position.X, 0, math.Max(0, p.playfield.X-p.Body.Width))
	p.Body.Position.Y = kinematic.Clamp(p.Body.Position.Y, 0, math.Max(0, p.playfield.Y-p.Body.Height))

	// Update the player collision object
	collisions.SyncObject(p.Object, p.Body)
}
