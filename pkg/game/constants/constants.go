package constants

const (

	// PlayfieldWidth is the width of the virtual playfield
	PlayfieldWidth float64 = 1280.0
	// PlayfieldHeight is the height of the virtual playfield
	PlayfieldHeight float64 = 720.0
	// MaxDeltaTime bounds a single simulation step after a stall
	MaxDeltaTime float64 = 0.25 // seconds

	// BulletMaxBounces is the default number of bounces a bullet survives
	BulletMaxBounces int = 3
	// BulletBaseSize is the default edge length of a bullet before pitch scaling
	BulletBaseSize float64 = 10.0
	// BulletBaseSpeed is the default cruising speed of a bullet
	BulletBaseSpeed float64 = 120.0
	// BulletDecayRate is the default exponential decay rate of the velocity boost
	BulletDecayRate float64 = 4.0
	// BulletBoostSnapThreshold is the boost below which the boost becomes zero
	BulletBoostSnapThreshold float64 = 0.5

	// Steering

	// BulletBaseTurnRate is the turn rate with the anchor far from the target
	BulletBaseTurnRate float64 = 5.0 // degrees per second
	// BulletMaxTurnBoost is the extra turn rate at zero anchor distance
	BulletMaxTurnBoost float64 = 175.0 // degrees per second
	// BulletTurnBoostExponent shapes how late the turn boost ramps in
	BulletTurnBoostExponent float64 = 6.0

	// Pitch mapping

	// PitchOffset is the MIDI number of the lowest piano key (A0)
	PitchOffset int = 21
	// PitchRange is the number of semitones above the lowest piano key
	PitchRange int = 88
	// KeyVelocityMax is the largest MIDI key velocity
	KeyVelocityMax float64 = 127.0

	// AnimationFrameInterval is the time each animation frame is shown
	AnimationFrameInterval float64 = 0.1 // seconds
	// BulletFrameCount is the number of frames in the default bullet animation
	BulletFrameCount int = 4

	// PlayerWidth is the width of the player
	PlayerWidth float64 = 20.0
	// PlayerHeight is the height of the player
	PlayerHeight float64 = 20.0
	// PlayerSpeed is the cruising speed of the scripted player
	PlayerSpeed float64 = 200.0
)
