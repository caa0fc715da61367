package parameter

// Jump physics
const (
	// Gravity is the standard gravitational acceleration in m/s²
	Gravity = 9.80665

	// JumpForcePerActionPoint is the launch force in newtons contributed by each remaining action point
	JumpForcePerActionPoint = 5.0

	// JumpImpulseDuration is the time in seconds the launch force is applied
	JumpImpulseDuration = 0.5
)
