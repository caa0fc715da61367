package parameter

// Worm Body
const (
	// WormDensity is the material density in kg/m³ used to derive mass from radius
	WormDensity = 1062.0

	// WormRadiusLowerBound is the minimal radius in meters, fixed for the lifetime of a worm
	WormRadiusLowerBound = 0.25
)

// Movement Costs
const (
	// StepCostHorizontal weights |cos(direction)| in the per-step action point cost
	StepCostHorizontal = 1.0
	// StepCostVertical weights |sin(direction)| in the per-step action point cost
	StepCostVertical = 4.0

	// TurnCostPerRevolution is the action point cost of a full 2π rotation
	TurnCostPerRevolution = 60.0
)
