package parameter

// Steering & integration
// Units: chart units, seconds. Force divided by mass gives acceleration
const (
	// MaxSpeed is the velocity cap for an agent at speed scale 1.0 (units/sec)
	MaxSpeed = 120.0

	// MaxForce caps the summed steering force applied in one tick
	MaxForce = 480.0

	// Damping is the velocity retention factor per reference frame
	// Applied as Damping^(dt*ReferenceRate) so it is frame-rate independent
	Damping = 0.985

	// ReferenceRate is the frame rate Damping is expressed against
	ReferenceRate = 60.0

	// MassBase is the mass of the smallest agent
	MassBase = 2.0

	// MassGrowth is added mass at the largest agent radius (linear in radius)
	MassGrowth = 2.0

	// MassMin is the floor applied to non-positive or tiny masses
	MassMin = 0.1
)

// Behaviour weights
const (
	WeightFollow  = 1.0
	WeightContain = 1.0

	// WeightFocal dominates path-follow while an agent is highlighted
	WeightFocal = 3.0
)

// Speed scales per mode, multiplied into MaxSpeed
const (
	SpeedScaleRest    = 0.5
	SpeedScaleDefault = 1.0
	SpeedScaleExplore = 0.75
)

// Agent radius from engagement metric (sqrt scale)
const (
	RadiusMin = 2.0
	RadiusMax = 9.0
)

// Initial placement jitter as a fraction of the gap between outer rings
const SpawnJitter = 1.0 / 3.0
