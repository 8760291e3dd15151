package parameter

// Orbit paths
const (
	// PathPoints is the number of vertices per closed orbit
	PathPoints = 64

	// PathTolerance is the nominal half-width of an orbit lane (chart units)
	PathTolerance = 20.0

	// LookAhead is the prediction distance for path following (chart units)
	LookAhead = 24.0

	// ContainMargin is the inward bias band inside a containment ring
	// Containment ramps from zero at radius-margin to full strength at radius
	ContainMargin = 8.0

	// ContainSlack is added to the followed ring radius to get the containment radius
	ContainSlack = 30.0
)
