package flock

import (
	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/parameter"
)

// Profile is the resolved behaviour set of one agent in one mode
type Profile struct {
	Ring       int
	Follow     float64
	Contain    float64
	SpeedScale float64
}

// ResolveProfile maps a scene mode and an agent tier to its behaviour profile
// The same mode yields different rings per tier: agents advance inward only as
// far as their own tier allows
func ResolveProfile(mode core.Mode, tier core.Tier) Profile {
	p := Profile{
		Follow:     parameter.WeightFollow,
		Contain:    parameter.WeightContain,
		SpeedScale: parameter.SpeedScaleDefault,
	}

	switch mode {
	case core.ModeRest:
		p.Ring = 0
		p.SpeedScale = parameter.SpeedScaleRest
	case core.ModeSmall:
		p.Ring = 0
	case core.ModeMedium:
		p.Ring = min(tier.Ring(), core.TierMedium.Ring())
	case core.ModeBig:
		p.Ring = min(tier.Ring(), core.TierBig.Ring())
	case core.ModeExplore:
		p.Ring = tier.Ring()
		p.SpeedScale = parameter.SpeedScaleExplore
	}
	return p
}
