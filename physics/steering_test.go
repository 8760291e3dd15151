package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/flock/core"
	"github.com/lixenwraith/flock/navigation"
	"github.com/lixenwraith/flock/parameter"
	"github.com/lixenwraith/flock/vmath"
)

const testDt = 1.0 / 60.0

var center = vmath.V(300, 300)

// step applies a single force and integrates, the way an agent tick does
func step(k *core.Kinetic, force vmath.Vec) {
	ApplyForce(k, vmath.ClampMagnitude(force, parameter.MaxForce))
	Integrate(k, testDt, parameter.MaxSpeed, parameter.Damping)
}

func TestSeekPointsAtTarget(t *testing.T) {
	k := &core.Kinetic{Pos: vmath.V(0, 0), Mass: 2}
	f := Seek(k, vmath.V(10, 0), 5)
	assert.InDelta(t, 5, f.X, 1e-12)
	assert.InDelta(t, 0, f.Y, 1e-12)

	k.Vel = vmath.V(5, 0)
	assert.Equal(t, vmath.Vec{}, Seek(k, vmath.V(10, 0), 5), "already at desired velocity")

	// Target on top of the agent brakes
	f = Seek(k, k.Pos, 5)
	assert.Equal(t, vmath.V(-5, 0), f)
}

func TestSeekCapped(t *testing.T) {
	k := &core.Kinetic{Pos: vmath.V(0, 0), Vel: vmath.V(-100, 0), Mass: 1}
	f := SeekCapped(k, vmath.V(10, 0), 100, 30)
	assert.InDelta(t, 30, vmath.Magnitude(f), 1e-9)
}

func TestContainZeroInsideAndRampsAtBoundary(t *testing.T) {
	ring := Ring{Center: center, Radius: 100, Margin: 10}

	inside := &core.Kinetic{Pos: vmath.V(300+85, 300), Mass: 2}
	assert.Equal(t, vmath.Vec{}, Contain(inside, ring, 50))

	mid := &core.Kinetic{Pos: vmath.V(300+95, 300), Mass: 2}
	edge := &core.Kinetic{Pos: vmath.V(300+100, 300), Mass: 2}
	outside := &core.Kinetic{Pos: vmath.V(300+200, 300), Mass: 2}

	fm := Contain(mid, ring, 50)
	fe := Contain(edge, ring, 50)
	fo := Contain(outside, ring, 50)

	assert.Less(t, fm.X, 0.0, "points inward")
	assert.InDelta(t, 25, -fm.X, 1e-9, "half weight in the middle of the band")
	assert.InDelta(t, 50, -fe.X, 1e-9)
	assert.InDelta(t, 50, -fo.X, 1e-9)
	assert.InDelta(t, 0, fo.Y, 1e-9)
}

func TestContainmentPullsBackMonotonically(t *testing.T) {
	for _, mass := range []float64{1, 2, 4} {
		ring := Ring{Center: center, Radius: 150, Margin: parameter.ContainMargin}
		k := &core.Kinetic{Pos: vmath.V(300+350, 300), Mass: mass}

		prev := vmath.Distance(k.Pos, center)
		inside := false
		for i := 0; i < 2000; i++ {
			step(k, Contain(k, ring, parameter.MaxSpeed))
			d := vmath.Distance(k.Pos, center)
			if !inside {
				require.Less(t, d, prev, "mass %v tick %d: distance must strictly decrease until inside", mass, i)
				inside = d <= ring.Radius
			} else {
				require.LessOrEqual(t, d, ring.Radius, "mass %v tick %d: escaped after entering", mass, i)
			}
			prev = d
		}
		assert.True(t, inside, "mass %v never re-entered ring", mass)
	}
}

func TestFollowPathConvergesToRadius(t *testing.T) {
	path, err := navigation.NewOrbit(center, 200, parameter.PathPoints, parameter.PathTolerance)
	require.NoError(t, err)

	starts := []vmath.Vec{vmath.V(300, 350), vmath.V(650, 300), vmath.V(300, 300), vmath.V(290, 700)}
	vels := []vmath.Vec{{}, vmath.V(100, 0), vmath.V(-50, 80)}

	for _, start := range starts {
		for _, v0 := range vels {
			k := &core.Kinetic{Pos: start, Vel: v0, Mass: parameter.MassBase}
			for i := 0; i < 3000; i++ {
				step(k, FollowPath(k, path, parameter.LookAhead, parameter.MaxSpeed))
			}
			for i := 0; i < 300; i++ {
				step(k, FollowPath(k, path, parameter.LookAhead, parameter.MaxSpeed))
				assert.InDelta(t, 200, vmath.Distance(k.Pos, center), 200*0.02,
					"start %v vel %v", start, v0)
			}
		}
	}
}

func TestFollowPathNilPath(t *testing.T) {
	k := &core.Kinetic{Pos: center, Mass: 1}
	assert.Equal(t, vmath.Vec{}, FollowPath(k, nil, 10, 10))
}

func TestCombineClampsAfterSum(t *testing.T) {
	// Each term is under the cap, the sum is not
	a := Contribution{Force: vmath.V(8, 0), Weight: 1}
	b := Contribution{Force: vmath.V(8, 0), Weight: 1}
	sum := Combine(10, a, b)
	assert.InDelta(t, 10, sum.X, 1e-9)

	// Opposing terms cancel before the cap applies
	c := Contribution{Force: vmath.V(-100, 0), Weight: 1}
	d := Contribution{Force: vmath.V(100, 0), Weight: 1}
	assert.Equal(t, vmath.Vec{}, Combine(10, c, d))
}

func TestCombineDropsNonFinite(t *testing.T) {
	sum := Combine(100,
		Contribution{Force: vmath.V(math.NaN(), 1), Weight: 1},
		Contribution{Force: vmath.V(1, 0), Weight: math.Inf(1)},
		Contribution{Force: vmath.V(3, 4), Weight: 2},
	)
	assert.Equal(t, vmath.V(6, 8), sum)
}

func TestIntegrateRejectsNonFinite(t *testing.T) {
	k := &core.Kinetic{Pos: vmath.V(1, 1), Vel: vmath.V(1, 0), Mass: 1}
	assert.False(t, ApplyForce(k, vmath.V(math.NaN(), 0)))
	assert.Equal(t, vmath.Vec{}, k.Acc)

	k.Acc = vmath.V(math.Inf(1), 0)
	assert.True(t, Integrate(k, testDt, 10, 1))
	assert.True(t, vmath.IsFinite(k.Pos))
	assert.Equal(t, vmath.Vec{}, k.Acc, "accumulator cleared")

	before := k.Pos
	k.Acc = vmath.V(1, 0)
	assert.True(t, Integrate(k, math.NaN(), 10, 1))
	assert.Equal(t, before, k.Pos, "bad dt is a no-op")
	assert.Equal(t, vmath.Vec{}, k.Acc)
}

func TestIntegrateCapsSpeed(t *testing.T) {
	k := &core.Kinetic{Mass: 1}
	ApplyForce(k, vmath.V(1e9, 0))
	Integrate(k, testDt, 50, 1)
	assert.InDelta(t, 50, vmath.Magnitude(k.Vel), 1e-9)
}

func TestApplyForceNormalizesMass(t *testing.T) {
	k := &core.Kinetic{Mass: -3}
	ApplyForce(k, vmath.V(1, 0))
	assert.InDelta(t, 1/parameter.MassMin, k.Acc.X, 1e-9)
}

// Finite initial state and bounded forces never yield non-finite kinematics
func TestKinematicsStayFinite(t *testing.T) {
	path, err := navigation.NewOrbit(center, 180, parameter.PathPoints, parameter.PathTolerance)
	require.NoError(t, err)
	ring := Ring{Center: center, Radius: 210, Margin: parameter.ContainMargin}

	rapid.Check(t, func(rt *rapid.T) {
		coord := rapid.Float64Range(-1e6, 1e6)
		k := &core.Kinetic{
			Pos:  vmath.V(coord.Draw(rt, "x"), coord.Draw(rt, "y")),
			Vel:  vmath.V(coord.Draw(rt, "vx"), coord.Draw(rt, "vy")),
			Mass: rapid.Float64Range(-10, 50).Draw(rt, "mass"),
		}
		dt := rapid.Float64Range(0, 0.2).Draw(rt, "dt")
		ticks := rapid.IntRange(1, 200).Draw(rt, "ticks")

		for i := 0; i < ticks; i++ {
			force := Combine(parameter.MaxForce,
				Contribution{Force: FollowPath(k, path, parameter.LookAhead, parameter.MaxSpeed), Weight: 1},
				Contribution{Force: Contain(k, ring, parameter.MaxSpeed), Weight: 1},
				Contribution{Force: Seek(k, center, parameter.MaxSpeed), Weight: parameter.WeightFocal},
			)
			ApplyForce(k, force)
			Integrate(k, dt, parameter.MaxSpeed, parameter.Damping)
			if !vmath.IsFinite(k.Pos) || !vmath.IsFinite(k.Vel) {
				rt.Fatalf("tick %d: non-finite state pos=%v vel=%v", i, k.Pos, k.Vel)
			}
		}
	})
}

func TestPathTargetIsNearestToPrediction(t *testing.T) {
	path, err := navigation.NewOrbit(center, 200, parameter.PathPoints, parameter.PathTolerance)
	require.NoError(t, err)

	k := &core.Kinetic{Pos: vmath.V(500, 300), Vel: vmath.V(0, -120), Mass: parameter.MassBase}
	predicted := Predict(k, parameter.LookAhead)
	assert.InDelta(t, 276, predicted.Y, 1e-9)

	target := PathTarget(k, path, parameter.LookAhead)
	assert.Equal(t, path.Project(predicted).Point, target)
	assert.Less(t, target.Y, 280.0, "target lies in the direction of travel")
}

func TestFollowPathKeepsEitherOrbitDirection(t *testing.T) {
	path, err := navigation.NewOrbit(center, 200, parameter.PathPoints, parameter.PathTolerance)
	require.NoError(t, err)

	// sign of the angular momentum about the orbit center
	spin := func(k *core.Kinetic) float64 {
		off := vmath.V(k.Pos.X-center.X, k.Pos.Y-center.Y)
		return off.X*k.Vel.Y - off.Y*k.Vel.X
	}

	for _, vy := range []float64{-120, 120} {
		k := &core.Kinetic{Pos: vmath.V(500, 300), Vel: vmath.V(0, vy), Mass: parameter.MassBase}
		for i := 0; i < 600; i++ {
			step(k, FollowPath(k, path, parameter.LookAhead, parameter.MaxSpeed))
			if i%60 == 59 {
				assert.Equal(t, math.Signbit(vy), math.Signbit(spin(k)), "vy %v reversed at tick %d", vy, i)
				assert.Greater(t, vmath.Magnitude(k.Vel), 20.0, "vy %v stalled at tick %d", vy, i)
			}
		}
		assert.InDelta(t, 200, vmath.Distance(k.Pos, center), 200*0.02)
	}
}
