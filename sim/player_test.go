package sim_test

import (
	"testing"

	"github.com/plus3/brickhop/sim"
	"github.com/stretchr/testify/assert"
)

func TestPlayerSize(t *testing.T) {
	small := sim.PlayerSize(sim.PowerSmall, false)
	smallDuck := sim.PlayerSize(sim.PowerSmall, true)
	big := sim.PlayerSize(sim.PowerBig, false)
	bigDuck := sim.PlayerSize(sim.PowerBig, true)

	assert.Less(t, smallDuck.Y, small.Y)
	assert.Less(t, bigDuck.Y, big.Y)
	assert.Greater(t, big.Y, small.Y)

	// Big and Fire share collision dimensions
	assert.Equal(t, big, sim.PlayerSize(sim.PowerFire, false))
	assert.Equal(t, bigDuck, sim.PlayerSize(sim.PowerFire, true))
}

func TestDuckingPreservesFootPosition(t *testing.T) {
	p := &sim.PlayerState{}
	b := &sim.Body{
		Position: sim.Vec2{X: 100, Y: 64},
		Size:     sim.PlayerSize(sim.PowerSmall, false),
		Grounded: true,
	}

	p.SetDucking(b, true)
	assert.True(t, p.Ducking)
	assert.Equal(t, sim.StateDucking, p.Movement)
	assert.Equal(t, 64.0, b.Position.Y)
	assert.Equal(t, sim.PlayerSize(sim.PowerSmall, true), b.Size)

	p.SetDucking(b, false)
	assert.False(t, p.Ducking)
	assert.Equal(t, 64.0, b.Position.Y)
	assert.Equal(t, sim.PlayerSize(sim.PowerSmall, false), b.Size)
}

func TestDuckingRequiresGround(t *testing.T) {
	p := &sim.PlayerState{}
	b := &sim.Body{
		Position: sim.Vec2{X: 100, Y: 200},
		Size:     sim.PlayerSize(sim.PowerSmall, false),
		Grounded: false,
	}

	p.SetDucking(b, true)
	assert.False(t, p.Ducking)
	assert.Equal(t, sim.PlayerSize(sim.PowerSmall, false), b.Size)
}

func TestPowerUpProgressionClampsAtFire(t *testing.T) {
	p := &sim.PlayerState{}
	b := &sim.Body{Size: sim.PlayerSize(sim.PowerSmall, false), Grounded: true}

	p.PowerUp(b)
	assert.Equal(t, sim.PowerBig, p.Power)
	assert.True(t, p.Transitioning)
	assert.Equal(t, sim.PlayerSize(sim.PowerBig, false), b.Size)

	p.PowerUp(b)
	assert.Equal(t, sim.PowerFire, p.Power)

	// Already at the top: state holds, the collection flash still plays
	p.Transitioning = false
	p.PowerUp(b)
	assert.Equal(t, sim.PowerFire, p.Power)
	assert.True(t, p.Transitioning)
}

func TestPowerDownGrantsInvincibility(t *testing.T) {
	p := &sim.PlayerState{Power: sim.PowerFire}
	b := &sim.Body{Size: sim.PlayerSize(sim.PowerFire, false), Grounded: true}

	assert.True(t, p.PowerDown(b))
	assert.Equal(t, sim.PowerBig, p.Power)
	assert.True(t, p.Invincible)
	assert.Equal(t, sim.DamageInvincibilityTime, p.InvincibilityTimer)

	assert.True(t, p.PowerDown(b))
	assert.Equal(t, sim.PowerSmall, p.Power)
	assert.Equal(t, sim.PlayerSize(sim.PowerSmall, false), b.Size)
}

func TestPowerDownFromSmallKills(t *testing.T) {
	p := &sim.PlayerState{Power: sim.PowerSmall, JumpHolding: true}
	b := &sim.Body{Size: sim.PlayerSize(sim.PowerSmall, false), Grounded: true}

	assert.False(t, p.PowerDown(b))
	assert.True(t, p.Dead())
	assert.Equal(t, sim.StateDeath, p.Movement)

	// Death pops the body upward and cancels any jump hold
	assert.Equal(t, sim.DeathJumpImpulse, b.Velocity.Y)
	assert.Equal(t, 0.0, b.Velocity.X)
	assert.False(t, b.Grounded)
	assert.False(t, p.JumpHolding)
}

func TestGrantStar(t *testing.T) {
	p := &sim.PlayerState{}
	p.GrantStar()
	assert.True(t, p.Invincible)
	assert.Equal(t, sim.StarTime, p.InvincibilityTimer)
}

func TestRespawnResetsToDefaults(t *testing.T) {
	p := &sim.PlayerState{Power: sim.PowerFire, Invincible: true}
	b := &sim.Body{Position: sim.Vec2{X: 999, Y: -50}}
	p.Kill(b)

	start := sim.Vec2{X: 96, Y: 64}
	p.Respawn(b, start)

	assert.Equal(t, sim.StateIdle, p.Movement)
	assert.Equal(t, sim.PowerSmall, p.Power)
	assert.False(t, p.Invincible)
	assert.Equal(t, start, b.Position)
	assert.Equal(t, sim.Vec2{}, b.Velocity)
	assert.True(t, b.FacingRight)
	assert.Equal(t, sim.PlayerSize(sim.PowerSmall, false), b.Size)
}
