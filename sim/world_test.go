package sim_test

import (
	"testing"

	"github.com/plus3/brickhop/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevel() sim.Level {
	goal := sim.Rect{X: 600, Y: 64, W: 16, H: 256}
	return sim.Level{
		Name:        "test",
		PlayerStart: sim.Vec2{X: 96, Y: 64},
		Platforms: []sim.PlatformRecord{
			{Rect: sim.Rect{X: 0, Y: 0, W: 640, H: 64}, Kind: sim.PlatformGround},
			{Rect: sim.Rect{X: 128, Y: 256, W: 64, H: 64}, Kind: sim.PlatformQuestion, Contains: "mushroom"},
			{Rect: sim.Rect{X: 300, Y: 64, W: 32, H: 32}, Kind: sim.PlatformCoin},
		},
		Enemies: []sim.SpawnRecord{
			{X: 400, Y: 64, Kind: "goomba"},
		},
		Goal: &goal,
	}
}

func drainKinds(w *sim.World) map[sim.EventKind]int {
	kinds := make(map[sim.EventKind]int)
	for _, ev := range w.Events().Drain() {
		kinds[ev.Kind]++
	}
	return kinds
}

func countPowerups(w *sim.World) int {
	n := 0
	w.EachPowerup(func(*sim.Body, *sim.Powerup) { n++ })
	return n
}

func countEnemies(w *sim.World) int {
	n := 0
	w.EachEnemy(func(*sim.Body, *sim.Enemy) { n++ })
	return n
}

func countFireballs(w *sim.World) int {
	n := 0
	w.EachFireball(func(*sim.Body, *sim.Fireball) { n++ })
	return n
}

func TestWorldLoadsLevel(t *testing.T) {
	w := sim.NewWorld(testLevel())

	body, state, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, sim.Vec2{X: 96, Y: 64}, body.Position)
	assert.Equal(t, sim.PowerSmall, state.Power)

	assert.Equal(t, 1, countEnemies(w))
	assert.Equal(t, 3, w.Run().Lives)
	assert.Equal(t, sim.PhasePlaying, w.Run().Phase)
	assert.Equal(t, "test", w.Info().Name)
	require.NotNil(t, w.Info().Goal)
}

func TestBuiltinLevelLoads(t *testing.T) {
	w := sim.NewWorld(sim.BuiltinLevel())

	_, _, ok := w.Player()
	require.True(t, ok)
	assert.Equal(t, 3, countEnemies(w))
	assert.Equal(t, 1, countPowerups(w))
	assert.NotEmpty(t, w.Platforms().Platforms)
	require.NotNil(t, w.Info().Goal)

	// A fresh world survives a few seconds of idle simulation
	for i := 0; i < 300; i++ {
		w.Step(tick)
	}
	assert.Equal(t, sim.PhasePlaying, w.Run().Phase)
}

func TestWorldLoadSkipsUnknownRecords(t *testing.T) {
	level := sim.Level{
		Name:        "broken",
		PlayerStart: sim.Vec2{X: 96, Y: 64},
		Platforms: []sim.PlatformRecord{
			{Rect: sim.Rect{X: 0, Y: 0, W: 640, H: 64}, Kind: sim.PlatformGround},
			{Rect: sim.Rect{X: 100, Y: 100, W: 0, H: 64}, Kind: sim.PlatformGravel}, // empty bounds
		},
		Enemies: []sim.SpawnRecord{
			{X: 200, Y: 64, Kind: "dragon"},
			{X: 300, Y: 64, Kind: "goomba"},
		},
		Powerups: []sim.SpawnRecord{
			{X: 250, Y: 64, Kind: "hamburger"},
		},
	}

	w := sim.NewWorld(level)

	assert.Len(t, w.Platforms().Platforms, 1)
	assert.Equal(t, 1, countEnemies(w))
	assert.Equal(t, 0, countPowerups(w))
}

// The first head bump on a question block releases its powerup; every later
// bump is a no-op. The block is reached by jumping from the ground directly
// underneath it, so the hit survives the collision snap that zeroes the
// upward velocity before the block sweep runs.
func TestWorldBlockHitIsOneShot(t *testing.T) {
	level := sim.Level{
		Name:        "block",
		PlayerStart: sim.Vec2{X: 140, Y: 64},
		Platforms: []sim.PlatformRecord{
			{Rect: sim.Rect{X: 0, Y: 0, W: 640, H: 64}, Kind: sim.PlatformGround},
			{Rect: sim.Rect{X: 128, Y: 192, W: 64, H: 64}, Kind: sim.PlatformQuestion, Contains: "mushroom"},
		},
	}
	w := sim.NewWorld(level)
	body, _, ok := w.Player()
	require.True(t, ok)

	// Settle onto the ground first
	w.Step(tick)
	require.True(t, body.Grounded)

	// Jump straight up into the block and ride the arc back down
	jump := func() {
		w.Input().JumpPressed = true
		w.Input().JumpHeld = true
		w.Step(tick)
		w.Input().JumpPressed = false
		for i := 0; i < 120 && !body.Grounded; i++ {
			w.Step(tick)
		}
		w.Input().JumpHeld = false
		require.True(t, body.Grounded)
	}

	jump()
	assert.True(t, w.Platforms().Platforms[1].HasBeenHit)
	assert.Equal(t, 1, countPowerups(w))

	kinds := drainKinds(w)
	assert.Equal(t, 1, kinds[sim.EventBlockHit])
	assert.Equal(t, 1, kinds[sim.EventPowerupSpawned])

	jump()
	assert.Equal(t, 1, countPowerups(w))
	kinds = drainKinds(w)
	assert.Zero(t, kinds[sim.EventBlockHit])
	assert.Zero(t, kinds[sim.EventPowerupSpawned])
}

func TestWorldCoinCollection(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, _, ok := w.Player()
	require.True(t, ok)

	body.Position = sim.Vec2{X: 300, Y: 64}
	platformsBefore := len(w.Platforms().Platforms)

	w.Step(tick)

	assert.Equal(t, 1, w.Run().Coins)
	assert.Equal(t, sim.ScoreCoin, w.Run().Score)
	assert.Len(t, w.Platforms().Platforms, platformsBefore-1)
	assert.Equal(t, 1, drainKinds(w)[sim.EventCoinCollected])
}

func TestWorldPauseFreezesSimulation(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, _, ok := w.Player()
	require.True(t, ok)

	w.Input().PausePressed = true
	w.Step(tick)
	assert.Equal(t, sim.PhasePaused, w.Run().Phase)

	w.Input().PausePressed = false
	frozen := *body
	w.Input().Right = true
	for i := 0; i < 10; i++ {
		w.Step(tick)
	}
	assert.Equal(t, frozen.Position, body.Position)
	assert.Equal(t, frozen.Velocity, body.Velocity)

	w.Input().PausePressed = true
	w.Step(tick)
	assert.Equal(t, sim.PhasePlaying, w.Run().Phase)
}

func TestWorldStompBouncesPlayer(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, state, ok := w.Player()
	require.True(t, ok)

	// Falling onto the goomba from just above
	body.Position = sim.Vec2{X: 400, Y: 85}
	body.Velocity = sim.Vec2{X: 0, Y: -50}

	w.Step(tick)

	assert.Equal(t, sim.StompBounce, body.Velocity.Y)
	assert.Equal(t, sim.StateJumping, state.Movement)
	assert.Equal(t, sim.ScoreStomp, w.Run().Score)
	assert.Equal(t, 1, drainKinds(w)[sim.EventEnemyStomped])

	var goombaState sim.EnemyState
	w.EachEnemy(func(_ *sim.Body, e *sim.Enemy) { goombaState = e.State })
	assert.Equal(t, sim.EnemyStomped, goombaState)
}

func TestWorldSideHitPowersDown(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, state, ok := w.Player()
	require.True(t, ok)

	state.Power = sim.PowerBig
	body.Size = sim.PlayerSize(sim.PowerBig, false)
	body.Position = sim.Vec2{X: 410, Y: 64}

	w.Step(tick)

	assert.Equal(t, sim.PowerSmall, state.Power)
	assert.True(t, state.Invincible)
	assert.Equal(t, 1, drainKinds(w)[sim.EventPlayerDamaged])

	// Invincibility shields the follow-up contact
	body.Position = sim.Vec2{X: 410, Y: 64}
	w.Step(tick)
	assert.Equal(t, sim.PowerSmall, state.Power)
	assert.False(t, state.Dead())
	assert.Zero(t, drainKinds(w)[sim.EventPlayerDamaged])
}

func TestWorldFallDeathRespawnAndGameOver(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, state, ok := w.Player()
	require.True(t, ok)

	body.Position = sim.Vec2{X: 100, Y: -200}
	w.Step(tick)
	assert.True(t, state.Dead())
	assert.Equal(t, 1, drainKinds(w)[sim.EventPlayerDied])

	// After the death sequence runs out, a life is spent and the player
	// returns to the start
	w.Step(sim.DeathSequenceTime + 0.1)
	assert.Equal(t, 2, w.Run().Lives)
	assert.False(t, state.Dead())
	assert.Equal(t, w.Info().PlayerStart, body.Position)
	assert.Equal(t, 1, drainKinds(w)[sim.EventPlayerRespawned])

	// On the last life the same sequence ends the run
	w.Run().Lives = 1
	body.Position = sim.Vec2{X: 100, Y: -200}
	w.Step(tick)
	w.Step(sim.DeathSequenceTime + 0.1)
	assert.Equal(t, sim.PhaseGameOver, w.Run().Phase)
	assert.Equal(t, 1, drainKinds(w)[sim.EventGameOver])
}

func TestWorldGoalCompletesLevel(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, _, ok := w.Player()
	require.True(t, ok)

	body.Position = sim.Vec2{X: 590, Y: 64}
	w.Step(tick)

	assert.Equal(t, sim.PhaseLevelComplete, w.Run().Phase)
	assert.Equal(t, sim.ScoreLevelCleared, w.Run().Score)
	assert.Equal(t, 1, drainKinds(w)[sim.EventLevelCompleted])
}

func TestWorldFireballThrowLimit(t *testing.T) {
	w := sim.NewWorld(testLevel())
	_, state, ok := w.Player()
	require.True(t, ok)
	state.Power = sim.PowerFire

	w.Input().FirePressed = true
	w.Step(tick)
	assert.Equal(t, 1, countFireballs(w))
	assert.Equal(t, 1, drainKinds(w)[sim.EventFireballThrown])

	w.Step(tick)
	assert.Equal(t, 2, countFireballs(w))
	assert.Equal(t, 1, drainKinds(w)[sim.EventFireballThrown])

	// Two live fireballs is the cap
	w.Step(tick)
	assert.Equal(t, 2, countFireballs(w))
	assert.Zero(t, drainKinds(w)[sim.EventFireballThrown])
}

func TestWorldPowerupPickup(t *testing.T) {
	level := testLevel()
	level.Powerups = []sim.SpawnRecord{
		{X: 96, Y: 64, Kind: "mushroom"},
	}
	w := sim.NewWorld(level)
	_, state, ok := w.Player()
	require.True(t, ok)

	w.Step(tick)

	assert.Equal(t, sim.PowerBig, state.Power)
	assert.Equal(t, sim.ScorePowerup, w.Run().Score)
	assert.Equal(t, 1, drainKinds(w)[sim.EventPowerupCollected])
	assert.Equal(t, 0, countPowerups(w))
}

func TestWorldJumpAndVariableHeight(t *testing.T) {
	w := sim.NewWorld(testLevel())
	body, state, ok := w.Player()
	require.True(t, ok)

	// Settle onto the ground first
	w.Step(tick)
	require.True(t, body.Grounded)

	w.Input().JumpPressed = true
	w.Input().JumpHeld = true
	w.Step(tick)

	assert.Equal(t, sim.StateJumping, state.Movement)
	assert.True(t, state.JumpHolding)
	assert.Greater(t, body.Velocity.Y, 0.0)

	w.Input().JumpPressed = false
	w.Input().JumpHeld = false
	w.Step(tick)
	assert.False(t, state.JumpHolding)
}
