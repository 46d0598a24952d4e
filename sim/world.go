package sim

import (
	"context"
	"time"

	"github.com/plus3/brickhop/ecs"
)

// World bundles the storage and scheduler for one loaded level and exposes
// the read surface the front end renders from.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	players   *ecs.Query[playerView]
	enemies   *ecs.Query[enemyView]
	powerups  *ecs.Query[powerupView]
	fireballs *ecs.Query[fireballView]

	input     *ecs.Singleton[Input]
	run       *ecs.Singleton[RunState]
	events    *ecs.Singleton[EventQueue]
	platforms *ecs.Singleton[PlatformSet]
	info      *ecs.Singleton[LevelInfo]
}

// RegisterSystems registers the frame systems in their contract order.
// Collision resolution for the player precedes every interaction sweep, and
// the horizontal pass inside each physics step precedes the vertical one.
func RegisterSystems(scheduler *ecs.Scheduler) {
	scheduler.Register(&PlayerControlSystem{})
	scheduler.Register(&PlayerPhysicsSystem{})
	scheduler.Register(&PlayerStateSystem{})
	scheduler.Register(&CoinSystem{})
	scheduler.Register(&BlockHitSystem{})
	scheduler.Register(&EnemySystem{})
	scheduler.Register(&EnemyContactSystem{})
	scheduler.Register(&PowerupSystem{})
	scheduler.Register(&PowerupPickupSystem{})
	scheduler.Register(&FireballSystem{})
	scheduler.Register(&DeathFallSystem{})
	scheduler.Register(&RunStateSystem{})
}

// NewWorld loads a level into a fresh storage and wires the scheduler.
// Extra registration hooks let the front end add its own component types
// (debug overlay items) to the same storage.
func NewWorld(level Level, extras ...func(*ecs.ComponentRegistry)) *World {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	for _, extra := range extras {
		extra(registry)
	}
	storage := ecs.NewStorage(registry)
	LoadLevel(storage, level)

	scheduler := ecs.NewScheduler(storage)
	RegisterSystems(scheduler)

	return &World{
		Storage:   storage,
		Scheduler: scheduler,
		players:   ecs.NewQuery[playerView](storage),
		enemies:   ecs.NewQuery[enemyView](storage),
		powerups:  ecs.NewQuery[powerupView](storage),
		fireballs: ecs.NewQuery[fireballView](storage),
		input:     ecs.NewSingleton[Input](storage),
		run:       ecs.NewSingleton[RunState](storage),
		events:    ecs.NewSingleton[EventQueue](storage),
		platforms: ecs.NewSingleton[PlatformSet](storage),
		info:      ecs.NewSingleton[LevelInfo](storage),
	}
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.Scheduler.Once(dt)
}

// RunFor steps the simulation at the given interval until the context is
// cancelled. Used by headless tooling; the game binary steps from its own
// frame callback instead.
func (w *World) RunFor(ctx context.Context, interval time.Duration) {
	w.Scheduler.Run(ctx, interval)
}

// Input returns the control snapshot written by the front end each frame.
func (w *World) Input() *Input { return w.input.Get() }

// Run returns the scoreboard and phase.
func (w *World) Run() *RunState { return w.run.Get() }

// Events returns the frame event queue.
func (w *World) Events() *EventQueue { return w.events.Get() }

// Platforms returns the level's platform list.
func (w *World) Platforms() *PlatformSet { return w.platforms.Get() }

// Info returns the loaded level's metadata.
func (w *World) Info() *LevelInfo { return w.info.Get() }

// Player returns the player's body and state.
func (w *World) Player() (*Body, *PlayerState, bool) {
	player, ok := w.players.First()
	if !ok {
		return nil, nil, false
	}
	return player.Body, player.PlayerState, true
}

// EachEnemy visits every live enemy in spawn order.
func (w *World) EachEnemy(fn func(*Body, *Enemy)) {
	for enemy := range w.enemies.Iter() {
		fn(enemy.Body, enemy.Enemy)
	}
}

// EachPowerup visits every powerup in spawn order.
func (w *World) EachPowerup(fn func(*Body, *Powerup)) {
	for pw := range w.powerups.Iter() {
		fn(pw.Body, pw.Powerup)
	}
}

// EachFireball visits every live fireball in spawn order.
func (w *World) EachFireball(fn func(*Body, *Fireball)) {
	for fb := range w.fireballs.Iter() {
		fn(fb.Body, fb.Fireball)
	}
}
