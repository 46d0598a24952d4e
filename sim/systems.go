package sim

import "github.com/plus3/brickhop/ecs"

// Entity views shared by the frame systems.
type playerView = struct {
	ecs.EntityId
	*Body
	*PlayerState
}

type enemyView = struct {
	ecs.EntityId
	*Body
	*Enemy
}

type powerupView = struct {
	ecs.EntityId
	*Body
	*Powerup
}

type fireballView = struct {
	ecs.EntityId
	*Body
	*Fireball
}

// PlayerControlSystem applies the frame's input snapshot to the player:
// horizontal velocity, duck toggling, jump start, and fireball throws.
type PlayerControlSystem struct {
	Players   ecs.Query[playerView]
	Fireballs ecs.Query[fireballView]
	Input     ecs.Singleton[Input]
	Run       ecs.Singleton[RunState]
	Events    ecs.Singleton[EventQueue]
}

func (s *PlayerControlSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	if p.Dead() {
		return
	}
	in := s.Input.Get()

	if in.DuckHeld && !p.Ducking {
		p.SetDucking(b, true)
	} else if !in.DuckHeld && p.Ducking {
		p.SetDucking(b, false)
	}

	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	speed := MoveSpeed
	if p.Ducking {
		speed *= DuckSpeedScale
	}
	b.Velocity.X = dir * speed

	if dir != 0 {
		b.FacingRight = dir > 0
		if b.Grounded && !p.Ducking {
			p.setMovement(b, StateWalking)
		}
	} else if b.Grounded && !p.Ducking && p.Movement != StateJumping {
		p.setMovement(b, StateIdle)
	}

	if in.JumpPressed && b.Grounded && !p.Ducking {
		b.Velocity.Y = JumpImpulse
		b.Grounded = false
		p.setMovement(b, StateJumping)
		p.JumpHolding = true
		p.JumpHoldTime = 0
	}
	if !in.JumpHeld {
		p.JumpHolding = false
	}

	if in.FirePressed && p.Power == PowerFire && !p.Ducking && s.Fireballs.Count() < MaxFireballs {
		frame.Commands.Spawn(Fireball{Active: true}, NewFireballBody(b))
		s.Events.Get().Emit(EventFireballThrown, b.Center())
	}
}

// PlayerPhysicsSystem is steps 2-4 of the frame: vertical integration with
// the jump-hold gravity override, then the horizontal and vertical collision
// passes, in that order. A dying player skips collision entirely and falls
// under the death-only gravity.
type PlayerPhysicsSystem struct {
	Players   ecs.Query[playerView]
	Platforms ecs.Singleton[PlatformSet]
	Run       ecs.Singleton[RunState]
}

func (s *PlayerPhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	dt := frame.DeltaTime
	ps := s.Platforms.Get()
	p.Bumped = false

	if p.Dead() {
		b.Velocity.Y += DeathGravity * dt
		b.Position.Y += b.Velocity.Y * dt
		return
	}

	gravityScale := 1.0
	if p.Movement == StateJumping && p.JumpHolding && b.Velocity.Y > 0 && p.JumpHoldTime < JumpHoldMax {
		gravityScale = JumpHoldGravityScale
		p.JumpHoldTime += dt
	}
	b.ApplyGravity(dt, gravityScale)

	if b.MoveHorizontal(dt, ps) {
		b.Velocity.X = 0
	}

	hit := b.MoveVertical(dt, ps)
	if hit.HitHead {
		p.JumpHolding = false
		p.Bumped = true
		p.BumpedBlock = hit.HeadBlock
	}

	if b.Grounded {
		if p.Movement == StateJumping || p.Movement == StateFalling {
			if b.Velocity.X != 0 {
				p.setMovement(b, StateWalking)
			} else {
				p.setMovement(b, StateIdle)
			}
		}
	} else if b.Velocity.Y < 0 && !p.Ducking {
		p.setMovement(b, StateFalling)
	}
}

// PlayerStateSystem is the player's own per-frame bookkeeping: the state
// timer and the invincibility/transition countdowns.
type PlayerStateSystem struct {
	Players ecs.Query[playerView]
	Run     ecs.Singleton[RunState]
}

func (s *PlayerStateSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	dt := frame.DeltaTime

	b.StateTimer += dt

	if p.Invincible {
		p.InvincibilityTimer -= dt
		if p.InvincibilityTimer <= 0 {
			p.Invincible = false
			p.InvincibilityTimer = 0
		}
	}
	if p.Transitioning {
		p.TransitionTimer -= dt
		if p.TransitionTimer <= 0 {
			p.Transitioning = false
			p.TransitionTimer = 0
		}
	}
}

// CoinSystem removes coin platforms the player overlaps and credits them.
type CoinSystem struct {
	Players   ecs.Query[playerView]
	Platforms ecs.Singleton[PlatformSet]
	Run       ecs.Singleton[RunState]
	Events    ecs.Singleton[EventQueue]
}

func (s *CoinSystem) Execute(frame *ecs.UpdateFrame) {
	run := s.Run.Get()
	if run.Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok || player.PlayerState.Dead() {
		return
	}
	bounds := player.Body.Bounds()
	ps := s.Platforms.Get()

	for i := len(ps.Platforms) - 1; i >= 0; i-- {
		p := &ps.Platforms[i]
		if p.Kind != PlatformCoin || !bounds.Overlaps(p.Bounds) {
			continue
		}
		pos := Vec2{X: p.Bounds.CenterX(), Y: p.Bounds.CenterY()}
		ps.RemoveAt(i)
		run.Coins++
		run.Score += ScoreCoin
		s.Events.Get().Emit(EventCoinCollected, pos)
	}
}

// BlockHitSystem recognizes question-block strikes. The vertical collision
// pass snaps a rising player flush under the block and zeroes its velocity,
// so the strike cannot be re-detected from overlap here; instead the physics
// system records the bumped platform's bounds on the player and this sweep
// consumes the record. Coin pickup may reorder the platform slice between
// the two systems, which is why the record is a bounds copy rather than an
// index. The first successful hit spawns the configured powerup, later
// bumps are no-ops behind the HasBeenHit flag.
type BlockHitSystem struct {
	Players   ecs.Query[playerView]
	Platforms ecs.Singleton[PlatformSet]
	Run       ecs.Singleton[RunState]
	Events    ecs.Singleton[EventQueue]
}

func (s *BlockHitSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok || player.PlayerState.Dead() {
		return
	}
	p := player.PlayerState
	if !p.Bumped {
		return
	}
	p.Bumped = false
	ps := s.Platforms.Get()

	for i := range ps.Platforms {
		blk := &ps.Platforms[i]
		if blk.Bounds != p.BumpedBlock {
			continue
		}
		if blk.Kind != PlatformQuestion || !blk.Hit() {
			return
		}
		top := Vec2{X: blk.Bounds.CenterX(), Y: blk.Bounds.Top()}
		s.Events.Get().Emit(EventBlockHit, top)
		if blk.Contains != PowerupNone {
			spawnPos := Vec2{X: blk.Bounds.CenterX() - sizePowerup.X/2, Y: blk.Bounds.Top()}
			frame.Commands.Spawn(
				Powerup{Kind: blk.Contains, Active: true},
				NewPowerupBody(spawnPos),
			)
			s.Events.Get().EmitPowerup(EventPowerupSpawned, top, blk.Contains)
		}
		return
	}
}

// EnemySystem advances every enemy state machine and prunes the dead.
type EnemySystem struct {
	Enemies   ecs.Query[enemyView]
	Platforms ecs.Singleton[PlatformSet]
	Run       ecs.Singleton[RunState]
}

func (s *EnemySystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	ps := s.Platforms.Get()
	for enemy := range s.Enemies.Iter() {
		if !enemy.Enemy.Alive {
			frame.Commands.Delete(enemy.EntityId)
			continue
		}
		enemy.Enemy.Update(enemy.Body, frame.DeltaTime, ps)
		if !enemy.Enemy.Alive {
			frame.Commands.Delete(enemy.EntityId)
		}
	}
}

// EnemyContactSystem runs the player-vs-enemy sweep. A stomp is a downward-
// moving player whose bottom edge is above the enemy's vertical midpoint;
// everything else is a side hit. The first damaging hit ends the sweep.
type EnemyContactSystem struct {
	Players ecs.Query[playerView]
	Enemies ecs.Query[enemyView]
	Run     ecs.Singleton[RunState]
	Events  ecs.Singleton[EventQueue]
}

func (s *EnemyContactSystem) Execute(frame *ecs.UpdateFrame) {
	run := s.Run.Get()
	if run.Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	if p.Dead() {
		return
	}
	events := s.Events.Get()

	for enemy := range s.Enemies.Iter() {
		e, eb := enemy.Enemy, enemy.Body
		if !e.Alive {
			continue
		}
		bounds := b.Bounds()
		if !bounds.Overlaps(eb.Bounds()) {
			continue
		}

		stomp := b.Velocity.Y < 0 && bounds.Bottom() > eb.Bounds().CenterY()
		if stomp {
			kicked := e.IdleShell()
			e.OnStomped(eb, b.Center().X)
			if kicked {
				events.Emit(EventShellKicked, eb.Center())
				run.Score += ScoreShellKick
			} else {
				events.Emit(EventEnemyStomped, eb.Center())
				run.Score += ScoreStomp
			}
			b.Velocity.Y = StompBounce
			b.Grounded = false
			p.setMovement(b, StateJumping)
			p.JumpHolding = false
			continue
		}

		if e.IdleShell() {
			e.KickShell(eb, b.Center().X)
			events.Emit(EventShellKicked, eb.Center())
			run.Score += ScoreShellKick
			continue
		}

		if !e.ContactHarmful() || p.Invincible {
			continue
		}
		if p.PowerDown(b) {
			events.Emit(EventPlayerDamaged, b.Center())
		} else {
			events.Emit(EventPlayerDied, b.Center())
		}
		break
	}
}

// PowerupSystem advances pickups with the bounce policy and prunes the
// inactive ones.
type PowerupSystem struct {
	Powerups  ecs.Query[powerupView]
	Platforms ecs.Singleton[PlatformSet]
	Run       ecs.Singleton[RunState]
}

func (s *PowerupSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	ps := s.Platforms.Get()
	for pw := range s.Powerups.Iter() {
		if !pw.Powerup.Active {
			frame.Commands.Delete(pw.EntityId)
			continue
		}
		UpdatePowerupBody(pw.Body, frame.DeltaTime, ps)
		if pw.Body.BelowKillThreshold() {
			pw.Powerup.Active = false
			frame.Commands.Delete(pw.EntityId)
		}
	}
}

// PowerupPickupSystem dispatches collection effects by powerup kind.
type PowerupPickupSystem struct {
	Players  ecs.Query[playerView]
	Powerups ecs.Query[powerupView]
	Run      ecs.Singleton[RunState]
	Events   ecs.Singleton[EventQueue]
}

func (s *PowerupPickupSystem) Execute(frame *ecs.UpdateFrame) {
	run := s.Run.Get()
	if run.Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	if p.Dead() {
		return
	}
	bounds := b.Bounds()

	for pw := range s.Powerups.Iter() {
		if !pw.Powerup.Active || !bounds.Overlaps(pw.Body.Bounds()) {
			continue
		}
		switch pw.Powerup.Kind {
		case PowerupMushroom, PowerupFireFlower:
			p.PowerUp(b)
			run.Score += ScorePowerup
		case PowerupStar:
			p.GrantStar()
			run.Score += ScorePowerup
		case PowerupChicken:
			run.Score += ScoreChicken
		}
		s.Events.Get().EmitPowerup(EventPowerupCollected, pw.Body.Center(), pw.Powerup.Kind)
		pw.Powerup.Active = false
		frame.Commands.Delete(pw.EntityId)
	}
}

// FireballSystem advances fireballs and resolves their enemy hits.
type FireballSystem struct {
	Fireballs ecs.Query[fireballView]
	Enemies   ecs.Query[enemyView]
	Platforms ecs.Singleton[PlatformSet]
	Run       ecs.Singleton[RunState]
	Events    ecs.Singleton[EventQueue]
}

func (s *FireballSystem) Execute(frame *ecs.UpdateFrame) {
	run := s.Run.Get()
	if run.Phase != PhasePlaying {
		return
	}
	ps := s.Platforms.Get()

	for fb := range s.Fireballs.Iter() {
		f, b := fb.Fireball, fb.Body
		UpdateFireballBody(f, b, frame.DeltaTime, ps)
		if !f.Active {
			frame.Commands.Delete(fb.EntityId)
			continue
		}

		for enemy := range s.Enemies.Iter() {
			e, eb := enemy.Enemy, enemy.Body
			if !e.Alive || !b.Bounds().Overlaps(eb.Bounds()) {
				continue
			}
			e.Alive = false
			if e.Kind == EnemyKoopa {
				e.Koopa = KoopaDead
			} else {
				e.State = EnemyDead
			}
			s.Events.Get().Emit(EventEnemyKilled, eb.Center())
			run.Score += ScoreEnemyKilled
			frame.Commands.Delete(enemy.EntityId)

			f.Active = false
			frame.Commands.Delete(fb.EntityId)
			break
		}
	}
}

// DeathFallSystem triggers the death sequence for a player that has fallen
// out of the world.
type DeathFallSystem struct {
	Players ecs.Query[playerView]
	Run     ecs.Singleton[RunState]
	Events  ecs.Singleton[EventQueue]
}

func (s *DeathFallSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Run.Get().Phase != PhasePlaying {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	if p.Dead() || !b.BelowKillThreshold() {
		return
	}
	p.Kill(b)
	s.Events.Get().Emit(EventPlayerDied, b.Center())
}

// RunStateSystem owns the terminal per-level transitions: pause toggling,
// life loss and respawn after the death sequence, game over, and goal-post
// level completion.
type RunStateSystem struct {
	Players ecs.Query[playerView]
	Input   ecs.Singleton[Input]
	Run     ecs.Singleton[RunState]
	Level   ecs.Singleton[LevelInfo]
	Events  ecs.Singleton[EventQueue]
}

func (s *RunStateSystem) Execute(frame *ecs.UpdateFrame) {
	run := s.Run.Get()

	if s.Input.Get().PausePressed {
		switch run.Phase {
		case PhasePlaying:
			run.Phase = PhasePaused
		case PhasePaused:
			run.Phase = PhasePlaying
		}
	}
	if run.Phase != PhasePlaying {
		return
	}

	player, ok := s.Players.First()
	if !ok {
		return
	}
	b, p := player.Body, player.PlayerState
	info := s.Level.Get()
	events := s.Events.Get()

	if p.Dead() {
		if b.StateTimer < DeathSequenceTime {
			return
		}
		run.Lives--
		if run.Lives <= 0 {
			run.Phase = PhaseGameOver
			events.Emit(EventGameOver, b.Center())
			return
		}
		p.Respawn(b, info.PlayerStart)
		events.Emit(EventPlayerRespawned, b.Center())
		return
	}

	if info.Goal != nil && b.Bounds().Overlaps(*info.Goal) {
		run.Phase = PhaseLevelComplete
		run.Score += ScoreLevelCleared
		events.Emit(EventLevelCompleted, b.Center())
	}
}
