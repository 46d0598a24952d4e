package sim

// EnemyKind selects the per-kind state machine. Enemies are one component
// with a kind tag and kind-specific payload, dispatched through a single
// Update/OnStomped/ContactHarmful set.
type EnemyKind int

const (
	EnemyGoomba EnemyKind = iota
	EnemyKoopa
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "goomba"
	case EnemyKoopa:
		return "koopa"
	default:
		return "unknown"
	}
}

// ParseEnemyTag resolves a level-data enemy tag.
func ParseEnemyTag(tag string) (EnemyKind, bool) {
	switch tag {
	case "goomba":
		return EnemyGoomba, true
	case "koopa":
		return EnemyKoopa, true
	default:
		return 0, false
	}
}

// EnemyState is the base enemy lifecycle (goomba uses it directly).
type EnemyState int

const (
	EnemyWalking EnemyState = iota
	EnemyStomped
	EnemyDead
)

// KoopaState is the koopa's shell state machine.
type KoopaState int

const (
	KoopaWalking KoopaState = iota
	KoopaShellIdle
	KoopaShellMoving
	KoopaDead
)

// Enemy is the tagged enemy component. Koopa* fields are meaningful only
// when Kind == EnemyKoopa.
type Enemy struct {
	Kind  EnemyKind
	State EnemyState
	Alive bool

	Koopa            KoopaState
	ShellIdleTimer   float64
	ShellMovingRight bool
}

// NewEnemy builds the component and body for a spawn record.
func NewEnemy(kind EnemyKind, pos Vec2) (Enemy, Body) {
	size := sizeGoomba
	if kind == EnemyKoopa {
		size = sizeKoopa
	}
	enemy := Enemy{Kind: kind, Alive: true}
	body := Body{Position: pos, Size: size}
	return enemy, body
}

// ContactHarmful reports whether touching this enemy damages the player.
// A stomped goomba and an idle shell are harmless; an idle shell instead
// gets kicked on contact.
func (e *Enemy) ContactHarmful() bool {
	if !e.Alive {
		return false
	}
	switch e.Kind {
	case EnemyGoomba:
		return e.State == EnemyWalking
	case EnemyKoopa:
		return e.Koopa == KoopaWalking || e.Koopa == KoopaShellMoving
	}
	return false
}

// IdleShell reports whether this is a koopa shell waiting to be kicked.
func (e *Enemy) IdleShell() bool {
	return e.Alive && e.Kind == EnemyKoopa && e.Koopa == KoopaShellIdle
}

// OnStomped applies a stomp from the player.
func (e *Enemy) OnStomped(b *Body, playerCenterX float64) {
	if !e.Alive {
		return
	}
	switch e.Kind {
	case EnemyGoomba:
		if e.State == EnemyWalking {
			e.State = EnemyStomped
			b.Velocity = Vec2{}
			b.StateTimer = 0
		}
	case EnemyKoopa:
		switch e.Koopa {
		case KoopaWalking:
			e.Koopa = KoopaShellIdle
			e.ShellIdleTimer = 0
			b.Velocity = Vec2{}
			b.Size = sizeKoopaShell
			b.StateTimer = 0
		case KoopaShellIdle:
			e.KickShell(b, playerCenterX)
		case KoopaShellMoving:
			e.Koopa = KoopaShellIdle
			e.ShellIdleTimer = 0
			b.Velocity = Vec2{}
			b.StateTimer = 0
		}
	}
}

// KickShell sends an idle shell sliding away from the player's side:
// player left of the shell kicks it right, and vice versa.
func (e *Enemy) KickShell(b *Body, playerCenterX float64) {
	if !e.IdleShell() {
		return
	}
	e.ShellMovingRight = playerCenterX < b.Center().X
	e.Koopa = KoopaShellMoving
	e.ShellIdleTimer = 0
	b.FacingRight = e.ShellMovingRight
	b.StateTimer = 0
}

// Update advances the enemy one tick against the platform list.
func (e *Enemy) Update(b *Body, dt float64, ps *PlatformSet) {
	if !e.Alive {
		return
	}
	b.StateTimer += dt

	switch e.Kind {
	case EnemyGoomba:
		e.updateGoomba(b, dt, ps)
	case EnemyKoopa:
		e.updateKoopa(b, dt, ps)
	}

	if b.BelowKillThreshold() {
		e.Alive = false
		if e.Kind == EnemyKoopa {
			e.Koopa = KoopaDead
		} else {
			e.State = EnemyDead
		}
	}
}

func (e *Enemy) updateGoomba(b *Body, dt float64, ps *PlatformSet) {
	switch e.State {
	case EnemyWalking:
		e.walk(b, dt, ps, GoombaSpeed)
	case EnemyStomped:
		b.Velocity.X = 0
		b.ApplyGravity(dt, 1)
		b.MoveVertical(dt, ps)
		if b.StateTimer >= StompDuration {
			e.State = EnemyDead
			e.Alive = false
		}
	}
}

func (e *Enemy) updateKoopa(b *Body, dt float64, ps *PlatformSet) {
	switch e.Koopa {
	case KoopaWalking:
		e.walk(b, dt, ps, KoopaSpeed)
	case KoopaShellIdle:
		b.Velocity.X = 0
		b.ApplyGravity(dt, 1)
		b.MoveVertical(dt, ps)
		e.ShellIdleTimer += dt
		if e.ShellIdleTimer >= ShellIdleTimeout {
			e.Koopa = KoopaDead
			e.Alive = false
		}
	case KoopaShellMoving:
		// A sliding shell bounces off walls instead of stopping.
		speed := ShellSpeed
		if !e.ShellMovingRight {
			speed = -speed
		}
		b.Velocity.X = speed
		b.FacingRight = e.ShellMovingRight
		b.ApplyGravity(dt, 1)
		if b.MoveHorizontal(dt, ps) {
			e.ShellMovingRight = !e.ShellMovingRight
			b.Velocity.X = -b.Velocity.X
			b.FacingRight = e.ShellMovingRight
		}
		b.MoveVertical(dt, ps)
	}
}

// walk is the shared patrol behavior: constant speed in the facing
// direction, reversing on walls and, while grounded, on ledges found by the
// edge feeler. A wall reversal settles this tick; the ledge feeler only runs
// on wall-free ticks, otherwise a wall sitting at a ledge would flip the
// facing twice and pin the walker against the wall.
func (e *Enemy) walk(b *Body, dt float64, ps *PlatformSet, speed float64) {
	if !b.FacingRight {
		speed = -speed
	}
	b.Velocity.X = speed

	b.ApplyGravity(dt, 1)
	hitWall := b.MoveHorizontal(dt, ps)
	if hitWall {
		b.FacingRight = !b.FacingRight
		b.Velocity.X = -b.Velocity.X
	}
	b.MoveVertical(dt, ps)

	if !hitWall && b.Grounded && !b.GroundAhead(ps) {
		b.FacingRight = !b.FacingRight
		b.Velocity.X = -b.Velocity.X
	}
}
