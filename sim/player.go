package sim

// MovementState is the player's movement state machine.
type MovementState int

const (
	StateIdle MovementState = iota
	StateWalking
	StateJumping
	StateFalling
	StateDucking
	StateDeath
	// Declared for level scripting parity; never entered by core gameplay.
	StateSwimming
	StateClimbing
)

func (m MovementState) String() string {
	switch m {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	case StateDucking:
		return "ducking"
	case StateDeath:
		return "death"
	case StateSwimming:
		return "swimming"
	case StateClimbing:
		return "climbing"
	default:
		return "unknown"
	}
}

// PowerState is the player's power level.
type PowerState int

const (
	PowerSmall PowerState = iota
	PowerBig
	PowerFire
)

func (p PowerState) String() string {
	switch p {
	case PowerSmall:
		return "small"
	case PowerBig:
		return "big"
	case PowerFire:
		return "fire"
	default:
		return "unknown"
	}
}

// PlayerState holds everything about the player beyond its Body.
type PlayerState struct {
	Movement MovementState
	Power    PowerState
	Ducking  bool

	Invincible         bool
	InvincibilityTimer float64

	// Transitioning is the visual-only flash window after a power change.
	Transitioning   bool
	TransitionTimer float64

	// Jump-hold bookkeeping: while holding the jump key, gravity is scaled
	// down for at most JumpHoldMax seconds of upward travel.
	JumpHolding  bool
	JumpHoldTime float64

	// Head bump recorded by the physics pass, consumed by the block-hit
	// sweep later in the same frame. BumpedBlock is the bounds of the
	// platform struck; the collision snap has already zeroed the upward
	// velocity by the time the sweep runs.
	Bumped      bool
	BumpedBlock Rect
}

// PlayerSize returns the collision bounds dimensions for a power/duck combination.
// Big and Fire share dimensions; ducking roughly halves the height.
func PlayerSize(power PowerState, ducking bool) Vec2 {
	if power == PowerSmall {
		if ducking {
			return sizeSmallDuck
		}
		return sizeSmall
	}
	if ducking {
		return sizeBigDuck
	}
	return sizeBig
}

// Dead reports whether the player is in its death sequence.
func (p *PlayerState) Dead() bool {
	return p.Movement == StateDeath
}

func (p *PlayerState) setMovement(b *Body, s MovementState) {
	if p.Movement == s {
		return
	}
	p.Movement = s
	b.StateTimer = 0
}

// applySize resizes the collision bounds for the current power/duck state.
// Position is the bottom-left corner, so the foot Y is preserved.
func (p *PlayerState) applySize(b *Body) {
	b.Size = PlayerSize(p.Power, p.Ducking)
}

// SetDucking toggles ducking. Ducking is only legal while grounded and not
// dying; standing back up is always allowed. The bounds bottom edge never
// moves.
func (p *PlayerState) SetDucking(b *Body, duck bool) {
	if duck == p.Ducking || p.Dead() {
		return
	}
	if duck {
		if !b.Grounded {
			return
		}
		p.Ducking = true
		p.applySize(b)
		p.setMovement(b, StateDucking)
		return
	}
	p.Ducking = false
	p.applySize(b)
	if b.Velocity.X != 0 {
		p.setMovement(b, StateWalking)
	} else {
		p.setMovement(b, StateIdle)
	}
}

// PowerUp advances Small -> Big -> Fire. At Fire it stays at Fire; the
// transition flash still plays as collection feedback.
func (p *PlayerState) PowerUp(b *Body) {
	if p.Power < PowerFire {
		p.Power++
		p.applySize(b)
	}
	p.startTransition()
}

// PowerDown steps Fire -> Big -> Small. A success grants the timed
// invincibility window; from Small it invokes the death sequence instead
// and returns false.
func (p *PlayerState) PowerDown(b *Body) bool {
	if p.Power == PowerSmall {
		p.Kill(b)
		return false
	}
	p.Power--
	p.applySize(b)
	p.startTransition()
	p.Invincible = true
	p.InvincibilityTimer = DamageInvincibilityTime
	return true
}

// GrantStar starts the star invincibility window.
func (p *PlayerState) GrantStar() {
	p.Invincible = true
	p.InvincibilityTimer = StarTime
}

// Kill starts the death sequence: a fixed upward pop under a death-only
// gravity, with normal collision resolution disabled. Supersedes any
// mid-flight action and clears the jump hold.
func (p *PlayerState) Kill(b *Body) {
	p.setMovement(b, StateDeath)
	p.Ducking = false
	p.JumpHolding = false
	p.JumpHoldTime = 0
	b.Velocity = Vec2{X: 0, Y: DeathJumpImpulse}
	b.Grounded = false
}

// Respawn resets the player to gameplay defaults at the given position.
func (p *PlayerState) Respawn(b *Body, pos Vec2) {
	*p = PlayerState{}
	b.Position = pos
	b.Velocity = Vec2{}
	b.FacingRight = true
	b.Grounded = false
	b.StateTimer = 0
	p.applySize(b)
}

func (p *PlayerState) startTransition() {
	p.Transitioning = true
	p.TransitionTimer = TransitionTime
}
