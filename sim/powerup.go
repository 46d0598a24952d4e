package sim

// PowerupKind identifies a pickup's effect. The effect dispatch lives in the
// pickup system; the entity itself only moves and reports overlap.
type PowerupKind int

const (
	PowerupNone PowerupKind = iota
	PowerupMushroom
	PowerupFireFlower
	PowerupStar
	PowerupChicken
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupNone:
		return "none"
	case PowerupMushroom:
		return "mushroom"
	case PowerupFireFlower:
		return "fire_flower"
	case PowerupStar:
		return "star"
	case PowerupChicken:
		return "chicken"
	default:
		return "unknown"
	}
}

// ParsePowerupTag resolves a level-data powerup tag.
func ParsePowerupTag(tag string) (PowerupKind, bool) {
	switch tag {
	case "mushroom":
		return PowerupMushroom, true
	case "fire_flower":
		return PowerupFireFlower, true
	case "star":
		return PowerupStar, true
	case "chicken":
		return PowerupChicken, true
	default:
		return PowerupNone, false
	}
}

// Powerup is a spawned pickup. Inactive powerups are pruned by the
// orchestrator; collision against an inactive powerup is a no-op.
type Powerup struct {
	Kind   PowerupKind
	Active bool
}

// NewPowerupBody builds the body for a freshly spawned pickup: a fixed
// horizontal speed plus an upward pop out of the block.
func NewPowerupBody(pos Vec2) Body {
	return Body{
		Position:    pos,
		Velocity:    Vec2{X: PowerupSpeed, Y: PowerupPop},
		Size:        sizePowerup,
		FacingRight: true,
	}
}

// UpdatePowerupBody runs the standard collision passes with the pickup
// bounce policy: hitting a side reverses horizontal velocity instead of
// stopping it.
func UpdatePowerupBody(b *Body, dt float64, ps *PlatformSet) {
	b.ApplyGravity(dt, 1)
	if b.MoveHorizontal(dt, ps) {
		b.Velocity.X = -b.Velocity.X
		b.FacingRight = !b.FacingRight
	}
	b.MoveVertical(dt, ps)
}
