package sim

// Body is the shared physical state of every simulated actor (player,
// enemies, powerups, fireballs). Position is the bottom-left corner of the
// collision bounds, so the foot Y never moves when the size changes.
type Body struct {
	Position    Vec2
	Velocity    Vec2
	Size        Vec2
	FacingRight bool
	Grounded    bool

	// StateTimer is seconds since the owner's last state change.
	StateTimer float64
}

// Bounds returns the current collision rectangle.
func (b *Body) Bounds() Rect {
	return Rect{X: b.Position.X, Y: b.Position.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the center of the collision bounds.
func (b *Body) Center() Vec2 {
	return Vec2{X: b.Position.X + b.Size.X/2, Y: b.Position.Y + b.Size.Y/2}
}

// BelowKillThreshold reports whether the body has fallen out of the world.
func (b *Body) BelowKillThreshold() bool {
	return b.Position.Y < -2*b.Size.Y
}

// ApplyGravity integrates vertical velocity. gravityScale is 1 except while
// the player's jump hold is active.
func (b *Body) ApplyGravity(dt, gravityScale float64) {
	b.Velocity.Y += Gravity * gravityScale * dt
}

// MoveHorizontal advances the body along X and pushes it out of any solid
// platform to the edge nearest its approach direction. Returns true if a
// wall was hit; the caller decides the velocity response (stop, reverse,
// or bounce). Must run before MoveVertical each tick.
func (b *Body) MoveHorizontal(dt float64, ps *PlatformSet) bool {
	b.Position.X += b.Velocity.X * dt

	hit := false
	for i := range ps.Platforms {
		p := &ps.Platforms[i]
		if !p.Solid() || !b.Bounds().Overlaps(p.Bounds) {
			continue
		}
		if b.Velocity.X > 0 {
			b.Position.X = p.Bounds.Left() - b.Size.X
			hit = true
		} else if b.Velocity.X < 0 {
			b.Position.X = p.Bounds.Right()
			hit = true
		}
	}
	return hit
}

// VerticalHit describes the outcome of a vertical collision pass.
// HeadBlock identifies the platform struck head-on; resolution snaps the
// body out of overlap and zeroes its velocity, so the bounds copy is the
// only evidence of the strike that survives the pass.
type VerticalHit struct {
	Landed    bool
	HitHead   bool
	HeadBlock Rect
}

// MoveVertical advances the body along Y and resolves against solid
// platforms. The previous foot/head positions are the tie-break: a falling
// (or stationary) body whose foot started at or above a platform top snaps
// onto it; a rising body whose head started at or below a platform bottom
// snaps underneath. This is what keeps simultaneous X/Y overlaps and corner
// cases consistent between the player and enemies.
func (b *Body) MoveVertical(dt float64, ps *PlatformSet) VerticalHit {
	prevFoot := b.Position.Y
	prevHead := b.Position.Y + b.Size.Y

	b.Position.Y += b.Velocity.Y * dt
	b.Grounded = false

	var hit VerticalHit
	for i := range ps.Platforms {
		p := &ps.Platforms[i]
		if !p.Solid() || !b.Bounds().Overlaps(p.Bounds) {
			continue
		}
		if b.Velocity.Y <= 0 && prevFoot >= p.Bounds.Top() {
			b.Position.Y = p.Bounds.Top()
			b.Velocity.Y = 0
			b.Grounded = true
			hit.Landed = true
		} else if b.Velocity.Y > 0 && prevHead <= p.Bounds.Bottom() {
			b.Position.Y = p.Bounds.Bottom() - b.Size.Y
			b.Velocity.Y = 0
			hit.HitHead = true
			hit.HeadBlock = p.Bounds
		}
	}
	return hit
}

// GroundAhead probes for walkable ground one bounds-width ahead of the body
// in its facing direction, one unit below its feet. The feeler is exactly
// 1x1; it can misfire at platform seams, which is part of the observable
// enemy-turning behavior and must not be widened.
func (b *Body) GroundAhead(ps *PlatformSet) bool {
	probeX := b.Position.X - b.Size.X
	if b.FacingRight {
		probeX = b.Position.X + b.Size.X
	}
	probe := Rect{X: probeX, Y: b.Position.Y - 1, W: 1, H: 1}
	return ps.SolidAt(probe)
}
