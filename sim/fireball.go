package sim

// Fireball is the fire-power projectile. It skips along the ground with a
// fixed rebound and despawns on walls or when it leaves the world.
type Fireball struct {
	Active bool
}

// NewFireballBody builds the body for a thrown fireball, launched from the
// player's center in the facing direction.
func NewFireballBody(playerBody *Body) Body {
	center := playerBody.Center()
	speed := FireballSpeed
	x := playerBody.Bounds().Right()
	if !playerBody.FacingRight {
		speed = -speed
		x = playerBody.Bounds().Left() - sizeFireball.X
	}
	return Body{
		Position:    Vec2{X: x, Y: center.Y - sizeFireball.Y/2},
		Velocity:    Vec2{X: speed, Y: 0},
		Size:        sizeFireball,
		FacingRight: playerBody.FacingRight,
	}
}

// UpdateFireballBody advances a fireball one tick. Floor contact rebounds it
// at a fixed vertical speed; wall contact or falling out of the world
// deactivates it.
func UpdateFireballBody(f *Fireball, b *Body, dt float64, ps *PlatformSet) {
	if !f.Active {
		return
	}
	b.ApplyGravity(dt, 1)
	if b.MoveHorizontal(dt, ps) {
		f.Active = false
		return
	}
	hit := b.MoveVertical(dt, ps)
	if hit.Landed {
		b.Velocity.Y = FireballBounce
		b.Grounded = false
	}
	if b.BelowKillThreshold() {
		f.Active = false
	}
}
