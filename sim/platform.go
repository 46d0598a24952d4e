package sim

// PlatformKind tags a platform rectangle with its gameplay role.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformGravel
	PlatformQuestion
	PlatformCoin
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformGravel:
		return "gravel"
	case PlatformQuestion:
		return "question"
	case PlatformCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Platform is a static level rectangle. Geometry and kind are immutable after
// level load; HasBeenHit is the only mutable field and is set exactly once.
type Platform struct {
	Bounds     Rect
	Kind       PlatformKind
	HasBeenHit bool

	// Contains names the powerup released on the first hit of a question
	// block; empty means a plain coin chime.
	Contains PowerupKind
}

// Solid reports whether the platform takes part in collision resolution.
// Coin platforms are pickups, not obstacles.
func (p *Platform) Solid() bool {
	return p.Kind != PlatformCoin
}

// Hit marks a question block as struck. It succeeds exactly once; any later
// call, and any call on a non-question platform, is a no-op returning false.
func (p *Platform) Hit() bool {
	if p.Kind != PlatformQuestion || p.HasBeenHit {
		return false
	}
	p.HasBeenHit = true
	return true
}

// PlatformSet is the level's static platform list, owned by the loaded level
// and read-only to the simulation except for coin removal and block hits.
type PlatformSet struct {
	Platforms []Platform
}

// SolidAt reports whether any solid platform overlaps the probe rect.
func (ps *PlatformSet) SolidAt(probe Rect) bool {
	for i := range ps.Platforms {
		p := &ps.Platforms[i]
		if p.Solid() && p.Bounds.Overlaps(probe) {
			return true
		}
	}
	return false
}

// RemoveAt removes the platform at index i, preserving order.
func (ps *PlatformSet) RemoveAt(i int) {
	ps.Platforms = append(ps.Platforms[:i], ps.Platforms[i+1:]...)
}
