// Package sim implements the platformer simulation core: platform geometry,
// axis-separated actor collision, the player/enemy/powerup state machines,
// and the ordered frame systems that tie them together. The world is Y-up;
// rects are anchored at their bottom-left corner.
package sim

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64 { return r.X }

func (r Rect) Right() float64 { return r.X + r.W }

func (r Rect) Bottom() float64 { return r.Y }

func (r Rect) Top() float64 { return r.Y + r.H }

func (r Rect) CenterX() float64 { return r.X + r.W/2 }

func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether the two rectangles intersect with positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
