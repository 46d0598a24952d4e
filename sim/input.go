package sim

// Input is the per-frame control snapshot written by the front end before the
// scheduler runs. Pressed fields are edges (true for one frame), Held fields
// are levels.
type Input struct {
	Left  bool
	Right bool

	JumpPressed bool
	JumpHeld    bool

	DuckHeld bool

	FirePressed  bool
	PausePressed bool
}
