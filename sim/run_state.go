package sim

// Phase is the high-level game phase.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseLevelComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	case PhaseLevelComplete:
		return "level complete"
	default:
		return "unknown"
	}
}

// RunState is the per-run scoreboard and phase, referenced by the simulation
// but displayed and persisted (if at all) by external collaborators.
type RunState struct {
	Lives int
	Coins int
	Score int
	Phase Phase
}

// NewRunState returns the scoreboard for a fresh run.
func NewRunState() RunState {
	return RunState{Lives: 3, Phase: PhasePlaying}
}
