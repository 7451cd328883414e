package core

// Outcome is the terminal state of a single playthrough.
type Outcome int

const (
	OutcomePlaying  Outcome = iota // Still running
	OutcomeCollided                // Hit an obstacle (terminal)
	OutcomeWon                     // Reached the finish (terminal)
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeCollided:
		return "collided"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the playthrough has ended.
func (o Outcome) Terminal() bool {
	return o != OutcomePlaying
}

// Resolve latches this frame's conditions into the outcome.
// Terminal outcomes never change; collision takes priority over winning.
func (o Outcome) Resolve(collided, won bool) Outcome {
	if o.Terminal() {
		return o
	}
	if collided {
		return OutcomeCollided
	}
	if won {
		return OutcomeWon
	}
	return OutcomePlaying
}
