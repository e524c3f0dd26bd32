package mastery

// State describes where a student stands on one objective.
type State string

const (
	StateNotAttempted State = "not-attempted"
	StateInProgress   State = "in-progress"
	StateMastered     State = "mastered"
)

// StatusOf classifies a gradebook status code. Only a code of exactly
// RequiredCompletions is mastered; codes above it are unspecified by the
// grading policy and are reported as in progress.
func StatusOf(code int) State {
	switch {
	case code == RequiredCompletions:
		return StateMastered
	case code == 0:
		return StateNotAttempted
	default:
		return StateInProgress
	}
}

// Label returns a short display label for the state.
func (s State) Label() string {
	switch s {
	case StateNotAttempted:
		return "Not attempted"
	case StateInProgress:
		return "In progress"
	case StateMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}
