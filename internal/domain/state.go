package domain

// State represents the current lifecycle state of a room
type State string

const (
	StateIdle          State = "IDLE"           // Waiting in the lobby for players to join
	StateCountdown     State = "COUNTDOWN"      // Lead-in before the answer window opens
	StateRoundActive   State = "ROUND_ACTIVE"   // Answer window open, submissions accepted
	StateRoundSettling State = "ROUND_SETTLING" // Round closed, waiting for the host to continue
	StateMidSummary    State = "MID_SUMMARY"    // Showing ranked standings at the midpoint
	StateGameOver      State = "GAME_OVER"      // Final standings broadcast, room inert
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition from the current state to the target is valid
func (s State) CanTransitionTo(target State) bool {
	validTransitions := map[State][]State{
		StateIdle:          {StateCountdown},
		StateCountdown:     {StateRoundActive},
		StateRoundActive:   {StateRoundSettling},
		StateRoundSettling: {StateCountdown, StateMidSummary, StateGameOver},
		StateMidSummary:    {StateCountdown},
	}

	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}

	for _, state := range allowed {
		if state == target {
			return true
		}
	}
	return false
}
