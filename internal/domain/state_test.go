package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTransitions(t *testing.T) {
	valid := []struct{ from, to State }{
		{StateIdle, StateCountdown},
		{StateCountdown, StateRoundActive},
		{StateRoundActive, StateRoundSettling},
		{StateRoundSettling, StateCountdown},
		{StateRoundSettling, StateMidSummary},
		{StateRoundSettling, StateGameOver},
		{StateMidSummary, StateCountdown},
	}
	for _, tc := range valid {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	invalid := []struct{ from, to State }{
		{StateIdle, StateRoundActive},
		{StateCountdown, StateGameOver},
		{StateRoundActive, StateCountdown},
		{StateMidSummary, StateGameOver},
		{StateGameOver, StateCountdown},
	}
	for _, tc := range invalid {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}
