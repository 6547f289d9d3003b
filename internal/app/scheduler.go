package app

import (
	"time"

	"wordwiz/internal/domain"
)

// Round timers fire on goroutines of their own, so each scheduled callback
// carries the epoch it was armed under. The epoch bumps on every state
// transition; a callback whose epoch no longer matches fired for a round that
// has already moved on and must do nothing.

// scheduleLocked arms the session's single timer. Caller holds s.mu.
func (s *RoomSession) scheduleLocked(d time.Duration, fn func(epoch uint64)) {
	s.cancelTimerLocked()
	s.epoch++
	epoch := s.epoch
	s.timer = s.clock.AfterFunc(d, func() {
		fn(epoch)
	})
}

// cancelTimerLocked stops any pending timer. Caller holds s.mu.
func (s *RoomSession) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// scheduleLeadInLocked enters the countdown before the current round's
// answer window opens. Caller holds s.mu.
func (s *RoomSession) scheduleLeadInLocked() {
	s.room.State = domain.StateCountdown
	s.scheduleLocked(s.cfg.RoundLeadIn, s.onLeadIn)
}

func (s *RoomSession) onLeadIn(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || epoch != s.epoch || s.room.State != domain.StateCountdown {
		s.logger.Debug("stale lead-in timer dropped", "epoch", epoch)
		return
	}

	s.beginRoundLocked()
}

// beginRoundLocked opens the answer window: a fresh challenge, the round
// clock, and the timeout timer. Caller holds s.mu.
func (s *RoomSession) beginRoundLocked() {
	challenge := s.newChallenge()
	s.room.BeginRound(challenge, s.clock.Now())

	s.logger.Info("round started",
		"round", s.room.CurrentRound,
		"firstLetter", challenge.FirstLetter,
		"lastLetter", challenge.LastLetter,
	)

	s.broadcast(domain.NewEvent(domain.EventNewRound, &domain.NewRoundPayload{
		Round:         s.room.CurrentRound,
		TotalRounds:   s.room.TotalRounds,
		FirstLetter:   challenge.FirstLetter,
		LastLetter:    challenge.LastLetter,
		TimerDuration: s.room.TimerDuration,
	}))

	s.scheduleLocked(time.Duration(s.room.TimerDuration)*time.Second, s.onRoundTimeout)
}

func (s *RoomSession) onRoundTimeout(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || epoch != s.epoch || s.room.State != domain.StateRoundActive {
		s.logger.Debug("stale round timer dropped", "epoch", epoch)
		return
	}

	s.settleRoundLocked(false)
}

// settleRoundLocked closes the answer window and parks the room until the
// host advances it. early is true when every non-host participant answered
// before the timer ran out. Caller holds s.mu.
func (s *RoomSession) settleRoundLocked(early bool) {
	s.cancelTimerLocked()
	s.epoch++
	s.room.State = domain.StateRoundSettling

	answers := s.room.CorrectAnswers()

	switch {
	case early:
		s.logger.Info("round ended early", "round", s.room.CurrentRound, "answers", len(answers))
		s.broadcast(domain.NewEvent(domain.EventRoundEndedEarly, &domain.RoundCompletePayload{
			CorrectAnswers: answers,
		}))
	case len(answers) == 0:
		example := s.findExample(s.room.Challenge.FirstLetter, s.room.Challenge.LastLetter)
		s.logger.Info("round timed out with no answers", "round", s.room.CurrentRound)
		s.broadcast(domain.NewEvent(domain.EventRoundTimeout, &domain.RoundTimeoutPayload{
			ExampleWord: example,
		}))
	default:
		s.logger.Info("round complete", "round", s.room.CurrentRound, "answers", len(answers))
		s.broadcast(domain.NewEvent(domain.EventRoundComplete, &domain.RoundCompletePayload{
			CorrectAnswers: answers,
		}))
	}

	s.broadcastExceptHost(domain.NewEvent(domain.EventWaitingForHost, &domain.MessagePayload{
		Message: "Waiting for host to start next round...",
	}))
	s.unicast(s.room.HostID, domain.NewEvent(domain.EventShowContinueButton, &domain.ShowContinueButtonPayload{
		CurrentRound: s.room.CurrentRound,
		TotalRounds:  s.room.TotalRounds,
	}))
}

// showMidSummaryLocked displays ranked standings at the midpoint and
// auto-advances after the display window. Caller holds s.mu.
func (s *RoomSession) showMidSummaryLocked() {
	s.room.State = domain.StateMidSummary

	s.broadcast(domain.NewEvent(domain.EventMidGameSummary, &domain.MidGameSummaryPayload{
		Scores:       s.room.Standings(),
		CurrentRound: s.room.CurrentRound,
		TotalRounds:  s.room.TotalRounds,
	}))

	s.scheduleLocked(s.cfg.MidSummaryDisplay, s.onMidSummaryDone)
}

func (s *RoomSession) onMidSummaryDone(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || epoch != s.epoch || s.room.State != domain.StateMidSummary {
		s.logger.Debug("stale summary timer dropped", "epoch", epoch)
		return
	}

	s.room.CurrentRound++
	s.scheduleLeadInLocked()
}

// endGameLocked finishes the game with final standings. Caller holds s.mu.
func (s *RoomSession) endGameLocked() {
	s.cancelTimerLocked()
	s.epoch++
	s.room.State = domain.StateGameOver

	standings := s.room.Standings()
	var winner domain.ScoreEntry
	if len(standings) > 0 {
		winner = standings[0]
	}

	s.logger.Info("game over", "winner", winner.Name, "score", winner.Score)

	s.broadcast(domain.NewEvent(domain.EventGameOver, &domain.GameOverPayload{
		Scores: standings,
		Winner: winner,
	}))
}
