package engine

import (
	"time"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
)

// Phase is the match state machine position
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// ScoreEvent identifies which player, if any, scored during a check
type ScoreEvent uint8

const (
	ScoreNone ScoreEvent = iota
	ScorePlayer1
	ScorePlayer2
)

// MatchState aggregates everything one match owns; the game loop holds the only reference
type MatchState struct {
	Paddles [2]component.Paddle
	Ball    *component.Ball
	Score   [2]int
	Phase   Phase

	// Quit is set when the match ended on the quit key rather than a win
	Quit bool

	clock     TimeProvider
	startedAt time.Time
}

// NewMatchState builds the opening position and launches the ball
func NewMatchState(clock TimeProvider) *MatchState {
	s := &MatchState{
		Paddles: [2]component.Paddle{
			component.NewPaddle(constant.LeftPaddleColumn, constant.PaddleStartRow),
			component.NewPaddle(constant.RightPaddleColumn, constant.PaddleStartRow),
		},
		Ball:      component.NewBall(constant.BallStartX, constant.BallStartY, clock),
		Phase:     PhaseRunning,
		clock:     clock,
		startedAt: clock.Now(),
	}
	s.Ball.StartRandom()
	return s
}

// Apply performs the state change for one resolved key intent
func (s *MatchState) Apply(intent input.IntentType) {
	if intent == input.IntentQuit {
		s.Phase = PhaseEnded
		s.Quit = true
		return
	}

	index, delta, ok := intent.Paddle()
	if !ok {
		return
	}
	if delta < 0 {
		s.Paddles[index].MoveUp()
	} else {
		s.Paddles[index].MoveDown()
	}
}

// CheckScore awards a point when the ball has left the field horizontally, then resets the ball
// The left exit is tested first; both cannot hold for one position
func (s *MatchState) CheckScore() ScoreEvent {
	switch {
	case s.Ball.X <= 0:
		s.Score[1]++
		s.Ball.Reset()
		return ScorePlayer2
	case s.Ball.X >= float32(constant.GridWidth-1):
		s.Score[0]++
		s.Ball.Reset()
		return ScorePlayer1
	}
	return ScoreNone
}

// CheckWin ends the match once either score reaches the winning threshold
func (s *MatchState) CheckWin() bool {
	if s.Score[0] >= constant.WinningScore || s.Score[1] >= constant.WinningScore {
		s.Phase = PhaseEnded
		return true
	}
	return false
}

// Elapsed reports the match duration so far
func (s *MatchState) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.startedAt)
}
