package engine

import (
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
)

// KeySource is the keyboard collaborator; PollKey returns a nil event on timeout
type KeySource interface {
	PollKey(timeout time.Duration) (*tcell.EventKey, error)
}

// FrameRenderer draws one full frame of the match
type FrameRenderer interface {
	Draw(paddles *[2]component.Paddle, ball *component.Ball, score [2]int) error
}

// Sounder plays the match sound cues
type Sounder interface {
	PaddleHit()
	WallBounce()
	Point()
}

type nopSounder struct{}

func (nopSounder) PaddleHit()  {}
func (nopSounder) WallBounce() {}
func (nopSounder) Point()      {}

// Game runs the match loop over a MatchState
type Game struct {
	state    *MatchState
	keys     KeySource
	renderer FrameRenderer
	sounder  Sounder
	keyTable *input.KeyTable

	frames int
}

// NewGame wires the loop collaborators; a nil sounder plays nothing
func NewGame(state *MatchState, keys KeySource, renderer FrameRenderer, sounder Sounder) *Game {
	if sounder == nil {
		sounder = nopSounder{}
	}
	return &Game{
		state:    state,
		keys:     keys,
		renderer: renderer,
		sounder:  sounder,
		keyTable: input.DefaultKeyTable(),
	}
}

// State exposes the match being played
func (g *Game) State() *MatchState {
	return g.state
}

// Step runs one loop iteration: poll, dispatch, integrate, draw, score, win check
// Quit ends the match before the ball moves or a frame is drawn
func (g *Game) Step() error {
	ev, err := g.keys.PollKey(constant.InputPollTimeout)
	if err != nil {
		return errors.WithMessage(err, "poll keyboard")
	}

	g.state.Apply(g.keyTable.Resolve(ev))
	if g.state.Phase == PhaseEnded {
		log.Printf("Match quit at %d - %d", g.state.Score[0], g.state.Score[1])
		return nil
	}

	hit := g.state.Ball.UpdatePosition(&g.state.Paddles)
	if hit&component.CollisionPaddle != 0 {
		g.sounder.PaddleHit()
	}
	if hit&component.CollisionWall != 0 {
		g.sounder.WallBounce()
	}

	if err := g.renderer.Draw(&g.state.Paddles, g.state.Ball, g.state.Score); err != nil {
		return errors.WithMessage(err, "draw frame")
	}
	g.frames++

	if scored := g.state.CheckScore(); scored != ScoreNone {
		g.sounder.Point()
		log.Printf("Player %d scored: %d - %d", scored, g.state.Score[0], g.state.Score[1])
	}

	if g.state.CheckWin() {
		log.Printf("Match won at %d - %d", g.state.Score[0], g.state.Score[1])
	}
	return nil
}

// Run loops until the match ends or a fatal error occurs
func (g *Game) Run() (Outcome, error) {
	log.Printf("Match started: ball (%.2f, %.2f) velocity (%.2f, %.2f)",
		g.state.Ball.X, g.state.Ball.Y, g.state.Ball.VelX, g.state.Ball.VelY)

	for g.state.Phase == PhaseRunning {
		if err := g.Step(); err != nil {
			return g.outcome(), err
		}
	}

	out := g.outcome()
	log.Printf("Match ended after %s frames in %v", humanize.Comma(int64(out.Frames)), out.Elapsed.Round(time.Millisecond))
	return out, nil
}

func (g *Game) outcome() Outcome {
	return Outcome{
		Score:   g.state.Score,
		Quit:    g.state.Quit,
		Frames:  g.frames,
		Elapsed: g.state.Elapsed(),
	}
}
