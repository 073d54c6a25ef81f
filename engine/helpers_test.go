package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/component"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const testFrame = 33 * time.Millisecond

// scriptedKeys replays events, advancing the clock by one frame per poll as the real wait would
// A nil entry is a poll that timed out; an exhausted script keeps timing out or returns err
type scriptedKeys struct {
	clock  *MockTimeProvider
	events []*tcell.EventKey
	err    error
	polls  int
}

func (k *scriptedKeys) PollKey(timeout time.Duration) (*tcell.EventKey, error) {
	k.polls++
	k.clock.Advance(testFrame)
	if len(k.events) == 0 {
		return nil, k.err
	}
	ev := k.events[0]
	k.events = k.events[1:]
	return ev, nil
}

type drawCall struct {
	paddles [2]component.Paddle
	ballX   float32
	ballY   float32
	score   [2]int
}

// recordingRenderer captures every frame it is asked to draw
type recordingRenderer struct {
	calls []drawCall
	err   error
}

func (r *recordingRenderer) Draw(paddles *[2]component.Paddle, ball *component.Ball, score [2]int) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, drawCall{paddles: *paddles, ballX: ball.X, ballY: ball.Y, score: score})
	return nil
}

type recordingSounder struct {
	paddleHits  int
	wallBounces int
	points      int
}

func (s *recordingSounder) PaddleHit()  { s.paddleHits++ }
func (s *recordingSounder) WallBounce() { s.wallBounces++ }
func (s *recordingSounder) Point()      { s.points++ }

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// newTestGame builds a match on a mock clock with recording collaborators
func newTestGame(events ...*tcell.EventKey) (*Game, *scriptedKeys, *recordingRenderer, *recordingSounder) {
	clock := NewMockTimeProvider(testStart)
	keys := &scriptedKeys{clock: clock, events: events}
	renderer := &recordingRenderer{}
	sounder := &recordingSounder{}
	game := NewGame(NewMatchState(clock), keys, renderer, sounder)
	return game, keys, renderer, sounder
}

// park places the ball at a fixed position and velocity
func park(b *component.Ball, x, y, vx, vy float32) {
	b.X, b.Y = x, y
	b.VelX, b.VelY = vx, vy
}
