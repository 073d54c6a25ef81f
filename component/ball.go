package component

import (
	"time"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/vmath"
)

// Clock supplies timestamps for integration and launch seeding
type Clock interface {
	Now() time.Time
}

// Collision reports what the ball struck during one update (bitmask)
type Collision uint8

const (
	CollisionNone   Collision = 0
	CollisionPaddle Collision = 1 << 0
	CollisionWall   Collision = 1 << 1
)

// Ball is the single moving entity of a match
type Ball struct {
	physics.Kinetic

	clock      Clock
	lastUpdate time.Time
}

// NewBall places the ball with the start speed on both axes; call StartRandom to launch
func NewBall(x, y float32, clock Clock) *Ball {
	return &Ball{
		Kinetic: physics.Kinetic{
			X:    x,
			Y:    y,
			VelX: constant.BallStartSpeed,
			VelY: constant.BallStartSpeed,
		},
		clock:      clock,
		lastUpdate: clock.Now(),
	}
}

// StartRandom picks a launch direction from a generator seeded with the current clock reading
// and scales it to the start speed. Readings within the same microsecond of a second repeat the launch
func (b *Ball) StartRandom() {
	rng := vmath.NewXorShift(vmath.SeedFromTime(b.clock.Now()))
	dx := rng.Range(-1, 1)
	dy := rng.Range(-1, 1)

	nx, ny := vmath.Normalize2D(dx, dy)
	if nx == 0 && ny == 0 {
		nx, ny = vmath.Normalize2D(-1, -1)
	}
	physics.SetImpulse(&b.Kinetic, nx*constant.BallStartSpeed, ny*constant.BallStartSpeed)
}

// Reset recenters the ball and relaunches it at start speed
func (b *Ball) Reset() {
	b.X = constant.BallStartX
	b.Y = constant.BallStartY
	b.StartRandom()
}

// UpdatePosition integrates over the time elapsed since the previous call, then
// resolves paddle and wall collisions. Each overlapping paddle reflects independently
func (b *Ball) UpdatePosition(paddles *[2]Paddle) Collision {
	now := b.clock.Now()
	dt := float32(now.Sub(b.lastUpdate).Seconds())
	b.lastUpdate = now

	physics.Integrate(&b.Kinetic, dt)

	hit := CollisionNone
	for i := range paddles {
		if paddles[i].Bounds().Contains(b.X, b.Y) {
			physics.ReflectAccelerateX(&b.Kinetic, constant.BallAcceleration, constant.BallMaxSpeed)
			hit |= CollisionPaddle
		}
	}

	if physics.HitsHorizontalWall(b.Y, constant.GridHeight) {
		physics.ReflectY(&b.Kinetic)
		hit |= CollisionWall
	}
	return hit
}

// Cell returns the truncated grid cell of the ball, saturating negative and NaN coordinates at 0
func (b *Ball) Cell() (x, y int) {
	return toCell(b.X), toCell(b.Y)
}

func toCell(f float32) int {
	if !(f > 0) {
		return 0
	}
	return int(f)
}

// Speed returns the velocity magnitude
func (b *Ball) Speed() float32 {
	return vmath.Magnitude(b.VelX, b.VelY)
}
