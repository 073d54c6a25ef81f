package component

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/physics"
)

// Paddle is a vertical bat at a fixed column; Y is the top row
type Paddle struct {
	X int
	Y int
}

func NewPaddle(x, y int) Paddle {
	return Paddle{X: x, Y: y}
}

// MoveUp raises the paddle one row, no-op at the top edge
func (p *Paddle) MoveUp() {
	if p.Y > 0 {
		p.Y--
	}
}

// MoveDown lowers the paddle one row, no-op once the bottom edge reaches the grid height
func (p *Paddle) MoveDown() {
	if p.Y+constant.PaddleHeight < constant.GridHeight {
		p.Y++
	}
}

// Bounds returns the hit span used for ball collision
func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{
		X:      p.X,
		Y:      p.Y,
		Width:  constant.PaddleWidth,
		Height: constant.PaddleHeight,
	}
}
