package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/terminal"
)

// frameBufferSize holds a full frame so each Draw reaches the terminal in one write
const frameBufferSize = 4096

// Renderer redraws the whole field every frame: clear, paddles, ball, footer scores
type Renderer struct {
	w *bufio.Writer
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w: bufio.NewWriterSize(w, frameBufferSize),
	}
}

// Draw emits one frame; a write failure is returned wrapped and is not retried
func (r *Renderer) Draw(paddles *[2]component.Paddle, ball *component.Ball, score [2]int) error {
	w := r.w

	w.Write(terminal.CSIClear)
	terminal.WriteCursorPos(w, 0, 0)

	for i := range paddles {
		p := &paddles[i]
		for row := 0; row < constant.PaddleHeight; row++ {
			terminal.WriteCursorPos(w, p.X, p.Y+row)
			w.WriteRune(constant.PaddleGlyph)
		}
	}

	bx, by := ball.Cell()
	terminal.WriteCursorPos(w, bx, by)
	w.WriteRune(constant.BallGlyph)

	terminal.WriteCursorPos(w, constant.LeftScoreColumn, constant.ScoreRow)
	w.WriteString(constant.LeftScoreLabel)
	terminal.WriteInt(w, score[0])

	terminal.WriteCursorPos(w, constant.RightScoreColumn, constant.ScoreRow)
	w.WriteString(constant.RightScoreLabel)
	terminal.WriteInt(w, score[1])

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush frame")
	}
	return nil
}
