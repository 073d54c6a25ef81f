package constant

// Glyphs
const (
	PaddleGlyph = '█'
	BallGlyph   = 'O'
)

// Score footer, 0-indexed screen coordinates
const (
	ScoreRow         = GridHeight
	LeftScoreColumn  = GridWidth/2 - 11
	RightScoreColumn = GridWidth/2 + 4

	LeftScoreLabel  = "Player 1: "
	RightScoreLabel = "Player 2: "
)
