package constant

// Paddle
const (
	// PaddleHeight is the paddle span in rows
	PaddleHeight = 4

	// PaddleWidth is the paddle span in columns used for hit detection
	PaddleWidth = 1

	// LeftPaddleColumn is the fixed column of player 1's paddle
	LeftPaddleColumn = 2

	// RightPaddleColumn is the fixed column of player 2's paddle
	RightPaddleColumn = GridWidth - 3

	// PaddleStartRow vertically centers both paddles
	PaddleStartRow = GridHeight/2 - PaddleHeight/2
)

// Ball, speeds in cells per second
const (
	BallStartSpeed   float32 = 5.0
	BallMaxSpeed     float32 = 25.0
	BallAcceleration float32 = 5.0

	BallStartX float32 = GridWidth / 2.0
	BallStartY float32 = GridHeight / 2.0
)

// Scoring
const (
	// WinningScore ends the match when either player reaches it
	WinningScore = 5
)
