package physics

// Rect is an axis-aligned span in grid units with inclusive edges
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies within [X, X+Width] x [Y, Y+Height]
func (r Rect) Contains(x, y float32) bool {
	return x >= float32(r.X) &&
		x <= float32(r.X+r.Width) &&
		y >= float32(r.Y) &&
		y <= float32(r.Y+r.Height)
}

// HitsHorizontalWall reports whether y is at or beyond the top row or the last row of a height-row field
// Position is not clamped; the caller only reflects
func HitsHorizontalWall(y float32, height int) bool {
	return y <= 0 || y >= float32(height)-1
}
