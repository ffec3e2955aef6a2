package game

// Wall reflects the ball off the top, left and right edges of the field.
// The bottom is open.
type Wall struct{}

// Intersects reflects the ball when its edge is past a wall and it is still
// moving outward. It returns true if the ball was reflected.
func (Wall) Intersects(ball *Ball, width float64) bool {
	if ball == nil {
		return false
	}

	c := ball.Circle()
	v := ball.Velocity()
	reflected := false

	if c.Y-c.R < 0 && v.Y < 0 {
		ball.Reflect(ReflectVertical)
		reflected = true
	}
	if (c.X-c.R < 0 && v.X < 0) || (c.X+c.R > width && v.X > 0) {
		ball.Reflect(ReflectHorizontal)
		reflected = true
	}
	return reflected
}
