package physics

import "github.com/lixenwraith/pong/vmath"

// Kinetic holds a continuous position and a velocity in cells per second
type Kinetic struct {
	X, Y       float32
	VelX, VelY float32
}

// Integrate advances position by velocity over dt seconds: p = p + v*dt
func Integrate(k *Kinetic, dt float32) {
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, vx, vy float32) {
	k.VelX = vx
	k.VelY = vy
}

// ReflectAccelerateX flips horizontal velocity and grows its magnitude by accel, capped at limit
func ReflectAccelerateX(k *Kinetic, accel, limit float32) {
	k.VelX = -k.VelX
	k.VelX = vmath.Min(vmath.Abs(k.VelX)+accel, limit) * vmath.Signum(k.VelX)
}

// ReflectY flips vertical velocity, magnitude unchanged
func ReflectY(k *Kinetic) {
	k.VelY = -k.VelY
}
