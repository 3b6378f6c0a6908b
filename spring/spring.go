// Package spring implements the critically damped spring used to animate
// every menu element.
//
// The integrator is an implicit Euler step of a unit-mass spring whose
// stiffness and damping are both derived from a single rate d:
//
//	x'' = -d²(x - target) - 2d·x'
//
// It is stable for any positive time step and rate, never overshoots a
// fixed target when started from rest, and gives the same result for the
// same inputs regardless of how frames are spaced.
package spring

// Number is the set of quantities a spring can drive. Integer springs
// truncate the new velocity and the new position toward zero.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Step advances one spring by dt using rate d and returns the new
// velocity and position. A non-positive dt or d leaves the spring as is.
func Step[T Number](dt, d float64, velocity, position, target T) (T, T) {
	if dt <= 0 || d <= 0 {
		return velocity, position
	}

	dampedRate := d * dt
	dampedRate2 := d * dampedRate
	force := float64(velocity) - (float64(position)-float64(target))*dampedRate2

	stiffness := 1 + dampedRate
	stiffness *= stiffness

	velocity = T(force / stiffness)
	position = T(float64(position) + float64(velocity)*dt)
	return velocity, position
}

// Value is a single animated quantity with its own rate.
type Value[T Number] struct {
	Position T
	Target   T
	Velocity T
	Damping  float64
}

// NewValue returns a spring resting at p.
func NewValue[T Number](p T, damping float64) Value[T] {
	return Value[T]{Position: p, Target: p, Damping: damping}
}

// Update integrates the spring over dt.
func (v *Value[T]) Update(dt float64) {
	v.Velocity, v.Position = Step(dt, v.Damping, v.Velocity, v.Position, v.Target)
}

// Snap moves the spring onto its target. Velocity is kept so motion stays
// continuous if the target moves again.
func (v *Value[T]) Snap() {
	v.Position = v.Target
}

// SetDamping changes the rate without touching velocity. Non-positive
// rates are ignored.
func (v *Value[T]) SetDamping(d float64) {
	if d > 0 {
		v.Damping = d
	}
}

// Settled reports whether the spring is within eps of its target and
// moving slower than eps.
func (v *Value[T]) Settled(eps float64) bool {
	dp := float64(v.Position) - float64(v.Target)
	dv := float64(v.Velocity)
	return dp <= eps && dp >= -eps && dv <= eps && dv >= -eps
}
