// Package scene holds the window-independent parts of the viewer: star
// generation and camera motion.
package scene

import (
	"math"
	"math/rand"
)

const (
	DefaultRadius = 220.0
	MinRadius     = 20.0
	MaxRadius     = 900.0
	OrbitHeight   = 40.0
	OrbitSpeed    = 0.1 // rad/s
	ZoomStep      = 15.0
	EaseRate      = 5.0
	StarSpread    = 1000.0
)

type Star struct {
	X, Y, Z    float64
	Brightness uint8
}

// NewStarfield scatters n stars in a cube around the origin. The same seed
// always yields the same field.
func NewStarfield(n int, seed int64) []Star {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:          (r.Float64() - 0.5) * StarSpread,
			Y:          (r.Float64() - 0.5) * StarSpread,
			Z:          (r.Float64() - 0.5) * StarSpread,
			Brightness: uint8(60 + r.Intn(196)),
		}
	}
	return stars
}

// OrbitCamera returns a camera position on a horizontal circle around the origin.
func OrbitCamera(angle, radius, height float64) (x, y, z float64) {
	return math.Sin(angle) * radius, height, math.Cos(angle) * radius
}

// Ease moves current toward target by rate*dt of the remaining distance,
// never overshooting.
func Ease(current, target, rate, dt float64) float64 {
	t := rate * dt
	if t >= 1 {
		return target
	}
	if t <= 0 {
		return current
	}
	return current + (target-current)*t
}

func ClampRadius(r float64) float64 {
	return math.Max(MinRadius, math.Min(MaxRadius, r))
}

// Orbit is the camera state of the viewer.
type Orbit struct {
	Angle        float64
	Radius       float64
	RadiusTarget float64
	Running      bool
}

func NewOrbit() Orbit {
	return Orbit{Radius: DefaultRadius, RadiusTarget: DefaultRadius, Running: true}
}

// Zoom moves the radius target by wheel notches, clamped.
func (o *Orbit) Zoom(wheel float64) {
	o.RadiusTarget = ClampRadius(o.RadiusTarget - wheel*ZoomStep)
}

// Step advances the orbit by dt seconds and returns the camera position.
func (o *Orbit) Step(dt float64) (x, y, z float64) {
	if o.Running {
		o.Angle += OrbitSpeed * dt
	}
	o.Radius = Ease(o.Radius, o.RadiusTarget, EaseRate, dt)
	return OrbitCamera(o.Angle, o.Radius, OrbitHeight)
}
