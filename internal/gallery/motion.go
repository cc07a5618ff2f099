// Package gallery holds the headless motion cores of the two image
// carousels: a linear scrolling gallery and a spherical dome gallery.
// Both are pure state machines stepped once per display frame; rendering
// is left to a thin platform adapter projecting the computed transforms.
package gallery

import (
	"math"
	"time"
)

// Phase is the interaction state shared by both engines. Focused is
// tracked separately since it is orthogonal to motion.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseInertia
)

// PointerKind selects the tap-vs-drag displacement threshold. Touch
// input is noisier than a mouse, so it gets a larger allowance.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

const (
	tapThresholdMousePx = 6
	tapThresholdTouchPx = 10
)

// IsTap classifies a finished gesture by total displacement.
func IsTap(dx, dy float64, kind PointerKind) bool {
	threshold := float64(tapThresholdMousePx)
	if kind == PointerTouch {
		threshold = tapThresholdTouchPx
	}
	return dx*dx+dy*dy <= threshold*threshold
}

// Lerp eases a toward b by factor t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// NormalizeAngle maps degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// WrapAngleSigned maps degrees into [-180, 180).
func WrapAngleSigned(deg float64) float64 {
	return NormalizeAngle(deg+180) - 180
}

const (
	inertiaMaxVelocity = 1.4
	inertiaLaunchScale = 80
	inertiaMinVelocity = 0.005
)

// Inertia models post-drag residual motion decaying under friction.
// Decay rate, stop threshold and frame cap all derive from a single
// dampening parameter in [0, 1].
type Inertia struct {
	vx, vy float64
	frames int
	active bool

	friction  float64
	stopBelow float64
	maxFrames int
}

// NewInertia derives the decay constants from dampening. Values outside
// [0, 1] are clamped.
func NewInertia(dampening float64) *Inertia {
	d := Clamp(dampening, 0, 1)
	return &Inertia{
		friction:  0.94 + 0.055*d,
		stopBelow: 0.015 - 0.01*d,
		maxFrames: int(math.Round(90 + 270*d)),
	}
}

// ShouldLaunch reports whether a release velocity is worth animating.
func ShouldLaunch(vx, vy float64) bool {
	return math.Abs(vx) > inertiaMinVelocity || math.Abs(vy) > inertiaMinVelocity
}

// Start arms the inertia with a release velocity, clamped and scaled to
// per-frame magnitude.
func (in *Inertia) Start(vx, vy float64) {
	in.vx = Clamp(vx, -inertiaMaxVelocity, inertiaMaxVelocity) * inertiaLaunchScale
	in.vy = Clamp(vy, -inertiaMaxVelocity, inertiaMaxVelocity) * inertiaLaunchScale
	in.frames = 0
	in.active = true
}

// Stop cancels any in-flight motion (a new drag start does this).
func (in *Inertia) Stop() { in.active = false }

// Active reports whether the inertia is still running.
func (in *Inertia) Active() bool { return in.active }

// Step decays the velocity one frame and returns the per-frame deltas.
// The decay guarantees termination: either the velocity crosses the stop
// threshold or the frame cap is hit.
func (in *Inertia) Step() (dvx, dvy float64, done bool) {
	if !in.active {
		return 0, 0, true
	}

	in.vx *= in.friction
	in.vy *= in.friction

	if math.Abs(in.vx) < in.stopBelow && math.Abs(in.vy) < in.stopBelow {
		in.active = false
		return 0, 0, true
	}
	in.frames++
	if in.frames > in.maxFrames {
		in.active = false
		return 0, 0, true
	}

	return in.vx, in.vy, false
}

// Settle is the debounced snap-to-boundary check armed by wheel input
// bursts. It holds a deadline rather than a timer: the owning engine
// polls Fire from its frame loop, so the check always runs on the frame
// goroutine and engine state stays single-writer.
type Settle struct {
	delay    time.Duration
	deadline time.Time
}

func NewSettle(delay time.Duration) *Settle {
	return &Settle{delay: delay}
}

// Arm starts (or restarts) the debounce window from now.
func (s *Settle) Arm(now time.Time) {
	s.deadline = now.Add(s.delay)
}

// Cancel drops the pending deadline, if any.
func (s *Settle) Cancel() {
	s.deadline = time.Time{}
}

// Fire reports whether the window has elapsed, clearing the deadline so
// the check fires exactly once per arm.
func (s *Settle) Fire(now time.Time) bool {
	if s.deadline.IsZero() || now.Before(s.deadline) {
		return false
	}
	s.deadline = time.Time{}
	return true
}
