package gallery

import (
	"math"
	"time"
)

// DomeTile is one slot on the sphere. Offsets are grid coordinates, not
// pixels; the projection turns them into rotations around the dome.
type DomeTile struct {
	OffsetX, OffsetY int
	SizeX, SizeY     int
	Item             Item
}

// BuildDomeTiles lays the item pool out on the sphere: one column per
// segment, rows staggered between even and odd columns. Items are cycled
// over the slots, avoiding immediate repetition of the same image. An
// empty pool yields tiles with zero-value items rather than an error.
func BuildDomeTiles(pool []Item, segments int) []DomeTile {
	xStart := -(segments - 1)
	evenYs := []int{-4, -2, 0, 2, 4}
	oddYs := []int{-3, -1, 1, 3, 5}

	var coords []DomeTile
	for c := 0; c < segments; c++ {
		ys := evenYs
		if c%2 != 0 {
			ys = oddYs
		}
		for _, y := range ys {
			coords = append(coords, DomeTile{
				OffsetX: xStart + c*2,
				OffsetY: y,
				SizeX:   2,
				SizeY:   2,
			})
		}
	}

	if len(pool) == 0 {
		return coords
	}

	used := make([]Item, len(coords))
	for i := range coords {
		used[i] = pool[i%len(pool)]
	}
	for i := 1; i < len(used); i++ {
		if used[i].Image != used[i-1].Image {
			continue
		}
		for j := i + 1; j < len(used); j++ {
			if used[j].Image != used[i].Image {
				used[i], used[j] = used[j], used[i]
				break
			}
		}
	}

	for i := range coords {
		coords[i].Item = used[i]
	}
	return coords
}

// baseRotation converts a tile's grid offsets into its resting rotation
// on the sphere, in degrees.
func baseRotation(t DomeTile, segments int) (rotX, rotY float64) {
	unit := 360.0 / float64(segments) / 2
	rotY = unit * (float64(t.OffsetX) + (float64(t.SizeX)-1)/2)
	rotX = unit * (float64(t.OffsetY) - (float64(t.SizeY)-1)/2)
	return rotX, rotY
}

// FitBasis selects which container dimension drives the dome radius.
type FitBasis string

const (
	FitAuto   FitBasis = "auto"
	FitMin    FitBasis = "min"
	FitMax    FitBasis = "max"
	FitWidth  FitBasis = "width"
	FitHeight FitBasis = "height"
)

// Rect is an on-screen rectangle in container pixels.
type Rect struct {
	X, Y, W, H float64
}

// DomeConfig tunes the spherical gallery.
type DomeConfig struct {
	Items    []Item
	Segments int

	Fit       float64
	FitBasis  FitBasis
	MinRadius float64
	MaxRadius float64
	PadFactor float64

	MaxVerticalRotationDeg float64
	DragSensitivity        float64
	DragDampening          float64
	EnlargeTransition      time.Duration

	OpenedWidth  float64
	OpenedHeight float64

	Autoplay            bool
	AutoplaySpeedDegSec float64

	// OnSelect, when set, receives a tapped tile's code instead of the
	// in-place enlarge transition running. Exactly one of the two
	// behaviors applies per configuration.
	OnSelect func(code string)
}

const (
	defaultSegments        = 30
	defaultFit             = 0.5
	defaultMinRadius       = 520.0
	defaultPadFactor       = 0.25
	defaultMaxVerticalDeg  = 5.0
	defaultDragSensitivity = 20.0
	defaultDragDampening   = 2.0
	defaultEnlargeMs       = 300
	defaultAutoplayDegSec  = 7.0

	// The sphere circumference constant used by the tile projection.
	circumferenceFactor = 3.14

	moveThresholdSqPx = 16.0
	minCloseDelay     = 250 * time.Millisecond
	tapCooldown       = 80 * time.Millisecond
	maxFrameDelta     = 32 * time.Millisecond
)

// DomeEngine is the motion core of the rotating dome gallery.
type DomeEngine struct {
	cfg   DomeConfig
	tiles []DomeTile

	width, height float64
	radius        float64
	viewerPad     float64

	rotX, rotY       float64
	startRotX        float64
	startRotY        float64
	startX, startY   float64
	dragging         bool
	moved            bool
	pointerKind      PointerKind
	tapTarget        int
	lastDragEnd      time.Time
	lastAutoplayTick time.Time

	inertia *Inertia

	focused     int
	opening     bool
	openStarted time.Time
}

// NewDome builds the engine with defaults filled in.
func NewDome(cfg DomeConfig) *DomeEngine {
	if cfg.Segments == 0 {
		cfg.Segments = defaultSegments
	}
	if cfg.Fit == 0 {
		cfg.Fit = defaultFit
	}
	if cfg.FitBasis == "" {
		cfg.FitBasis = FitAuto
	}
	if cfg.MinRadius == 0 {
		cfg.MinRadius = defaultMinRadius
	}
	if cfg.MaxRadius == 0 {
		cfg.MaxRadius = math.Inf(1)
	}
	if cfg.PadFactor == 0 {
		cfg.PadFactor = defaultPadFactor
	}
	if cfg.MaxVerticalRotationDeg == 0 {
		cfg.MaxVerticalRotationDeg = defaultMaxVerticalDeg
	}
	if cfg.DragSensitivity == 0 {
		cfg.DragSensitivity = defaultDragSensitivity
	}
	if cfg.DragDampening == 0 {
		cfg.DragDampening = defaultDragDampening
	}
	if cfg.EnlargeTransition == 0 {
		cfg.EnlargeTransition = defaultEnlargeMs * time.Millisecond
	}
	if cfg.AutoplaySpeedDegSec == 0 {
		cfg.AutoplaySpeedDegSec = defaultAutoplayDegSec
	}

	return &DomeEngine{
		cfg:     cfg,
		tiles:   BuildDomeTiles(cfg.Items, cfg.Segments),
		inertia: NewInertia(cfg.DragDampening),
		focused: -1,
	}
}

// Tiles exposes the computed sphere layout.
func (e *DomeEngine) Tiles() []DomeTile { return e.tiles }

// Rotation returns the current sphere rotation in degrees.
func (e *DomeEngine) Rotation() (x, y float64) { return e.rotX, e.rotY }

// Radius returns the current dome radius in pixels.
func (e *DomeEngine) Radius() float64 { return e.radius }

// Phase reports the motion state.
func (e *DomeEngine) Phase() Phase {
	switch {
	case e.dragging:
		return PhaseDragging
	case e.inertia.Active():
		return PhaseInertia
	default:
		return PhaseIdle
	}
}

// FocusedTile returns the enlarged tile index, or -1.
func (e *DomeEngine) FocusedTile() int { return e.focused }

// Resize recomputes the radius and viewer padding from the container.
// The rotation is untouched, so a resize never jumps the view.
func (e *DomeEngine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.width, e.height = width, height

	minDim := math.Min(width, height)
	maxDim := math.Max(width, height)

	var basis float64
	switch e.cfg.FitBasis {
	case FitMin:
		basis = minDim
	case FitMax:
		basis = maxDim
	case FitWidth:
		basis = width
	case FitHeight:
		basis = height
	default:
		if width/height >= 1.3 {
			basis = width
		} else {
			basis = minDim
		}
	}

	radius := basis * e.cfg.Fit
	radius = math.Min(radius, height*1.35)
	radius = Clamp(radius, e.cfg.MinRadius, e.cfg.MaxRadius)

	e.radius = math.Round(radius)
	e.viewerPad = math.Max(8, math.Round(minDim*e.cfg.PadFactor))
}

// DragStart opens a drag. tileIndex is the host's hit-test result under
// the pointer (-1 for none); it becomes the tap candidate. Ignored while
// a tile is focused.
func (e *DomeEngine) DragStart(x, y float64, kind PointerKind, tileIndex int) {
	if e.focused >= 0 {
		return
	}
	e.inertia.Stop()
	e.dragging = true
	e.moved = false
	e.pointerKind = kind
	e.startX, e.startY = x, y
	e.startRotX, e.startRotY = e.rotX, e.rotY
	e.tapTarget = tileIndex
}

// DragMove rotates the sphere by the drag displacement, clamping the
// vertical axis.
func (e *DomeEngine) DragMove(x, y float64) {
	if !e.dragging {
		return
	}
	dx := x - e.startX
	dy := y - e.startY

	if !e.moved && dx*dx+dy*dy > moveThresholdSqPx {
		e.moved = true
	}

	e.rotX = Clamp(e.startRotX-dy/e.cfg.DragSensitivity,
		-e.cfg.MaxVerticalRotationDeg, e.cfg.MaxVerticalRotationDeg)
	e.rotY = e.startRotY + dx/e.cfg.DragSensitivity
}

// DragEnd closes the drag: a tap activates the tap candidate, a drag
// with residual velocity launches inertia.
func (e *DomeEngine) DragEnd(x, y, vx, vy float64, now time.Time) {
	if !e.dragging {
		return
	}
	e.dragging = false

	dx := x - e.startX
	dy := y - e.startY
	tap := IsTap(dx, dy, e.pointerKind)

	if !tap && math.Abs(vx) < 0.001 && math.Abs(vy) < 0.001 {
		// Release velocity missing: derive one from the total movement.
		vx = dx / e.cfg.DragSensitivity * 0.02
		vy = dy / e.cfg.DragSensitivity * 0.02
	}

	if !tap && ShouldLaunch(vx, vy) {
		e.inertia.Start(vx, vy)
	}

	if tap && e.tapTarget >= 0 && e.focused < 0 {
		if now.Sub(e.lastDragEnd) > tapCooldown {
			e.activate(e.tapTarget, now)
		}
	}

	e.tapTarget = -1
	if e.moved {
		e.lastDragEnd = now
	}
	e.moved = false
}

// activate routes a tap: host callback when configured, in-place enlarge
// otherwise.
func (e *DomeEngine) activate(tileIndex int, now time.Time) {
	if tileIndex < 0 || tileIndex >= len(e.tiles) {
		return
	}
	if code := e.tiles[tileIndex].Item.Code; code != "" && e.cfg.OnSelect != nil {
		e.cfg.OnSelect(code)
		return
	}
	e.openTile(tileIndex, now)
}

func (e *DomeEngine) openTile(tileIndex int, now time.Time) {
	if e.opening {
		return
	}
	e.opening = true
	e.openStarted = now
	e.focused = tileIndex
}

// CloseFocused dismisses the enlarged tile. Closes arriving before the
// transition's minimum visible duration are ignored so interleaved
// overlays cannot occur.
func (e *DomeEngine) CloseFocused(now time.Time) bool {
	if e.focused < 0 {
		return false
	}
	if now.Sub(e.openStarted) < minCloseDelay {
		return false
	}
	e.focused = -1
	e.opening = false
	return true
}

// Tick advances autoplay and inertia by one frame. Autoplay is
// suppressed while dragging or focused.
func (e *DomeEngine) Tick(now time.Time) {
	busy := e.dragging || e.focused >= 0 || e.opening

	if e.cfg.Autoplay && !busy {
		if !e.lastAutoplayTick.IsZero() {
			dt := now.Sub(e.lastAutoplayTick)
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			deltaDeg := e.cfg.AutoplaySpeedDegSec * dt.Seconds()
			e.rotY = WrapAngleSigned(e.rotY + deltaDeg)
		}
		e.lastAutoplayTick = now
	} else {
		e.lastAutoplayTick = now
	}

	if e.inertia.Active() {
		dvx, dvy, done := e.inertia.Step()
		if !done {
			e.rotX = Clamp(e.rotX-dvy/200,
				-e.cfg.MaxVerticalRotationDeg, e.cfg.MaxVerticalRotationDeg)
			e.rotY = WrapAngleSigned(e.rotY + dvx/200)
		}
	}
}

// TileRect computes a tile's resting screen rectangle analytically from
// the same projection used for placement: a tile spans sizeX×sizeY grid
// units of the sphere circumference and sits centered in the stage once
// its rotation is cancelled.
func (e *DomeEngine) TileRect(tileIndex int) Rect {
	if tileIndex < 0 || tileIndex >= len(e.tiles) || e.radius <= 0 {
		return Rect{}
	}
	t := e.tiles[tileIndex]

	circ := e.radius * circumferenceFactor
	unit := circ / float64(e.cfg.Segments)
	w := unit * float64(t.SizeX)
	h := unit * float64(t.SizeY)

	return Rect{
		X: (e.width - w) / 2,
		Y: (e.height - h) / 2,
		W: w,
		H: h,
	}
}

// FrameRect is the viewer frame: the container inset by the pad.
func (e *DomeEngine) FrameRect() Rect {
	return Rect{
		X: e.viewerPad,
		Y: e.viewerPad,
		W: math.Max(0, e.width-2*e.viewerPad),
		H: math.Max(0, e.height-2*e.viewerPad),
	}
}

// EnlargeTransition returns the overlay's animation endpoints for a
// focused tile: from its current screen rectangle to the centered,
// enlarged rectangle.
func (e *DomeEngine) EnlargeTransition(tileIndex int) (from, to Rect) {
	from = e.TileRect(tileIndex)

	to = e.FrameRect()
	if e.cfg.OpenedWidth > 0 && e.cfg.OpenedHeight > 0 {
		to = Rect{
			X: (e.width - e.cfg.OpenedWidth) / 2,
			Y: (e.height - e.cfg.OpenedHeight) / 2,
			W: e.cfg.OpenedWidth,
			H: e.cfg.OpenedHeight,
		}
	}
	return from, to
}

// FocusDeltas returns the rotation deltas that bring a tile to the front
// of the sphere, cancelling both its base rotation and the current
// global rotation.
func (e *DomeEngine) FocusDeltas(tileIndex int) (dx, dy float64) {
	if tileIndex < 0 || tileIndex >= len(e.tiles) {
		return 0, 0
	}
	baseX, baseY := baseRotation(e.tiles[tileIndex], e.cfg.Segments)

	parentY := NormalizeAngle(baseY)
	globalY := NormalizeAngle(e.rotY)
	dy = math.Mod(-(parentY + globalY), 360)
	if dy < -180 {
		dy += 360
	}
	dx = -baseX - e.rotX
	return dx, dy
}
