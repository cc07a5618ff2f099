package gallery

import (
	"math"
	"time"
)

// Item is the display projection a gallery works over.
type Item struct {
	Image    string
	Title    string
	Subtitle string
	Code     string
}

// Tile is the per-frame transform of one visible tile, ready for a
// rendering adapter to project onto whatever surface it owns.
type Tile struct {
	Index int // index into the doubled list
	Item  int // logical item index

	X, Y   float64
	Z      float64
	RotZ   float64 // radians
	ScaleX float64
	ScaleY float64
	Blur   float64
	Alpha  float64
}

// LinearConfig tunes the scrolling carousel.
type LinearConfig struct {
	Items            []Item
	Bend             float64
	ScrollSpeed      float64
	ScrollEase       float64
	Autoplay         bool
	AutoplayInterval time.Duration
	SettleDelay      time.Duration

	// OnActiveChange fires when the centered logical item changes.
	OnActiveChange func(index int)
	// OnSelect, when set, receives the active item's code on a tap.
	OnSelect func(code string)
}

const (
	defaultBend         = 7.0
	defaultScrollSpeed  = 1.6
	defaultScrollEase   = 0.03
	defaultAutoplayMs   = 1500
	defaultSettleMs     = 180
	cameraFOVDeg        = 45.0
	cameraZ             = 20.0
	tilePadding         = 2.0
	tileBaseHeightPx    = 780.0
	tileBaseWidthPx     = 520.0
	tileReferenceHeight = 1200.0
)

// LinearEngine is the motion core of the horizontal circular gallery.
// The item list is conceptually doubled; wrapped tiles shift by one full
// list-width so the loop never runs out of tiles.
type LinearEngine struct {
	cfg    LinearConfig
	items  []Item
	double int // doubled tile count

	screenW, screenH     float64
	viewportW, viewportH float64
	baseScaleX           float64
	baseScaleY           float64
	itemWidth            float64
	widthTotal           float64

	current, target, last float64
	extra                 []float64

	dragging    bool
	startX      float64
	startY      float64
	startTarget float64
	pointerKind PointerKind

	autoplayLast time.Time
	activeIndex  int

	settle *Settle
}

// NewLinear builds the engine. Zero items is tolerated: the engine idles
// with no visible tiles.
func NewLinear(cfg LinearConfig) *LinearEngine {
	if cfg.Bend == 0 {
		cfg.Bend = defaultBend
	}
	if cfg.ScrollSpeed == 0 {
		cfg.ScrollSpeed = defaultScrollSpeed
	}
	if cfg.ScrollEase == 0 {
		cfg.ScrollEase = defaultScrollEase
	}
	if cfg.AutoplayInterval == 0 {
		cfg.AutoplayInterval = defaultAutoplayMs * time.Millisecond
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = defaultSettleMs * time.Millisecond
	}

	e := &LinearEngine{
		cfg:    cfg,
		items:  cfg.Items,
		double: len(cfg.Items) * 2,
		extra:  make([]float64, len(cfg.Items)*2),
		settle: NewSettle(cfg.SettleDelay),
	}
	return e
}

// Phase reports the motion state. The linear engine settles through
// easing rather than a velocity model, so it never reports inertia.
func (e *LinearEngine) Phase() Phase {
	if e.dragging {
		return PhaseDragging
	}
	return PhaseIdle
}

// ActiveIndex returns the logical index of the centered item.
func (e *LinearEngine) ActiveIndex() int { return e.activeIndex }

// Resize recomputes geometry from the container size. Offsets are kept,
// only re-derived, so a resize never jumps the scroll position.
func (e *LinearEngine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.screenW, e.screenH = width, height

	fov := cameraFOVDeg * math.Pi / 180
	e.viewportH = 2 * math.Tan(fov/2) * cameraZ
	e.viewportW = e.viewportH * (width / height)

	scale := e.screenH / tileReferenceHeight
	e.baseScaleY = e.viewportH * (tileBaseHeightPx * scale) / e.screenH
	e.baseScaleX = e.viewportW * (tileBaseWidthPx * scale) / e.screenW

	e.itemWidth = e.baseScaleX + tilePadding
	e.widthTotal = e.itemWidth * float64(e.double)
}

// PointerDown opens a drag: it records the origin and the pre-drag
// target so moves rewrite the target, never the eased position.
func (e *LinearEngine) PointerDown(x, y float64, kind PointerKind) {
	e.dragging = true
	e.startX = x
	e.startY = y
	e.startTarget = e.target
	e.pointerKind = kind
	e.settle.Cancel()
}

// PointerMove drags the target offset by the scaled displacement.
func (e *LinearEngine) PointerMove(x float64) {
	if !e.dragging {
		return
	}
	dx := e.startX - x
	e.target = e.startTarget + dx*(e.cfg.ScrollSpeed*0.025)
}

// PointerUp closes the drag, snaps to the nearest item boundary and
// classifies the gesture; a tap activates the centered item.
func (e *LinearEngine) PointerUp(x, y float64) {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.snap()

	if IsTap(x-e.startX, y-e.startY, e.pointerKind) && e.cfg.OnSelect != nil {
		if item, ok := e.itemAt(e.activeIndex); ok && item.Code != "" {
			e.cfg.OnSelect(item.Code)
		}
	}
}

// Wheel nudges the target by one speed step and restarts the settle
// window; the snap itself runs inside Tick once the window elapses.
func (e *LinearEngine) Wheel(delta float64, now time.Time) {
	step := e.cfg.ScrollSpeed * 0.35
	if delta > 0 {
		e.target += step
	} else {
		e.target -= step
	}
	e.settle.Arm(now)
}

// snap aligns the target to the nearest item boundary.
func (e *LinearEngine) snap() {
	if e.itemWidth <= 0 {
		return
	}
	idx := math.Round(math.Abs(e.target) / e.itemWidth)
	boundary := e.itemWidth * idx
	if e.target < 0 {
		e.target = -boundary
	} else {
		e.target = boundary
	}
}

// Tick advances one display frame: autoplay, easing, wrap bookkeeping
// and the active-index event. It returns the frame's tile transforms.
func (e *LinearEngine) Tick(now time.Time) []Tile {
	if e.cfg.Autoplay && !e.dragging && e.itemWidth > 0 && len(e.items) > 0 {
		if e.autoplayLast.IsZero() {
			e.autoplayLast = now
		} else if now.Sub(e.autoplayLast) >= e.cfg.AutoplayInterval {
			e.autoplayLast = now
			e.target += e.itemWidth
			e.snap()
		}
	}

	if e.settle.Fire(now) && !e.dragging {
		e.snap()
	}

	e.current = Lerp(e.current, e.target, e.cfg.ScrollEase)

	movingRight := e.current > e.last
	tiles := make([]Tile, 0, e.double)
	for i := 0; i < e.double; i++ {
		tiles = append(tiles, e.updateTile(i, movingRight))
	}

	e.updateActiveIndex()
	e.last = e.current
	return tiles
}

func (e *LinearEngine) updateTile(i int, movingRight bool) Tile {
	x := e.itemWidth*float64(i) - e.current - e.extra[i]

	half := e.viewportW / 2
	dist := Clamp(math.Abs(x)/math.Max(half, 1e-9), 0, 1)
	focus := 1 - dist

	var y, rotZ float64
	if e.cfg.Bend != 0 {
		b := math.Abs(e.cfg.Bend)
		r := (half*half + b*b) / (2 * b)
		effX := math.Min(math.Abs(x), half)
		arc := r - math.Sqrt(r*r-effX*effX)
		if e.cfg.Bend > 0 {
			y = -arc
			rotZ = -sign(x) * math.Asin(effX/r)
		} else {
			y = arc
			rotZ = sign(x) * math.Asin(effX/r)
		}
	}

	s := Lerp(0.78, 1.12, focus)
	scaleX := e.baseScaleX * s
	scaleY := e.baseScaleY * s

	tile := Tile{
		Index:  i,
		Item:   e.logicalIndex(i),
		X:      x,
		Y:      y,
		Z:      focus * 0.55,
		RotZ:   rotZ,
		ScaleX: scaleX,
		ScaleY: scaleY,
		Blur:   Lerp(0.012, 0, focus),
		Alpha:  Lerp(0.35, 1, focus),
	}

	// Infinite wrap: once a tile fully exits the trailing edge, shift it
	// by one full list-width so it reappears on the leading edge.
	planeOffset := scaleX / 2
	viewportOffset := e.viewportW / 2
	if movingRight && x+planeOffset < -viewportOffset {
		e.extra[i] -= e.widthTotal
	}
	if !movingRight && x-planeOffset > viewportOffset {
		e.extra[i] += e.widthTotal
	}

	return tile
}

func (e *LinearEngine) updateActiveIndex() {
	if e.itemWidth <= 0 || len(e.items) == 0 {
		return
	}
	idx := int(math.Round(math.Abs(e.current) / e.itemWidth))
	logical := idx % len(e.items)
	if logical != e.activeIndex {
		e.activeIndex = logical
		if e.cfg.OnActiveChange != nil {
			e.cfg.OnActiveChange(logical)
		}
	}
}

func (e *LinearEngine) logicalIndex(i int) int {
	if len(e.items) == 0 {
		return 0
	}
	return i % len(e.items)
}

func (e *LinearEngine) itemAt(logical int) (Item, bool) {
	if logical < 0 || logical >= len(e.items) {
		return Item{}, false
	}
	return e.items[logical], true
}

// Teardown clears the pending settle check. The caller owns the frame
// loop and input hookup, so those stop with it.
func (e *LinearEngine) Teardown() {
	e.settle.Cancel()
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
