package gallery

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixItems() []Item {
	return []Item{
		{Image: "/images/fm-2035.webp", Title: "Chanel N°5", Subtitle: "Chanel", Code: "FM 2035"},
		{Image: "/images/hm-1026.webp", Title: "Sauvage", Subtitle: "Christian Dior", Code: "HM 1026"},
		{Image: "/images/fm-2093.png", Title: "La Vie Est Belle", Subtitle: "Lancôme", Code: "FM 2093"},
		{Image: "/images/hm-1010.png", Title: "Aventus", Subtitle: "Creed", Code: "HM 1010"},
		{Image: "/images/fm-2028.webp", Title: "Good Girl", Subtitle: "Carolina Herrera", Code: "FM 2028"},
		{Image: "/images/hm-1073.webp", Title: "1 Million", Subtitle: "Paco Rabanne", Code: "HM 1073"},
	}
}

func newLinearForTest(cfg LinearConfig) *LinearEngine {
	e := NewLinear(cfg)
	e.Resize(1280, 720)
	return e
}

func TestLinear_EasingChasesTarget(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems()})

	e.PointerDown(500, 300, PointerMouse)
	e.PointerMove(100) // drag left 400px, target moves right
	e.PointerUp(100, 300)

	require.Greater(t, e.target, 0.0)

	now := time.Now()
	var prevGap float64 = math.Inf(1)
	for i := 0; i < 200; i++ {
		e.Tick(now.Add(time.Duration(i) * 16 * time.Millisecond))
		gap := math.Abs(e.target - e.current)
		require.LessOrEqual(t, gap, prevGap, "easing must close the gap monotonically")
		prevGap = gap
	}
	assert.InDelta(t, e.target, e.current, e.itemWidth*0.05)
}

func TestLinear_InputWritesTargetNotCurrent(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems()})

	e.PointerDown(400, 300, PointerMouse)
	e.PointerMove(0)

	assert.NotZero(t, e.target)
	assert.Zero(t, e.current, "input never touches the eased position directly")
}

func TestLinear_PointerUpSnapsToBoundary(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems()})

	e.PointerDown(600, 300, PointerMouse)
	e.PointerMove(50)
	e.PointerUp(50, 300)

	ratio := e.target / e.itemWidth
	assert.InDelta(t, math.Round(ratio), ratio, 1e-9, "target must land on an item boundary")
}

func TestLinear_WheelSettlesToBoundary(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems(), SettleDelay: 20 * time.Millisecond})
	defer e.Teardown()
	now := time.Now()

	e.Wheel(120, now)
	e.Wheel(120, now.Add(5*time.Millisecond))
	assert.NotZero(t, math.Mod(e.target, e.itemWidth), "raw wheel offsets are unaligned")

	// The debounce window restarted at +5ms, so +15ms is still inside it.
	e.Tick(now.Add(15 * time.Millisecond))
	assert.NotZero(t, math.Mod(e.target, e.itemWidth))

	e.Tick(now.Add(30 * time.Millisecond))
	ratio := e.target / e.itemWidth
	assert.InDelta(t, math.Round(ratio), ratio, 1e-9)
}

func TestLinear_SettleFiresOnlyInsideTick(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems(), SettleDelay: time.Millisecond})

	now := time.Now()
	e.Wheel(120, now)
	unaligned := e.target

	// Letting the delay elapse on the wall clock must not move the
	// target: the snap runs on the frame loop's goroutine, never a
	// timer's.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, unaligned, e.target)

	e.Tick(now.Add(5 * time.Millisecond))
	ratio := e.target / e.itemWidth
	assert.InDelta(t, math.Round(ratio), ratio, 1e-9)
}

func TestLinear_DragCancelsPendingSettle(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems(), SettleDelay: time.Millisecond})
	now := time.Now()

	e.Wheel(120, now)
	e.PointerDown(100, 100, PointerMouse)
	e.PointerMove(97)

	e.Tick(now.Add(50 * time.Millisecond))
	assert.NotZero(t, math.Mod(e.target, e.itemWidth), "no snap mid-drag")
}

func TestLinear_AutoplayAdvancesOneItem(t *testing.T) {
	e := newLinearForTest(LinearConfig{
		Items:            sixItems(),
		Autoplay:         true,
		AutoplayInterval: 100 * time.Millisecond,
	})

	now := time.Now()
	e.Tick(now)
	require.Zero(t, e.target)

	e.Tick(now.Add(150 * time.Millisecond))
	assert.InDelta(t, e.itemWidth, e.target, 1e-9)
}

func TestLinear_AutoplaySuppressedWhileDragging(t *testing.T) {
	e := newLinearForTest(LinearConfig{
		Items:            sixItems(),
		Autoplay:         true,
		AutoplayInterval: 10 * time.Millisecond,
	})

	e.PointerDown(100, 100, PointerTouch)
	now := time.Now()
	e.Tick(now)
	e.Tick(now.Add(50 * time.Millisecond))

	assert.Zero(t, e.target)
	assert.Equal(t, PhaseDragging, e.Phase())
}

func TestLinear_ActiveIndexWrapsLogically(t *testing.T) {
	var changes []int
	e := newLinearForTest(LinearConfig{
		Items:          sixItems(),
		OnActiveChange: func(i int) { changes = append(changes, i) },
	})

	// Jump seven item widths ahead: 7 mod 6 = logical index 1.
	e.target = e.itemWidth * 7
	e.current = e.target
	e.Tick(time.Now())

	require.NotEmpty(t, changes)
	assert.Equal(t, 1, changes[len(changes)-1])
	assert.Equal(t, 1, e.ActiveIndex())
}

func TestLinear_TapSelectsActiveItem(t *testing.T) {
	var selected string
	e := newLinearForTest(LinearConfig{
		Items:    sixItems(),
		OnSelect: func(code string) { selected = code },
	})

	e.PointerDown(300, 200, PointerMouse)
	e.PointerUp(302, 201)

	assert.Equal(t, "FM 2035", selected)
}

func TestLinear_DragIsNotATap(t *testing.T) {
	var selected string
	e := newLinearForTest(LinearConfig{
		Items:    sixItems(),
		OnSelect: func(code string) { selected = code },
	})

	e.PointerDown(300, 200, PointerMouse)
	e.PointerMove(150)
	e.PointerUp(150, 200)

	assert.Empty(t, selected)
}

func TestLinear_WrapKeepsTilesInViewport(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems()})

	// Scroll a long way right; wrapped tiles accumulate negative extra.
	now := time.Now()
	e.target = e.widthTotal * 3
	for i := 0; i < 2000; i++ {
		e.Tick(now.Add(time.Duration(i) * 16 * time.Millisecond))
	}

	wrapped := 0
	for _, extra := range e.extra {
		if extra != 0 {
			rem := math.Abs(math.Mod(extra, e.widthTotal))
			require.Less(t, math.Min(rem, e.widthTotal-rem), 1e-6,
				"wrap shifts by whole list-widths only")
			wrapped++
		}
	}
	assert.Positive(t, wrapped)
}

func TestLinear_ZeroItemsIdles(t *testing.T) {
	e := newLinearForTest(LinearConfig{})

	tiles := e.Tick(time.Now())
	assert.Empty(t, tiles)
	assert.Equal(t, PhaseIdle, e.Phase())
	e.PointerDown(1, 1, PointerMouse)
	e.PointerUp(1, 1)
}

func TestLinear_ResizeKeepsOffset(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems()})

	e.target = e.itemWidth * 2
	e.current = e.itemWidth * 2
	before := e.current

	e.Resize(1920, 1080)

	assert.Equal(t, before, e.current)
	assert.Equal(t, before, e.target)
}

func TestLinear_TilesCarryFocusFalloff(t *testing.T) {
	e := newLinearForTest(LinearConfig{Items: sixItems()})

	tiles := e.Tick(time.Now())
	require.Len(t, tiles, 12, "item list is doubled")

	center := tiles[0] // offset 0 sits at the viewport center
	assert.InDelta(t, 1.0, center.Alpha, 1e-9)
	assert.InDelta(t, 0.0, center.Blur, 1e-9)
	assert.InDelta(t, 0.55, center.Z, 1e-9)

	for _, tile := range tiles[1:] {
		if math.Abs(tile.X) >= e.viewportW/2 {
			assert.InDelta(t, 0.35, tile.Alpha, 1e-9, "fully off-center tiles fade out")
		}
	}
}
