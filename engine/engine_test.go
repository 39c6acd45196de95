package engine

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spaghettifunk/glengine/engine/core"
	"github.com/spaghettifunk/glengine/engine/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPlatform replays events and records what the engine asked of it.
// Once the script runs out it reports a delete event.
type scriptedPlatform struct {
	events    []platform.WindowEvent
	polled    int
	swaps     int
	createErr error
	created   []interface{}
	trace     *[]string
}

func (p *scriptedPlatform) CreateSurfaceAndBindContext(title string, x, y, width, height int, flags platform.WindowFlags) error {
	p.created = []interface{}{title, x, y, width, height, flags}
	return p.createErr
}

func (p *scriptedPlatform) GetEvent() platform.WindowEvent {
	p.polled++
	if len(p.events) == 0 {
		return platform.DeleteEvent()
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

func (p *scriptedPlatform) SwapBuffers() {
	p.swaps++
	if p.trace != nil {
		*p.trace = append(*p.trace, "swap")
	}
}

type testContext struct {
	trace  []string
	deltas []float64
}

func newTracingEngine(p *scriptedPlatform, opts ...Option) (*Engine[*testContext], *testContext) {
	ctx := &testContext{}
	p.trace = &ctx.trace
	e := New[*testContext](p, opts...)
	e.RegisterUpdateFunc(func(c *testContext, dt float64) {
		c.trace = append(c.trace, "update")
		c.deltas = append(c.deltas, dt)
	})
	e.RegisterDrawFunc(func(c *testContext) {
		c.trace = append(c.trace, "draw")
	})
	e.RegisterKeyFunc(func(c *testContext, key core.KeyCode, x, y int) {
		c.trace = append(c.trace, fmt.Sprintf("key:%c@%d,%d", key, x, y))
	})
	e.RegisterShutdownFunc(func(c *testContext) {
		c.trace = append(c.trace, "shutdown")
	})
	return e, ctx
}

func noEvents(n int) []platform.WindowEvent {
	events := make([]platform.WindowEvent, n)
	for i := range events {
		events[i] = platform.NoEvent()
	}
	return events
}

// steppingClock advances by the next step every time it is read.
func steppingClock(start time.Time, steps ...time.Duration) *core.Clock {
	current := start
	i := 0
	return core.NewClockWithSource(func() time.Time {
		now := current
		if i < len(steps) {
			current = current.Add(steps[i])
			i++
		}
		return now
	})
}

func TestCreatePropagatesPlatformError(t *testing.T) {
	platformErr := errors.New("no display")
	p := &scriptedPlatform{createErr: platformErr}
	e := New[int](p)

	err := e.Create("Hello", 0, 0, 320, 240, platform.WindowDepth)
	assert.Same(t, platformErr, err)
	assert.Equal(t, StageUninitialized, e.Stage())
}

func TestCreateForwardsWindowSettings(t *testing.T) {
	p := &scriptedPlatform{}
	e := New[int](p)

	require.NoError(t, e.CreateFromConfig(&ApplicationConfig{
		StartPosX:   10,
		StartPosY:   20,
		StartWidth:  640,
		StartHeight: 480,
		Name:        "Hello Triangle",
		Flags:       platform.WindowDepth | platform.WindowStencil,
	}))
	assert.Equal(t, []interface{}{"Hello Triangle", 10, 20, 640, 480, platform.WindowDepth | platform.WindowStencil}, p.created)
	assert.Equal(t, StageCreated, e.Stage())
}

func TestLoopRunsOneFramePerEmptyPoll(t *testing.T) {
	p := &scriptedPlatform{events: noEvents(3)}
	e, ctx := newTracingEngine(p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)

	assert.Equal(t, []string{
		"update", "draw", "swap",
		"update", "draw", "swap",
		"update", "draw", "swap",
		"shutdown",
	}, ctx.trace)
	assert.Equal(t, 3, p.swaps)
	assert.Equal(t, 4, p.polled)
	assert.Equal(t, StageStopped, e.Stage())
}

func TestLoopOnlyDrawRegistered(t *testing.T) {
	p := &scriptedPlatform{events: append(noEvents(3), platform.DeleteEvent())}
	e := New[*int](p)
	draws := 0
	e.RegisterDrawFunc(func(c *int) { *c++ })
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(&draws)

	assert.Equal(t, 3, draws)
	assert.Equal(t, 3, p.swaps)
	assert.Equal(t, 4, p.polled)
}

func TestLoopDrainsAllEventsBeforeFrameWork(t *testing.T) {
	p := &scriptedPlatform{events: []platform.WindowEvent{
		platform.KeyPressEvent('a', 1, 2),
		platform.OtherEvent(),
		platform.KeyPressEvent('b', 3, 4),
		platform.KeyPressEvent('c', 5, 6),
		platform.NoEvent(),
		platform.KeyPressEvent('d', 7, 8),
		platform.NoEvent(),
	}}
	e, ctx := newTracingEngine(p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)

	assert.Equal(t, []string{
		"key:a@1,2", "key:b@3,4", "key:c@5,6",
		"update", "draw", "swap",
		"key:d@7,8",
		"update", "draw", "swap",
		"shutdown",
	}, ctx.trace)
}

func TestDeleteStopsDrainingAndFrameWork(t *testing.T) {
	p := &scriptedPlatform{events: []platform.WindowEvent{
		platform.NoEvent(),
		platform.KeyPressEvent('a', 0, 0),
		platform.DeleteEvent(),
		platform.KeyPressEvent('z', 0, 0),
		platform.NoEvent(),
	}}
	e, ctx := newTracingEngine(p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)

	assert.Equal(t, []string{
		"update", "draw", "swap",
		"key:a@0,0",
		"shutdown",
	}, ctx.trace)
	// the events after the delete are never polled
	assert.Len(t, p.events, 2)
	assert.Equal(t, 3, p.polled)
}

func TestImmediateDeleteSkipsFrames(t *testing.T) {
	p := &scriptedPlatform{events: []platform.WindowEvent{platform.DeleteEvent()}}
	e, ctx := newTracingEngine(p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)

	assert.Equal(t, []string{"shutdown"}, ctx.trace)
	assert.Zero(t, p.swaps)
}

func TestLoopIsTerminal(t *testing.T) {
	p := &scriptedPlatform{events: noEvents(1)}
	e, ctx := newTracingEngine(p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)
	p.events = noEvents(5)
	e.Loop(ctx)

	assert.Equal(t, []string{"update", "draw", "swap", "shutdown"}, ctx.trace)
	assert.Equal(t, StageStopped, e.Stage())
	assert.Len(t, p.events, 5)
}

func TestDeltaTimeBetweenFrames(t *testing.T) {
	clock := steppingClock(time.Unix(1700000000, 999_000_000),
		// Start reads the origin, then one read per frame
		16*time.Millisecond,
		33*time.Millisecond+250*time.Nanosecond,
		2*time.Second,
	)
	p := &scriptedPlatform{events: noEvents(3)}
	e, ctx := newTracingEngine(p, WithClock(clock))
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)

	require.Len(t, ctx.deltas, 3)
	assert.InDelta(t, 0.016, ctx.deltas[0], 1e-12)
	assert.InDelta(t, 0.03300025, ctx.deltas[1], 1e-12)
	assert.InDelta(t, 2.0, ctx.deltas[2], 1e-12)
}

func TestDeltaTimeIsNonNegativeWithWallClock(t *testing.T) {
	p := &scriptedPlatform{events: noEvents(50)}
	e, ctx := newTracingEngine(p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(ctx)

	require.Len(t, ctx.deltas, 50)
	for _, dt := range ctx.deltas {
		assert.GreaterOrEqual(t, dt, 0.0)
	}
}

func TestLoopWithoutCallbacks(t *testing.T) {
	p := &scriptedPlatform{events: []platform.WindowEvent{
		platform.KeyPressEvent('x', 0, 0),
		platform.NoEvent(),
		platform.OtherEvent(),
		platform.NoEvent(),
	}}
	e := New[struct{}](p)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	assert.NotPanics(t, func() { e.Loop(struct{}{}) })
	assert.Equal(t, 2, p.swaps)
	assert.Equal(t, StageStopped, e.Stage())
}

func TestLoopWithoutCreate(t *testing.T) {
	p := &scriptedPlatform{events: noEvents(2)}
	e, ctx := newTracingEngine(p)

	e.Loop(ctx)

	require.Len(t, ctx.deltas, 2)
	assert.Equal(t, "shutdown", ctx.trace[len(ctx.trace)-1])
}

func TestRegisterOverwritesAndClears(t *testing.T) {
	p := &scriptedPlatform{events: noEvents(1)}
	e := New[*[]string](p)
	e.RegisterDrawFunc(func(c *[]string) { *c = append(*c, "first") })
	e.RegisterDrawFunc(func(c *[]string) { *c = append(*c, "second") })
	e.RegisterShutdownFunc(func(c *[]string) { *c = append(*c, "shutdown") })
	e.RegisterShutdownFunc(nil)
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	var trace []string
	e.Loop(&trace)

	assert.Equal(t, []string{"second"}, trace)
}

func TestMetricsFedByLoop(t *testing.T) {
	steps := make([]time.Duration, 40)
	for i := range steps {
		steps[i] = 10 * time.Millisecond
	}
	p := &scriptedPlatform{events: noEvents(39)}
	e := New[int](p, WithClock(steppingClock(time.Unix(0, 0), steps...)))
	require.NoError(t, e.Create("t", 0, 0, 1, 1, platform.WindowRGB))

	e.Loop(0)

	assert.InDelta(t, 10.0, e.Metrics().FrameTime(), 1e-9)
	assert.NotEqual(t, e.ID().String(), New[int](p).ID().String())
}
