package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	path       []Point
	calls      int
	generation uint64
}

func (f *fakeSource) GetPath(x, z float64) []Point {
	f.calls++
	return f.path
}

func (f *fakeSource) Generation() uint64 { return f.generation }

func TestAgentDirectLineWithoutPlanner(t *testing.T) {
	a := NewAgent(Point{X: 0, Z: 0}, 2, DefaultAgentConfig())

	a.Update(nil, Point{X: 10, Z: 0}, 0, 0.5)
	assert.InDelta(t, 1.0, a.Position().X, 1e-9)
	assert.InDelta(t, 0.0, a.Position().Z, 1e-9)
}

func TestAgentDoesNotOvershoot(t *testing.T) {
	a := NewAgent(Point{X: 0, Z: 0}, 10, DefaultAgentConfig())

	a.Update(nil, Point{X: 3, Z: 4}, 0, 1)
	assert.Equal(t, Point{X: 3, Z: 4}, a.Position())
	assert.True(t, a.Arrived(Point{X: 3, Z: 4}, 0.01))
}

func TestAgentFollowsWaypoints(t *testing.T) {
	src := &fakeSource{path: []Point{{0, 0}, {1, 0}, {1, 1}}}
	a := NewAgent(Point{X: 0, Z: 0}, 1, DefaultAgentConfig())

	a.Update(src, Point{X: 1, Z: 1}, 0, 0.25)
	require.Equal(t, 1, src.calls)
	assert.Equal(t, 1, a.WaypointIndex(), "start waypoint reached immediately")
	assert.InDelta(t, 0.25, a.Position().X, 1e-9)

	a.Update(src, Point{X: 1, Z: 1}, 0.25, 0.5)
	assert.Equal(t, 1, a.WaypointIndex())
	assert.InDelta(t, 0.75, a.Position().X, 1e-9)

	// within reach of (1,0): advance and head to (1,1)
	a.Update(src, Point{X: 1, Z: 1}, 0.5, 0.25)
	assert.Equal(t, 2, a.WaypointIndex())
	assert.Greater(t, a.Position().X, 0.75)
	assert.Greater(t, a.Position().Z, 0.0)
	assert.Equal(t, []Point{{1, 1}}, a.Remaining())
	assert.Equal(t, 1, src.calls)
}

func TestAgentReplansOnInterval(t *testing.T) {
	src := &fakeSource{path: []Point{{0, 0}, {50, 0}}}
	a := NewAgent(Point{}, 1, AgentConfig{ReplanInterval: 1, WaypointReach: 0.5})

	a.Update(src, Point{X: 50}, 0, 0.1)
	a.Update(src, Point{X: 50}, 0.5, 0.1)
	assert.Equal(t, 1, src.calls)

	a.Update(src, Point{X: 50}, 1.0, 0.1)
	assert.Equal(t, 2, src.calls)
}

func TestAgentReplansOnGenerationChange(t *testing.T) {
	src := &fakeSource{path: []Point{{0, 0}, {50, 0}}}
	a := NewAgent(Point{}, 1, DefaultAgentConfig())

	a.Update(src, Point{X: 50}, 0, 0.1)
	src.generation++
	a.Update(src, Point{X: 50}, 0.1, 0.1)
	assert.Equal(t, 2, src.calls)
}

func TestAgentReplansWhenPathExhausted(t *testing.T) {
	src := &fakeSource{path: []Point{{0, 0}, {0.2, 0}}}
	a := NewAgent(Point{}, 1, AgentConfig{ReplanInterval: 100, WaypointReach: 0.5})

	a.Update(src, Point{X: 5}, 0, 0.1)
	assert.Equal(t, 2, a.WaypointIndex())
	assert.InDelta(t, 0.1, a.Position().X, 1e-9, "walks at raw target once past the end")

	a.Update(src, Point{X: 5}, 0.1, 0.1)
	assert.Equal(t, 2, src.calls)
}

func TestAgentDegeneratePathFallsBack(t *testing.T) {
	src := &fakeSource{path: []Point{{3, 3}}}
	a := NewAgent(Point{}, 1, DefaultAgentConfig())

	a.Update(src, Point{X: 0, Z: 2}, 0, 1)
	assert.InDelta(t, 0.0, a.Position().X, 1e-9)
	assert.InDelta(t, 1.0, a.Position().Z, 1e-9)
}

func TestAgentReachesTargetAroundObstacle(t *testing.T) {
	target := Point{X: 8, Z: 8}
	p := newTestPlanner(t, 10, 0.75, 0.5, target)
	p.SetObstacles([]Obstacle{{X: 0, Z: 0, Radius: 1.0}, {X: 4, Z: 3, Radius: 1.0}})

	a := NewAgent(Point{X: -8, Z: -8}, 3, DefaultAgentConfig())
	now := 0.0
	const dt = 0.05
	for range 2000 {
		a.Update(p, target, now, dt)
		now += dt
		if a.Arrived(target, 0.75) {
			break
		}
	}
	assert.True(t, a.Arrived(target, 0.75), "agent stuck at %v", a.Position())
}
