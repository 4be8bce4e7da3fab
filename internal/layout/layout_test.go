package layout

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"graphbook/internal/scene"
	"graphbook/internal/service"
)

func buildGraph(t *testing.T, nodes []service.Node, edges []service.Edge) *scene.Graph {
	t.Helper()
	return scene.Build(nodes, edges, 800, 600, rand.New(rand.NewSource(7)), nil)
}

func settle(sim *Simulation, maxTicks int) {
	for i := 0; i < maxTicks && sim.Tick(); i++ {
	}
}

func TestRepulsionSeparatesNodes(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}, {ID: "b"}}, nil)
	a, b := g.Nodes[0], g.Nodes[1]
	a.X, a.Y = 400, 300
	b.X, b.Y = 405, 300

	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)
	settle(sim, 500)

	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if dist < 40 {
		t.Errorf("nodes settled %v apart, want at least the collide radius", dist)
	}
	if math.IsNaN(a.X) || math.IsNaN(b.X) {
		t.Fatal("simulation produced NaN coordinates")
	}
}

func TestLinkAttractionPullsTowardDistance(t *testing.T) {
	g := buildGraph(t,
		[]service.Node{{ID: "a"}, {ID: "b"}},
		[]service.Edge{{ID: "e", Source: service.Ref("a"), Target: service.Ref("b")}},
	)
	a, b := g.Nodes[0], g.Nodes[1]
	a.X, a.Y = 100, 300
	b.X, b.Y = 700, 300

	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)
	settle(sim, 1000)

	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if dist > 400 {
		t.Errorf("linked nodes settled %v apart, want pulled well under the initial 600", dist)
	}
}

func TestPinnedNodeDoesNotMove(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
	pinned := g.Nodes[0]
	pinned.Pin(200, 200)

	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)
	settle(sim, 300)

	if pinned.X != 200 || pinned.Y != 200 {
		t.Errorf("pinned node drifted to (%v,%v)", pinned.X, pinned.Y)
	}
}

func TestDragLifecycle(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}, {ID: "b"}}, nil)
	n := g.Nodes[0]

	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)
	settle(sim, 2000)
	if !sim.Settled() {
		t.Fatal("simulation did not settle")
	}

	sim.DragStart(n)
	if sim.Settled() {
		t.Error("drag start should keep the simulation warm")
	}
	sim.Drag(n, 400, 250)
	sim.Tick()
	if n.X != 400 || n.Y != 250 {
		t.Errorf("dragged node at (%v,%v), want pointer position (400,250)", n.X, n.Y)
	}

	sim.DragEnd(n)
	settle(sim, 2000)
	if n.X != 400 || n.Y != 250 {
		t.Errorf("node drifted to (%v,%v) after release, want pinned at (400,250)", n.X, n.Y)
	}
}

func TestReheatRaisesAlpha(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}}, nil)
	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)
	settle(sim, 2000)

	if !sim.Settled() {
		t.Fatal("simulation did not settle")
	}
	sim.Reheat()
	if sim.Alpha() != 0.3 {
		t.Errorf("alpha after reheat = %v, want 0.3", sim.Alpha())
	}
	if sim.Settled() {
		t.Error("reheated simulation should not report settled")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}}, nil)
	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)

	sim.Stop()
	sim.Stop()
	sim.Stop()

	if sim.Tick() {
		t.Error("stopped simulation should not tick")
	}
}

func TestRunStopsWhenCooled(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}, {ID: "b"}}, nil)
	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ticks := 0
	if err := sim.Run(ctx, func() { ticks++ }); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if ticks == 0 {
		t.Error("Run finished without invoking onTick")
	}
	if !sim.Settled() {
		t.Error("Run returned before cooling")
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	g := buildGraph(t, []service.Node{{ID: "a"}, {ID: "b"}}, nil)
	sim := New(DefaultConfig(800, 600))
	sim.SetGraph(g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sim.Run(ctx, nil); err != context.Canceled {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}
