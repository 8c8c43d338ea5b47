package engine

import (
	"testing"

	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/entity"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/spawn"
	"github.com/lixenwraith/thunderbolt/status"
	"github.com/lixenwraith/thunderbolt/vmath"
)

func caret(x, y float64) spawn.PointerEvent {
	return spawn.PointerEvent{Source: "caret", Point: vmath.Vec2{X: x, Y: y}}
}

func TestStepClampsDelta(t *testing.T) {
	reg := status.NewRegistry()
	sim := NewSimulation(SimulationConfig{Seed: 1, Registry: reg})

	if got := sim.Step(10); got != parameter.MaxDelta {
		t.Errorf("Step(10) used %f, want %f", got, parameter.MaxDelta)
	}
	if got := sim.Step(-1); got != 0 {
		t.Errorf("Step(-1) used %f, want 0", got)
	}
	if peak := reg.Floats.Get("loop.dt.peak").Get(); peak != parameter.MaxDelta {
		t.Errorf("loop.dt.peak = %f", peak)
	}
	if sim.Ticks() != 2 {
		t.Errorf("ticks = %d", sim.Ticks())
	}
}

func TestDeadEntitiesReturnToPool(t *testing.T) {
	reg := status.NewRegistry()
	sim := NewSimulation(SimulationConfig{Seed: 2, Registry: reg})
	sim.Live().Add(sim.Spawner().PointerMoved(caret(200, 200))...)
	if sim.Live().Len() != parameter.BatchSize {
		t.Fatalf("live = %d", sim.Live().Len())
	}

	ticks := int(parameter.SparkLifetime/parameter.FixedDelta) + 5
	for i := 0; i < ticks; i++ {
		sim.Step(parameter.FixedDelta)
	}
	if sim.Live().Len() != 0 {
		t.Fatalf("live = %d after every spark expired", sim.Live().Len())
	}
	if sim.Pool().Size() != parameter.BatchSize {
		t.Errorf("pool = %d, want %d", sim.Pool().Size(), parameter.BatchSize)
	}
	if reg.Int("entity.culled") != int64(parameter.BatchSize) {
		t.Errorf("entity.culled = %d", reg.Int("entity.culled"))
	}
}

func TestSimulationDeterministic(t *testing.T) {
	run := func() []vmath.Vec2 {
		settings := NewSettingsStore(config.Settings{ThemeIndex: -1, Regular: true, Stardust: true, Butterfly: true})
		sim := NewSimulation(SimulationConfig{Seed: 99, Settings: settings})
		for i := 0; i < 120; i++ {
			if i%10 == 0 {
				sim.Live().Add(sim.Spawner().PointerMoved(caret(float64(100+i*3), 300))...)
			}
			sim.Step(parameter.FixedDelta)
		}
		var out []vmath.Vec2
		for _, e := range sim.Live().Snapshot() {
			out = append(out, e.Common().World())
		}
		return out
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("live counts %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entity %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSnowfallFromTyping(t *testing.T) {
	settings := NewSettingsStore(config.Settings{ThemeIndex: -1, Snow: true})
	reg := status.NewRegistry()
	sim := NewSimulation(SimulationConfig{Seed: 3, Settings: settings, Registry: reg})

	sim.Spawner().Typed()
	for i := 0; i < 120; i++ {
		sim.Step(parameter.FixedDelta)
	}
	n := sim.Live().Count(entity.KindSnowflake)
	if n == 0 || n > parameter.MaxSnowflakes {
		t.Fatalf("snowflakes = %d", n)
	}
	if reg.Int("snow.active") != int64(n) {
		t.Errorf("snow.active = %d, want %d", reg.Int("snow.active"), n)
	}

	// Disabling snow stops new batches and lets flakes leave the view for good
	settings.Toggle(FeatureSnow)
	for i := 0; i < 60*60; i++ {
		sim.Step(parameter.FixedDelta)
	}
	if n := sim.Live().Count(entity.KindSnowflake); n != 0 {
		t.Errorf("%d flakes remain a minute after disabling snow", n)
	}
}

func TestSnowCapHoldsUnderHeavyTyping(t *testing.T) {
	settings := NewSettingsStore(config.Settings{ThemeIndex: -1, Snow: true})
	sim := NewSimulation(SimulationConfig{Seed: 4, Settings: settings})
	for i := 0; i < 600; i++ {
		sim.Spawner().Typed()
		sim.Step(parameter.FixedDelta)
		if n := sim.Live().Count(entity.KindSnowflake); n > parameter.MaxSnowflakes {
			t.Fatalf("tick %d: %d snowflakes", i, n)
		}
	}
}

func TestResetRestoresSeed(t *testing.T) {
	sim := NewSimulation(SimulationConfig{Seed: 5})
	sim.Step(parameter.FixedDelta)
	w1 := sim.Wind()
	sim.Live().Add(sim.Spawner().PointerMoved(caret(1, 1))...)

	sim.Reset()
	if sim.Live().Len() != 0 || sim.Ticks() != 0 || sim.Time() != 0 {
		t.Fatal("Reset kept state")
	}
	sim.Step(parameter.FixedDelta)
	if sim.Wind() != w1 {
		t.Errorf("wind after reset %v, want %v", sim.Wind(), w1)
	}
	if out := sim.Spawner().PointerMoved(caret(1, 1)); len(out) == 0 {
		t.Error("tracked positions survived Reset")
	}
}

func TestSetViewportRejectsInvalid(t *testing.T) {
	sim := NewSimulation(SimulationConfig{Seed: 6})
	sim.SetViewport(320, 200)
	sim.SetViewport(0, 100)
	sim.SetViewport(-5, 100)
	if v := sim.Viewport(); v != (vmath.Vec2{X: 320, Y: 200}) {
		t.Errorf("viewport = %v", v)
	}
}

func TestCaptureFrame(t *testing.T) {
	sim := NewSimulation(SimulationConfig{Seed: 7})
	sim.Live().Add(sim.Spawner().PointerMoved(caret(50, 50))...)
	sim.Step(parameter.FixedDelta)

	f := sim.Capture()
	if f.Tick != 1 {
		t.Errorf("frame tick = %d", f.Tick)
	}
	if f.Len() == 0 {
		t.Error("frame has no primitives")
	}
}

func TestEchoPlaybackCapturesEverySnapshot(t *testing.T) {
	settings := NewSettingsStore(config.Settings{ThemeIndex: -1, Reverse: true})
	sim := NewSimulation(SimulationConfig{Seed: 8, Settings: settings})

	out := sim.Spawner().Deleted(caret(120, 80))
	if len(out) != 1 {
		t.Fatalf("Deleted returned %d entities", len(out))
	}
	echo := out[0].(*entity.ReverseEcho)
	sim.Live().Add(out...)

	shown := make([]bool, echo.Len())
	for i := 0; i < parameter.EchoHorizon+5; i++ {
		sim.Step(parameter.FixedDelta)
		if f := sim.Capture(); f.Entities > 0 {
			shown[echo.Index()] = true
		}
	}
	for i, ok := range shown {
		if !ok {
			t.Errorf("snapshot %d never captured", i)
		}
	}
	if echo.Len() != parameter.EchoHorizon {
		t.Errorf("recorded %d snapshots, want %d", echo.Len(), parameter.EchoHorizon)
	}
	if !echo.Dead || sim.Live().Len() != 0 {
		t.Error("echo should be culled once playback ends")
	}
}
