package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/editor"
	"github.com/lixenwraith/thunderbolt/engine"
	"github.com/lixenwraith/thunderbolt/render"
	"github.com/lixenwraith/thunderbolt/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestSurfaceDrawsSceneAsBackground(t *testing.T) {
	screen := newScreen(t, 20, 6)
	surf := NewSurface(screen, 8, 16)
	if cols, rows := surf.Size(); cols != 20 || rows != 5 {
		t.Fatalf("size = %dx%d, want 20x5", cols, rows)
	}

	red := render.RGB{R: 255}
	scene := render.Scene{Primitives: []render.Primitive{
		render.Ellipse{Center: vmath.Vec2{X: 4, Y: 8}, RX: 6, RY: 10, Color: red.WithAlpha(1)},
	}}
	ed := editor.New(5, 8, 16)
	ed.Insert('x')
	surf.Draw(scene, ed, "status")

	ch, _, style, _ := screen.GetContent(0, 0)
	if ch != 'x' {
		t.Errorf("cell (0,0) rune = %q, want 'x'", ch)
	}
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("cell (0,0) background = %v, want red", bg)
	}

	_, _, far, _ := screen.GetContent(10, 3)
	if _, bg, _ := far.Decompose(); bg != tcell.ColorDefault {
		t.Errorf("untouched cell background = %v, want default", bg)
	}

	if ch, _, _, _ := screen.GetContent(0, 5); ch != 's' {
		t.Errorf("status row starts with %q, want 's'", ch)
	}
}

func newEngine(t *testing.T, settings config.Settings) *engine.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.Seed = 7
	cfg.Settings = settings
	eng, err := engine.New(cfg, engine.WithClock(engine.NewManualClock(time.Unix(0, 0))))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if err := eng.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(eng.Stop)
	return eng
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestHostTypingSpawns(t *testing.T) {
	screen := newScreen(t, 40, 10)
	eng := newEngine(t, config.DefaultSettings())
	h := NewHost(screen, eng, nil)

	if !h.Handle(key(tcell.KeyRune, 'a')) {
		t.Fatal("typing should not quit")
	}
	if eng.Live() == 0 {
		t.Fatal("typing produced no entities")
	}
	if got := h.Editor().Text(); got != "a" {
		t.Errorf("text = %q, want %q", got, "a")
	}
}

func TestHostBackspaceSpawnsEcho(t *testing.T) {
	screen := newScreen(t, 40, 10)
	settings := config.DefaultSettings()
	settings.Regular = false
	settings.Reverse = true
	eng := newEngine(t, settings)
	h := NewHost(screen, eng, nil)

	h.Handle(key(tcell.KeyRune, 'a'))
	if eng.Live() != 0 {
		t.Fatalf("live = %d with every pointer feature off, want 0", eng.Live())
	}
	h.Handle(key(tcell.KeyBackspace2, 0))
	if eng.Live() != 1 {
		t.Fatalf("live = %d after delete, want one echo", eng.Live())
	}
}

func TestHostFunctionKeys(t *testing.T) {
	screen := newScreen(t, 40, 10)
	eng := newEngine(t, config.DefaultSettings())
	h := NewHost(screen, eng, nil)

	h.Handle(key(tcell.KeyF2, 0))
	h.Handle(key(tcell.KeyF6, 0))
	h.Handle(key(tcell.KeyF1, 0))
	s := eng.Settings().Settings()
	if !s.Snow || s.Regular || s.ThemeIndex != 0 {
		t.Errorf("settings = %+v, want snow on, regular off, theme 0", s)
	}

	if h.Handle(key(tcell.KeyEscape, 0)) {
		t.Error("escape should quit")
	}
}

func TestHostMouseSpawnsAtCell(t *testing.T) {
	screen := newScreen(t, 40, 10)
	eng := newEngine(t, config.DefaultSettings())
	h := NewHost(screen, eng, nil)

	h.Handle(tcell.NewEventMouse(5, 2, tcell.ButtonNone, tcell.ModNone))
	if eng.Live() == 0 {
		t.Fatal("mouse motion produced no entities")
	}

	// Status row is outside the scene area
	before := eng.Live()
	h.Handle(tcell.NewEventMouse(41, 9, tcell.ButtonNone, tcell.ModNone))
	if eng.Live() != before {
		t.Errorf("event outside scene spawned entities")
	}
}

func TestHostDrawAfterFrame(t *testing.T) {
	screen := newScreen(t, 40, 10)
	eng := newEngine(t, config.DefaultSettings())
	h := NewHost(screen, eng, nil)
	h.Handle(key(tcell.KeyRune, 'z'))

	// No frame is published yet under the manual clock; drawing must still work
	h.Draw()
	if ch, _, _, _ := screen.GetContent(0, 0); ch != 'z' {
		t.Errorf("cell (0,0) = %q, want 'z'", ch)
	}
}

func TestHostStatusFollowsToggles(t *testing.T) {
	screen := newScreen(t, 80, 10)
	eng := newEngine(t, config.DefaultSettings())
	h := NewHost(screen, eng, nil)

	statusRow := func() string {
		var b strings.Builder
		for x := 0; x < 80; x++ {
			ch, _, _, _ := screen.GetContent(x, 9)
			b.WriteRune(ch)
		}
		return b.String()
	}

	h.Draw()
	if !strings.Contains(statusRow(), "snow:off") {
		t.Fatalf("status row = %q", statusRow())
	}
	h.Handle(key(tcell.KeyF2, 0))
	h.Draw()
	if !strings.Contains(statusRow(), "snow:on") {
		t.Errorf("status row after F2 = %q", statusRow())
	}
}
