package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/core"
	"github.com/lixenwraith/thunderbolt/editor"
	"github.com/lixenwraith/thunderbolt/engine"
	"github.com/lixenwraith/thunderbolt/parameter"
)

// MouseSource identifies the mouse pointer in spawn events
const MouseSource = "mouse"

// featureKeys maps function keys to feature toggles; F1 cycles the theme
var featureKeys = map[tcell.Key]engine.Feature{
	tcell.KeyF2: engine.FeatureSnow,
	tcell.KeyF3: engine.FeatureStardust,
	tcell.KeyF4: engine.FeatureButterfly,
	tcell.KeyF5: engine.FeatureReverse,
	tcell.KeyF6: engine.FeatureRegular,
}

// Host binds an engine to a tcell screen: key and mouse input in, frames out
type Host struct {
	screen  tcell.Screen
	eng     *engine.Engine
	surface *Surface
	editor  *editor.Editor
	log     *zap.Logger

	// status is rebuilt at most every StatusRefresh unless a toggle invalidates it
	status   string
	statusAt time.Time
}

// NewHost sizes the editor and engine viewport to the screen
// The screen must already be initialized
func NewHost(screen tcell.Screen, eng *engine.Engine, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Host{
		screen:  screen,
		eng:     eng,
		surface: NewSurface(screen, parameter.TerminalCellWidth, parameter.TerminalCellHeight),
		log:     log,
	}
	_, rows := h.surface.Size()
	h.editor = editor.New(rows, parameter.TerminalCellWidth, parameter.TerminalCellHeight)
	h.eng.SetViewport(h.surface.Viewport())
	return h
}

// Editor returns the host's text buffer
func (h *Host) Editor() *editor.Editor {
	return h.editor
}

// Run pumps input and redraws on every published frame until quit or ctx is done
// The engine must be started by the caller
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	redraw, cancel := h.eng.Subscribe()
	defer cancel()

	h.screen.EnableMouse(tcell.MouseMotionEvents)
	defer h.screen.DisableMouse()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.Handle(ev) {
				h.log.Info("quit requested")
				return nil
			}
		case <-redraw:
			h.Draw()
		}
	}
}

// Draw renders the latest frame with the editor overlay
func (h *Host) Draw() {
	if now := time.Now(); now.Sub(h.statusAt) >= parameter.StatusRefresh {
		h.status = h.eng.Status()
		h.statusAt = now
	}
	h.surface.Draw(h.eng.Scene(h.editor.Scroll()), h.editor, h.status)
}

// Handle applies one input event; returns false when the user asked to quit
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		if cols, rows := h.surface.Size(); x < cols && y < rows {
			h.eng.PointerMoved(h.editor.CellEvent(MouseSource, x, y))
		}
	case *tcell.EventResize:
		h.screen.Sync()
		_, rows := h.surface.Resize()
		h.editor.SetRows(rows)
		h.eng.SetViewport(h.surface.Viewport())
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		h.typed(ev.Rune())
	case tcell.KeyTab:
		for _, r := range editor.TabRunes() {
			h.typed(r)
		}
	case tcell.KeyEnter:
		h.editor.Newline()
		h.eng.TextTyped()
		h.moved()
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		at := h.editor.CaretEvent()
		if h.editor.Backspace() {
			h.eng.TextDeleted(at)
			h.moved()
		}
	case tcell.KeyLeft:
		h.editor.Move(-1, 0)
		h.moved()
	case tcell.KeyRight:
		h.editor.Move(1, 0)
		h.moved()
	case tcell.KeyUp:
		h.editor.Move(0, -1)
		h.moved()
	case tcell.KeyDown:
		h.editor.Move(0, 1)
		h.moved()
	case tcell.KeyF1:
		s := h.eng.Settings().CycleTheme(h.eng.Themes().Len())
		h.statusAt = time.Time{}
		h.log.Debug("theme changed", zap.Int("index", s.ThemeIndex))
	default:
		if f, ok := featureKeys[ev.Key()]; ok {
			h.eng.Settings().Toggle(f)
			h.statusAt = time.Time{}
			h.log.Debug("feature toggled", zap.Stringer("feature", f))
		}
	}
	return true
}

func (h *Host) typed(r rune) {
	h.editor.Insert(r)
	h.eng.TextTyped()
	h.moved()
}

func (h *Host) moved() {
	h.eng.PointerMoved(h.editor.CaretEvent())
}
