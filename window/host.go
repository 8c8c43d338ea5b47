package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/editor"
	"github.com/lixenwraith/thunderbolt/engine"
	"github.com/lixenwraith/thunderbolt/parameter"
)

// MouseSource identifies the mouse cursor in spawn events
const MouseSource = "mouse"

var background = color.RGBA{R: 12, G: 12, B: 18, A: 255}

// featureKeys maps function keys to feature toggles; F1 cycles the theme
var featureKeys = map[ebiten.Key]engine.Feature{
	ebiten.KeyF2: engine.FeatureSnow,
	ebiten.KeyF3: engine.FeatureStardust,
	ebiten.KeyF4: engine.FeatureButterfly,
	ebiten.KeyF5: engine.FeatureReverse,
	ebiten.KeyF6: engine.FeatureRegular,
}

// Host is an ebiten.Game that feeds keyboard and cursor input to the engine and paints its frames
// The engine loop runs independently; Draw shows whatever frame is latest
type Host struct {
	eng    *engine.Engine
	editor *editor.Editor
	log    *zap.Logger

	width, height int
	cursorX       int
	cursorY       int
	runes         []rune
}

// NewHost creates a window host for a started engine
func NewHost(eng *engine.Engine, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		eng:     eng,
		editor:  editor.New(1, parameter.WindowFontAdvance, parameter.WindowLineHeight),
		log:     log,
		cursorX: -1,
		cursorY: -1,
	}
}

// Run opens the window and blocks until it closes
func (h *Host) Run(width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(h)
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.log.Info("quit requested")
		return ebiten.Termination
	}

	h.runes = ebiten.AppendInputChars(h.runes[:0])
	for _, r := range h.runes {
		h.editor.Insert(r)
		h.eng.TextTyped()
		h.eng.PointerMoved(h.editor.CaretEvent())
	}

	switch {
	case repeating(ebiten.KeyEnter):
		h.editor.Newline()
		h.eng.TextTyped()
		h.eng.PointerMoved(h.editor.CaretEvent())
	case repeating(ebiten.KeyBackspace):
		at := h.editor.CaretEvent()
		if h.editor.Backspace() {
			h.eng.TextDeleted(at)
			h.eng.PointerMoved(h.editor.CaretEvent())
		}
	case repeating(ebiten.KeyArrowLeft):
		h.caret(-1, 0)
	case repeating(ebiten.KeyArrowRight):
		h.caret(1, 0)
	case repeating(ebiten.KeyArrowUp):
		h.caret(0, -1)
	case repeating(ebiten.KeyArrowDown):
		h.caret(0, 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.eng.Settings().CycleTheme(h.eng.Themes().Len())
	}
	for k, f := range featureKeys {
		if inpututil.IsKeyJustPressed(k) {
			h.eng.Settings().Toggle(f)
		}
	}

	if x, y := ebiten.CursorPosition(); x != h.cursorX || y != h.cursorY {
		h.cursorX, h.cursorY = x, y
		if x >= 0 && y >= 0 && x < h.width && y < h.height {
			ev := h.editor.CaretEvent()
			ev.Source = MouseSource
			ev.Point.X, ev.Point.Y = float64(x), float64(y)
			h.eng.PointerMoved(ev)
		}
	}
	return nil
}

func (h *Host) caret(dx, dy int) {
	h.editor.Move(dx, dy)
	h.eng.PointerMoved(h.editor.CaretEvent())
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	DrawScene(screen, h.eng.Scene(h.editor.Scroll()))

	for i, line := range h.editor.Visible() {
		ebitenutil.DebugPrintAt(screen, string(line), 0, i*int(parameter.WindowLineHeight))
	}
	row, col := h.editor.Caret()
	cx := float32(float64(col) * parameter.WindowFontAdvance)
	cy := float32(float64(row-h.editor.ScrollRow()) * parameter.WindowLineHeight)
	vector.DrawFilledRect(screen, cx, cy, 1, float32(parameter.WindowLineHeight), color.White, false)

	ebitenutil.DebugPrintAt(screen, h.eng.Status(), 0, h.height-int(parameter.WindowLineHeight))
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		rows := int(math.Floor(float64(outsideHeight)/parameter.WindowLineHeight)) - 1
		h.editor.SetRows(rows)
		h.eng.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// repeating reports a fresh press or an auto-repeat tick while held
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%3 == 0)
}
