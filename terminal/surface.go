// Package terminal hosts the engine on a tcell screen
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thunderbolt/editor"
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/render"
)

// Surface composites scenes onto a tcell screen, one raster cell per terminal cell
// The bottom StatusBarRows rows are left for the status line
type Surface struct {
	screen tcell.Screen
	raster *render.Raster
	cols   int
	rows   int

	cellW, cellH float64
}

// NewSurface sizes a surface to the screen
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	s := &Surface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		raster: render.NewRaster(0, 0, cellW, cellH, render.RGBBlack),
	}
	s.Resize()
	return s
}

// Resize re-reads the screen size; returns the new scene area in cells
func (s *Surface) Resize() (cols, rows int) {
	w, h := s.screen.Size()
	s.cols = max(w, 0)
	s.rows = max(h-parameter.StatusBarRows, 0)
	s.raster.Resize(s.cols, s.rows)
	return s.cols, s.rows
}

// Size returns the scene area in cells
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Viewport returns the scene area in viewport pixels
func (s *Surface) Viewport() (width, height float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// Draw paints the scene as cell backgrounds, then the text, caret and status line on top
func (s *Surface) Draw(scene render.Scene, ed *editor.Editor, status string) {
	s.raster.Clear()
	s.raster.Draw(scene)

	lines := ed.Visible()
	for y := 0; y < s.rows; y++ {
		var line []rune
		if y < len(lines) {
			line = lines[y]
		}
		for x := 0; x < s.cols; x++ {
			style := tcell.StyleDefault
			if c, ok := s.raster.At(x, y); ok {
				style = style.Background(rgb(c)).Foreground(tcell.ColorWhite)
			}
			ch := ' '
			if x < len(line) {
				ch = line[x]
			}
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}

	row, col := ed.Caret()
	if y := row - ed.ScrollRow(); y >= 0 && y < s.rows && col < s.cols {
		ch, _, style, _ := s.screen.GetContent(col, y)
		s.screen.SetContent(col, y, ch, nil, style.Reverse(true))
	}

	s.drawStatus(status)
	s.screen.Show()
}

func (s *Surface) drawStatus(status string) {
	if parameter.StatusBarRows == 0 {
		return
	}
	y := s.rows
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	text := []rune(status)
	for x := 0; x < s.cols; x++ {
		ch := ' '
		if x < len(text) {
			ch = text[x]
		}
		s.screen.SetContent(x, y, ch, nil, style)
	}
}

func rgb(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
