// Package editor is the line buffer and caret shared by the interactive hosts
package editor

import (
	"github.com/lixenwraith/thunderbolt/parameter"
	"github.com/lixenwraith/thunderbolt/spawn"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// CaretSource identifies the text caret in spawn events
const CaretSource = "caret"

// Editor is a minimal line buffer with one caret
// Rows past the visible height scroll the document; the scroll offset becomes the event origin
type Editor struct {
	lines  [][]rune
	row    int
	col    int
	scroll int
	rows   int

	cellW, cellH float64
}

// New creates an empty buffer showing rows lines
func New(rows int, cellW, cellH float64) *Editor {
	e := &Editor{
		lines: [][]rune{nil},
		cellW: cellW,
		cellH: cellH,
	}
	e.SetRows(rows)
	return e
}

// SetRows changes the visible height and keeps the caret on screen
func (e *Editor) SetRows(rows int) {
	e.rows = max(rows, 1)
	e.follow()
}

// Insert places r at the caret and advances it
func (e *Editor) Insert(r rune) {
	line := e.lines[e.row]
	line = append(line, 0)
	copy(line[e.col+1:], line[e.col:])
	line[e.col] = r
	e.lines[e.row] = line
	e.col++
}

// Newline splits the current line at the caret
func (e *Editor) Newline() {
	line := e.lines[e.row]
	tail := append([]rune(nil), line[e.col:]...)
	e.lines[e.row] = line[:e.col]

	e.lines = append(e.lines, nil)
	copy(e.lines[e.row+2:], e.lines[e.row+1:])
	e.lines[e.row+1] = tail

	e.row++
	e.col = 0
	e.follow()
}

// Backspace removes the rune before the caret, joining lines at column zero
// Returns false when the caret is at the start of the document
func (e *Editor) Backspace() bool {
	if e.col > 0 {
		line := e.lines[e.row]
		e.lines[e.row] = append(line[:e.col-1], line[e.col:]...)
		e.col--
		return true
	}
	if e.row == 0 {
		return false
	}
	prev := e.lines[e.row-1]
	e.col = len(prev)
	e.lines[e.row-1] = append(prev, e.lines[e.row]...)
	e.lines = append(e.lines[:e.row], e.lines[e.row+1:]...)
	e.row--
	e.follow()
	return true
}

// Move shifts the caret, clamped to the document
func (e *Editor) Move(dx, dy int) {
	e.row = min(max(e.row+dy, 0), len(e.lines)-1)
	e.col = min(max(e.col+dx, 0), len(e.lines[e.row]))
	e.follow()
}

// follow scrolls so the caret row is visible
func (e *Editor) follow() {
	if e.row < e.scroll {
		e.scroll = e.row
	}
	if e.row >= e.scroll+e.rows {
		e.scroll = e.row - e.rows + 1
	}
}

// Caret returns the caret cell in document coordinates
func (e *Editor) Caret() (row, col int) {
	return e.row, e.col
}

// ScrollRow returns the first visible document row
func (e *Editor) ScrollRow() int {
	return e.scroll
}

// Scroll returns the viewport scroll offset in pixels
func (e *Editor) Scroll() vmath.Vec2 {
	return vmath.Vec2{Y: float64(e.scroll) * e.cellH}
}

// Visible returns the lines currently on screen
func (e *Editor) Visible() [][]rune {
	end := min(e.scroll+e.rows, len(e.lines))
	return e.lines[e.scroll:end]
}

// Text returns the document joined with newlines
func (e *Editor) Text() string {
	n := 0
	for _, l := range e.lines {
		n += len(l) + 1
	}
	out := make([]rune, 0, n)
	for i, l := range e.lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, l...)
	}
	return string(out)
}

// CaretEvent reports the caret center in viewport pixels, anchored at the current scroll
func (e *Editor) CaretEvent() spawn.PointerEvent {
	return e.CellEvent(CaretSource, e.col, e.row-e.scroll)
}

// CellEvent reports the center of a screen cell for source
func (e *Editor) CellEvent(source string, x, y int) spawn.PointerEvent {
	return spawn.PointerEvent{
		Source: source,
		Origin: e.Scroll(),
		Point: vmath.Vec2{
			X: (float64(x) + 0.5) * e.cellW,
			Y: (float64(y) + 0.5) * e.cellH,
		},
	}
}

// TabRunes returns the runes a tab inserts
func TabRunes() []rune {
	out := make([]rune, parameter.EditorTabWidth)
	for i := range out {
		out[i] = ' '
	}
	return out
}
