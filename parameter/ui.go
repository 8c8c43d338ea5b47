package parameter

import "time"

// Terminal surface
const (
	// TerminalCellWidth is the viewport pixel width covered by one terminal cell
	TerminalCellWidth = 8.0

	// TerminalCellHeight is the viewport pixel height covered by one terminal cell
	TerminalCellHeight = 16.0

	// StatusBarRows is reserved at the bottom of the terminal for the status line
	StatusBarRows = 1

	// EditorTabWidth is the number of spaces a tab inserts
	EditorTabWidth = 4
)

// Window surface
const (
	// WindowTitle is the title of the desktop window host
	WindowTitle = "thunderbolt"

	// WindowFontAdvance is the horizontal caret step per typed rune, in pixels
	WindowFontAdvance = 6.0

	// WindowLineHeight is the vertical caret step per line, in pixels
	WindowLineHeight = 16.0

	// WindowEllipseSegments is the polygon resolution for filled ellipses
	WindowEllipseSegments = 24
)

// StatusRefresh is the minimum interval between status line rebuilds
const StatusRefresh = 250 * time.Millisecond
