package editor

import (
	"testing"

	"github.com/lixenwraith/thunderbolt/vmath"
)

func TestEditorLineOps(t *testing.T) {
	ed := New(10, 8, 16)
	for _, r := range "ab" {
		ed.Insert(r)
	}
	ed.Newline()
	ed.Insert('c')
	if got := ed.Text(); got != "ab\nc" {
		t.Fatalf("text = %q, want %q", got, "ab\nc")
	}

	ed.Move(-1, 0)
	if !ed.Backspace() {
		t.Fatal("backspace at line start should join lines")
	}
	if got := ed.Text(); got != "abc" {
		t.Errorf("text after join = %q, want %q", got, "abc")
	}
	if row, col := ed.Caret(); row != 0 || col != 2 {
		t.Errorf("caret = (%d, %d), want (0, 2)", row, col)
	}

	ed.Move(-10, 0)
	if ed.Backspace() {
		t.Error("backspace at document start should report false")
	}
}

func TestEditorScrollsAndAnchorsEvents(t *testing.T) {
	ed := New(3, 8, 16)
	for i := 0; i < 5; i++ {
		ed.Newline()
	}
	if got := ed.ScrollRow(); got != 3 {
		t.Fatalf("scroll row = %d, want 3", got)
	}

	ev := ed.CaretEvent()
	if ev.Source != CaretSource {
		t.Errorf("source = %q", ev.Source)
	}
	if want := (vmath.Vec2{Y: 48}); ev.Origin != want {
		t.Errorf("origin = %v, want %v", ev.Origin, want)
	}
	// Caret on the last visible row, column zero
	if want := (vmath.Vec2{X: 4, Y: 40}); ev.Point != want {
		t.Errorf("point = %v, want %v", ev.Point, want)
	}
	if len(ed.Visible()) != 3 {
		t.Errorf("visible = %d lines, want 3", len(ed.Visible()))
	}

	ed.Move(0, -5)
	if got := ed.ScrollRow(); got != 0 {
		t.Errorf("scroll row after moving up = %d, want 0", got)
	}
}
