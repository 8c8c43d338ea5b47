// Package spawn turns host input events into new entities
package spawn

import (
	"github.com/lixenwraith/thunderbolt/config"
	"github.com/lixenwraith/thunderbolt/vmath"
)

// PointerEvent is a caret or pointer position reported by the host
type PointerEvent struct {
	// Source identifies the caret; last positions are tracked per source
	Source string
	// Origin is the viewport scroll offset when the event was produced
	Origin vmath.Vec2
	// Point is the position in viewport-local coordinates
	Point vmath.Vec2
}

// Valid reports whether the event can produce entities
func (ev PointerEvent) Valid() bool {
	return ev.Source != "" && ev.Origin.Finite() && ev.Point.Finite()
}

// SettingsSource supplies the feature snapshot consulted at each spawn decision
type SettingsSource interface {
	Settings() config.Settings
}

// Listener observes notable spawns; callbacks run synchronously on the spawning goroutine
type Listener interface {
	ChainSpawned(links int)
	EchoSpawned()
	SnowStarted()
}

type nopListener struct{}

func (nopListener) ChainSpawned(int) {}
func (nopListener) EchoSpawned()     {}
func (nopListener) SnowStarted()     {}

// Listeners fans notifications out to several listeners in order
type Listeners []Listener

func (ls Listeners) ChainSpawned(links int) {
	for _, l := range ls {
		l.ChainSpawned(links)
	}
}

func (ls Listeners) EchoSpawned() {
	for _, l := range ls {
		l.EchoSpawned()
	}
}

func (ls Listeners) SnowStarted() {
	for _, l := range ls {
		l.SnowStarted()
	}
}
