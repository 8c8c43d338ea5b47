package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/thunderbolt/config"
)

// SettingsStore holds the feature snapshot behind an atomic pointer
// Readers poll on use; writers replace the whole snapshot
type SettingsStore struct {
	ptr atomic.Pointer[config.Settings]
}

// NewSettingsStore creates a store holding initial
func NewSettingsStore(initial config.Settings) *SettingsStore {
	s := &SettingsStore{}
	s.Set(initial)
	return s
}

// Settings returns the current snapshot
func (s *SettingsStore) Settings() config.Settings {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return config.DefaultSettings()
}

// Set replaces the snapshot
func (s *SettingsStore) Set(v config.Settings) {
	s.ptr.Store(&v)
}

// Update applies fn to a copy of the current snapshot and stores the result
// Concurrent updates are retried until one wins
func (s *SettingsStore) Update(fn func(*config.Settings)) config.Settings {
	for {
		old := s.ptr.Load()
		next := config.DefaultSettings()
		if old != nil {
			next = *old
		}
		fn(&next)
		if s.ptr.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// Feature names a toggleable spawn feature
type Feature uint8

const (
	FeatureRegular Feature = iota
	FeatureSnow
	FeatureStardust
	FeatureButterfly
	FeatureReverse
)

func (f Feature) String() string {
	switch f {
	case FeatureRegular:
		return "regular"
	case FeatureSnow:
		return "snow"
	case FeatureStardust:
		return "stardust"
	case FeatureButterfly:
		return "butterfly"
	case FeatureReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Toggle flips one feature flag
func (s *SettingsStore) Toggle(f Feature) config.Settings {
	return s.Update(func(v *config.Settings) {
		switch f {
		case FeatureRegular:
			v.Regular = !v.Regular
		case FeatureSnow:
			v.Snow = !v.Snow
		case FeatureStardust:
			v.Stardust = !v.Stardust
		case FeatureButterfly:
			v.Butterfly = !v.Butterfly
		case FeatureReverse:
			v.Reverse = !v.Reverse
		}
	})
}

// CycleTheme steps the theme index through None and then each of count themes
func (s *SettingsStore) CycleTheme(count int) config.Settings {
	return s.Update(func(v *config.Settings) {
		next := v.ThemeIndex + 1
		if next < 0 || next >= count {
			next = -1
		}
		v.ThemeIndex = next
	})
}
