package config

import "time"

// Tick bounds for the snake move interval, in milliseconds.
const (
	MinTickMS     = 110
	MaxTickMS     = 200
	DefaultTickMS = 160

	// SpeedModeFloorMS is the fastest move interval speed mode reaches.
	SpeedModeFloorMS = 80

	// SpeedModeStep is how many points apart the interval is recomputed.
	SpeedModeStep = 5
)

// TickForSpeedLevel maps the 1..10 speed slider to a move interval.
// Level 1 is the slowest (200 ms), level 10 the fastest (110 ms).
func TickForSpeedLevel(level int) int {
	level = max(1, min(10, level))
	return 100 + (11-level)*10
}

// SpeedLevelForTick is the inverse of TickForSpeedLevel.
func SpeedLevelForTick(tickMS int) int {
	level := 11 - (tickMS-100)/10
	return max(1, min(10, level))
}

// SpeedManager decides how often the snake moves and how often it may fire.
type SpeedManager struct {
	mode    Mode
	base    time.Duration
	current time.Duration
}

// NewSpeedManager creates a manager for the mode starting at tickMS.
func NewSpeedManager(mode Mode, tickMS int) *SpeedManager {
	base := time.Duration(tickMS) * time.Millisecond
	return &SpeedManager{mode: mode, base: base, current: base}
}

// Interval returns the current snake move interval.
func (s *SpeedManager) Interval() time.Duration {
	return s.current
}

// FireInterval returns the minimum time between two shots.
func (s *SpeedManager) FireInterval() time.Duration {
	return s.base / 2
}

// Reset restores the base interval.
func (s *SpeedManager) Reset() {
	s.current = s.base
}

// Update recomputes the move interval for the score. In speed mode the
// interval shrinks by 2 ms per point, evaluated only on multiples of
// SpeedModeStep and never below SpeedModeFloorMS. Other modes keep the base.
// It reports whether the interval changed.
func (s *SpeedManager) Update(score int) bool {
	if s.mode != ModeSpeed || score%SpeedModeStep != 0 {
		return false
	}
	next := SpeedModeInterval(s.base, score)
	if next == s.current {
		return false
	}
	s.current = next
	return true
}

// SpeedModeInterval returns max(80ms, base - 2ms*score).
func SpeedModeInterval(base time.Duration, score int) time.Duration {
	return max(SpeedModeFloorMS*time.Millisecond, base-time.Duration(2*score)*time.Millisecond)
}
