package bezier

import "time"

// debugStats holds per-frame metrics. Only populated when the editor is in
// debug mode.
type debugStats struct {
	resampleTime  time.Duration
	sampleCount   int
	pendingEvents int
	selected      int
}

// debugLog writes the frame stats at Debug level.
func (e *Editor) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	e.logger.Debug("frame",
		"frame", e.frame,
		"resample", stats.resampleTime,
		"samples", stats.sampleCount,
		"pending", stats.pendingEvents,
		"selected", stats.selected,
		"animating", e.animator.Enabled(),
		"resetting", e.tween != nil,
	)
}
