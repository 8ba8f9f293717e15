package venues

// OperatingHoursEnd is the end of the operating day on the hour scale used
// by Window.Time (midnight).
const OperatingHoursEnd = 24.0

// ClampDuration shortens w.Duration so the window ends no later than
// dayEnd. Day and Time are returned unchanged, and a window that already
// fits is returned as is. Time is expected to lie in [0, dayEnd); nothing
// is clamped from below.
func ClampDuration(w Window, dayEnd float64) Window {
	if limit := dayEnd - w.Time; w.Duration > limit {
		w.Duration = limit
	}
	return w
}

// ClampClassDuration is ClampDuration with OperatingHoursEnd.
func ClampClassDuration(w Window) Window {
	return ClampDuration(w, OperatingHoursEnd)
}
