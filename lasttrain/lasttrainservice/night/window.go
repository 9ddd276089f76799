package night

import "time"

// Bounds are the civil-time boundaries of the nightly search window.
type Bounds struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// DefaultBounds is the canonical last-train window, 20:30 until 02:00
// the following day.
var DefaultBounds = Bounds{StartHour: 20, StartMinute: 30, EndHour: 2, EndMinute: 0}

// ComputeWindow returns the night window enclosing now, in now's
// location. Between the window's end hour and its start hour the
// upcoming night is used, so now is not necessarily inside the window
// during the afternoon, but from the start hour on and through the
// small hours it always is.
func ComputeWindow(now time.Time, b Bounds) Window {
	var start, end time.Time
	if now.Hour() < b.EndHour || (now.Hour() == b.EndHour && now.Minute() < b.EndMinute) {
		start = at(now.AddDate(0, 0, -1), b.StartHour, b.StartMinute)
		end = at(now, b.EndHour, b.EndMinute)
	} else {
		start = at(now, b.StartHour, b.StartMinute)
		end = at(now.AddDate(0, 0, 1), b.EndHour, b.EndMinute)
	}
	return Window{Start: start, End: end}
}

func at(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
