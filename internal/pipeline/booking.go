package pipeline

import (
	"strings"

	"github.com/sells-group/call-sync/internal/model"
)

// appointmentNouns and completionVerbs must co-occur in the call text for a
// text-based booking detection. Requiring both avoids "wants to book later"
// false positives.
var appointmentNouns = []string{
	"appointment", "walkthrough", "walk-through", "consultation", "meeting", "showing",
}

var completionVerbs = []string{
	"booked", "scheduled", "confirmed", "set up", "locked in", "on the calendar",
}

// DetectBooking reports whether the call completed a scheduling action, from
// either a structured action record or the call text. Structured actions win.
func DetectBooking(ev model.CallEvent) bool {
	if ev.HasAction(model.ActionAppointmentBooked) {
		return true
	}

	text := strings.ToLower(ev.Summary + " " + ev.Transcript)
	if text == " " {
		return false
	}

	noun := false
	for _, n := range appointmentNouns {
		if strings.Contains(text, n) {
			noun = true
			break
		}
	}
	if !noun {
		return false
	}
	for _, v := range completionVerbs {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}
