package model

import "time"

// CallEvent is the inbound call-completion payload from the dialer platform.
// Summary and Transcript may each be empty; extraction prefers the summary.
type CallEvent struct {
	CallID          string       `json:"call_id"`
	RecordID        string       `json:"record_id"`
	ContactRef      string       `json:"contact_ref,omitempty"`
	Summary         string       `json:"summary"`
	Transcript      string       `json:"transcript"`
	Direction       string       `json:"direction,omitempty"`
	DurationSeconds int          `json:"duration_seconds,omitempty"`
	StartedAt       *time.Time   `json:"started_at,omitempty"`
	EndedAt         *time.Time   `json:"ended_at,omitempty"`
	Actions         []CallAction `json:"actions,omitempty"`
}

// CallAction is a structured post-call action recorded by the dialer,
// e.g. an appointment booked through the call flow.
type CallAction struct {
	Type   string `json:"type"`
	Detail string `json:"detail,omitempty"`
}

// ActionAppointmentBooked marks a scheduling action completed during the call.
const ActionAppointmentBooked = "appointment_booked"

// HasAction reports whether the event carries an action of the given type.
func (e CallEvent) HasAction(actionType string) bool {
	for _, a := range e.Actions {
		if a.Type == actionType {
			return true
		}
	}
	return false
}

// Snapshot holds prior values of append-style and operational fields, read
// from the record store before a pass runs.
type Snapshot struct {
	Memory   string
	Attempts int
	Booked   bool
}
