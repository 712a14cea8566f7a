package models

import (
	"fmt"
	"time"
)

// DialogStep identifies how far a sender has progressed through the booking dialog.
type DialogStep string

const (
	StepStart         DialogStep = "start"
	StepAwaitingDate  DialogStep = "awaiting_date"
	StepAwaitingRoute DialogStep = "awaiting_route"
)

// Session holds one sender's dialog progress between webhook deliveries.
// Only the fields belonging to the current step are set; the constructors
// below are the only supported way to build one, and Valid enforces the
// pairing when a session is loaded back from the store.
type Session struct {
	Sender       string     `json:"sender"`
	Step         DialogStep `json:"step"`
	Dates        []string   `json:"dates,omitempty"`        // offered dates, awaiting_date only
	SelectedDate string     `json:"selectedDate,omitempty"` // chosen date, awaiting_route only
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewStartSession marks a sender as seen without starting a dialog.
func NewStartSession(sender string) Session {
	return Session{Sender: sender, Step: StepStart, CreatedAt: time.Now().UTC()}
}

// NewDateSelection begins (or restarts) a dialog with the offered dates attached.
func NewDateSelection(sender string, dates []string) Session {
	return Session{Sender: sender, Step: StepAwaitingDate, Dates: dates, CreatedAt: time.Now().UTC()}
}

// NewRouteSelection advances a dialog to route selection for the chosen date.
func NewRouteSelection(sender string, selectedDate string) Session {
	return Session{Sender: sender, Step: StepAwaitingRoute, SelectedDate: selectedDate, CreatedAt: time.Now().UTC()}
}

// Valid reports whether the step/field pairing is one the constructors produce.
func (s Session) Valid() error {
	if s.Sender == "" {
		return fmt.Errorf("session has no sender")
	}
	switch s.Step {
	case StepStart:
		if len(s.Dates) > 0 || s.SelectedDate != "" {
			return fmt.Errorf("start session for %s carries selection fields", s.Sender)
		}
	case StepAwaitingDate:
		if len(s.Dates) == 0 {
			return fmt.Errorf("awaiting_date session for %s has no offered dates", s.Sender)
		}
		if s.SelectedDate != "" {
			return fmt.Errorf("awaiting_date session for %s already carries a selected date", s.Sender)
		}
	case StepAwaitingRoute:
		if s.SelectedDate == "" {
			return fmt.Errorf("awaiting_route session for %s has no selected date", s.Sender)
		}
		if len(s.Dates) > 0 {
			return fmt.Errorf("awaiting_route session for %s still carries offered dates", s.Sender)
		}
	default:
		return fmt.Errorf("unknown dialog step %q for %s", s.Step, s.Sender)
	}
	return nil
}
