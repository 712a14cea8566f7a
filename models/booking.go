package models

import (
	"fmt"
	"time"
)

// Window is a half-open interval [Start, End) representing one bookable slot.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WindowForDate builds the booking window for a calendar date (2006-01-02)
// using the fixed daily clock, in the local timezone.
func WindowForDate(date string, startHour, endHour int) (Window, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return Window{}, fmt.Errorf("invalid booking date %q: %w", date, err)
	}
	return Window{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}, nil
}

// Key returns a stable identifier for the window, used for lock keying.
func (w Window) Key() string {
	return w.Start.Format(time.RFC3339) + "/" + w.End.Format(time.RFC3339)
}

// BookingRequest is the outcome of a completed dialog. It is never stored;
// it only travels from the dialogue engine to the calendar gateway.
type BookingRequest struct {
	Date   string `json:"date"`
	Route  string `json:"route"`
	Sender string `json:"sender"`
}

// ReminderPayload is the asynq task payload for the day-of-trip operator reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Route     string `json:"route"`
	Date      string `json:"date"`
	Recipient string `json:"recipient"`
}
