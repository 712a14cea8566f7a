// File: utils/constants.go
package utils

import "time"

// TriggerKeyword starts (or restarts) a booking dialog. Matching is
// case-insensitive after trimming.
const TriggerKeyword = "book"

// SessionKeyPrefix is the prefix for per-sender dialog session keys in Redis.
const SessionKeyPrefix = "dialog:"

// OfferedDateCount is how many upcoming dates a sender is offered.
const OfferedDateCount = 4

// Booking window clock, applied to every booked date regardless of route.
const (
	BookingStartHour = 9
	BookingEndHour   = 17
)

// ReminderFireHour is the local hour at which the operator gets the
// day-of-trip reminder.
const ReminderFireHour = 7

// Routes is the fixed set of bookable route identifiers.
var Routes = []string{"701", "702", "703", "704", "705", "706"}

// AllowedWeekdays are the weekdays on which trips run.
var AllowedWeekdays = []time.Weekday{time.Monday, time.Tuesday, time.Thursday, time.Saturday}
