// File: dialogue/engine.go
package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"waybook/models"
	"waybook/services/availability"
	"waybook/services/tasks"
	"waybook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandleMessage advances the sender's dialog under the sender's lock, so two
// deliveries for the same sender never interleave.
func (e *DefaultEngine) HandleMessage(ctx context.Context, sender, text string) error {
	return e.Sessions.WithSenderLock(sender, func() error {
		return e.handle(ctx, sender, strings.TrimSpace(text))
	})
}

func (e *DefaultEngine) handle(ctx context.Context, sender, text string) error {
	// The trigger keyword restarts the dialog from any state.
	if strings.EqualFold(text, utils.TriggerKeyword) {
		return e.offerDates(ctx, sender)
	}

	sess, err := e.Sessions.Get(ctx, sender)
	if err != nil {
		return err
	}
	if sess == nil {
		// Not a trigger and no dialog in progress: remember the sender
		// silently so later messages find a session in the start step.
		return e.Sessions.Put(ctx, models.NewStartSession(sender))
	}

	switch sess.Step {
	case models.StepAwaitingDate:
		return e.selectDate(ctx, *sess, text)
	case models.StepAwaitingRoute:
		return e.selectRoute(ctx, *sess, text)
	default:
		return nil
	}
}

// offerDates computes the next available dates and moves the sender to the
// awaiting_date step, overwriting any prior session.
func (e *DefaultEngine) offerDates(ctx context.Context, sender string) error {
	dates := availability.NextDates(e.Now(), utils.AllowedWeekdays, utils.OfferedDateCount)
	if err := e.Sessions.Put(ctx, models.NewDateSelection(sender, dates)); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("Here are the next available dates:\n")
	for i, d := range dates {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}
	b.WriteString("Reply with the number of the date you want.")
	return e.Notifier.Send(ctx, sender, b.String())
}

// selectDate interprets the text as a 1-based index into the offered dates.
func (e *DefaultEngine) selectDate(ctx context.Context, sess models.Session, text string) error {
	idx, err := strconv.Atoi(text)
	if err != nil || idx < 1 || idx > len(sess.Dates) {
		return e.Notifier.Send(ctx, sess.Sender,
			"Invalid selection. Please reply with one of the numbers from the list.")
	}

	selected := sess.Dates[idx-1]
	if err := e.Sessions.Put(ctx, models.NewRouteSelection(sess.Sender, selected)); err != nil {
		return err
	}

	msg := fmt.Sprintf("You picked %s.\nAvailable routes: %s.\nReply with the route you want.",
		selected, strings.Join(utils.Routes, ", "))
	return e.Notifier.Send(ctx, sess.Sender, msg)
}

// selectRoute validates the route and runs the booking confirmation:
// conflict check, insert, confirmations, session teardown.
func (e *DefaultEngine) selectRoute(ctx context.Context, sess models.Session, text string) error {
	if !validRoute(text) {
		return e.Notifier.Send(ctx, sess.Sender,
			fmt.Sprintf("Invalid route. Please reply with one of: %s.", strings.Join(utils.Routes, ", ")))
	}

	req := models.BookingRequest{Date: sess.SelectedDate, Route: text, Sender: sess.Sender}
	window, err := models.WindowForDate(req.Date, utils.BookingStartHour, utils.BookingEndHour)
	if err != nil {
		return err
	}

	// Hold the window lock across check and insert so a concurrent
	// confirmation for the same window cannot slip in between.
	release := e.Calendar.LockWindow(window)
	defer release()

	conflict, err := e.Calendar.HasConflict(ctx, window)
	if err != nil {
		return fmt.Errorf("conflict check failed for %s: %w", req.Date, err)
	}
	if conflict {
		if err := e.Sessions.Delete(ctx, sess.Sender); err != nil {
			return err
		}
		return e.Notifier.Send(ctx, sess.Sender,
			fmt.Sprintf("Sorry, %s is already booked. Send \"%s\" to pick another date.",
				req.Date, utils.TriggerKeyword))
	}

	summary := fmt.Sprintf("Route %s booking (%s)", req.Route, req.Sender)
	if err := e.Calendar.Insert(ctx, window, summary); err != nil {
		return fmt.Errorf("failed to insert booking for %s: %w", req.Date, err)
	}

	if err := e.Sessions.Delete(ctx, sess.Sender); err != nil {
		return err
	}

	bookingID := uuid.New().String()
	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", bookingID),
		zap.String("sender", req.Sender),
		zap.String("route", req.Route),
		zap.String("date", req.Date),
	)

	if err := e.Notifier.Send(ctx, req.Sender,
		fmt.Sprintf("Booking confirmed: route %s on %s. See you there!", req.Route, req.Date)); err != nil {
		return err
	}
	if err := e.Notifier.Send(ctx, e.Operator,
		fmt.Sprintf("New booking: route %s on %s for %s.", req.Route, req.Date, req.Sender)); err != nil {
		return err
	}

	e.enqueueReminder(bookingID, req)
	return nil
}

func validRoute(text string) bool {
	for _, r := range utils.Routes {
		if r == text {
			return true
		}
	}
	return false
}

// enqueueReminder schedules the operator's day-of-trip reminder. The booking
// is already confirmed at this point, so enqueue failures are only logged.
func (e *DefaultEngine) enqueueReminder(bookingID string, req models.BookingRequest) {
	if e.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		logger.Warn("skipping reminder for unparseable booking date",
			zap.String("date", req.Date), zap.Error(err))
		return
	}
	fireAt := time.Date(day.Year(), day.Month(), day.Day(), utils.ReminderFireHour, 0, 0, 0, time.Local)

	payload := models.ReminderPayload{
		BookingID: bookingID,
		Route:     req.Route,
		Date:      req.Date,
		Recipient: e.Operator,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build booking reminder task", zap.Error(err))
		return
	}
	if _, err := e.Reminders.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue booking reminder",
			zap.String("bookingId", bookingID), zap.Error(err))
	}
}
