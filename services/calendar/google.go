package calendar

import (
	"context"
	"fmt"
	"time"

	"waybook/models"

	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleGateway is the production Gateway, backed by the Google Calendar v3
// API on a single calendar.
type GoogleGateway struct {
	windowLocks

	svc        *calendarapi.Service
	calendarID string
}

// NewGoogleGateway builds a gateway from a service-account key (JSON bytes)
// with calendar scope.
func NewGoogleGateway(ctx context.Context, credentialsJSON []byte, calendarID string) (*GoogleGateway, error) {
	svc, err := calendarapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(calendarapi.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return &GoogleGateway{svc: svc, calendarID: calendarID}, nil
}

func (g *GoogleGateway) HasConflict(ctx context.Context, w models.Window) (bool, error) {
	events, err := g.svc.Events.List(g.calendarID).
		TimeMin(w.Start.Format(time.RFC3339)).
		TimeMax(w.End.Format(time.RFC3339)).
		SingleEvents(true).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return len(events.Items) > 0, nil
}

func (g *GoogleGateway) Insert(ctx context.Context, w models.Window, summary string) error {
	event := &calendarapi.Event{
		Summary: summary,
		Start:   &calendarapi.EventDateTime{DateTime: w.Start.Format(time.RFC3339)},
		End:     &calendarapi.EventDateTime{DateTime: w.End.Format(time.RFC3339)},
	}
	if _, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return nil
}
