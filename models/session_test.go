package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsProduceValidSessions(t *testing.T) {
	require.NoError(t, NewStartSession("15550001").Valid())
	require.NoError(t, NewDateSelection("15550001", []string{"2024-06-03"}).Valid())
	require.NoError(t, NewRouteSelection("15550001", "2024-06-03").Valid())
}

func TestValidRejectsIllegalShapes(t *testing.T) {
	cases := map[string]Session{
		"missing sender":              {Step: StepStart},
		"unknown step":                {Sender: "s", Step: "confirming"},
		"awaiting_date without dates": {Sender: "s", Step: StepAwaitingDate},
		"awaiting_date with selection": {
			Sender: "s", Step: StepAwaitingDate,
			Dates: []string{"2024-06-03"}, SelectedDate: "2024-06-03",
		},
		"awaiting_route without date": {Sender: "s", Step: StepAwaitingRoute},
		"awaiting_route with dates": {
			Sender: "s", Step: StepAwaitingRoute,
			SelectedDate: "2024-06-03", Dates: []string{"2024-06-03"},
		},
		"start with leftover fields": {Sender: "s", Step: StepStart, SelectedDate: "2024-06-03"},
	}

	for name, sess := range cases {
		assert.Error(t, sess.Valid(), name)
	}
}
