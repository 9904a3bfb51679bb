package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	allStatuses := []RequestStatus{
		StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted,
	}
	allowed := map[RequestStatus]map[RequestStatus]bool{
		StatusPending:  {StatusAccepted: true, StatusRejected: true, StatusCancelled: true},
		StatusAccepted: {StatusCompleted: true, StatusCancelled: true},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			booking := BabysitterRequest{Status: from}
			got := booking.CanTransition(to)
			want := allowed[from][to]
			assert.Equalf(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestTransitionMutatesOnlyOnValidEdge(t *testing.T) {
	booking := BabysitterRequest{Status: StatusPending}

	err := booking.Transition(StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, booking.Status)

	err = booking.Transition(StatusRejected)
	require.Error(t, err)
	assert.Equal(t, StatusAccepted, booking.Status, "failed transition must not mutate status")
	assert.Contains(t, err.Error(), string(StatusAccepted), "error should carry the current status")
}

func TestTerminalStatesAcceptNoTransitions(t *testing.T) {
	terminals := []RequestStatus{StatusRejected, StatusCancelled, StatusCompleted}
	targets := []RequestStatus{StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted}

	for _, from := range terminals {
		assert.True(t, from.IsTerminal())
		for _, to := range targets {
			booking := BabysitterRequest{Status: from}
			err := booking.Transition(to)
			require.Errorf(t, err, "transition %s -> %s must fail", from, to)
			assert.Equal(t, from, booking.Status)
		}
	}

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAccepted.IsTerminal())
}

func TestCancelGuards(t *testing.T) {
	assert.True(t, (&BabysitterRequest{Status: StatusPending}).CanCancel())
	assert.True(t, (&BabysitterRequest{Status: StatusAccepted}).CanCancel())
	assert.False(t, (&BabysitterRequest{Status: StatusCompleted}).CanCancel())
	assert.False(t, (&BabysitterRequest{Status: StatusRejected}).CanCancel())
	assert.False(t, (&BabysitterRequest{Status: StatusCancelled}).CanCancel())
}

func TestCompleteOnlyFromAccepted(t *testing.T) {
	assert.False(t, (&BabysitterRequest{Status: StatusPending}).CanComplete())
	assert.True(t, (&BabysitterRequest{Status: StatusAccepted}).CanComplete())
}

func TestCalculateTotalCost(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	booking := BabysitterRequest{
		StartDate:  start,
		EndDate:    start.Add(4 * time.Hour),
		HourlyRate: 25.00,
	}
	cost := booking.CalculateTotalCost()
	assert.Equal(t, 100.00, cost)
	require.NotNil(t, booking.TotalCost)
	assert.Equal(t, 100.00, *booking.TotalCost)
}

func TestCalculateTotalCostFractionalHoursUnrounded(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	booking := BabysitterRequest{
		StartDate:  start,
		EndDate:    start.Add(90 * time.Minute),
		HourlyRate: 21.00,
	}
	cost := booking.CalculateTotalCost()
	assert.InDelta(t, 31.50, cost, 1e-9)

	booking = BabysitterRequest{
		StartDate:  start,
		EndDate:    start.Add(10 * time.Minute),
		HourlyRate: 30.00,
	}
	cost = booking.CalculateTotalCost()
	assert.InDelta(t, 5.0, cost, 1e-9)
}

func TestDurationHours(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	booking := BabysitterRequest{StartDate: start, EndDate: start.Add(150 * time.Minute)}
	assert.InDelta(t, 2.5, booking.DurationHours(), 1e-9)
}

func TestValidateWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	valid := BabysitterRequest{StartDate: start, EndDate: start.Add(time.Hour)}
	assert.NoError(t, valid.ValidateWindow())

	equal := BabysitterRequest{StartDate: start, EndDate: start}
	assert.ErrorIs(t, equal.ValidateWindow(), ErrStartAfterEnd)

	inverted := BabysitterRequest{StartDate: start.Add(time.Hour), EndDate: start}
	assert.ErrorIs(t, inverted.ValidateWindow(), ErrStartAfterEnd)
}

func TestRequestStatusValidity(t *testing.T) {
	for _, s := range []RequestStatus{StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, RequestStatus("IN_PROGRESS").IsValid())
	assert.False(t, RequestStatus("").IsValid())
}
