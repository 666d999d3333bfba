package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// allowedTransitions maps each target status to the statuses it may be reached from.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusConfirmed: {BookingStatusPending},
	BookingStatusCancelled: {BookingStatusPending, BookingStatusConfirmed},
	BookingStatusCompleted: {BookingStatusConfirmed},
}

// CanTransition reports whether a booking may move from s to target.
func (s BookingStatus) CanTransition(target BookingStatus) bool {
	for _, from := range allowedTransitions[target] {
		if from == s {
			return true
		}
	}
	return false
}

// StatusHistoryEntry records one status change.
type StatusHistoryEntry struct {
	OldStatus BookingStatus
	NewStatus BookingStatus
	ChangedBy string
	Reason    string
	ChangedAt time.Time
}

// StatusTransition is the result of a successful transition.
type StatusTransition struct {
	NewStatus BookingStatus
	History   StatusHistoryEntry
	// ConfirmedAt is set only when the booking became confirmed.
	ConfirmedAt *time.Time
}

// TransitionBookingStatus moves a booking from current to target. The caller persists
// the returned status and history entry; nothing here has side effects.
func TransitionBookingStatus(current, target BookingStatus, changedBy, reason string, now time.Time) (*StatusTransition, error) {
	current, err := ParseBookingStatus(string(current))
	if err != nil {
		return nil, err
	}
	target, err = ParseBookingStatus(string(target))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(changedBy) == "" {
		return nil, ErrMissingActor
	}
	if !current.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current, target)
	}

	t := &StatusTransition{
		NewStatus: target,
		History: StatusHistoryEntry{
			OldStatus: current,
			NewStatus: target,
			ChangedBy: changedBy,
			Reason:    reason,
			ChangedAt: now,
		},
	}
	if target == BookingStatusConfirmed {
		confirmedAt := now
		t.ConfirmedAt = &confirmedAt
	}
	return t, nil
}

// Confirm moves a pending booking to confirmed.
func Confirm(current BookingStatus, changedBy string, now time.Time) (*StatusTransition, error) {
	return TransitionBookingStatus(current, BookingStatusConfirmed, changedBy, "", now)
}

// Cancel cancels a pending or confirmed booking.
func Cancel(current BookingStatus, changedBy, reason string, now time.Time) (*StatusTransition, error) {
	return TransitionBookingStatus(current, BookingStatusCancelled, changedBy, reason, now)
}

// Complete marks a confirmed booking as completed.
func Complete(current BookingStatus, changedBy string, now time.Time) (*StatusTransition, error) {
	return TransitionBookingStatus(current, BookingStatusCompleted, changedBy, "", now)
}
