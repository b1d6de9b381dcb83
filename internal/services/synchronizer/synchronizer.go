// Package synchronizer applies decoded booking events to the demo request
// store. Idempotence lives entirely in the store's conditional-update
// predicates, so the synchronizer issues exactly one write per event and
// never reads first.
package synchronizer

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachly/demo-booking-sync/internal/services/bookingevents"
	"github.com/outreachly/demo-booking-sync/internal/services/demorepo"
)

// Store is the persistence collaborator. Both operations must be single
// atomic conditional updates returning the affected row count.
type Store interface {
	BookPending(ctx context.Context, email string, bookedTime time.Time, meetingLink string) (int64, error)
	CancelByMeetingLink(ctx context.Context, email string, meetingLink string) (int64, error)
}

// Outcome says what applying an event did.
type Outcome string

const (
	// OutcomeBooked means a BookingCreated event was applied.
	OutcomeBooked Outcome = "booked"
	// OutcomeCancelled means a BookingCanceled event was applied.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeIgnored means the event kind is unsupported; no store call was made.
	OutcomeIgnored Outcome = "ignored"
)

// Result reports the outcome of applying one event. Affected of zero on an
// applied event is success: it means no record matched, typically because
// an earlier delivery of the same event already flipped the status.
type Result struct {
	Outcome  Outcome
	Affected int64
}

type Synchronizer struct {
	store Store
}

func New(store Store) *Synchronizer {
	return &Synchronizer{store: store}
}

// Apply merges one decoded event into the store.
func (s *Synchronizer) Apply(ctx context.Context, event bookingevents.Event) (Result, error) {
	switch e := event.(type) {
	case bookingevents.BookingCreated:
		affected, err := s.store.BookPending(ctx, demorepo.NormalizeEmail(e.Email), e.MeetingStartTime, e.MeetingURI)
		if err != nil {
			return Result{}, fmt.Errorf("failed to apply booking-created event: %w", err)
		}
		return Result{Outcome: OutcomeBooked, Affected: affected}, nil
	case bookingevents.BookingCanceled:
		affected, err := s.store.CancelByMeetingLink(ctx, demorepo.NormalizeEmail(e.Email), e.MeetingURI)
		if err != nil {
			return Result{}, fmt.Errorf("failed to apply booking-canceled event: %w", err)
		}
		return Result{Outcome: OutcomeCancelled, Affected: affected}, nil
	case bookingevents.Unrecognized:
		return Result{Outcome: OutcomeIgnored}, nil
	default:
		return Result{}, fmt.Errorf("unknown event type %T", event)
	}
}
