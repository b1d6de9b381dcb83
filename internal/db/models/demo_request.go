// Package models holds the persistence models for the demo-booking-sync
// database.
package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Demo request booking statuses.
const (
	// StatusPending is a submitted demo request with no booked meeting yet.
	StatusPending = "pending"
	// StatusBooked is a demo request with a scheduled meeting.
	StatusBooked = "booked"
	// StatusCompleted is a demo that took place; set only by the admin path.
	StatusCompleted = "completed"
	// StatusCancelled is a demo request that will not be fulfilled.
	StatusCancelled = "cancelled"
)

// DemoRequest is one prospect's request for a product demo, tracked through
// the booking-status lifecycle. The webhook synchronizer only ever updates
// existing rows; creation happens through the submission flow.
type DemoRequest struct {
	bun.BaseModel `bun:"table:demo_requests,alias:dr"`

	// ID is assigned at creation and never derived from webhook input.
	ID string `bun:"id,pk"`
	// Email is the normalized business key used for webhook matching. It is
	// not unique at the schema level; one address may have several requests.
	Email string `bun:"email,notnull"`
	// Name is the prospect's name as submitted.
	Name    string `bun:"name"`
	Company string `bun:"company"`
	Status  string `bun:"status,notnull"`
	// BookedTime and MeetingLink are both set while booked and both unset
	// otherwise.
	BookedTime  *time.Time `bun:"booked_time"`
	MeetingLink *string    `bun:"meeting_link"`
	CreatedAt   time.Time  `bun:"created_at,notnull"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull"`
}
