package booking

import (
	"time"
)

// SignatureHeader carries the provider's signed timestamp and HMAC.
const SignatureHeader = "X-Webhook-Signature"

// AdminTokenHeader carries the shared token for the administrative endpoints.
const AdminTokenHeader = "X-Admin-Token"

// WebhookAckResponse acknowledges a verified, decoded webhook delivery.
type WebhookAckResponse struct {
	// Message provides a brief status message for the operation.
	Message string `json:"message"`
	// Affected is the number of demo request records the event changed.
	// Zero is normal for redeliveries and for emails with no pending request.
	Affected int64 `json:"affected"`
}

// CreateDemoRequestRequest is the public demo-request submission payload.
type CreateDemoRequestRequest struct {
	// Email is the prospect's address; it becomes the webhook matching key.
	Email string `json:"email" validate:"required"`
	// Name is the prospect's name.
	Name string `json:"name"`
	// Company is the prospect's company, if provided.
	Company string `json:"company"`
}

// UpdateStatusRequest is the administrative status-edit payload.
type UpdateStatusRequest struct {
	// Status is the target status; only "cancelled" and "completed" may be
	// set manually.
	Status string `json:"status" validate:"required"`
}

// GenericResponse is a simple standard response wrapper with a human-readable message.
type GenericResponse struct {
	// Message provides a brief status message for the operation.
	Message string `json:"message"`
}

// DemoRequestView represents a demo request as returned by the API.
type DemoRequestView struct {
	// ID is the unique identifier of the demo request.
	ID string `json:"id"`
	// Email is the normalized address the request was submitted with.
	Email string `json:"email"`
	// Name is the prospect's name.
	Name string `json:"name,omitempty"`
	// Company is the prospect's company.
	Company string `json:"company,omitempty"`
	// Status is the current booking status.
	Status string `json:"status"`
	// BookedTime is the scheduled meeting start, present only while booked.
	BookedTime *time.Time `json:"bookedTime,omitempty"`
	// MeetingLink identifies the scheduled meeting, present only while booked.
	MeetingLink *string `json:"meetingLink,omitempty"`
	// CreatedAt is when the request was submitted.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the request was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
