// Package bookingevents decodes verified webhook bodies from the
// scheduling provider into a closed set of typed events. Event kinds the
// service does not support decode to Unrecognized so the caller can
// acknowledge them without failing.
package bookingevents

import (
	"encoding/json"
	"fmt"
	"time"
)

// Discriminator values the provider sends in the envelope's event field.
const (
	EventBookingCreated  = "BookingCreated"
	EventBookingCanceled = "BookingCanceled"
)

// ErrMalformedPayload means the body was not a valid event: bad JSON, a
// missing required field, or an unparsable timestamp. It is distinct from
// an unrecognized event kind, which is not an error.
var ErrMalformedPayload = malformedError("malformed event payload")

type malformedError string

func (e malformedError) Error() string { return string(e) }

// Event is one decoded provider event. The set is closed: BookingCreated,
// BookingCanceled, or Unrecognized.
type Event interface {
	isEvent()
}

// BookingCreated means the provider scheduled a meeting for a prospect.
type BookingCreated struct {
	Email            string
	MeetingStartTime time.Time
	MeetingURI       string
}

func (BookingCreated) isEvent() {}

// BookingCanceled means the provider canceled a previously scheduled
// meeting identified by MeetingURI.
type BookingCanceled struct {
	Email      string
	MeetingURI string
}

func (BookingCanceled) isEvent() {}

// Unrecognized is an event kind this service does not support. It is
// acknowledged and dropped, never treated as a failure.
type Unrecognized struct {
	Event string
}

func (Unrecognized) isEvent() {}

type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type bookingPayload struct {
	Email            string `json:"email"`
	MeetingStartTime string `json:"meetingStartTime"`
	MeetingURI       string `json:"meetingUri"`
}

// Decode parses a verified raw webhook body into an Event.
func Decode(rawBody []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}
	if env.Event == "" {
		return nil, fmt.Errorf("%w: missing event discriminator", ErrMalformedPayload)
	}

	switch env.Event {
	case EventBookingCreated:
		payload, err := decodeBookingPayload(env.Payload)
		if err != nil {
			return nil, err
		}
		if payload.MeetingStartTime == "" {
			return nil, fmt.Errorf("%w: meetingStartTime is required", ErrMalformedPayload)
		}
		start, err := time.Parse(time.RFC3339, payload.MeetingStartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: meetingStartTime %q is not a valid timestamp", ErrMalformedPayload, payload.MeetingStartTime)
		}
		return BookingCreated{
			Email:            payload.Email,
			MeetingStartTime: start,
			MeetingURI:       payload.MeetingURI,
		}, nil
	case EventBookingCanceled:
		payload, err := decodeBookingPayload(env.Payload)
		if err != nil {
			return nil, err
		}
		return BookingCanceled{
			Email:      payload.Email,
			MeetingURI: payload.MeetingURI,
		}, nil
	default:
		return Unrecognized{Event: env.Event}, nil
	}
}

// decodeBookingPayload parses the shared payload fields and enforces the
// required email and meetingUri. meetingStartTime is validated by the
// caller since only BookingCreated carries it.
func decodeBookingPayload(raw json.RawMessage) (bookingPayload, error) {
	if len(raw) == 0 {
		return bookingPayload{}, fmt.Errorf("%w: missing payload", ErrMalformedPayload)
	}
	var payload bookingPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return bookingPayload{}, fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}
	if payload.Email == "" {
		return bookingPayload{}, fmt.Errorf("%w: email is required", ErrMalformedPayload)
	}
	if payload.MeetingURI == "" {
		return bookingPayload{}, fmt.Errorf("%w: meetingUri is required", ErrMalformedPayload)
	}
	return payload, nil
}
