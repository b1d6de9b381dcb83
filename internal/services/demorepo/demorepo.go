// Package demorepo is the persistence layer for demo request records. The
// webhook-facing operations are single conditional UPDATE statements: the
// matching predicate carries the idempotence, so concurrent redeliveries
// of the same event never read-then-write.
package demorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/outreachly/demo-booking-sync/internal/db/models"
	"github.com/outreachly/demo-booking-sync/internal/richerrors"
)

// manualTransitions lists the target statuses the administrative path may
// set, keyed to the statuses a record must currently hold. Transitions into
// booked stay exclusive to the webhook synchronizer.
var manualTransitions = map[string][]string{
	models.StatusCancelled: {models.StatusPending, models.StatusBooked},
	models.StatusCompleted: {models.StatusPending, models.StatusBooked},
}

type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// NormalizeEmail lower-cases and trims an address so it can serve as the
// webhook matching key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateDemoRequestRequest represents the data needed to create a new demo request.
type CreateDemoRequestRequest struct {
	Email   string
	Name    string
	Company string
}

func (req CreateDemoRequestRequest) Validate() error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w email is required", ValidationError)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w email is not a valid address", ValidationError)
	}
	return nil
}

// CreateDemoRequest creates a new pending demo request. This is the only
// path that creates records; the webhook synchronizer never does.
func (r *Repository) CreateDemoRequest(ctx context.Context, req CreateDemoRequestRequest) (*models.DemoRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, richerrors.Error{
			ExternalMsg: "Invalid request: " + err.Error(),
			Err:         err,
			Code:        http.StatusBadRequest,
		}
	}

	now := time.Now().UTC()
	record := &models.DemoRequest{
		ID:        uuid.New().String(),
		Email:     NormalizeEmail(req.Email),
		Name:      strings.TrimSpace(req.Name),
		Company:   strings.TrimSpace(req.Company),
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, richerrors.Error{
			ExternalMsg: "Error creating demo request",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return record, nil
}

// GetDemoRequestByID retrieves a single demo request.
func (r *Repository) GetDemoRequestByID(ctx context.Context, id string) (*models.DemoRequest, error) {
	if id == "" {
		return nil, richerrors.Error{
			ExternalMsg: "Demo request id is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}

	record := new(models.DemoRequest)
	err := r.db.NewSelect().Model(record).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, richerrors.Error{
				ExternalMsg: "Demo request not found",
				Err:         err,
				Code:        http.StatusNotFound,
			}
		}
		return nil, richerrors.Error{
			ExternalMsg: "Error getting demo request",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return record, nil
}

// BookPending marks every pending request for the email as booked in one
// atomic conditional update. Requests already booked, completed, or
// cancelled are untouched, which is what makes redelivery of the same
// event a no-op. Returns the number of rows affected; zero is not an error.
func (r *Repository) BookPending(ctx context.Context, email string, bookedTime time.Time, meetingLink string) (int64, error) {
	if email == "" {
		return 0, richerrors.Error{
			ExternalMsg: "Email is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}
	if meetingLink == "" {
		return 0, richerrors.Error{
			ExternalMsg: "Meeting link is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}
	if bookedTime.IsZero() {
		return 0, richerrors.Error{
			ExternalMsg: "Booked time is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}

	res, err := r.db.NewUpdate().
		Model((*models.DemoRequest)(nil)).
		Set("status = ?", models.StatusBooked).
		Set("booked_time = ?", bookedTime).
		Set("meeting_link = ?", meetingLink).
		Set("updated_at = ?", time.Now().UTC()).
		Where("email = ?", NormalizeEmail(email)).
		Where("status = ?", models.StatusPending).
		Exec(ctx)
	if err != nil {
		return 0, richerrors.Error{
			ExternalMsg: "Error applying booking",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return rowsAffected(res)
}

// CancelByMeetingLink cancels the request(s) whose meeting link matches the
// canceled meeting, clearing the booking fields. Matching on the link keeps
// an unrelated pending request for the same address untouched. Returns the
// number of rows affected; zero is not an error.
func (r *Repository) CancelByMeetingLink(ctx context.Context, email string, meetingLink string) (int64, error) {
	if email == "" {
		return 0, richerrors.Error{
			ExternalMsg: "Email is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}
	if meetingLink == "" {
		return 0, richerrors.Error{
			ExternalMsg: "Meeting link is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}

	res, err := r.db.NewUpdate().
		Model((*models.DemoRequest)(nil)).
		Set("status = ?", models.StatusCancelled).
		Set("booked_time = NULL").
		Set("meeting_link = NULL").
		Set("updated_at = ?", time.Now().UTC()).
		Where("email = ?", NormalizeEmail(email)).
		Where("meeting_link = ?", meetingLink).
		Exec(ctx)
	if err != nil {
		return 0, richerrors.Error{
			ExternalMsg: "Error applying cancellation",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return rowsAffected(res)
}

// TransitionStatus applies a manual status edit as a single conditional
// update. The WHERE clause carries the allowed source statuses, so a
// record that raced into another state affects zero rows instead of being
// overwritten.
func (r *Repository) TransitionStatus(ctx context.Context, id string, newStatus string) (int64, error) {
	if id == "" {
		return 0, richerrors.Error{
			ExternalMsg: "Demo request id is required",
			Err:         ValidationError,
			Code:        http.StatusBadRequest,
		}
	}
	allowedFrom, ok := manualTransitions[newStatus]
	if !ok {
		return 0, richerrors.Error{
			ExternalMsg: fmt.Sprintf("Status %q cannot be set manually", newStatus),
			Err:         TransitionError,
			Code:        http.StatusBadRequest,
		}
	}

	query := r.db.NewUpdate().
		Model((*models.DemoRequest)(nil)).
		Set("status = ?", newStatus).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("status IN (?)", bun.In(allowedFrom))
	if newStatus == models.StatusCancelled {
		// A cancelled request holds no booking fields.
		query = query.
			Set("booked_time = NULL").
			Set("meeting_link = NULL")
	}

	res, err := query.Exec(ctx)
	if err != nil {
		return 0, richerrors.Error{
			ExternalMsg: "Error updating demo request status",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (int64, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, richerrors.Error{
			ExternalMsg: "Error reading affected rows",
			Err:         err,
			Code:        http.StatusInternalServerError,
		}
	}
	return affected, nil
}
