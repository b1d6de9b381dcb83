package booking

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/outreachly/demo-booking-sync/internal/db/models"
	"github.com/outreachly/demo-booking-sync/internal/richerrors"
	"github.com/outreachly/demo-booking-sync/internal/services/demorepo"
)

// Repository is the store surface the demo-request handlers need.
type Repository interface {
	CreateDemoRequest(ctx context.Context, req demorepo.CreateDemoRequestRequest) (*models.DemoRequest, error)
	GetDemoRequestByID(ctx context.Context, id string) (*models.DemoRequest, error)
	TransitionStatus(ctx context.Context, id string, newStatus string) (int64, error)
}

// DemoRequestController serves the public submission flow and the
// administrative status edits.
type DemoRequestController struct {
	repo Repository
}

// NewDemoRequestController creates a new DemoRequestController.
func NewDemoRequestController(repo Repository) *DemoRequestController {
	return &DemoRequestController{repo: repo}
}

// CreateDemoRequest handles POST /v1/demo-requests. Every record enters the
// lifecycle here as pending; the webhook only ever updates existing rows.
func (d *DemoRequestController) CreateDemoRequest(c *fiber.Ctx) error {
	var payload CreateDemoRequestRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	record, err := d.repo.CreateDemoRequest(c.Context(), demorepo.CreateDemoRequestRequest{
		Email:   payload.Email,
		Name:    payload.Name,
		Company: payload.Company,
	})
	if err != nil {
		return fmt.Errorf("failed to create demo request: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(demoRequestView(record))
}

// GetDemoRequest handles GET /v1/admin/demo-requests/:requestId.
func (d *DemoRequestController) GetDemoRequest(c *fiber.Ctx) error {
	record, err := d.repo.GetDemoRequestByID(c.Context(), c.Params("requestId"))
	if err != nil {
		return fmt.Errorf("failed to retrieve demo request: %w", err)
	}
	return c.JSON(demoRequestView(record))
}

// UpdateDemoRequestStatus handles PATCH /v1/admin/demo-requests/:requestId/status,
// the manual edges of the state machine. The transition itself is one
// conditional update; the follow-up read only decides the error body when
// nothing matched.
func (d *DemoRequestController) UpdateDemoRequestStatus(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	var payload UpdateStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	affected, err := d.repo.TransitionStatus(c.Context(), requestID, payload.Status)
	if err != nil {
		return fmt.Errorf("failed to update demo request status: %w", err)
	}
	if affected == 0 {
		record, err := d.repo.GetDemoRequestByID(c.Context(), requestID)
		if err != nil {
			return fmt.Errorf("failed to retrieve demo request after rejected transition: %w", err)
		}
		return richerrors.Error{
			ExternalMsg: fmt.Sprintf("Demo request is %s and cannot transition to %s", record.Status, payload.Status),
			Err:         demorepo.TransitionError,
			Code:        fiber.StatusConflict,
		}
	}

	return c.Status(fiber.StatusOK).JSON(GenericResponse{Message: "Demo request status updated"})
}

func demoRequestView(record *models.DemoRequest) DemoRequestView {
	return DemoRequestView{
		ID:          record.ID,
		Email:       record.Email,
		Name:        record.Name,
		Company:     record.Company,
		Status:      record.Status,
		BookedTime:  record.BookedTime,
		MeetingLink: record.MeetingLink,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
