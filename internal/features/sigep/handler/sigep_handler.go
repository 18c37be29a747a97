package handler

import (
	"errors"
	"strconv"

	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/soap"
	"sigep-gateway/internal/core/validation"
	"sigep-gateway/internal/features/sigep/document"
	"sigep-gateway/internal/features/sigep/domain"
	"sigep-gateway/internal/features/sigep/ports"
	"sigep-gateway/internal/features/sigep/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SigepHandler handles HTTP requests for the SIGEP contract operations.
type SigepHandler struct {
	labels  ports.LabelService
	batches ports.BatchService
}

// NewSigepHandler creates a new SigepHandler.
func NewSigepHandler(labels ports.LabelService, batches ports.BatchService) *SigepHandler {
	return &SigepHandler{
		labels:  labels,
		batches: batches,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AvailabilityResponse is the answer of GET /services/{code}/availability.
type AvailabilityResponse struct {
	ServiceCode string `json:"service_code"`
	Zip         string `json:"zip"`
	Available   bool   `json:"available"`
}

// LabelRequest is the body of POST /labels.
type LabelRequest struct {
	ServiceCode string `json:"service_code" validate:"required,numeric"`
	// Quantity defaults to one.
	Quantity int `json:"quantity" validate:"gte=0"`
}

// LabelResponse lists the finished tracking codes.
type LabelResponse struct {
	Codes []string `json:"codes"`
}

// CreateBatchRequest is the body of POST /plps.
type CreateBatchRequest struct {
	// InternalNumber is the caller PLP number; zero takes the next sequence value.
	InternalNumber int64                 `json:"internal_number" validate:"gte=0"`
	Items          []domain.ShipmentItem `json:"items" validate:"required,min=1,dive"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func (h *SigepHandler) fail(c *fiber.Ctx, err error, msg string) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	var fault *soap.Fault
	var invalid *validation.Error
	switch {
	case errors.As(err, &invalid), errors.Is(err, service.ErrEmptyBatch):
		status = fiber.StatusBadRequest
	case errors.Is(err, document.ErrInvalidDocument):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrBatchNotFound):
		status = fiber.StatusNotFound
	case errors.As(err, &fault):
		status = fiber.StatusBadGateway
		message = fault.String
	}

	if status >= fiber.StatusInternalServerError {
		logger.Get().Error(msg,
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

// ListServices godoc
// @Summary List contract services
// @Description Returns the services enabled for the configured postage card (buscaServicos)
// @Tags sigep
// @Produce json
// @Success 200 {array} domain.Service
// @Failure 502 {object} ErrorResponse
// @Router /services [get]
func (h *SigepHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.labels.ListServices(c.UserContext())
	if err != nil {
		return h.fail(c, err, "Failed to list services")
	}
	return c.JSON(services)
}

// CheckAvailability godoc
// @Summary Check service availability
// @Description Reports whether a service delivers from the origin zip to the destination zip
// @Tags sigep
// @Produce json
// @Param code path string true "Service code"
// @Param zip query string true "Destination zip code"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /services/{code}/availability [get]
func (h *SigepHandler) CheckAvailability(c *fiber.Ctx) error {
	code := c.Params("code")
	zip := c.Query("zip")
	if zip == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "zip query parameter is required",
			RayID:   rayID(c),
		})
	}

	return c.JSON(AvailabilityResponse{
		ServiceCode: code,
		Zip:         domain.NormalizeZipCode(zip),
		Available:   h.labels.CheckAvailability(c.UserContext(), code, zip),
	})
}

// GetClient godoc
// @Summary Get client data
// @Description Returns the contract descriptor (buscaCliente)
// @Tags sigep
// @Produce json
// @Success 200 {object} domain.ClientData
// @Failure 502 {object} ErrorResponse
// @Router /client [get]
func (h *SigepHandler) GetClient(c *fiber.Ctx) error {
	data, err := h.labels.ClientData(c.UserContext())
	if err != nil {
		return h.fail(c, err, "Failed to fetch client data")
	}
	return c.JSON(data)
}

// IssueLabels godoc
// @Summary Issue tracking codes
// @Description Reserves tracking codes and fills in their check digits
// @Tags sigep
// @Accept json
// @Produce json
// @Param request body LabelRequest true "Service and quantity"
// @Success 201 {object} LabelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /labels [post]
func (h *SigepHandler) IssueLabels(c *fiber.Ctx) error {
	var req LabelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}
	if err := validation.Struct(req); err != nil {
		return h.fail(c, err, "Invalid label request")
	}

	codes, err := h.labels.IssueTrackingCodes(c.UserContext(), req.ServiceCode, req.Quantity)
	if err != nil {
		return h.fail(c, err, "Failed to issue tracking codes")
	}
	return c.Status(fiber.StatusCreated).JSON(LabelResponse{Codes: codes})
}

// CreateBatch godoc
// @Summary Close a PLP
// @Description Renders the items into one PLP document, validates it and closes it with the carrier
// @Tags sigep
// @Accept json
// @Produce json
// @Param request body CreateBatchRequest true "PLP items"
// @Success 201 {object} domain.Batch
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /plps [post]
func (h *SigepHandler) CreateBatch(c *fiber.Ctx) error {
	var req CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}
	if err := validation.Struct(req); err != nil {
		return h.fail(c, err, "Invalid PLP request")
	}

	batch, err := h.batches.CreateBatch(c.UserContext(), req.InternalNumber, req.Items)
	if err != nil {
		return h.fail(c, err, "Failed to close PLP")
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// GetBatchDocument godoc
// @Summary Get PLP document
// @Description Returns the carrier copy of a closed PLP (solicitaPLP)
// @Tags sigep
// @Produce xml
// @Param id path int true "Remote PLP id"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /plps/{id}/xml [get]
func (h *SigepHandler) GetBatchDocument(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid plp id",
			RayID:   rayID(c),
		})
	}

	xml, err := h.batches.BatchDocument(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "Failed to fetch PLP document")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextXMLCharsetUTF8)
	return c.SendString(xml)
}
