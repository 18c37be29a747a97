package handler

import (
	"errors"
	"strconv"

	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/soap"
	"sigep-gateway/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// GetTracking godoc
// @Summary Get tracking events for a shipment
// @Description Retrieves the event history of a tracking code. Unknown codes return found=false.
// @Tags tracking
// @Accept json
// @Produce json
// @Param code path string true "Tracking code"
// @Param last query bool false "Return only the most recent event"
// @Param courier query string false "Courier name (default correios)"
// @Success 200 {object} domain.TrackingResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/{code} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking code is required",
			RayID:   rayID(c),
		})
	}

	lastEventOnly := false
	if raw := c.Query("last"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "last must be a boolean",
				RayID:   rayID(c),
			})
		}
		lastEventOnly = v
	}

	result, err := h.trackingService.Lookup(c.UserContext(), code, c.Query("courier"), lastEventOnly)
	if err != nil {
		if errors.Is(err, service.ErrCourierNotSupported) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "courier not supported",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to look up tracking code",
			zap.String("tracking_code", code),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)

		status := fiber.StatusInternalServerError
		var fault *soap.Fault
		if errors.As(err, &fault) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(result)
}
