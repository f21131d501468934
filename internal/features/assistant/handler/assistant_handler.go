package handler

import (
	"errors"
	"strings"

	"shipment-risk-assistant/internal/core/httpclient"
	"shipment-risk-assistant/internal/core/logger"
	"shipment-risk-assistant/internal/features/assistant/domain"
	"shipment-risk-assistant/internal/features/assistant/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssistantHandler handles HTTP requests for the shipment assistant.
type AssistantHandler struct {
	pipeline *service.Pipeline
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(pipeline *service.Pipeline) *AssistantHandler {
	return &AssistantHandler{
		pipeline: pipeline,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// HelpResponse is returned for messages that are not shipment questions.
type HelpResponse struct {
	Message string `json:"message"`
}

// Query godoc
// @Summary Ask a natural-language question about shipments
// @Description Classifies the message, retrieves matching shipments, predicts SLA breaches, and produces a risk summary
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body domain.QueryRequest true "User message"
// @Success 200 {object} domain.ShipmentAnswer
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /assistant/query [post]
func (h *AssistantHandler) Query(c *fiber.Ctx) error {
	var req domain.QueryRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Missing or invalid 'message' in request.",
			RayID:   rayID(c),
		})
	}

	answer, err := h.pipeline.Answer(c.Context(), req.Message)
	if err != nil {
		return h.renderError(c, err)
	}

	switch answer.Intent {
	case domain.IntentShipment:
		return c.JSON(answer.Shipment)
	case domain.IntentSla:
		return c.JSON(answer.Summary)
	default:
		return c.JSON(HelpResponse{Message: answer.Help})
	}
}

// renderError maps pipeline failures to stable client-facing messages; raw
// error text stays in the logs.
func (h *AssistantHandler) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoFilters):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "You must specify at least one filter.",
			RayID:   rayID(c),
		})
	case errors.Is(err, service.ErrFilterExtraction):
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Message: "Could not understand the filters in your request. Please rephrase.",
			RayID:   rayID(c),
		})
	case errors.Is(err, httpclient.ErrTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(ErrorResponse{
			Message: "An upstream service timed out. Please try again.",
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Assistant request failed", zap.Error(err), zap.String("ray_id", rayID(c)))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "An unexpected error occurred.",
			RayID:   rayID(c),
		})
	}
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
