package reading

import (
	"reading-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// maxWindowDays caps the heatmap window accepted from clients.
const maxWindowDays = 3660

// Handler handles HTTP requests for reading data.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reading routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandlePage)

	group := app.Group("/api/reading")
	group.Get("/stats", h.HandleGetStats)
	group.Get("/heatmap", h.HandleGetHeatmap)
	group.Get("/record", h.HandleGetRecord)
}

// HandlePage serves the rendered reading page.
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := h.service.Page()
	if err != nil {
		l.Error("Page rendering failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render page")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}

// HandleGetStats returns the reading statistics.
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	st, err := h.service.Stats()
	if err != nil {
		l.Error("Stats computation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(st)
}

// HandleGetHeatmap returns the heatmap weeks. The optional window query
// parameter sets the number of trailing days.
func (h *Handler) HandleGetHeatmap(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	window := c.QueryInt("window", 0)
	if window < 0 || window > maxWindowDays {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "window must be between 1 and 3660 days",
		})
	}

	hm, err := h.service.Heatmap(window)
	if err != nil {
		l.Error("Heatmap computation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(hm)
}

// HandleGetRecord returns the saved record as stored.
func (h *Handler) HandleGetRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rec, err := h.service.Record()
	if err != nil {
		l.Error("Record load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(rec)
}
