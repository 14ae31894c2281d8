package orders

import (
	"errors"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/logger"
	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/core/trendyol"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the order sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/sync", h.HandleTriggerSync)
	app.Post("/sync", h.HandleTriggerSync)
	app.Get("/sync/status", h.HandleSyncStatus)
	app.Get("/sync/runs", h.HandleSyncRuns)
	app.Post("/orders", h.HandleOrderWebhook)
}

// RegisterDiagnostics registers the public connectivity check. Kept separate
// from RegisterRoutes so it can sit in front of the trigger auth.
func (h *Handler) RegisterDiagnostics(app fiber.Router) {
	app.Get("/health/connections", h.HandleConnectivity)
}

// HandleConnectivity checks the upstream dependencies.
// @Summary Connection Test
// @Description Calls the marketplace feed and each destination table with real credentials and reports the per-upstream HTTP status. Answers 503 when any upstream is unreachable or rejects the credentials.
// @Tags health
// @Produce json
// @Success 200 {object} orders.ConnectivityReport "All Upstreams Reachable"
// @Failure 503 {object} orders.ConnectivityReport "Upstream Failure"
// @Router /health/connections [get]
func (h *Handler) HandleConnectivity(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckConnections(c.Context())
	if !report.Healthy {
		for _, conn := range report.Connections {
			if !conn.OK {
				l.Warn("Upstream connection check failed",
					zap.String("target", conn.Target),
					zap.Int("status_code", conn.StatusCode),
					zap.String("error", conn.Error))
			}
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleTriggerSync triggers a reconciliation pass.
// @Summary Trigger Sync
// @Description Starts a reconciliation pass. Fire-and-forget by default; pass ?wait=true to block until the pass finishes and receive its report. A pass already in flight is reported, not duplicated.
// @Tags sync
// @Accept json
// @Produce json
// @Param wait query bool false "Block until the pass completes"
// @Success 200 {object} orders.Report "Pass Report (wait=true)"
// @Success 202 {object} map[string]string "Sync Started"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /sync [post]
func (h *Handler) HandleTriggerSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.QueryBool("wait") {
		report, err := h.service.TryRunPass(c.Context())
		if errors.Is(err, ErrSyncInProgress) {
			return c.JSON(fiber.Map{"status": "already running"})
		}
		if err != nil {
			l.Error("Sync pass failed", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(report)
	}

	if err := h.service.TryRunAsync(); err != nil {
		return c.JSON(fiber.Map{"status": "already running"})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "sync started"})
}

// HandleSyncStatus reports whether a pass is currently running.
// @Summary Sync Status
// @Description Reports whether a reconciliation pass is currently in flight.
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]bool "Status"
// @Router /sync/status [get]
func (h *Handler) HandleSyncStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"running": h.service.Busy()})
}

// HandleSyncRuns returns the recent run history.
// @Summary Sync Run History
// @Description Lists the most recent reconciliation passes, newest first. Requires the run-history database.
// @Tags sync
// @Produce json
// @Param limit query int false "Maximum runs to return (default 20)"
// @Success 200 {array} orders.SyncRun "Runs"
// @Failure 404 {object} map[string]string "Run History Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/runs [get]
func (h *Handler) HandleSyncRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.Runs().Recent(c.QueryInt("limit"))
	if errors.Is(err, ErrRunHistoryDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "run history is not configured",
		})
	}
	if err != nil {
		l.Error("Run history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(runs)
}

// HandleOrderWebhook syncs a single pushed order.
// @Summary Order Webhook
// @Description Accepts a single order push and mirrors it into the destination store. Idempotent: an order that already exists answers 200 without creating anything.
// @Tags sync
// @Accept json
// @Produce json
// @Param order body trendyol.Order true "Order"
// @Success 200 {object} map[string]string "Already Exists"
// @Success 201 {object} map[string]string "Created"
// @Failure 422 {object} map[string]string "Invalid Order"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [post]
func (h *Handler) HandleOrderWebhook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var order trendyol.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "invalid order payload",
		})
	}

	created, err := h.service.ProcessSingle(c.Context(), &order)
	if errors.Is(err, ErrInvalidOrder) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Webhook order sync failed", zap.Int64("order_id", order.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !created {
		return c.JSON(fiber.Map{"status": "already exists"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created"})
}
