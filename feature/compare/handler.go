package compare

import (
	"errors"

	"translation-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Get("/health", h.HandleHealth)
	group.Post("/", h.HandleCompare)
}

// CompareRequest is the request body for a reconciliation run. File paths
// are resolved on the server's filesystem, in the order given.
type CompareRequest struct {
	ExportFiles          []string `json:"export_files"`
	OverrideFiles        []string `json:"override_files"`
	CaseSensitive        bool     `json:"case_sensitive"`
	IncludeEmpty         bool     `json:"include_empty"`
	RequireOverrideValue bool     `json:"require_override_value"`
}

// CompareResponse carries the reconciliation snapshot and derived counters.
type CompareResponse struct {
	RunID      string               `json:"run_id"`
	Statistics Statistics           `json:"statistics"`
	Mismatches map[string]*Mismatch `json:"mismatches"`
	Deletions  []string             `json:"deletions"`
}

// HandleHealth reports feature liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleCompare loads the requested files and runs one reconciliation pass.
// Locale precondition failures map to 422 with the full unmatched detail;
// unloadable input sets map to 400.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := h.service.LoadSession(req.ExportFiles, req.OverrideFiles)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	policy := Policy{
		CaseSensitive:        req.CaseSensitive,
		IncludeEmpty:         req.IncludeEmpty,
		RequireOverrideValue: req.RequireOverrideValue,
	}

	result, stats, err := h.service.Compare(session, policy)
	if err != nil {
		var localeErr *LocaleMismatchError
		if errors.As(err, &localeErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":             "locale mismatch",
				"unmatched_locales": localeErr.Unmatched,
				"source_locales":    localeErr.SourceLocales,
				"target_locales":    localeErr.TargetLocales,
			})
		}
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(CompareResponse{
		RunID:      result.RunID,
		Statistics: stats,
		Mismatches: result.Combined,
		Deletions:  result.Deletions,
	})
}
