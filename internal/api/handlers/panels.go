package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chynybekuuludastan/adstudio/internal/api/middleware"
	"github.com/chynybekuuludastan/adstudio/internal/models"
	"github.com/chynybekuuludastan/adstudio/internal/service/backend"
	"github.com/chynybekuuludastan/adstudio/internal/service/lifecycle"
	"github.com/chynybekuuludastan/adstudio/internal/session"
)

// PanelHandler exposes the session panels as JSON
type PanelHandler struct{}

// NewPanelHandler creates a new panel handler
func NewPanelHandler() *PanelHandler {
	return &PanelHandler{}
}

// GetPanel returns the current snapshot of a panel
// @Summary Get panel state
// @Description Get the request/response state of a panel of the current session
// @Tags panels
// @Produce json
// @Param panel path string true "Panel name" Enums(upload, ad-creatives)
// @Success 200 {object} api.SuccessResponse "Panel snapshot"
// @Failure 404 {object} api.ErrorResponse "Unknown panel"
// @Router /panels/{panel} [get]
func (h *PanelHandler) GetPanel(c *fiber.Ctx) error {
	w := middleware.Workspace(c)

	if c.Params("panel") == session.PanelUpload {
		return c.JSON(fiber.Map{"success": true, "data": w.Upload.Snapshot()})
	}
	return c.JSON(fiber.Map{"success": true, "data": w.AdCreatives.Snapshot()})
}

// SubmitPanel starts a request on a panel
// @Summary Submit a panel request
// @Description Start processing a YouTube URL (upload) or a local file path (ad-creatives)
// @Tags panels
// @Accept json
// @Produce json
// @Param panel path string true "Panel name" Enums(upload, ad-creatives)
// @Param request body api.PanelRequest true "Request payload"
// @Success 202 {object} api.SuccessResponse "Panel snapshot"
// @Failure 400 {object} api.ErrorResponse "Invalid request"
// @Failure 409 {object} api.ErrorResponse "A request is already in progress"
// @Router /panels/{panel} [post]
func (h *PanelHandler) SubmitPanel(c *fiber.Ctx) error {
	w := middleware.Workspace(c)

	if c.Params("panel") == session.PanelUpload {
		req := new(models.AnalysisRequest)
		if err := c.BodyParser(req); err != nil {
			return invalidBody(c, err)
		}
		if err := w.Upload.Submit(*req); err != nil {
			return panelError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"success": true, "data": w.Upload.Snapshot()})
	}

	req := new(models.LocalVideoRequest)
	if err := c.BodyParser(req); err != nil {
		return invalidBody(c, err)
	}
	if err := w.AdCreatives.Submit(*req); err != nil {
		return panelError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"success": true, "data": w.AdCreatives.Snapshot()})
}

// RetryPanel re-sends the last request of a panel in the error state
// @Summary Retry a panel request
// @Description Re-send the last payload of a panel that failed
// @Tags panels
// @Produce json
// @Param panel path string true "Panel name" Enums(upload, ad-creatives)
// @Success 202 {object} api.SuccessResponse "Panel snapshot"
// @Failure 409 {object} api.ErrorResponse "Nothing to retry"
// @Router /panels/{panel}/retry [post]
func (h *PanelHandler) RetryPanel(c *fiber.Ctx) error {
	w := middleware.Workspace(c)

	if c.Params("panel") == session.PanelUpload {
		if err := w.Upload.Retry(); err != nil {
			return panelError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"success": true, "data": w.Upload.Snapshot()})
	}

	if err := w.AdCreatives.Retry(); err != nil {
		return panelError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"success": true, "data": w.AdCreatives.Snapshot()})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid request body: " + err.Error(),
	})
}

// panelError maps a panel error to a status code
func panelError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case backend.KindOf(err) == backend.KindValidation:
		status = fiber.StatusBadRequest
	case errors.Is(err, lifecycle.ErrBusy), errors.Is(err, lifecycle.ErrNotRetryable):
		status = fiber.StatusConflict
	case errors.Is(err, lifecycle.ErrClosed):
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   backend.MessageOf(err),
	})
}
