package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/logging"
	"github.com/aminebt/khadamat/internal/models"
	"github.com/aminebt/khadamat/internal/repo"
)

type AdminHandler struct {
	App repo.App
}

func (h *AdminHandler) AddService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_add_service")

	var req struct {
		Name        string `json:"name"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	service := models.Service{Name: req.Name, Icon: req.Icon, Description: req.Description}
	if err := h.App.AddService(ctx, service); err != nil {
		l.Error("add_service_error", "error", err)
		return storageFail(c, err)
	}

	l.Info("service_added", "name", req.Name)
	return ok(c)
}

// DeleteService removes every service with the exact name, so duplicate
// names go away in one call.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_delete_service")

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	if err := h.App.DeleteService(ctx, req.Name); err != nil {
		l.Error("delete_service_error", "error", err)
		return storageFail(c, err)
	}

	l.Info("service_deleted", "name", req.Name)
	return ok(c)
}

// SetAlert replaces whatever alert is currently shown.
func (h *AdminHandler) SetAlert(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_set_alert")

	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Message == "" {
		return fail(c, http.StatusBadRequest, "message is required")
	}

	if err := h.App.SetAlert(ctx, models.Alert{Message: req.Message}); err != nil {
		l.Error("set_alert_error", "error", err)
		return storageFail(c, err)
	}

	l.Info("alert_set")
	return ok(c)
}
