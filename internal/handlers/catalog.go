package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/repo"
)

type CatalogHandler struct {
	App repo.App
}

func (h *CatalogHandler) GetServices(c echo.Context) error {
	services, err := h.App.Services(c.Request().Context())
	if err != nil {
		return storageFail(c, err)
	}
	return c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetAlerts(c echo.Context) error {
	alerts, err := h.App.Alerts(c.Request().Context())
	if err != nil {
		return storageFail(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}
