package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/logging"
	authmw "github.com/aminebt/khadamat/internal/middleware/auth"
	"github.com/aminebt/khadamat/internal/models"
	"github.com/aminebt/khadamat/internal/notify"
	"github.com/aminebt/khadamat/internal/repo"
)

type RequestHandler struct {
	App      repo.App
	Notifier notify.Notifier
}

// Submit appends a request owned by the session user. The notification
// is fire-and-forget: a delivery failure never fails the submission.
func (h *RequestHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "request_submit")

	var req struct {
		Service  string `json:"service"`
		Link     string `json:"link"`
		Quantity int    `json:"quantity"`
		Notes    string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Service == "" || req.Link == "" || req.Quantity == 0 {
		return fail(c, http.StatusBadRequest, "service, link and quantity are required")
	}

	request := models.Request{
		Username: authmw.Username(c),
		Service:  req.Service,
		Link:     req.Link,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	}
	stored, err := h.App.AddRequest(ctx, request)
	if err != nil {
		l.Error("request_error", "error", err)
		return storageFail(c, err)
	}

	if err := h.Notifier.RequestReceived(ctx, stored); err != nil {
		l.Warn("notify_failed", "request_id", stored.ID, "error", err)
	}

	l.Info("request_submitted", "request_id", stored.ID, "username", stored.Username)
	return ok(c)
}

func (h *RequestHandler) AdminList(c echo.Context) error {
	requests, err := h.App.Requests(c.Request().Context())
	if err != nil {
		return storageFail(c, err)
	}
	return c.JSON(http.StatusOK, requests)
}
