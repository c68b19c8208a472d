package httpserver

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/handlers"
	authmw "github.com/aminebt/khadamat/internal/middleware/auth"
)

type Deps struct {
	Gate           *authmw.Gate
	AuthHandler    *handlers.AuthHandler
	CatalogHandler *handlers.CatalogHandler
	RequestHandler *handlers.RequestHandler
	AdminHandler   *handlers.AdminHandler
	PublicDir      string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/register", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)
	api.POST("/logout", d.AuthHandler.LogOut)

	api.GET("/services", d.CatalogHandler.GetServices)
	api.GET("/alerts", d.CatalogHandler.GetAlerts)

	api.POST("/request", d.RequestHandler.Submit, d.Gate.RequireLogin)

	admin := api.Group("/admin", d.Gate.AdminOnly)
	admin.GET("/requests", d.RequestHandler.AdminList)
	admin.POST("/services/add", d.AdminHandler.AddService)
	admin.POST("/services/delete", d.AdminHandler.DeleteService)
	admin.POST("/alert", d.AdminHandler.SetAlert)

	// Page routes gate on the same session predicate as the APIs but
	// redirect instead of erroring.
	e.GET("/", d.page("index.html"))
	e.GET("/register.html", d.page("register.html"))
	e.GET("/services.html", d.page("services.html"), d.Gate.RequireLoginPage("/register.html"))
	e.GET("/admin-panel.html", d.page("admin-panel.html"), d.Gate.AdminOnlyPage("/"))
}

func (d *Deps) page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.File(filepath.Join(d.PublicDir, name))
	}
}
