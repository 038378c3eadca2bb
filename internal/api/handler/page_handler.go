package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homestay/booking-gate/internal/api/middleware"
	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// PageHandler renders a JSON stub for each navigable page. The Guard
// middleware resolves the route and applies its policy before Show runs.
type PageHandler struct {
	routes  ports.RouteResolver
	session ports.SessionReader
}

func NewPageHandler(routes ports.RouteResolver, session ports.SessionReader) *PageHandler {
	return &PageHandler{routes: routes, session: session}
}

// Show renders the page of the route resolved for the request path.
func (h *PageHandler) Show(c echo.Context) error {
	route, ok := c.Get(middleware.RouteKey).(domain.Route)
	if !ok {
		route = h.routes.Resolve(c.Request().URL.Path)
	}

	status := http.StatusOK
	if route.Pattern == domain.CatchAllPattern {
		status = http.StatusNotFound
	}

	resp := pageResponse{
		Route:   route.Name,
		Pattern: route.Pattern,
		Policy:  route.Policy.String(),
		Path:    c.Request().URL.Path,
	}
	if user, ok := h.session.CurrentUser(); ok {
		resp.User = &user
	}
	return c.JSON(status, resp)
}
