package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homestay/booking-gate/internal/api/middleware"
	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// headerLinks are the site-wide navigation entries shown to everyone.
var headerLinks = []menuLink{
	{Label: "Homestay", Path: "/"},
	{Label: "Our Rooms", Path: "/rooms"},
	{Label: "About", Path: "/about"},
	{Label: "Blog", Path: "/blog"},
	{Label: "Testimonials", Path: "/testimonials"},
	{Label: "Contact", Path: "/contact"},
}

type NavigationHandler struct {
	routes  ports.RouteResolver
	guard   ports.RouteGuard
	session ports.SessionReader
}

func NewNavigationHandler(routes ports.RouteResolver, guard ports.RouteGuard, session ports.SessionReader) *NavigationHandler {
	return &NavigationHandler{routes: routes, guard: guard, session: session}
}

// Decision resolves a path to its route and reports what the guard would do.
//
// @Summary      Evaluate navigation
// @Tags         navigation
// @Produce      json
// @Param        path  query     string  true  "Target path, e.g. /admin"
// @Success      200   {object}  decisionResponse
// @Failure      422   {object}  map[string]string
// @Router       /navigation/decision [get]
func (h *NavigationHandler) Decision(c echo.Context) error {
	var req decisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	route := h.routes.Resolve(req.Path)
	decision := middleware.Decide(h.guard, route.Policy, h.session)

	resp := decisionResponse{
		Route:    route.Name,
		Pattern:  route.Pattern,
		Policy:   route.Policy.String(),
		Decision: string(decision.Kind),
	}
	if !decision.Allowed() {
		resp.RedirectTo = decision.Path
	}
	return c.JSON(http.StatusOK, resp)
}

// Menu lists the header links visible to the current session.
//
// @Summary      Header menu
// @Tags         navigation
// @Produce      json
// @Success      200   {object}  menuResponse
// @Router       /navigation/menu [get]
func (h *NavigationHandler) Menu(c echo.Context) error {
	return c.JSON(http.StatusOK, buildMenu(h.session))
}

func buildMenu(session ports.SessionReader) menuResponse {
	links := make([]menuLink, len(headerLinks))
	copy(links, headerLinks)

	user, ok := session.CurrentUser()
	if !ok {
		return menuResponse{
			Links:   links,
			Account: []menuLink{{Label: "Login", Path: domain.LoginPath}},
		}
	}

	account := []menuLink{{Label: "Dashboard", Path: "/dashboard"}}
	if user.IsAdmin() {
		account = append(account, menuLink{Label: "Admin", Path: "/admin"})
	}
	return menuResponse{
		Links:   links,
		Account: account,
		User:    &menuUser{Name: user.Name, Avatar: user.Avatar},
	}
}
