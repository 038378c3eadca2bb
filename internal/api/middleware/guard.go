package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homestay/booking-gate/internal/api/metrics"
	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

// RouteKey is the context key under which Guard stores the resolved route.
const RouteKey = "route"

// Guard resolves the request path against routes and gates it behind the
// policy of the first matching route. Allowed requests reach next with the
// route in the context; everything else is answered with a 302 to the path
// the guard picked.
func Guard(routes ports.RouteResolver, guard ports.RouteGuard, session ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routes.Resolve(c.Request().URL.Path)
			decision := Decide(guard, route.Policy, session)
			if !decision.Allowed() {
				return c.Redirect(http.StatusFound, decision.Path)
			}
			c.Set(RouteKey, route)
			return next(c)
		}
	}
}

// Decide evaluates policy against the session and counts the outcome.
func Decide(guard ports.RouteGuard, policy domain.Policy, session ports.SessionReader) domain.Decision {
	decision := guard.Evaluate(policy, session)
	metrics.GuardDecisionsTotal.WithLabelValues(policy.String(), string(decision.Kind)).Inc()
	return decision
}
