package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homestay/booking-gate/internal/api/metrics"
	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

type AuthHandler struct {
	session ports.SessionStore
}

func NewAuthHandler(session ports.SessionStore) *AuthHandler {
	return &AuthHandler{session: session}
}

// Login makes the identity behind the given email the active session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.session.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case err == nil:
		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return err
	default:
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: &user})
}

// Logout clears the active session. Logging out while anonymous succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout()
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Session reports who is logged in, if anyone.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, currentSession(h.session))
}

func currentSession(session ports.SessionReader) sessionResponse {
	user, ok := session.CurrentUser()
	if !ok {
		return sessionResponse{}
	}
	return sessionResponse{Authenticated: true, User: &user}
}
