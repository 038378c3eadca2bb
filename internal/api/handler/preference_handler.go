package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

const (
	// ClientCookie identifies a browser across requests for preferences.
	ClientCookie    = "hs_client"
	clientCookieTTL = 365 * 24 * time.Hour
)

type PreferenceHandler struct {
	preferences ports.PreferenceService
}

func NewPreferenceHandler(preferences ports.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

// Theme returns the client's theme, light unless dark was chosen.
//
// @Summary      Get theme
// @Tags         preferences
// @Produce      json
// @Success      200   {object}  themeResponse
// @Router       /preferences/theme [get]
func (h *PreferenceHandler) Theme(c echo.Context) error {
	theme, err := h.preferences.Theme(c.Request().Context(), clientID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: string(theme)})
}

// SetTheme stores the client's theme.
//
// @Summary      Set theme
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body      themeRequest  true  "Theme"
// @Success      200   {object}  themeResponse
// @Failure      422   {object}  map[string]string
// @Router       /preferences/theme [put]
func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	theme, err := domain.ParseTheme(req.Theme)
	if err != nil {
		return err
	}
	if err := h.preferences.SetTheme(c.Request().Context(), clientID(c), theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: string(theme)})
}

// ToggleTheme flips between light and dark.
//
// @Summary      Toggle theme
// @Tags         preferences
// @Produce      json
// @Success      200   {object}  themeResponse
// @Router       /preferences/theme/toggle [post]
func (h *PreferenceHandler) ToggleTheme(c echo.Context) error {
	theme, err := h.preferences.ToggleTheme(c.Request().Context(), clientID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: string(theme)})
}

// clientID reads the client cookie, issuing a fresh one when it is missing
// or malformed.
func clientID(c echo.Context) string {
	if cookie, err := c.Cookie(ClientCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     ClientCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(clientCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
