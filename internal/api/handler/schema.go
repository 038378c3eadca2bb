package handler

import "github.com/homestay/booking-gate/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,max=254"`
	Password string `json:"password" validate:"max=128"`
}

// sessionResponse describes the active session. User is omitted while
// anonymous.
type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
}

type decisionRequest struct {
	Path string `query:"path" validate:"required,startswith=/"`
}

type decisionResponse struct {
	Route      string `json:"route"`
	Pattern    string `json:"pattern"`
	Policy     string `json:"policy"`
	Decision   string `json:"decision"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

type menuLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type menuUser struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type menuResponse struct {
	Links   []menuLink `json:"links"`
	Account []menuLink `json:"account"`
	User    *menuUser  `json:"user,omitempty"`
}

type pageResponse struct {
	Route   string           `json:"route"`
	Pattern string           `json:"pattern"`
	Policy  string           `json:"policy"`
	Path    string           `json:"path"`
	User    *domain.Identity `json:"user,omitempty"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}
