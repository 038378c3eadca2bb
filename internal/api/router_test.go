package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/service"
	"github.com/homestay/booking-gate/internal/infrastructure/db/memory"
	"github.com/homestay/booking-gate/internal/infrastructure/routefile"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	return newTestRouterWith(t, service.DefaultRoutes())
}

func newTestRouterWith(t *testing.T, routes []domain.Route) *echo.Echo {
	t.Helper()
	table, err := service.NewRouteTable(routes)
	if err != nil {
		t.Fatalf("route table: %v", err)
	}
	log := zerolog.Nop()
	return NewRouter(Dependencies{
		Session:     service.NewSessionStore(memory.NewIdentityDirectory(memory.KnownIdentities()), nil, log),
		Routes:      table,
		Guard:       service.NewRouteGuard(),
		Preferences: service.NewPreferenceService(memory.NewPreferenceStore(), log),
		Log:         log,
		Registerer:  prometheus.NewRegistry(),
	})
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email string) {
	t.Helper()
	rec := do(e, http.MethodPost, "/auth/login", `{"email":"`+email+`","password":"12345678"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", email, rec.Code, rec.Body.String())
	}
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, to string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != to {
		t.Fatalf("expected redirect to %q, got %q", to, loc)
	}
}

func TestRouter_AnonymousVisitorIsSentToLogin(t *testing.T) {
	e := newTestRouter(t)

	expectRedirect(t, do(e, http.MethodGet, "/admin", ""), "/login")
	expectRedirect(t, do(e, http.MethodGet, "/dashboard/bookings", ""), "/login")

	if rec := do(e, http.MethodGet, "/rooms", ""); rec.Code != http.StatusOK {
		t.Fatalf("public page: expected 200, got %d", rec.Code)
	}
}

func TestRouter_MemberIsSentHomeFromAdmin(t *testing.T) {
	e := newTestRouter(t)
	login(t, e, "user@example.com")

	expectRedirect(t, do(e, http.MethodGet, "/admin/users", ""), "/")
	if rec := do(e, http.MethodGet, "/dashboard", ""); rec.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", rec.Code)
	}
}

func TestRouter_AdminReachesAdminUntilLogout(t *testing.T) {
	e := newTestRouter(t)
	login(t, e, "admin@example.com")

	rec := do(e, http.MethodGet, "/admin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}
	var page map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if page["route"] != "admin" {
		t.Fatalf("expected admin page, got %+v", page)
	}

	if rec := do(e, http.MethodPost, "/auth/logout", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}
	expectRedirect(t, do(e, http.MethodGet, "/admin", ""), "/login")
}

func TestRouter_BadCredentialsUseErrorEnvelope(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "invalid credentials" {
		t.Fatalf("unexpected error message %q", resp.Error)
	}

	if rec := do(e, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"x"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/auth/login", `{"password":"12345678"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing email: expected 422, got %d", rec.Code)
	}
}

func TestRouter_UnknownPageAndTrailingSlash(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/definitely/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/about/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for trailing slash, got %d", rec.Code)
	}
	var page map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if page["route"] != "about" {
		t.Fatalf("expected about page, got %+v", page)
	}
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("expected a request id header")
	}

	if rec := do(e, http.MethodGet, "/health/ready", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready without backends: expected 200, got %d", rec.Code)
	}
}

const overlappingRoutes = `
[[route]]
name    = "admin"
pattern = "/admin/*"
policy  = "admin"

[[route]]
name    = "admin_help"
pattern = "/admin/help"
policy  = "public"

[[route]]
name    = "docs"
pattern = "/docs/:page"
policy  = "authenticated"

[[route]]
name    = "docs_index"
pattern = "/docs/index"
policy  = "public"

[[route]]
name    = "home"
pattern = "/"
policy  = "public"
`

func TestRouter_PagesFollowFirstDeclaredRoute(t *testing.T) {
	routes, err := routefile.Parse([]byte(overlappingRoutes))
	if err != nil {
		t.Fatalf("parse routes: %v", err)
	}

	paths := []string{"/admin/help", "/admin", "/docs/index", "/docs/intro", "/", "/elsewhere"}
	for _, email := range []string{"", "user@example.com", "admin@example.com"} {
		e := newTestRouterWith(t, routes)
		if email != "" {
			login(t, e, email)
		}

		for _, p := range paths {
			rec := do(e, http.MethodGet, "/navigation/decision?path="+p, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("decision %s: expected 200, got %d", p, rec.Code)
			}
			var decision struct {
				Route      string `json:"route"`
				Decision   string `json:"decision"`
				RedirectTo string `json:"redirect_to"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &decision); err != nil {
				t.Fatalf("invalid json: %v", err)
			}

			page := do(e, http.MethodGet, p, "")
			if decision.Decision == "redirect" {
				if page.Code != http.StatusFound || page.Header().Get(echo.HeaderLocation) != decision.RedirectTo {
					t.Fatalf("%q as %q: page answered %d %q, decision says redirect to %q",
						p, email, page.Code, page.Header().Get(echo.HeaderLocation), decision.RedirectTo)
				}
				continue
			}

			var body map[string]any
			if err := json.Unmarshal(page.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["route"] != decision.Route {
				t.Fatalf("%q as %q: page served route %v, decision resolved %q", p, email, body["route"], decision.Route)
			}
		}
	}
}

func TestRouter_ShadowedPublicRouteStaysGuarded(t *testing.T) {
	routes, err := routefile.Parse([]byte(overlappingRoutes))
	if err != nil {
		t.Fatalf("parse routes: %v", err)
	}
	e := newTestRouterWith(t, routes)

	expectRedirect(t, do(e, http.MethodGet, "/admin/help", ""), "/login")
	expectRedirect(t, do(e, http.MethodGet, "/docs/index", ""), "/login")
}
