package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"showbench/internal/config"
	"showbench/internal/db"
)

func testServer() *Server {
	cfg := config.Default()
	cfg.JWTSecret = "test-secret"
	return New(nil, cfg, nil, nil)
}

func TestTokenRoundTrip(t *testing.T) {
	s := testServer()
	user := db.User{ID: 42, Role: db.RoleJudge}
	token, err := s.issueToken(user, "club")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}
	cl, err := s.parseToken(token)
	if err != nil {
		t.Fatalf("parseToken failed: %v", err)
	}
	if cl.UserID != 42 || cl.Role != db.RoleJudge || cl.Tenant != "club" {
		t.Fatalf("unexpected claims: %+v", cl)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	s := testServer()
	token, err := s.issueToken(db.User{ID: 1, Role: db.RoleUser}, "club")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}
	other := testServer()
	other.cfg.JWTSecret = "different-secret"
	if _, err := other.parseToken(token); err == nil {
		t.Fatal("expected a token signed with another secret to be rejected")
	}
}

func middlewareRecorder(t *testing.T, s *Server, tenant string, handlers ...gin.HandlerFunc) (*httptest.ResponseRecorder, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{func(c *gin.Context) {
		c.Set(ctxKeyTenant, tenant)
	}}, handlers...)
	r.GET("/ping", append(chain, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})...)
	return httptest.NewRecorder(), r
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	s := testServer()
	w, r := middlewareRecorder(t, s, "club", s.authRequired())
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredRejectsTenantMismatch(t *testing.T) {
	s := testServer()
	token, err := s.issueToken(db.User{ID: 1, Role: db.RoleUser}, "other-club")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}
	w, r := middlewareRecorder(t, s, "club", s.authRequired())
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a cross-tenant token, got %d", w.Code)
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	s := testServer()
	token, err := s.issueToken(db.User{ID: 7, Role: db.RoleJudge}, "club")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}
	w, r := middlewareRecorder(t, s, "club", s.authRequired())
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	s := testServer()
	token, err := s.issueToken(db.User{ID: 7, Role: db.RoleUser}, "club")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	w, r := middlewareRecorder(t, s, "club", s.authRequired(), s.requireRole(db.RoleJudge, db.RoleAdmin))
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a plain user on a judge route, got %d", w.Code)
	}

	judgeToken, err := s.issueToken(db.User{ID: 8, Role: db.RoleJudge}, "club")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}
	w2, r2 := middlewareRecorder(t, s, "club", s.authRequired(), s.requireRole(db.RoleJudge, db.RoleAdmin))
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req2.Header.Set("Authorization", "Bearer "+judgeToken)
	r2.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 for a judge, got %d", w2.Code)
	}
}

func TestResolveTenantUnknown(t *testing.T) {
	s := testServer()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", s.resolveTenant, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(tenantHeader, "nobody")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown tenant, got %d", w.Code)
	}
}
