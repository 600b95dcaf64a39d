package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"showbench/internal/db"
)

func TestFilterFieldsAllowsKnownKeys(t *testing.T) {
	payload := map[string]any{"name": "Dragon", "description": "repainted"}
	updates, err := filterFields(payload, modelUpdateFields)
	if err != nil {
		t.Fatalf("expected allow-listed fields to pass, got %v", err)
	}
	if updates["name"] != "Dragon" || updates["description"] != "repainted" {
		t.Fatalf("unexpected updates: %#v", updates)
	}
}

func TestFilterFieldsRejectsUnknownKeys(t *testing.T) {
	payload := map[string]any{"name": "Dragon", "code": "MSS-000099"}
	if _, err := filterFields(payload, modelUpdateFields); err == nil {
		t.Fatal("expected the code field to be rejected")
	}
}

func TestFilterFieldsRejectsEmptyPayload(t *testing.T) {
	if _, err := filterFields(map[string]any{}, modelUpdateFields); err == nil {
		t.Fatal("expected an empty payload to be rejected")
	}
}

func TestFilterFieldsMapsColumns(t *testing.T) {
	updates, err := filterFields(map[string]any{"categoryId": 4}, modelUpdateFields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := updates["category_id"]; !ok {
		t.Fatalf("expected categoryId to map onto category_id, got %#v", updates)
	}
}

func TestNumericID(t *testing.T) {
	if id, ok := numericID(float64(4)); !ok || id != 4 {
		t.Fatalf("expected 4, got %d ok=%v", id, ok)
	}
	for _, bad := range []any{"4", float64(0), float64(-2), float64(4.5), nil} {
		if _, ok := numericID(bad); ok {
			t.Fatalf("expected %#v to be rejected", bad)
		}
	}
}

func TestRoleBindingTag(t *testing.T) {
	registerValidations()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("gin binding validator unavailable")
	}
	if err := v.Struct(setRoleRequest{Role: db.RoleJudge}); err != nil {
		t.Fatalf("expected a known role to pass binding, got %v", err)
	}
	if err := v.Struct(setRoleRequest{Role: "emperor"}); err == nil {
		t.Fatal("expected an unknown role to fail binding")
	}
}

func TestSetUserRoleRejectsUnknownRoleAtBind(t *testing.T) {
	s := testServer()
	gin.SetMode(gin.TestMode)
	registerValidations()
	r := gin.New()
	r.PATCH("/users/:id/role", s.handleSetUserRole)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/5/role", strings.NewReader(`{"role":"emperor"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown role, got %d", w.Code)
	}
}

func TestValidateName(t *testing.T) {
	if _, err := validateName("   "); err == nil {
		t.Fatal("expected blank name to fail")
	}
	got, err := validateName("  Siege   Dragon  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Siege Dragon" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}
}
