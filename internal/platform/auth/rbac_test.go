package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func requestWithRoles(roles ...string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), UserRolesKey, roles)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireRoleAllows(t *testing.T) {
	tests := []struct {
		name      string
		userRoles []string
		required  []string
	}{
		{"exact match", []string{"lab_tech"}, []string{"lab_tech"}},
		{"one of several", []string{"nurse"}, []string{"physician", "nurse"}},
		{"admin bypasses", []string{"admin"}, []string{"auditor"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mw := RequireRole(tt.required...)
			handler := mw(func(c echo.Context) error {
				called = true
				return nil
			})
			if err := handler(requestWithRoles(tt.userRoles...)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !called {
				t.Fatal("handler was not called")
			}
		})
	}
}

func TestRequireRoleDenies(t *testing.T) {
	mw := RequireRole("auditor")
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(requestWithRoles("nurse"))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", httpErr.Code)
	}
}

func TestRequireRoleDeniesWithoutRoles(t *testing.T) {
	mw := RequireRole("auditor")
	handler := mw(func(c echo.Context) error { return nil })

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
