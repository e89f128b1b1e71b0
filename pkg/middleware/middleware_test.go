package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{name: "Rota pública", path: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "Sem cabeçalho", path: "/v1/targets", wantStatus: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/targets", header: "abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "Token inválido",
			path:       "/v1/targets",
			header:     "Bearer abc",
			validator:  fakeValidator{err: errors.New("invalid")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido",
			path:       "/v1/targets",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "Sem claims", middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
		{
			name:       "Visualizador não escreve metas",
			claims:     &domain.Claims{UserID: 3, UserRoleID: domain.RoleViewer},
			middleware: SupplierManagers(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Gestor de fornecedores escreve metas",
			claims:     &domain.Claims{UserID: 2, UserRoleID: domain.RoleSupplierManager},
			middleware: SupplierManagers(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Gestor não dispara sincronização",
			claims:     &domain.Claims{UserID: 2, UserRoleID: domain.RoleSupplierManager},
			middleware: AdminOnly(),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/targets", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(LoggingMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/targets", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	Cors([]string{"http://localhost:5173"})(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
