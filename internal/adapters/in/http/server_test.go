package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/security"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testServer(t *testing.T, users *MockUserRepository) *Server {
	t.Helper()

	tokens, err := security.NewTokenIssuer("test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)

	var repo *MockUserRepository
	if users != nil {
		repo = users
	} else {
		repo = &MockUserRepository{}
	}

	return NewServer(Handlers{}, repo, tokens, 10, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustAccount(t *testing.T, email, password string, role user.Role, active bool) *user.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	account, err := user.NewUser(kernel.NewUUID(), "Test User", email, hash, role)
	require.NoError(t, err)
	account.SetActive(active)
	return account
}

func doJSON(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	users := &MockUserRepository{}
	account := mustAccount(t, "admin@example.com", "secret123", user.RoleAdmin, true)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(account, nil)

	server := testServer(t, users)
	e := echo.New()
	e.POST("/api/auth/login", server.Login)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"secret123"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"admin@example.com"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &MockUserRepository{}
	account := mustAccount(t, "admin@example.com", "secret123", user.RoleAdmin, true)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(account, nil)

	server := testServer(t, users)
	e := echo.New()
	e.POST("/api/auth/login", server.Login)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogin_UnknownEmailAndInactiveLookTheSame(t *testing.T) {
	users := &MockUserRepository{}
	users.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "ghost@example.com"))
	inactive := mustAccount(t, "gone@example.com", "secret123", user.RoleCustomer, false)
	users.On("GetByEmail", mock.Anything, "gone@example.com").Return(inactive, nil)

	server := testServer(t, users)
	e := echo.New()
	e.POST("/api/auth/login", server.Login)

	recUnknown := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"secret123"}`, "")
	recInactive := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"gone@example.com","password":"secret123"}`, "")

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recInactive.Code)
	assert.JSONEq(t, recUnknown.Body.String(), recInactive.Body.String())
}

func TestAuthenticated_MissingToken(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}, server.Authenticated)

	rec := doJSON(e, http.MethodGet, "/protected", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing bearer token")
}

func TestAuthenticated_GarbageToken(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}, server.Authenticated)

	rec := doJSON(e, http.MethodGet, "/protected", "", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticated_ValidTokenReachesHandler(t *testing.T) {
	server := testServer(t, nil)
	token, err := server.tokens.Issue(kernel.NewUUID().String(), "admin@example.com", string(user.RoleAdmin))
	require.NoError(t, err)

	var seen *security.Claims
	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		seen = currentClaims(ctx)
		return ctx.NoContent(http.StatusOK)
	}, server.Authenticated)

	rec := doJSON(e, http.MethodGet, "/protected", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "admin@example.com", seen.Email)
}

func TestAdminOnly_CustomerIsForbidden(t *testing.T) {
	server := testServer(t, nil)
	token, err := server.tokens.Issue(kernel.NewUUID().String(), "user@example.com", string(user.RoleCustomer))
	require.NoError(t, err)

	e := echo.New()
	e.GET("/admin-only", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	}, server.Authenticated, server.AdminOnly)

	rec := doJSON(e, http.MethodGet, "/admin-only", "", token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access required")
}

func TestCreateOrder_InvalidProductID(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.POST("/api/admin/orders", server.CreateOrder)

	rec := doJSON(e, http.MethodPost, "/api/admin/orders",
		`{"customer_name":"Jane","customer_email":"jane@example.com","items":[{"product_id":"nope","quantity":1}]}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid product ID")
}

func TestCreateOrder_MissingCustomerName(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.POST("/api/admin/orders", server.CreateOrder)

	rec := doJSON(e, http.MethodPost, "/api/admin/orders",
		`{"customer_name":"","customer_email":"jane@example.com","items":[]}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.PUT("/api/admin/orders/:id/status", server.UpdateOrderStatus)

	rec := doJSON(e, http.MethodPut,
		"/api/admin/orders/"+kernel.NewUUID().String()+"/status",
		`{"status":"teleported"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder_MalformedID(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.GET("/api/admin/orders/:id", server.GetOrder)

	rec := doJSON(e, http.MethodGet, "/api/admin/orders/not-a-uuid", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order ID")
}

func TestUpdateSettings_UnknownCategory(t *testing.T) {
	server := testServer(t, nil)
	e := echo.New()
	e.PUT("/api/admin/settings", server.UpdateSettings)

	rec := doJSON(e, http.MethodPut, "/api/admin/settings",
		`{"warehouse":{"dock_count":"4"}}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAPIDocs_ServesValidatedSpec(t *testing.T) {
	e := echo.New()
	require.NoError(t, registerAPIDocs(e))

	rec := doJSON(e, http.MethodGet, "/openapi.json", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Storefront API"`)
}
