package routers

import (
	"bytes"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthRouter(t *testing.T, authUsecase *MockAuthUsecase) *chi.Mux {
	internalConfig := newTestInternalConfig()
	authController := controllers.NewAuthController(zap.NewNop(), authUsecase, internalConfig)

	router := chi.NewRouter()
	attachAuthRoutes(router, newTestMiddlewares(t, authUsecase, internalConfig), authController)
	return router
}

func TestAuthRouter_Signup(t *testing.T) {
	t.Run("patient registration returns 201 with token", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		authUsecase.On("Signup", mock.Anything, mock.AnythingOfType("*requests.PatientRegistration")).
			Return(&responses.Auth{Token: "issued-token", User: responses.User{ID: "user-1", Role: constvars.RolePatient}}, nil)
		router := newAuthRouter(t, authUsecase)

		body := []byte(`{"username":"alice","email":"alice@hospital.test","password":"Secret#123","role":"patient",
			"firstName":"Alice","lastName":"Smith","dateOfBirth":"1990-05-17","phone":"+15550100","address":"1 Main Street"}`)
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var envelope struct {
			Success bool           `json:"success"`
			Data    responses.Auth `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "issued-token", envelope.Data.Token)
		authUsecase.AssertExpectations(t)
	})

	t.Run("unknown role is rejected before the usecase", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newAuthRouter(t, authUsecase)

		body := []byte(`{"username":"mallory","email":"m@hospital.test","password":"Secret#123","role":"admin"}`)
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		authUsecase.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newAuthRouter(t, authUsecase)

		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader([]byte(`{"role":`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRouter_LoginThrottled(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).
		Return(nil, exceptions.ErrTooManyLoginAttempts("alice@hospital.test", 42))
	router := newAuthRouter(t, authUsecase)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte(`{"email":" Alice@Hospital.test ","password":"x"}`)))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope["success"])
}

func TestAuthRouter_Logout(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		router := newAuthRouter(t, authUsecase)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})

	t.Run("revoked token", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		authUsecase.On("Authenticate", mock.Anything, "stale").Return(nil, exceptions.ErrSessionRevoked(nil))
		router := newAuthRouter(t, authUsecase)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer stale")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		authUsecase := new(MockAuthUsecase)
		session := expectSession(authUsecase, "patient-token", constvars.RolePatient)
		authUsecase.On("Logout", mock.Anything, session).Return(nil)
		router := newAuthRouter(t, authUsecase)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer patient-token")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		authUsecase.AssertExpectations(t)
	})
}
