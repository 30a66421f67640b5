package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
	"procura/internal/handler"
	"procura/internal/service"
	"procura/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthHandler() (*handler.AuthHandler, *mocks.MockAuthService) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc)
	return h, mockSvc
}

func postJSON(t *testing.T, path string, payload interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	input := service.LoginInput{
		CompanySlug: "acme",
		Email:       "buyer@acme.test",
		Password:    "correct-horse",
	}
	pair := &service.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	mockSvc.On("Login", mock.Anything, input).Return(pair, nil)

	w, c := postJSON(t, "/api/v1/auth/login", input)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, mockSvc := newAuthHandler()

	input := service.LoginInput{
		CompanySlug: "acme",
		Email:       "buyer@acme.test",
		Password:    "wrong-password",
	}
	mockSvc.On("Login", mock.Anything, input).Return(nil, domain.ErrInvalidCredentials)

	w, c := postJSON(t, "/api/v1/auth/login", input)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _ := newAuthHandler()

	w, c := postJSON(t, "/api/v1/auth/login", gin.H{"email": "buyer@acme.test"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	pair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	mockSvc.On("RefreshToken", mock.Anything, "old-refresh").Return(pair, nil)

	w, c := postJSON(t, "/api/v1/auth/refresh", gin.H{"refresh_token": "old-refresh"})
	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	h, mockSvc := newAuthHandler()

	mockSvc.On("RefreshToken", mock.Anything, "expired").Return(nil, domain.ErrUnauthorized)

	w, c := postJSON(t, "/api/v1/auth/refresh", gin.H{"refresh_token": "expired"})
	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
