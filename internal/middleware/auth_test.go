package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"codaverse/internal/models"
	"codaverse/internal/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(username, password string) (string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) Authenticate(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func okHandler(c *gin.Context) {
	user := CurrentUser(c)
	if user != nil {
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": nil})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/private", Authenticate(mockService), okHandler)

	req, _ := http.NewRequest("GET", "/private", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_BadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/private", Authenticate(mockService), okHandler)

	mockService.On("Authenticate", "garbage").Return(nil, service.ErrInvalidToken)

	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertExpectations(t)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/private", Authenticate(mockService), okHandler)

	user := &models.User{ID: "user-1", Username: "alice", IsActive: true}
	mockService.On("Authenticate", "good-token").Return(user, nil)

	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	mockService.AssertExpectations(t)
}

func TestOptionalAuthenticate_Anonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/open", OptionalAuthenticate(mockService), okHandler)

	req, _ := http.NewRequest("GET", "/open", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthenticate_WithToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/open", OptionalAuthenticate(mockService), okHandler)

	user := &models.User{ID: "user-1", Username: "alice", IsActive: true}
	mockService.On("Authenticate", "good-token").Return(user, nil)

	req, _ := http.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	mockService.AssertExpectations(t)
}

func TestRequireAdmin_Forbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/admin", Authenticate(mockService), RequireAdmin(), okHandler)

	user := &models.User{ID: "user-1", Username: "alice", IsActive: true}
	mockService.On("Authenticate", "good-token").Return(user, nil)

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestRequireAdmin_StaffAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockAuthService)
	router := gin.New()
	router.GET("/admin", Authenticate(mockService), RequireAdmin(), okHandler)

	user := &models.User{ID: "user-1", Username: "mod", IsActive: true, IsStaff: true}
	mockService.On("Authenticate", "good-token").Return(user, nil)

	req, _ := http.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestRequireAdmin_NoUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireAdmin(), okHandler)

	req, _ := http.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
