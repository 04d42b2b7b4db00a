package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"codaverse/internal/dto"
	"codaverse/internal/service"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List() ([]dto.UserResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Update(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) ToggleActive(id string) (*dto.UserResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func TestUserAdminCreate_Success(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserAdminHandler(mockService)
	router := setupRouter()
	router.POST("/admin/users/create", handler.Create)

	mockService.On("Create", mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		return req.Username == "mod" && req.Role == "moderator"
	})).Return(&dto.UserResponse{
		ID:       "uuid-1",
		Username: "mod",
		Role:     "moderator",
		IsActive: true,
	}, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Username: "mod",
		Email:    "mod@example.com",
		Password: "password123",
		Role:     "moderator",
	})
	req, _ := http.NewRequest("POST", "/admin/users/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "moderator", response.Role)

	mockService.AssertExpectations(t)
}

func TestUserAdminCreate_BadRole(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserAdminHandler(mockService)
	router := setupRouter()
	router.POST("/admin/users/create", handler.Create)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Username: "mod",
		Email:    "mod@example.com",
		Password: "password123",
		Role:     "superhero",
	})
	req, _ := http.NewRequest("POST", "/admin/users/create", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ValidationErrorResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response.Errors, "role")

	mockService.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserAdminToggle_UUIDParam(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserAdminHandler(mockService)
	router := setupRouter()
	router.PATCH("/admin/users/:id/toggle", handler.ToggleActive)

	mockService.On("ToggleActive", "68f3b8be-5bd8-4c6c-9919-a4614b2731b3").Return(&dto.UserResponse{
		ID:       "68f3b8be-5bd8-4c6c-9919-a4614b2731b3",
		Username: "alice",
		Role:     "user",
		IsActive: false,
	}, nil)

	req, _ := http.NewRequest("PATCH", "/admin/users/68f3b8be-5bd8-4c6c-9919-a4614b2731b3/toggle", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.IsActive)

	mockService.AssertExpectations(t)
}

func TestUserAdminUpdate_NotFound(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserAdminHandler(mockService)
	router := setupRouter()
	router.PATCH("/admin/users/:id/update", handler.Update)

	mockService.On("Update", "missing-id", mock.Anything).Return(nil, service.ErrNotFound)

	body, _ := json.Marshal(map[string]string{"username": "newname"})
	req, _ := http.NewRequest("PATCH", "/admin/users/missing-id/update", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestUserAdminList_Success(t *testing.T) {
	mockService := new(MockUserService)
	handler := NewUserAdminHandler(mockService)
	router := setupRouter()
	router.GET("/admin/users", handler.List)

	mockService.On("List").Return([]dto.UserResponse{
		{ID: "u1", Username: "alice", Role: "admin", IsActive: true},
		{ID: "u2", Username: "bob", Role: "user", IsActive: false},
	}, nil)

	req, _ := http.NewRequest("GET", "/admin/users", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.UserResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockService.AssertExpectations(t)
}
