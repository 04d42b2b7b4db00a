package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"codaverse/internal/dto"
	"codaverse/internal/middleware"
	"codaverse/internal/models"
	"codaverse/internal/service"
)

// MockSnippetService mocks the SnippetService interface
type MockSnippetService struct {
	mock.Mock
}

func (m *MockSnippetService) List(viewer *models.User, sort string) ([]dto.SnippetResponse, error) {
	args := m.Called(viewer, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SnippetResponse), args.Error(1)
}

func (m *MockSnippetService) Get(viewer *models.User, id int64) (*dto.SnippetResponse, error) {
	args := m.Called(viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SnippetResponse), args.Error(1)
}

func (m *MockSnippetService) Create(author *models.User, req *dto.CreateSnippetRequest) (*dto.SnippetResponse, error) {
	args := m.Called(author, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SnippetResponse), args.Error(1)
}

func (m *MockSnippetService) Update(actor *models.User, id int64, req *dto.UpdateSnippetRequest) (*dto.SnippetResponse, error) {
	args := m.Called(actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SnippetResponse), args.Error(1)
}

func (m *MockSnippetService) Delete(actor *models.User, id int64) error {
	args := m.Called(actor, id)
	return args.Error(0)
}

func (m *MockSnippetService) Like(viewer *models.User, id int64) (*dto.ReactionResponse, error) {
	args := m.Called(viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReactionResponse), args.Error(1)
}

func (m *MockSnippetService) Dislike(viewer *models.User, id int64) (*dto.ReactionResponse, error) {
	args := m.Called(viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReactionResponse), args.Error(1)
}

func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, user)
	}
}

func TestSnippetList_PassesSortParam(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.GET("/snippets", asUser(user), handler.List)

	mockService.On("List", user, dto.SortMostLiked).Return([]dto.SnippetResponse{}, nil)

	req, _ := http.NewRequest("GET", "/snippets?sort=most_liked", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSnippetList_DefaultsToNewest(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.GET("/snippets", asUser(user), handler.List)

	mockService.On("List", user, dto.SortNewest).Return([]dto.SnippetResponse{}, nil)

	req, _ := http.NewRequest("GET", "/snippets", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSnippetLike_ReturnsReactionState(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.POST("/snippets/:id/like", asUser(user), handler.Like)

	like := dto.ReactionLike
	mockService.On("Like", user, int64(7)).Return(&dto.ReactionResponse{
		LikesCount:    3,
		DislikesCount: 1,
		UserReaction:  &like,
	}, nil)

	req, _ := http.NewRequest("POST", "/snippets/7/like", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ReactionResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(3), response.LikesCount)
	assert.Equal(t, int64(1), response.DislikesCount)
	assert.NotNil(t, response.UserReaction)
	assert.Equal(t, "like", *response.UserReaction)

	mockService.AssertExpectations(t)
}

func TestSnippetLike_RemovedReactionIsNull(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.POST("/snippets/:id/like", asUser(user), handler.Like)

	// Second like on the same snippet removes it.
	mockService.On("Like", user, int64(7)).Return(&dto.ReactionResponse{
		LikesCount:    2,
		DislikesCount: 1,
		UserReaction:  nil,
	}, nil)

	req, _ := http.NewRequest("POST", "/snippets/7/like", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	json.Unmarshal(w.Body.Bytes(), &raw)
	assert.Equal(t, "null", string(raw["user_reaction"]))

	mockService.AssertExpectations(t)
}

func TestSnippetDislike_NotFound(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.POST("/snippets/:id/dislike", asUser(user), handler.Dislike)

	mockService.On("Dislike", user, int64(99)).Return(nil, service.ErrNotFound)

	req, _ := http.NewRequest("POST", "/snippets/99/dislike", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestSnippetCreate_NestedCodes(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.POST("/snippets", asUser(user), handler.Create)

	reqBody := dto.CreateSnippetRequest{
		Title:       "Hello world",
		Description: "Greetings in two languages",
		Codes: []dto.CodeEntryRequest{
			{LanguageID: 1, Code: "fmt.Println(\"hi\")"},
			{LanguageID: 2, Code: "print('hi')"},
		},
	}

	mockService.On("Create", user, mock.MatchedBy(func(req *dto.CreateSnippetRequest) bool {
		return req.Title == "Hello world" && len(req.Codes) == 2
	})).Return(&dto.SnippetResponse{ID: 10, Title: "Hello world"}, nil)

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/snippets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestSnippetCreate_EmptyCodesRejected(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-1", Username: "alice"}
	router.POST("/snippets", asUser(user), handler.Create)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "No codes",
		"description": "whoops",
		"codes":       []interface{}{},
	})
	req, _ := http.NewRequest("POST", "/snippets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ValidationErrorResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response.Errors, "codes")
}

func TestSnippetDelete_Forbidden(t *testing.T) {
	mockService := new(MockSnippetService)
	handler := NewSnippetHandler(mockService)
	router := setupRouter()

	user := &models.User{ID: "user-2", Username: "mallory"}
	router.DELETE("/snippets/:id", asUser(user), handler.Delete)

	mockService.On("Delete", user, int64(7)).Return(service.ErrForbidden)

	req, _ := http.NewRequest("DELETE", "/snippets/7", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}
