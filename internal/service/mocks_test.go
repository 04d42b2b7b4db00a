package service

import (
	"github.com/stretchr/testify/mock"

	"codaverse/internal/models"
)

// Repository mocks shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockDiscussionRepository struct {
	mock.Mock
}

func (m *MockDiscussionRepository) Create(discussion *models.Discussion) error {
	args := m.Called(discussion)
	return args.Error(0)
}

func (m *MockDiscussionRepository) Update(discussion *models.Discussion) error {
	args := m.Called(discussion)
	return args.Error(0)
}

func (m *MockDiscussionRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDiscussionRepository) FindByID(id int64) (*models.Discussion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discussion), args.Error(1)
}

func (m *MockDiscussionRepository) FindAll(categorySlug string, page, pageSize int) ([]models.Discussion, int64, error) {
	args := m.Called(categorySlug, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Discussion), args.Get(1).(int64), args.Error(2)
}

func (m *MockDiscussionRepository) IncrementViews(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(id int64) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type MockSnippetRepository struct {
	mock.Mock
}

func (m *MockSnippetRepository) Create(snippet *models.CodeSnippet) error {
	args := m.Called(snippet)
	return args.Error(0)
}

func (m *MockSnippetRepository) Update(snippet *models.CodeSnippet) error {
	args := m.Called(snippet)
	return args.Error(0)
}

func (m *MockSnippetRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSnippetRepository) FindByID(id int64) (*models.CodeSnippet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CodeSnippet), args.Error(1)
}

func (m *MockSnippetRepository) FindAll(sort string) ([]models.CodeSnippet, error) {
	args := m.Called(sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CodeSnippet), args.Error(1)
}

func (m *MockSnippetRepository) CountReactions(snippetID int64) (int64, int64, error) {
	args := m.Called(snippetID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockSnippetRepository) UserReaction(snippetID int64, userID string) (*string, error) {
	args := m.Called(snippetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockSnippetRepository) ToggleLike(snippetID int64, user *models.User) (*string, error) {
	args := m.Called(snippetID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockSnippetRepository) ToggleDislike(snippetID int64, user *models.User) (*string, error) {
	args := m.Called(snippetID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) Create(language *models.ProgrammingLanguage) error {
	args := m.Called(language)
	return args.Error(0)
}

func (m *MockLanguageRepository) Update(language *models.ProgrammingLanguage) error {
	args := m.Called(language)
	return args.Error(0)
}

func (m *MockLanguageRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLanguageRepository) FindByID(id int64) (*models.ProgrammingLanguage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgrammingLanguage), args.Error(1)
}

func (m *MockLanguageRepository) FindAll() ([]models.ProgrammingLanguage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProgrammingLanguage), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) CreateWithTags(blog *models.Blog, tagNames []string) error {
	args := m.Called(blog, tagNames)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBlogRepository) FindByID(id int64) (*models.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindAll(tagSlug string) ([]models.Blog, error) {
	args := m.Called(tagSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) CountLikes(blogID int64) (int64, error) {
	args := m.Called(blogID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) HasLiked(blogID int64, userID string) (bool, error) {
	args := m.Called(blogID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) ToggleLike(blogID int64, user *models.User) (bool, error) {
	args := m.Called(blogID, user)
	return args.Bool(0), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindAll() ([]models.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindBySlug(slug string) (*models.Tag, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}
