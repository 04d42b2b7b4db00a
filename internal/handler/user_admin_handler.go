package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codaverse/internal/dto"
	"codaverse/internal/service"
)

// UserAdminHandler serves the user administration endpoints. All routes are
// mounted behind RequireAdmin; user ids are UUID strings, not numeric.
type UserAdminHandler struct {
	userService service.UserService
}

func NewUserAdminHandler(userService service.UserService) *UserAdminHandler {
	return &UserAdminHandler{userService: userService}
}

// GET /api/admin/users
func (h *UserAdminHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/admin/users/create
func (h *UserAdminHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// PUT /api/admin/users/:id/update
func (h *UserAdminHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Update(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ToggleActive flips the user's active flag, which immediately blocks or
// restores login and token authentication.
// POST /api/admin/users/:id/toggle
func (h *UserAdminHandler) ToggleActive(c *gin.Context) {
	user, err := h.userService.ToggleActive(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
