package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"resourcehub/internal/model"
	"resourcehub/internal/repository"
	"resourcehub/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a user update. Role and status changes are
// rejected for non-admin callers at the service layer.
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty,oneof=user provider admin"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// ListUsers godoc
// @Summary List users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status"
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), ActorFromContext(c), repository.UserFilter{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.userService.Get(c.Request().Context(), ActorFromContext(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := service.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		role := model.Role(*req.Role)
		upd.Role = &role
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		upd.Status = &status
	}

	user, err := h.userService.Update(c.Request().Context(), ActorFromContext(c), id, upd)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), ActorFromContext(c), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user deleted successfully",
	})
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
