package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"resourcehub/internal/repository"
	"resourcehub/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest represents a profile update. Completion fields are
// derived server-side and ignored if supplied.
type UpdateProfileRequest struct {
	Phone   *string  `json:"phone" validate:"omitempty,max=20"`
	Bio     *string  `json:"bio"`
	Address *string  `json:"address" validate:"omitempty,max=255"`
	City    *string  `json:"city" validate:"omitempty,max=100"`
	State   *string  `json:"state" validate:"omitempty,max=100"`
	ZipCode *string  `json:"zip_code" validate:"omitempty,max=20"`
	Needs   []string `json:"needs"`
}

// GetProfile godoc
// @Summary Get a user's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} model.Profile
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{user_id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := pathUserID(c)
	if err != nil {
		return err
	}
	profile, err := h.profileService.GetByUserID(c.Request().Context(), ActorFromContext(c), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update a user's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{user_id} [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := pathUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Update(c.Request().Context(), ActorFromContext(c), userID, service.ProfileUpdate{
		Phone:   req.Phone,
		Bio:     req.Bio,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Needs:   req.Needs,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ListProfiles godoc
// @Summary List profiles (admin only)
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param completion_status query string false "complete or incomplete"
// @Success 200 {array} model.Profile
// @Failure 403 {object} errors.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	var filter repository.ProfileFilter
	switch c.QueryParam("completion_status") {
	case "complete":
		complete := true
		filter.Complete = &complete
	case "incomplete":
		complete := false
		filter.Complete = &complete
	}

	profiles, err := h.profileService.List(c.Request().Context(), ActorFromContext(c), filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

func pathUserID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return uint(id), nil
}
