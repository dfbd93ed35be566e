package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"resourcehub/internal/model"
	"resourcehub/internal/repository"
	"resourcehub/internal/service"
)

const dateLayout = "2006-01-02"

// ResourceHandler handles resource endpoints.
type ResourceHandler struct {
	resourceService service.ResourceService
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// CreateResourceRequest represents a resource creation request. Any
// client-supplied status is ignored; new resources start pending.
type CreateResourceRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Description    string   `json:"description" validate:"required"`
	Category       string   `json:"category" validate:"required,oneof=food housing healthcare employment education transportation financial legal other"`
	Location       string   `json:"location" validate:"required,max=255"`
	Address        string   `json:"address" validate:"omitempty,max=255"`
	City           string   `json:"city" validate:"omitempty,max=100"`
	State          string   `json:"state" validate:"omitempty,max=100"`
	ZipCode        string   `json:"zip_code" validate:"omitempty,max=20"`
	ContactName    string   `json:"contact_name" validate:"omitempty,max=100"`
	ContactPhone   string   `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail   string   `json:"contact_email" validate:"omitempty,email"`
	StartDate      string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Requirements   []string `json:"requirements"`
	AdditionalInfo string   `json:"additional_info"`
}

// UpdateResourceRequest represents a resource update request.
type UpdateResourceRequest struct {
	Title          *string  `json:"title" validate:"omitempty,max=255"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category" validate:"omitempty,oneof=food housing healthcare employment education transportation financial legal other"`
	Location       *string  `json:"location" validate:"omitempty,max=255"`
	Address        *string  `json:"address" validate:"omitempty,max=255"`
	City           *string  `json:"city" validate:"omitempty,max=100"`
	State          *string  `json:"state" validate:"omitempty,max=100"`
	ZipCode        *string  `json:"zip_code" validate:"omitempty,max=20"`
	ContactName    *string  `json:"contact_name" validate:"omitempty,max=100"`
	ContactPhone   *string  `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail   *string  `json:"contact_email" validate:"omitempty,email"`
	StartDate      *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Requirements   []string `json:"requirements"`
	AdditionalInfo *string  `json:"additional_info"`
}

// ApprovalRequest drives moderation: status must be approved or rejected,
// with a mandatory reason for rejections.
type ApprovalRequest struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason"`
}

// ResourceResponse wraps a resource with its derived availability.
type ResourceResponse struct {
	Resource  *model.Resource `json:"resource"`
	Available bool            `json:"available"`
}

// ListResources godoc
// @Summary List approved resources (public)
// @Tags resources
// @Produce json
// @Param category query string false "Filter by category"
// @Param location query string false "Filter by location substring"
// @Param search query string false "Search in title and description"
// @Success 200 {array} model.Resource
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c echo.Context) error {
	resources, err := h.resourceService.ListPublic(c.Request().Context(), service.PublicResourceFilter{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"resources": resources,
		"count":     len(resources),
	})
}

// ListAllResources godoc
// @Summary List resources in all states (admin only)
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param provider_id query int false "Filter by provider"
// @Success 200 {array} model.Resource
// @Failure 403 {object} errors.ErrorResponse
// @Router /resources/all [get]
func (h *ResourceHandler) ListAllResources(c echo.Context) error {
	filter := repository.ResourceFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	}
	if raw := c.QueryParam("provider_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid provider id")
		}
		providerID := uint(id)
		filter.ProviderID = &providerID
	}

	resources, err := h.resourceService.ListAll(c.Request().Context(), ActorFromContext(c), filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"resources": resources,
		"count":     len(resources),
	})
}

// ListMyResources godoc
// @Summary List the current user's resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Success 200 {array} model.Resource
// @Router /resources/my [get]
func (h *ResourceHandler) ListMyResources(c echo.Context) error {
	resources, err := h.resourceService.ListMine(c.Request().Context(), ActorFromContext(c), repository.ResourceFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"resources": resources,
		"count":     len(resources),
	})
}

// GetResource godoc
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} ResourceResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	resource, err := h.resourceService.Get(c.Request().Context(), ActorFromContext(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, ResourceResponse{
		Resource:  resource,
		Available: resource.IsAvailable(time.Now()),
	})
}

// CreateResource godoc
// @Summary Create a resource (provider or admin)
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateResourceRequest true "Resource data"
// @Success 201 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c echo.Context) error {
	var req CreateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.ResourceInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       model.ResourceCategory(req.Category),
		Location:       req.Location,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		Requirements:   req.Requirements,
		AdditionalInfo: req.AdditionalInfo,
	}
	input.StartDate = parseDate(req.StartDate)
	input.EndDate = parseDate(req.EndDate)

	resource, err := h.resourceService.Create(c.Request().Context(), ActorFromContext(c), input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, resource)
}

// UpdateResource godoc
// @Summary Update a resource (owner or admin)
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body UpdateResourceRequest true "Fields to update"
// @Success 200 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [put]
func (h *ResourceHandler) UpdateResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upd := service.ResourceUpdate{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		Requirements:   req.Requirements,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.Category != nil {
		category := model.ResourceCategory(*req.Category)
		upd.Category = &category
	}
	if req.StartDate != nil {
		upd.StartDate = parseDate(*req.StartDate)
	}
	if req.EndDate != nil {
		upd.EndDate = parseDate(*req.EndDate)
	}

	resource, err := h.resourceService.Update(c.Request().Context(), ActorFromContext(c), id, upd)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary Delete a resource (owner or admin)
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id} [delete]
func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.resourceService.Delete(c.Request().Context(), ActorFromContext(c), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "resource deleted successfully",
	})
}

// ApproveOrReject godoc
// @Summary Approve or reject a resource (admin only)
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Param request body ApprovalRequest true "Approval decision"
// @Success 200 {object} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /resources/{id}/approval [post]
func (h *ResourceHandler) ApproveOrReject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor := ActorFromContext(c)
	var resource *model.Resource
	if req.Status == string(model.ResourceStatusApproved) {
		resource, err = h.resourceService.Approve(c.Request().Context(), actor, id)
	} else {
		resource, err = h.resourceService.Reject(c.Request().Context(), actor, id, req.RejectionReason)
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resource)
}

// ArchiveResource godoc
// @Summary Archive a resource (owner or admin)
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} model.Resource
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /resources/{id}/archive [post]
func (h *ResourceHandler) ArchiveResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	resource, err := h.resourceService.Archive(c.Request().Context(), ActorFromContext(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, resource)
}

// parseDate returns nil for empty strings; format errors are caught by the
// datetime validator before this runs.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
