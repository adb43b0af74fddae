package handler

import (
	"net/http"

	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the category, service offering,
// delivery zone and review handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type categoryRequest struct {
	Name         string `json:"name" validate:"required"`
	CategoryType string `json:"category_type"`
}

type serviceRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	BasePrice   int64      `json:"base_price" validate:"min=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

func (r *serviceRequest) toInput() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		BasePrice:   r.BasePrice,
		CategoryID:  r.CategoryID,
	}
}

type deliveryZoneRequest struct {
	ZoneName    string `json:"zone_name" validate:"required"`
	DeliveryFee int64  `json:"delivery_fee" validate:"min=0"`
}

type reviewRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	ServiceID *uuid.UUID `json:"service_id"`
	Rating    int        `json:"rating" validate:"required,min=1,max=5"`
	Comment   string     `json:"comment"`
}

// CreateCategory persists a new category. Admin only.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), actor, req.Name, req.CategoryType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// ListCategories returns all categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// CreateService persists a new service offering. Admin only.
func (h *CatalogHandler) CreateService(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.uc.CreateService(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offering, "Service created successfully")
}

// ListServices returns all service offerings.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// UpdateService persists changed service offering fields. Admin only.
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid service id")
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offering, err := h.uc.UpdateService(c.Request().Context(), actor, serviceID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offering, "Service updated successfully")
}

// DeleteService removes a service offering. Admin only.
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid service id")
	}

	if err := h.uc.DeleteService(c.Request().Context(), actor, serviceID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateDeliveryZone persists a new delivery zone. Admin only.
func (h *CatalogHandler) CreateDeliveryZone(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req deliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery zone input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	zone, err := h.uc.CreateDeliveryZone(c.Request().Context(), actor, &usecase.DeliveryZoneInput{
		ZoneName:    req.ZoneName,
		DeliveryFee: req.DeliveryFee,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, zone, "Delivery zone created successfully")
}

// ListDeliveryZones returns all delivery zones.
func (h *CatalogHandler) ListDeliveryZones(c echo.Context) error {
	zones, err := h.uc.ListDeliveryZones(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, zones, "Delivery zones retrieved successfully")
}

// UpdateDeliveryZone persists changed delivery zone fields. Admin only.
func (h *CatalogHandler) UpdateDeliveryZone(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid delivery zone id")
	}

	var req deliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery zone input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	zone, err := h.uc.UpdateDeliveryZone(c.Request().Context(), actor, zoneID, &usecase.DeliveryZoneInput{
		ZoneName:    req.ZoneName,
		DeliveryFee: req.DeliveryFee,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, zone, "Delivery zone updated successfully")
}

// DeleteDeliveryZone removes a delivery zone. Admin only.
func (h *CatalogHandler) DeleteDeliveryZone(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid delivery zone id")
	}

	if err := h.uc.DeleteDeliveryZone(c.Request().Context(), actor, zoneID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateReview persists customer feedback.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), actor.UserID, &usecase.ReviewInput{
		ProductID: req.ProductID,
		ServiceID: req.ServiceID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// ListProductReviews returns the product's reviews.
func (h *CatalogHandler) ListProductReviews(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	reviews, err := h.uc.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListServiceReviews returns the service's reviews.
func (h *CatalogHandler) ListServiceReviews(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid service id")
	}

	reviews, err := h.uc.ListServiceReviews(c.Request().Context(), serviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}
