package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"clubadmin/internal/domain"
	"clubadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resources", h.ListResources)
	rg.GET("/resources/:id", h.GetResource)
	rg.POST("/resources", h.CreateResource)
	rg.PUT("/resources/:id", h.UpdateResource)
	rg.GET("/resources/:id/availability", h.Availability)
}

type resourceRequest struct {
	Name         string                         `json:"name" binding:"required"`
	Category     domain.ResourceCategory        `json:"category" binding:"required"`
	Description  string                         `json:"description"`
	Capacity     int                            `json:"capacity"`
	IsActive     *bool                          `json:"is_active"`
	OutOfService bool                           `json:"out_of_service"`
	IsExclusive  bool                           `json:"is_exclusive"`
	RateCard     map[domain.PricingTier]float64 `json:"rate_card"`
}

func (req resourceRequest) toDomain(id int64) *domain.Resource {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &domain.Resource{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Capacity:     req.Capacity,
		IsActive:     active,
		OutOfService: req.OutOfService,
		IsExclusive:  req.IsExclusive,
		RateCard:     req.RateCard,
	}
}

func (h *Handler) ListResources(c *gin.Context) {
	category := domain.ResourceCategory(c.Query("category"))
	activeOnly := c.Query("include_inactive") != "true"

	resources, err := h.service.ListResources(c.Request.Context(), category, activeOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list resources")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resources": resources})
}

func (h *Handler) GetResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.service.GetResource(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load resource")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resource": res})
}

func (h *Handler) CreateResource(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CreateResource(c.Request.Context(), req.toDomain(0))
	if err != nil {
		h.writeError(c, err, "Failed to create resource")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"resource": res})
}

func (h *Handler) UpdateResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.UpdateResource(c.Request.Context(), req.toDomain(id))
	if err != nil {
		h.writeError(c, err, "Failed to update resource")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resource": res})
}

func (h *Handler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
		return
	}
	to := from
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
			return
		}
	}

	days, err := h.service.Availability(c.Request.Context(), id, from, to)
	if err != nil {
		h.writeError(c, err, "Failed to compute availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"availability": days})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
