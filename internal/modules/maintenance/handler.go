package maintenance

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
	rg.POST("/maintenance", h.Schedule)
	rg.GET("/resources/:id/maintenance", h.ListResourceMaintenance)
	rg.DELETE("/maintenance/:id", h.Remove)
}

type scheduleRequest struct {
	ResourceID int64     `json:"resource_id" binding:"required"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
}

func (h *Handler) Schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Schedule(c.Request.Context(), &domain.MaintenancePeriod{
		ResourceID: req.ResourceID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrResourceNotFound):
			response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to schedule maintenance")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"maintenance": p})
}

func (h *Handler) ListResourceMaintenance(c *gin.Context) {
	resourceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || resourceID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid resource id")
		return
	}

	periods, err := h.service.ListByResource(c.Request.Context(), resourceID, time.Time{}, time.Time{})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list maintenance periods")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"maintenance": periods})
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove maintenance period")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": true})
}
