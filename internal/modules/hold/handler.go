package hold

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
	rg.POST("/holds", h.CreateHold)
	rg.GET("/resources/:id/holds", h.ListResourceHolds)
	rg.DELETE("/holds/:id", h.ReleaseHold)
}

func (h *Handler) CreateHold(c *gin.Context) {
	var req CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.CreateHold(c.Request.Context(), req, c.GetInt64("adminID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrResourceNotFound):
			response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found")
		case errors.Is(err, ErrBlocked):
			response.Error(c, http.StatusConflict, "HOLD_BLOCKED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hold")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hold": created})
}

func (h *Handler) ListResourceHolds(c *gin.Context) {
	resourceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || resourceID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid resource id")
		return
	}

	from, to, err := parseWindow(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date window")
		return
	}

	holds, err := h.service.ListByResource(c.Request.Context(), resourceID, from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list holds")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"holds": holds})
}

func (h *Handler) ReleaseHold(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Release(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "HOLD_NOT_FOUND", "Hold not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to release hold")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"released": true})
}

func parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, err
		}
		from = domain.Day(parsed)
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, err
		}
		to = domain.Day(parsed)
	}
	return from, to, nil
}
