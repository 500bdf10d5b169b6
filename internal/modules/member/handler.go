package member

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/members", h.Register)
	rg.GET("/members", h.Search)
	rg.GET("/members/:id", h.GetMember)
	rg.PUT("/members/:id", h.UpdateMember)
}

type memberRequest struct {
	MembershipNo string             `json:"membership_no" binding:"required"`
	Name         string             `json:"name" binding:"required"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Tier         domain.PricingTier `json:"tier"`
	IsActive     *bool              `json:"is_active"`
}

func (h *Handler) Register(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	mb, err := h.service.Register(c.Request.Context(), &domain.Member{
		MembershipNo: req.MembershipNo,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Tier:         req.Tier,
	})
	if err != nil {
		h.writeError(c, err, "Failed to register member")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"member": mb})
}

func (h *Handler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	members, err := h.service.Search(c.Request.Context(), c.Query("q"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search members")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"members": members})
}

func (h *Handler) GetMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	mb, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load member")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member": mb})
}

func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	mb, err := h.service.UpdateProfile(c.Request.Context(), &domain.Member{
		ID:           id,
		MembershipNo: req.MembershipNo,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Tier:         req.Tier,
		IsActive:     active,
	})
	if err != nil {
		h.writeError(c, err, "Failed to update member")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"member": mb})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE_MEMBER", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "MEMBER_NOT_FOUND", "Member not found")
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
