package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"clubadmin/internal/modules/pricing"
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
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.PUT("/bookings/:id/payment", h.UpdatePayment)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/bookings/:id/advance", h.AdvanceStatus)
	rg.GET("/members/:id/bookings", h.ListMemberBookings)
	rg.GET("/resources/:id/bookings", h.ListResourceBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req, c.GetInt64("adminID"))
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, overpaid, err := h.service.EditBooking(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update booking")
		return
	}

	data := gin.H{"booking": b}
	if overpaid > 0 {
		// the price dropped below what was collected; the surplus is not
		// stored, the operator settles it out of band
		data["overpaid_amount"] = overpaid
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update payment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) AdvanceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.service.AdvanceStatus(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to compute advance status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"advance": st})
}

func (h *Handler) ListMemberBookings(c *gin.Context) {
	memberID, ok := pathID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListByMember(c.Request.Context(), memberID, limit, offset)
	if err != nil {
		h.writeError(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListResourceBookings(c *gin.Context) {
	resourceID, ok := pathID(c)
	if !ok {
		return
	}
	from, to, err := parseWindow(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date window")
		return
	}

	bookings, err := h.service.ListByResourceWindow(c.Request.Context(), resourceID, from, to)
	if err != nil {
		h.writeError(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func parseWindow(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse("2006-01-02", raw); err != nil {
			return from, to, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse("2006-01-02", raw); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT", conflict.Message, gin.H{
			"severity":  conflict.Severity.String(),
			"date":      conflict.Date.Format("2006-01-02"),
			"slot":      conflict.Slot,
			"can_force": !errors.Is(err, ErrSlotConflict),
		})
		return
	}

	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, pricing.ErrUnknownTier),
		errors.Is(err, pricing.ErrInvalidChargeAmount):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrMemberNotFound):
		response.Error(c, http.StatusNotFound, "MEMBER_NOT_FOUND", "Member not found")
	case errors.Is(err, ErrResourceNotFound):
		response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrSlotConflict), errors.Is(err, ErrHoldConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error())
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", err.Error())
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
