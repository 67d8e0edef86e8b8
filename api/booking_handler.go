package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	bk "github.com/mentorhub/mentor-booking-backend/booking"
	"github.com/mentorhub/mentor-booking-backend/group"
	"github.com/mentorhub/mentor-booking-backend/schedule"
)

type BookingService interface {
	GetActiveBookings(ctx context.Context) ([]bk.Booking, error)
	GetHistoricalBookings(ctx context.Context) ([]bk.Booking, error)
	FindBookingsPerClass(ctx context.Context, classID string) ([]bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindLedgerEntries(ctx context.Context, bookingID string) ([]bk.LedgerEntry, error)
	CreateBooking(ctx context.Context, scheduleID, groupID string) (bk.Booking, error)
	AcceptBooking(ctx context.Context, id string) (bk.Booking, error)
	RejectBooking(ctx context.Context, id string) (bk.Booking, error)
	CancelBooking(ctx context.Context, id string, actor bk.Actor) (bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListActive)
	rg.GET("/history", h.ListHistorical)
	rg.GET("/class/:classId", h.ListPerClass)
	rg.GET("/booking/:id", h.GetByID)
	rg.GET("/booking/:id/ledger", h.GetLedger)
	rg.POST("", h.Create)
	rg.PUT("/:id/accept", h.Accept)
	rg.PUT("/:id/reject", h.Reject)
	rg.PUT("/:id/cancel", h.Cancel)
}

func (h *BookingHandler) ListActive(c *gin.Context) {
	if bookings, err := h.service.GetActiveBookings(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) ListHistorical(c *gin.Context) {
	if bookings, err := h.service.GetHistoricalBookings(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
	} else {
		c.IndentedJSON(http.StatusOK, bookings)
	}
}

func (h *BookingHandler) ListPerClass(c *gin.Context) {
	classID := c.Param("classId")
	bookings, err := h.service.FindBookingsPerClass(c.Request.Context(), classID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch booking",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	entries, err := h.service.FindLedgerEntries(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch ledger entries",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, entries)
}

type createBookingRequest struct {
	ScheduleID string `json:"scheduleId" binding:"required"`
	GroupID    string `json:"groupId" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), req.ScheduleID, req.GroupID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, group.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule or group not found"})
		} else if errors.Is(err, bk.ErrInvalidDuration) || errors.Is(err, bk.ErrEmptyGroup) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Accept(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.AcceptBooking(c.Request.Context(), id)

	if err != nil {
		h.transitionError(c, err, "failed to accept booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.RejectBooking(c.Request.Context(), id)

	if err != nil {
		h.transitionError(c, err, "failed to reject booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	actor := bk.Actor(strings.ToUpper(c.Query("actor")))

	booking, err := h.service.CancelBooking(c.Request.Context(), id, actor)

	if err != nil {
		h.transitionError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) transitionError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	if errors.Is(err, bk.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	} else if errors.Is(err, bk.ErrInvalidBookingState) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
	} else if errors.Is(err, bk.ErrInvalidActor) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actor must be MENTOR or STUDENT"})
	} else if errors.Is(err, bk.ErrBookingConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "conflicting operation in progress, retry"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
