package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentor-booking-backend/schedule"
)

type ScheduleService interface {
	InsertSchedule(ctx context.Context, s schedule.MentorSchedule) (schedule.MentorSchedule, error)
	GetActiveSchedule(ctx context.Context, id string) (schedule.MentorSchedule, error)
	GetActiveSchedules(ctx context.Context) ([]schedule.MentorSchedule, error)
	UpdateSchedule(ctx context.Context, s schedule.MentorSchedule) error
	DeleteSchedule(ctx context.Context, id string) error
}

type ScheduleHandler struct {
	service ScheduleService
}

func NewScheduleHandler(service ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var s schedule.MentorSchedule

	if err := c.BindJSON(&s); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.InsertSchedule(c.Request.Context(), s)

	if err != nil {
		c.Error(err)
		if errors.Is(err, schedule.ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.service.GetActiveSchedules(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve schedules"})
		return
	}

	c.IndentedJSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	s, err := h.service.GetActiveSchedule(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch schedule"})
		return
	}

	c.IndentedJSON(http.StatusOK, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var s schedule.MentorSchedule

	if err := c.BindJSON(&s); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	s.ID = c.Param("id")

	err := h.service.UpdateSchedule(c.Request.Context(), s)

	if err != nil {
		c.Error(err)
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		} else if errors.Is(err, schedule.ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "schedule updated"})
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteSchedule(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}
