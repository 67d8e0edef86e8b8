package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentor-booking-backend/group"
)

type GroupService interface {
	GetGroups(ctx context.Context) ([]group.Group, error)
	GetActiveGroup(ctx context.Context, id string) (group.Group, error)
}

type GroupHandler struct {
	service GroupService
}

func NewGroupHandler(service GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

func (h *GroupHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.service.GetGroups(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve groups"})
		return
	}

	c.IndentedJSON(http.StatusOK, groups)
}

func (h *GroupHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	g, err := h.service.GetActiveGroup(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, group.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch group"})
		return
	}

	c.IndentedJSON(http.StatusOK, g)
}
