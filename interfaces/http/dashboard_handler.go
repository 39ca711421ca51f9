package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/usecase"
)

type IDashboardHandler interface {
	Stats(c *gin.Context)
	Videos(c *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUsecase.Stats(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *gin.Context) {
	videos, err := h.dashboardUsecase.Videos(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
