package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statService "github.com/octofitapp/octofit-tracker/internal/modules/stat/service"
	"github.com/octofitapp/octofit-tracker/pkg/response"
)

type StatHandler struct {
	service statService.StatService
}

func NewStatHandler(service statService.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
