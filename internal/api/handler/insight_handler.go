package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightSvc service.InsightService
}

func NewInsightHandler(insightSvc service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightSvc: insightSvc,
	}
}

// GetSummary 获取聚合总览
func (h *InsightHandler) GetSummary(c *gin.Context) {
	var q dto.SummaryQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.insightSvc.GetSummary(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
