package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GrowthHandler struct {
	growthSvc service.GrowthService
}

func NewGrowthHandler(growthSvc service.GrowthService) *GrowthHandler {
	return &GrowthHandler{
		growthSvc: growthSvc,
	}
}

// GetReport 获取客户增长报告
func (h *GrowthHandler) GetReport(c *gin.Context) {
	customerIDStr := c.Param("customer_id")
	customerID, err := strconv.ParseUint(customerIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var q dto.GrowthQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.growthSvc.GetReport(c.Request.Context(), customerID, q.Months)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
