package dto

import (
	"Beacon/internal/pkg/insight"
	"Beacon/internal/pkg/publisher"
)

// SummaryQueryDTO 总览查询参数
type SummaryQueryDTO struct {
	Days      int    `form:"days,default=30" binding:"omitempty,min=1,max=365"`
	AccountID string `form:"account_id" binding:"omitempty,max=64"`
	Platform  string `form:"platform" binding:"omitempty,max=32"`
}

// GrowthQueryDTO 增长报告查询参数
type GrowthQueryDTO struct {
	Months int `form:"months,default=12" binding:"omitempty,min=1,max=12"`
}

// SummaryDTO 总览聚合响应
type SummaryDTO struct {
	Days          int                          `json:"days"`
	Totals        insight.Totals               `json:"totals"`
	Overview      *publisher.Overview          `json:"overview,omitempty"`
	Daily         []insight.DailyBucket        `json:"daily"`
	Platforms     []insight.PlatformStats      `json:"platforms"`
	Accounts      []insight.AccountPerformance `json:"accounts"`
	TopContent    []insight.ContentItem        `json:"topContent"`
	BestTimes     []insight.BestTimeSlot       `json:"bestTimes"`
	FollowerStats *publisher.FollowerStats     `json:"followerStats"` // 未开通加购时为 null
}

// GrowthReportDTO 客户增长报告响应
type GrowthReportDTO struct {
	CustomerID uint64                       `json:"customerId"`
	Months     int                          `json:"months"`
	Totals     insight.Totals               `json:"totals"`
	Monthly    []insight.MonthlyBucket      `json:"monthly"`
	Weekly     []insight.WeeklyBucket       `json:"weekly"`
	Platforms  []insight.PlatformStats      `json:"platforms"`
	Accounts   []insight.AccountPerformance `json:"accounts"`
	TopContent []insight.ContentItem        `json:"topContent"`
	BestTimes  []insight.BestTimeSlot       `json:"bestTimes"`
}
