package job

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/logger"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/service"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// WarmInsightJob 周期性预热默认窗口的总览缓存，保证面板首屏命中热数据
type WarmInsightJob struct {
	insightSvc service.InsightService
}

func NewWarmInsightJob(insightSvc service.InsightService) *WarmInsightJob {
	return &WarmInsightJob{
		insightSvc: insightSvc,
	}
}

func (s *WarmInsightJob) Run() {
	traceID := "job-warm-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例预热
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.InsightWarmLock, lockValue, time.Minute*5, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.InsightWarmLock, lockValue)

	days := config.Cfg.Insight.WarmDays

	// 先清掉旧缓存，让本次计算结果落进去
	q := &dto.SummaryQueryDTO{Days: days}
	_ = redis.DeleteKey(ctx, consts.InsightSummaryKey+fmt.Sprintf("%d::", days))

	start := time.Now()
	if _, err := s.insightSvc.GetSummary(ctx, q); err != nil {
		log.ErrorContext(ctx, "WarmInsightJob failed", "days", days, "err", err)
		return
	}

	log.InfoContext(ctx, "WarmInsightJob done", "days", days, "latency", time.Since(start))
}
