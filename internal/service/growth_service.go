package service

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/insight"
	"Beacon/internal/pkg/publisher"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

type GrowthService interface {
	// GetReport 获取客户维度的月度增长报告
	GetReport(ctx context.Context, customerID uint64, months int) (*dto.GrowthReportDTO, error)
}

type growthServiceImpl struct {
	publisher    publisher.Client
	customerRepo repository.CustomerAccountRepo
}

func NewGrowthService(pub publisher.Client, customerRepo repository.CustomerAccountRepo) GrowthService {
	return &growthServiceImpl{
		publisher:    pub,
		customerRepo: customerRepo,
	}
}

func (s *growthServiceImpl) GetReport(ctx context.Context, customerID uint64, months int) (*dto.GrowthReportDTO, error) {
	if months <= 0 || months > insight.MonthlyBucketCount {
		months = insight.MonthlyBucketCount
	}

	key := consts.InsightGrowthKey + fmt.Sprintf("%d:%d", customerID, months)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.GrowthReportDTO
		if err := json.Unmarshal([]byte(val), &res); err == nil {
			return &res, nil
		}
	}

	customer, err := s.customerRepo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	accountIDs, err := s.customerRepo.ListAccountIDs(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	accounts, window, err := s.fetchWindow(ctx, now, months)
	if err != nil {
		log.ErrorContext(ctx, "publisher fetch failed", "customer_id", customerID, "err", err)
		return nil, ErrUpstreamUnavailable
	}

	posts := filterByAccountIDs(window.Posts, accounts, accountIDs)
	records := insight.Normalize(posts)

	totals, platforms, performances := insight.Aggregate(records, accounts)
	res := &dto.GrowthReportDTO{
		CustomerID: customerID,
		Months:     months,
		Totals:     totals,
		Monthly:    insight.FoldMonthly(records, now, months),
		Weekly:     insight.FoldWeekly(records, now),
		Platforms:  platforms,
		Accounts:   performances,
		TopContent: insight.TopContent(records),
		BestTimes:  insight.BestTimes(records),
	}

	cacheResult(ctx, key, res)
	return res, nil
}

func (s *growthServiceImpl) fetchWindow(ctx context.Context, now time.Time, months int) ([]publisher.Account, *publisher.AnalyticsWindow, error) {
	var (
		accounts []publisher.Account
		window   *publisher.AnalyticsWindow
	)

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startDate := firstOfMonth.AddDate(0, -(months - 1), 0).Format(time.DateOnly)
	endDate := now.Format(time.DateOnly)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.publisher.ListAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		window, err = s.publisher.GetAnalytics(gctx, startDate, endDate, config.Cfg.Publisher.PageLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	accounts = mergeAccounts(accounts, window.Accounts)
	return accounts, window, nil
}

// filterByAccountIDs 只保留归属于客户名下账号的记录。客户没有
// 关联账号时得到空集，返回全零聚合而不是报错。
func filterByAccountIDs(posts []publisher.RawPost, accounts []publisher.Account, accountIDs []string) []publisher.RawPost {
	targets := make([]publisher.Account, 0, len(accountIDs))
	for _, id := range accountIDs {
		target := publisher.Account{ID: id}
		for _, acc := range accounts {
			if acc.AccountID() == id {
				target = acc
				break
			}
		}
		targets = append(targets, target)
	}

	filtered := make([]publisher.RawPost, 0, len(posts))
	for _, p := range posts {
		for _, target := range targets {
			if insight.BelongsTo(p, target) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
