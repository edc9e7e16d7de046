package service

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/insight"
	"Beacon/internal/pkg/publisher"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

type InsightService interface {
	// GetSummary 获取指定天数窗口的全量聚合总览
	GetSummary(ctx context.Context, q *dto.SummaryQueryDTO) (*dto.SummaryDTO, error)
}

type insightServiceImpl struct {
	publisher publisher.Client
}

func NewInsightService(pub publisher.Client) InsightService {
	return &insightServiceImpl{publisher: pub}
}

func (s *insightServiceImpl) GetSummary(ctx context.Context, q *dto.SummaryQueryDTO) (*dto.SummaryDTO, error) {
	days := q.Days
	if days <= 0 {
		days = 30
	}

	key := summaryCacheKey(days, q.AccountID, q.Platform)
	if val, err := redis.GetValue(ctx, key); err == nil && val != "" {
		var res dto.SummaryDTO
		if err := json.Unmarshal([]byte(val), &res); err == nil {
			return &res, nil
		}
	}

	now := time.Now()
	accounts, window, err := s.fetchWindow(ctx, now, days)
	if err != nil {
		log.ErrorContext(ctx, "publisher fetch failed", "err", err)
		return nil, ErrUpstreamUnavailable
	}

	posts := filterPosts(window.Posts, accounts, q.AccountID, q.Platform)
	records := insight.Normalize(posts)

	totals, platforms, performances := insight.Aggregate(records, accounts)
	res := &dto.SummaryDTO{
		Days:       days,
		Totals:     totals,
		Overview:   window.Overview,
		Daily:      insight.FoldDaily(records, now, days),
		Platforms:  platforms,
		Accounts:   performances,
		TopContent: insight.TopContent(records),
		BestTimes:  insight.BestTimes(records),
	}

	// 粉丝数据需要上游加购套餐，很多租户没有开通；拿不到就置 null，
	// 不影响主聚合结果
	if q.AccountID != "" {
		stats, err := s.publisher.GetFollowerStats(ctx, q.AccountID)
		if err != nil {
			log.WarnContext(ctx, "follower stats unavailable", "account_id", q.AccountID, "err", err)
		} else {
			res.FollowerStats = stats
		}
	}

	cacheResult(ctx, key, res)
	return res, nil
}

// fetchWindow 并行拉取账号列表与分析窗口，两者都成功才继续
func (s *insightServiceImpl) fetchWindow(ctx context.Context, now time.Time, days int) ([]publisher.Account, *publisher.AnalyticsWindow, error) {
	var (
		accounts []publisher.Account
		window   *publisher.AnalyticsWindow
	)

	startDate := util.GetMidnight(now).AddDate(0, 0, -(days - 1)).Format(time.DateOnly)
	endDate := util.GetMidnight(now).Format(time.DateOnly)

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

	// 分析响应里可能附带账号快照，并入已知账号便于归属
	accounts = mergeAccounts(accounts, window.Accounts)
	return accounts, window, nil
}

// filterPosts 在归一化之前按账号/平台过滤原始记录。
// 账号过滤复用与归属相同的标识符解析链。
func filterPosts(posts []publisher.RawPost, accounts []publisher.Account, accountID, platform string) []publisher.RawPost {
	if accountID == "" && platform == "" {
		return posts
	}

	var target publisher.Account
	if accountID != "" {
		target = publisher.Account{ID: accountID}
		for _, acc := range accounts {
			if acc.AccountID() == accountID {
				target = acc
				break
			}
		}
	}

	filtered := make([]publisher.RawPost, 0, len(posts))
	for _, p := range posts {
		if accountID != "" && !insight.BelongsTo(p, target) {
			continue
		}
		if platform != "" && !strings.EqualFold(insight.PlatformOf(p), platform) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func mergeAccounts(known, extra []publisher.Account) []publisher.Account {
	if len(extra) == 0 {
		return known
	}
	seen := make(map[string]struct{}, len(known))
	for _, acc := range known {
		seen[acc.AccountID()] = struct{}{}
	}
	for _, acc := range extra {
		if _, ok := seen[acc.AccountID()]; ok {
			continue
		}
		known = append(known, acc)
		seen[acc.AccountID()] = struct{}{}
	}
	return known
}

func summaryCacheKey(days int, accountID, platform string) string {
	return consts.InsightSummaryKey + fmt.Sprintf("%d:%s:%s", days, accountID, strings.ToLower(platform))
}

// cacheResult 缓存失败只记日志，不影响响应
func cacheResult(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ttl := time.Duration(config.Cfg.Insight.CacheTTL) * time.Second
	if err := redis.SetWithExpiration(ctx, key, string(data), ttl); err != nil {
		log.WarnContext(ctx, "insight cache write failed", "key", key, "err", err)
	}
}
