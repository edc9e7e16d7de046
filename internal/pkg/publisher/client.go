package publisher

import (
	"Beacon/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 上游发布平台 API 客户端
type Client interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	GetAnalytics(ctx context.Context, startDate, endDate string, limit int) (*AnalyticsWindow, error)
	GetFollowerStats(ctx context.Context, accountID string) (*FollowerStats, error)
}

type clientImpl struct {
	http *resty.Client
}

func NewClient(cfg config.PublisherConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetHeader("Accept", "application/json")

	return &clientImpl{http: client}
}

func (c *clientImpl) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get("/accounts")
	if err != nil {
		return nil, fmt.Errorf("publisher accounts request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("publisher accounts returned status %d", resp.StatusCode())
	}
	return accounts, nil
}

func (c *clientImpl) GetAnalytics(ctx context.Context, startDate, endDate string, limit int) (*AnalyticsWindow, error) {
	var window AnalyticsWindow
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"startDate": startDate,
			"endDate":   endDate,
			"limit":     fmt.Sprintf("%d", limit),
		}).
		SetResult(&window).
		Get("/analytics")
	if err != nil {
		return nil, fmt.Errorf("publisher analytics request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("publisher analytics returned status %d", resp.StatusCode())
	}
	return &window, nil
}

func (c *clientImpl) GetFollowerStats(ctx context.Context, accountID string) (*FollowerStats, error) {
	var stats FollowerStats
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("accountId", accountID).
		SetResult(&stats).
		Get("/analytics/follower-stats")
	if err != nil {
		return nil, fmt.Errorf("publisher follower-stats request failed: %w", err)
	}
	if resp.IsError() {
		// 常见于租户未开通加购套餐，调用方按可缺省处理
		return nil, fmt.Errorf("publisher follower-stats returned status %d", resp.StatusCode())
	}
	return &stats, nil
}
