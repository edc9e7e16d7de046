package insight

import (
	"math"
	"sort"

	"Beacon/internal/pkg/publisher"
)

// Totals 全量汇总
type Totals struct {
	Posts          int     `json:"posts"`
	Impressions    int     `json:"impressions"`
	Reach          int     `json:"reach"`
	Clicks         int     `json:"clicks"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Saves          int     `json:"saves"`
	Views          int     `json:"views"`
	Engagement     int     `json:"engagement"`
	EngagementRate float64 `json:"engagementRate"`
}

// PlatformStats 平台维度汇总
type PlatformStats struct {
	Platform       string  `json:"platform"`
	Posts          int     `json:"posts"`
	Impressions    int     `json:"impressions"`
	Reach          int     `json:"reach"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Engagement     int     `json:"engagement"`
	EngagementRate float64 `json:"engagementRate"`
}

// AccountPerformance 账号维度汇总。AccountID 可能是合成键
// （platform:xxx），此时账号元数据为空。
type AccountPerformance struct {
	AccountID      string  `json:"accountId"`
	Synthetic      bool    `json:"synthetic"`
	Name           string  `json:"name,omitempty"`
	Username       string  `json:"username,omitempty"`
	Platform       string  `json:"platform"`
	Avatar         string  `json:"avatar,omitempty"`
	Posts          int     `json:"posts"`
	Impressions    int     `json:"impressions"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Engagement     int     `json:"engagement"`
	EngagementRate float64 `json:"engagementRate"`
}

// Round1 保留一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EngagementRate 互动率（百分比，一位小数）。曝光为 0 时恒为 0，
// 不产生 NaN 或 Inf。
func EngagementRate(engagement, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return Round1(float64(engagement) / float64(impressions) * 100)
}

// Aggregate 对同一份记录独立做总量、平台、账号三路累加。
// 互动率在全部折叠完成后单独一轮计算，因为它依赖最终总量。
func Aggregate(records []Record, accounts []publisher.Account) (Totals, []PlatformStats, []AccountPerformance) {
	var totals Totals
	platformIndex := make(map[string]*PlatformStats)
	accountIndex := make(map[AccountKey]*AccountPerformance)

	accountMeta := make(map[string]publisher.Account, len(accounts))
	for _, acc := range accounts {
		accountMeta[acc.AccountID()] = acc
	}

	for _, r := range records {
		totals.Posts++
		totals.Impressions += r.Counters.Impressions
		totals.Reach += r.Counters.Reach
		totals.Clicks += r.Counters.Clicks
		totals.Likes += r.Counters.Likes
		totals.Comments += r.Counters.Comments
		totals.Shares += r.Counters.Shares
		totals.Saves += r.Counters.Saves
		totals.Views += r.Counters.Views
		totals.Engagement += r.Engagement

		p, ok := platformIndex[r.Platform]
		if !ok {
			p = &PlatformStats{Platform: r.Platform}
			platformIndex[r.Platform] = p
		}
		p.Posts++
		p.Impressions += r.Counters.Impressions
		p.Reach += r.Counters.Reach
		p.Likes += r.Counters.Likes
		p.Comments += r.Counters.Comments
		p.Shares += r.Counters.Shares
		p.Engagement += r.Engagement

		key := ResolveAccount(r.Raw, accounts)
		a, ok := accountIndex[key]
		if !ok {
			a = &AccountPerformance{
				AccountID: key.String(),
				Synthetic: key.Kind == KeySynthetic,
				Platform:  r.Platform,
			}
			if meta, found := accountMeta[key.ID]; key.Kind == KeyReal && found {
				a.Name = meta.DisplayName
				a.Username = meta.Username
				a.Platform = meta.Platform
				a.Avatar = meta.Avatar
			}
			accountIndex[key] = a
		}
		a.Posts++
		a.Impressions += r.Counters.Impressions
		a.Likes += r.Counters.Likes
		a.Comments += r.Counters.Comments
		a.Shares += r.Counters.Shares
		a.Engagement += r.Engagement
	}

	totals.EngagementRate = EngagementRate(totals.Engagement, totals.Impressions)

	platforms := make([]PlatformStats, 0, len(platformIndex))
	for _, p := range platformIndex {
		p.EngagementRate = EngagementRate(p.Engagement, p.Impressions)
		platforms = append(platforms, *p)
	}
	sort.Slice(platforms, func(i, j int) bool {
		if platforms[i].Engagement != platforms[j].Engagement {
			return platforms[i].Engagement > platforms[j].Engagement
		}
		return platforms[i].Platform < platforms[j].Platform
	})

	performances := make([]AccountPerformance, 0, len(accountIndex))
	for _, a := range accountIndex {
		a.EngagementRate = EngagementRate(a.Engagement, a.Impressions)
		performances = append(performances, *a)
	}
	sort.Slice(performances, func(i, j int) bool {
		if performances[i].Engagement != performances[j].Engagement {
			return performances[i].Engagement > performances[j].Engagement
		}
		return performances[i].AccountID < performances[j].AccountID
	})

	return totals, platforms, performances
}
