package insight

import (
	"strings"

	"Beacon/internal/pkg/publisher"
)

// Counters 归一化后的原始计数
type Counters struct {
	Impressions int `json:"impressions"`
	Reach       int `json:"reach"`
	Clicks      int `json:"clicks"`
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Saves       int `json:"saves"`
	Views       int `json:"views"`
}

// Record 归一化后的帖子记录。Engagement 永远由四项计数重算，
// 不信任上游自带的互动字段。Raw 保留原始记录供归属与排榜使用。
type Record struct {
	ID         string
	Date       string // YYYY-MM-DD，取发布时间，缺失时退回排期时间
	Platform   string // 小写
	Counters   Counters
	Engagement int
	Raw        publisher.RawPost
}

// Normalize 把上游的松散记录转成统一形状。任何字段缺失都按零值
// 降级，不会丢弃记录，也不会报错。
func Normalize(posts []publisher.RawPost) []Record {
	records := make([]Record, 0, len(posts))
	for _, p := range posts {
		records = append(records, normalizeOne(p))
	}
	return records
}

func normalizeOne(p publisher.RawPost) Record {
	var c Counters
	if p.Analytics != nil {
		c = Counters{
			Impressions: p.Analytics.Impressions,
			Reach:       p.Analytics.Reach,
			Clicks:      p.Analytics.Clicks,
			Likes:       p.Analytics.Likes,
			Comments:    p.Analytics.Comments,
			Shares:      p.Analytics.Shares,
			Saves:       p.Analytics.Saves,
			Views:       p.Analytics.Views,
		}
	}

	return Record{
		ID:         p.ID,
		Date:       effectiveDate(p),
		Platform:   platformOf(p),
		Counters:   c,
		Engagement: c.Likes + c.Comments + c.Shares + c.Saves,
		Raw:        p,
	}
}

func effectiveDate(p publisher.RawPost) string {
	ts := p.PublishedAt
	if ts == "" {
		ts = p.ScheduledFor
	}
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

// PlatformOf 提取记录的归一化平台名，供过滤与归属共用
func PlatformOf(p publisher.RawPost) string {
	return platformOf(p)
}

func platformOf(p publisher.RawPost) string {
	platform := p.Platform
	if platform == "" && len(p.Platforms) > 0 {
		platform = p.Platforms[0].Platform
	}
	if platform == "" {
		platform = "unknown"
	}
	return strings.ToLower(platform)
}
