package insight

import (
	"fmt"
	"sort"

	"Beacon/internal/pkg/util"
)

// TopContentLimit 榜单固定条数上限
const TopContentLimit = 10

const contentPreviewRunes = 100

// ContentItem 榜单条目，只投影展示需要的字段
type ContentItem struct {
	ID             string `json:"id"`
	Content        string `json:"content"`
	Platform       string `json:"platform"`
	PublishedAt    string `json:"publishedAt,omitempty"`
	ScheduledFor   string `json:"scheduledFor,omitempty"`
	Impressions    int    `json:"impressions"`
	Reach          int    `json:"reach"`
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
	Shares         int    `json:"shares"`
	Views          int    `json:"views"`
	Engagement     int    `json:"engagement"`
	EngagementRate string `json:"engagementRate"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	Permalink      string `json:"permalink,omitempty"`
}

// TopContent 按互动数降序取前 10 条。互动并列时的相对顺序不承诺。
func TopContent(records []Record) []ContentItem {
	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement > ranked[j].Engagement
	})

	if len(ranked) > TopContentLimit {
		ranked = ranked[:TopContentLimit]
	}

	items := make([]ContentItem, 0, len(ranked))
	for _, r := range ranked {
		content := r.Raw.Content
		if content == "" {
			content = "(no content)"
		}

		items = append(items, ContentItem{
			ID:             r.ID,
			Content:        util.TruncateRunes(content, contentPreviewRunes),
			Platform:       r.Platform,
			PublishedAt:    r.Raw.PublishedAt,
			ScheduledFor:   r.Raw.ScheduledFor,
			Impressions:    r.Counters.Impressions,
			Reach:          r.Counters.Reach,
			Likes:          r.Counters.Likes,
			Comments:       r.Counters.Comments,
			Shares:         r.Counters.Shares,
			Views:          r.Counters.Views,
			Engagement:     r.Engagement,
			EngagementRate: fmt.Sprintf("%.1f%%", EngagementRate(r.Engagement, r.Counters.Impressions)),
			Thumbnail:      r.Raw.Thumbnail,
			Permalink:      r.Raw.Permalink,
		})
	}
	return items
}
