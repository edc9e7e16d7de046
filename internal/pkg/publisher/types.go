package publisher

import (
	"github.com/goccy/go-json"
)

// AccountRef 上游账号引用。上游在不同接口里会把同一个字段给成
// 字符串 id 或 {"_id": "..."} / {"id": "..."} 对象，这里收敛成一种形状。
// 解析永远不报错，识别不了就保持空。
type AccountRef struct {
	ID string
}

func (r *AccountRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = s
		return nil
	}

	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.MongoID != "" {
			r.ID = obj.MongoID
		} else {
			r.ID = obj.ID
		}
	}
	return nil
}

func (r AccountRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Account 上游返回的已绑定账号
type Account struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	Platform    string `json:"platform"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
}

// AccountID id 与 _id 字段择一返回
func (a Account) AccountID() string {
	if a.ID != "" {
		return a.ID
	}
	return a.MongoID
}

// PlatformEntry 帖子内的分平台条目
type PlatformEntry struct {
	Platform  string     `json:"platform"`
	AccountID AccountRef `json:"accountId"`
}

// RawCounters 上游分析计数，全部可缺省
type RawCounters struct {
	Impressions int `json:"impressions"`
	Reach       int `json:"reach"`
	Clicks      int `json:"clicks"`
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Saves       int `json:"saves"`
	Views       int `json:"views"`
}

// RawPost 上游帖子记录，任何字段都可能缺失
type RawPost struct {
	ID           string          `json:"id"`
	Content      string          `json:"content"`
	Platform     string          `json:"platform"`
	PublishedAt  string          `json:"publishedAt"`
	ScheduledFor string          `json:"scheduledFor"`
	AccountID    AccountRef      `json:"accountId"`
	Account      AccountRef      `json:"account"`
	Platforms    []PlatformEntry `json:"platforms"`
	Analytics    *RawCounters    `json:"analytics"`
	Thumbnail    string          `json:"thumbnail"`
	Permalink    string          `json:"permalink"`
}

// Overview 上游自带的汇总计数，可能缺失
type Overview struct {
	TotalPosts       int `json:"totalPosts"`
	TotalImpressions int `json:"totalImpressions"`
	TotalEngagement  int `json:"totalEngagement"`
}

// AnalyticsWindow GET /analytics 响应
type AnalyticsWindow struct {
	Posts    []RawPost `json:"posts"`
	Overview *Overview `json:"overview"`
	Accounts []Account `json:"accounts"`
}

// FollowerStats GET /analytics/follower-stats 响应，需要付费套餐
type FollowerStats struct {
	AccountID      string  `json:"accountId"`
	TotalFollowers int     `json:"totalFollowers"`
	FollowerGrowth int     `json:"followerGrowth"`
	GrowthRate     float64 `json:"growthRate"`
}
