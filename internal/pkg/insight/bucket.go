package insight

import (
	"time"

	"Beacon/internal/pkg/util"
)

const (
	// WeeklyBucketCount 周序列固定 13 个 7 天桶，覆盖 91 天
	WeeklyBucketCount = 13
	// MonthlyBucketCount 月序列固定 12 个自然月
	MonthlyBucketCount = 12
)

// DailyBucket 单日聚合
type DailyBucket struct {
	Date        string `json:"date"`
	Posts       int    `json:"posts"`
	Impressions int    `json:"impressions"`
	Reach       int    `json:"reach"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Shares      int    `json:"shares"`
	Engagement  int    `json:"engagement"`
}

// WeeklyBucket 7 天桶聚合，按周起始日期标识
type WeeklyBucket struct {
	WeekStart   string `json:"weekStart"`
	Posts       int    `json:"posts"`
	Impressions int    `json:"impressions"`
	Reach       int    `json:"reach"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Shares      int    `json:"shares"`
	Engagement  int    `json:"engagement"`
}

// MonthlyBucket 自然月聚合，比日/周桶额外跟踪收藏与播放
type MonthlyBucket struct {
	Month       string `json:"month"` // YYYY-MM
	Posts       int    `json:"posts"`
	Impressions int    `json:"impressions"`
	Reach       int    `json:"reach"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Shares      int    `json:"shares"`
	Saves       int    `json:"saves"`
	Views       int    `json:"views"`
	Engagement  int    `json:"engagement"`
}

// DayKeys 生成窗口内的全部日期键，时间升序。窗口形状与折叠逻辑
// 分离，空桶由此保证一定出现在输出里。
func DayKeys(now time.Time, days int) []string {
	keys := make([]string, 0, days)
	midnight := util.GetMidnight(now)
	for i := days - 1; i >= 0; i-- {
		keys = append(keys, midnight.AddDate(0, 0, -i).Format(time.DateOnly))
	}
	return keys
}

// MonthKeys 生成最近 months 个月的月份键，时间升序
func MonthKeys(now time.Time, months int) []string {
	keys := make([]string, 0, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		keys = append(keys, first.AddDate(0, -i, 0).Format("2006-01"))
	}
	return keys
}

// WeekStarts 生成 13 个周桶的起始日，时间升序。最新一桶以今天收尾，
// 即 [今天-6天, 明天) ，整体覆盖 91 天。
func WeekStarts(now time.Time) []time.Time {
	starts := make([]time.Time, 0, WeeklyBucketCount)
	latest := util.GetMidnight(now).AddDate(0, 0, -6)
	for i := WeeklyBucketCount - 1; i >= 0; i-- {
		starts = append(starts, latest.AddDate(0, 0, -7*i))
	}
	return starts
}

// FoldDaily 把记录折叠进预置的日桶，窗口外的记录静默跳过
func FoldDaily(records []Record, now time.Time, days int) []DailyBucket {
	keys := DayKeys(now, days)
	index := make(map[string]int, len(keys))
	buckets := make([]DailyBucket, len(keys))
	for i, key := range keys {
		buckets[i] = DailyBucket{Date: key}
		index[key] = i
	}

	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Posts++
		b.Impressions += r.Counters.Impressions
		b.Reach += r.Counters.Reach
		b.Likes += r.Counters.Likes
		b.Comments += r.Counters.Comments
		b.Shares += r.Counters.Shares
		b.Engagement += r.Engagement
	}
	return buckets
}

// FoldWeekly 把记录折叠进 13 个互斥的 7 天区间 [start, start+7d)
func FoldWeekly(records []Record, now time.Time) []WeeklyBucket {
	starts := WeekStarts(now)
	buckets := make([]WeeklyBucket, len(starts))
	for i, start := range starts {
		buckets[i] = WeeklyBucket{WeekStart: start.Format(time.DateOnly)}
	}

	for _, r := range records {
		day, err := time.ParseInLocation(time.DateOnly, r.Date, now.Location())
		if err != nil {
			continue
		}
		for i, start := range starts {
			if day.Before(start) || !day.Before(start.AddDate(0, 0, 7)) {
				continue
			}
			b := &buckets[i]
			b.Posts++
			b.Impressions += r.Counters.Impressions
			b.Reach += r.Counters.Reach
			b.Likes += r.Counters.Likes
			b.Comments += r.Counters.Comments
			b.Shares += r.Counters.Shares
			b.Engagement += r.Engagement
			break
		}
	}
	return buckets
}

// FoldMonthly 把记录折叠进最近 months 个自然月
func FoldMonthly(records []Record, now time.Time, months int) []MonthlyBucket {
	keys := MonthKeys(now, months)
	index := make(map[string]int, len(keys))
	buckets := make([]MonthlyBucket, len(keys))
	for i, key := range keys {
		buckets[i] = MonthlyBucket{Month: key}
		index[key] = i
	}

	for _, r := range records {
		if len(r.Date) < 7 {
			continue
		}
		i, ok := index[r.Date[:7]]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Posts++
		b.Impressions += r.Counters.Impressions
		b.Reach += r.Counters.Reach
		b.Likes += r.Counters.Likes
		b.Comments += r.Counters.Comments
		b.Shares += r.Counters.Shares
		b.Saves += r.Counters.Saves
		b.Views += r.Counters.Views
		b.Engagement += r.Engagement
	}
	return buckets
}
