package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bucketNow = time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)

func TestDayKeysZeroFill(t *testing.T) {
	keys := DayKeys(bucketNow, 7)
	require.Len(t, keys, 7)
	assert.Equal(t, "2026-08-25", keys[0])
	assert.Equal(t, "2026-08-31", keys[6])
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestMonthKeys(t *testing.T) {
	keys := MonthKeys(bucketNow, 12)
	require.Len(t, keys, 12)
	assert.Equal(t, "2025-09", keys[0])
	assert.Equal(t, "2026-08", keys[11])
}

func TestWeekStartsCoverNinetyOneDays(t *testing.T) {
	starts := WeekStarts(bucketNow)
	require.Len(t, starts, WeeklyBucketCount)
	assert.Equal(t, "2026-08-25", starts[12].Format(time.DateOnly))
	assert.Equal(t, "2026-06-02", starts[0].Format(time.DateOnly))
	for i := 1; i < len(starts); i++ {
		assert.Equal(t, 7*24*time.Hour, starts[i].Sub(starts[i-1]))
	}
}

func TestFoldDailyAccumulates(t *testing.T) {
	records := []Record{
		{Date: "2026-08-30", Counters: Counters{Impressions: 100, Likes: 5}, Engagement: 5},
		{Date: "2026-08-30", Counters: Counters{Impressions: 50, Shares: 2}, Engagement: 2},
		{Date: "2026-08-25", Counters: Counters{Reach: 10}},
	}

	buckets := FoldDaily(records, bucketNow, 7)
	require.Len(t, buckets, 7)

	assert.Equal(t, 1, buckets[0].Posts)
	assert.Equal(t, 10, buckets[0].Reach)

	day := buckets[5]
	assert.Equal(t, "2026-08-30", day.Date)
	assert.Equal(t, 2, day.Posts)
	assert.Equal(t, 150, day.Impressions)
	assert.Equal(t, 7, day.Engagement)
}

func TestFoldDailyOutOfWindowIsAllZero(t *testing.T) {
	// 窗口 7 天，帖子在 10 天前：序列仍是 7 个全零桶
	records := []Record{
		{Date: "2026-08-21", Counters: Counters{Impressions: 999}, Engagement: 50},
	}

	buckets := FoldDaily(records, bucketNow, 7)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Zero(t, b.Posts)
		assert.Zero(t, b.Impressions)
		assert.Zero(t, b.Engagement)
	}
}

func TestFoldDailyEmptyInput(t *testing.T) {
	buckets := FoldDaily(nil, bucketNow, 30)
	require.Len(t, buckets, 30)
	for _, b := range buckets {
		assert.Zero(t, b.Posts)
	}
}

func TestFoldWeeklyPlacesRecordOnce(t *testing.T) {
	records := []Record{
		{Date: "2026-08-31", Engagement: 3, Counters: Counters{Likes: 3}},
		{Date: "2026-08-25", Engagement: 1, Counters: Counters{Likes: 1}},
		{Date: "2026-08-24", Engagement: 7, Counters: Counters{Likes: 7}},
		{Date: "2020-01-01", Engagement: 9},
	}

	buckets := FoldWeekly(records, bucketNow)
	require.Len(t, buckets, WeeklyBucketCount)

	last := buckets[12]
	assert.Equal(t, "2026-08-25", last.WeekStart)
	assert.Equal(t, 2, last.Posts)
	assert.Equal(t, 4, last.Engagement)

	prev := buckets[11]
	assert.Equal(t, 1, prev.Posts)
	assert.Equal(t, 7, prev.Engagement)

	total := 0
	for _, b := range buckets {
		total += b.Posts
	}
	assert.Equal(t, 3, total) // 2020 年的记录被静默排除
}

func TestFoldMonthlyTracksSavesAndViews(t *testing.T) {
	records := []Record{
		{Date: "2026-08-10", Counters: Counters{Saves: 4, Views: 20}, Engagement: 4},
		{Date: "2026-07-01", Counters: Counters{Views: 5}},
	}

	buckets := FoldMonthly(records, bucketNow, 12)
	require.Len(t, buckets, 12)

	aug := buckets[11]
	assert.Equal(t, "2026-08", aug.Month)
	assert.Equal(t, 4, aug.Saves)
	assert.Equal(t, 20, aug.Views)

	jul := buckets[10]
	assert.Equal(t, "2026-07", jul.Month)
	assert.Equal(t, 5, jul.Views)
}

func TestFoldMonthlySkipsMalformedDates(t *testing.T) {
	records := []Record{{Date: "oops"}, {Date: ""}}
	buckets := FoldMonthly(records, bucketNow, 12)
	for _, b := range buckets {
		assert.Zero(t, b.Posts)
	}
}
