package insight

import (
	"testing"

	"Beacon/internal/pkg/publisher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTotalsAndRate(t *testing.T) {
	// 三条 twitter 帖子：曝光 100/200/0，点赞 10/20/0
	posts := []publisher.RawPost{
		{ID: "p1", Platform: "twitter", Analytics: &publisher.RawCounters{Impressions: 100, Likes: 10}},
		{ID: "p2", Platform: "twitter", Analytics: &publisher.RawCounters{Impressions: 200, Likes: 20}},
		{ID: "p3", Platform: "twitter", Analytics: &publisher.RawCounters{}},
	}
	records := Normalize(posts)

	totals, platforms, _ := Aggregate(records, nil)

	assert.Equal(t, 3, totals.Posts)
	assert.Equal(t, 300, totals.Impressions)
	assert.Equal(t, 30, totals.Likes)
	assert.Equal(t, 30, totals.Engagement)
	assert.Equal(t, 10.0, totals.EngagementRate)

	require.Len(t, platforms, 1)
	assert.Equal(t, "twitter", platforms[0].Platform)
	assert.Equal(t, 10.0, platforms[0].EngagementRate)
}

func TestAggregateRateSafety(t *testing.T) {
	posts := []publisher.RawPost{
		{ID: "p1", Platform: "twitter", Analytics: &publisher.RawCounters{Likes: 10}},
	}
	totals, platforms, performances := Aggregate(Normalize(posts), nil)

	assert.Equal(t, 0.0, totals.EngagementRate)
	require.Len(t, platforms, 1)
	assert.Equal(t, 0.0, platforms[0].EngagementRate)
	require.Len(t, performances, 1)
	assert.Equal(t, 0.0, performances[0].EngagementRate)
}

func TestAggregateGroupsByResolvedAccount(t *testing.T) {
	// 对象形式与字符串形式的 accountId 归进同一个账号桶
	posts := []publisher.RawPost{
		{ID: "p1", Platform: "twitter", AccountID: publisher.AccountRef{ID: "acc1"}, Analytics: &publisher.RawCounters{Likes: 1}},
		{ID: "p2", Platform: "twitter", AccountID: publisher.AccountRef{ID: "acc1"}, Analytics: &publisher.RawCounters{Likes: 2}},
	}
	accounts := []publisher.Account{{ID: "acc1", Platform: "twitter", DisplayName: "Brand", Username: "brand"}}

	_, _, performances := Aggregate(Normalize(posts), accounts)

	require.Len(t, performances, 1)
	p := performances[0]
	assert.Equal(t, "acc1", p.AccountID)
	assert.False(t, p.Synthetic)
	assert.Equal(t, "Brand", p.Name)
	assert.Equal(t, 2, p.Posts)
	assert.Equal(t, 3, p.Engagement)
}

func TestAggregateSyntheticAccountBucket(t *testing.T) {
	// 无标识符且无同平台已知账号：落进 platform:facebook 合成桶
	posts := []publisher.RawPost{
		{ID: "p1", Platform: "facebook", Analytics: &publisher.RawCounters{Likes: 5}},
	}
	accounts := []publisher.Account{{ID: "acc1", Platform: "instagram"}}

	_, _, performances := Aggregate(Normalize(posts), accounts)

	require.Len(t, performances, 1)
	p := performances[0]
	assert.Equal(t, "platform:facebook", p.AccountID)
	assert.True(t, p.Synthetic)
	assert.Equal(t, 1, p.Posts)
}

func TestAggregateEmptyInput(t *testing.T) {
	totals, platforms, performances := Aggregate(nil, nil)
	assert.Zero(t, totals.Posts)
	assert.Equal(t, 0.0, totals.EngagementRate)
	assert.Empty(t, platforms)
	assert.Empty(t, performances)
}

func TestEngagementRateRounding(t *testing.T) {
	assert.Equal(t, 33.3, EngagementRate(1, 3))
	assert.Equal(t, 66.7, EngagementRate(2, 3))
	assert.Equal(t, 0.0, EngagementRate(5, 0))
}
