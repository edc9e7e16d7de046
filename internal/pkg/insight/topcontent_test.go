package insight

import (
	"fmt"
	"strings"
	"testing"

	"Beacon/internal/pkg/publisher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopContentSortedAndBounded(t *testing.T) {
	records := make([]Record, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, Record{
			ID:         fmt.Sprintf("p%d", i),
			Platform:   "instagram",
			Engagement: i,
			Counters:   Counters{Impressions: 100, Likes: i},
			Raw:        publisher.RawPost{Content: "post"},
		})
	}

	items := TopContent(records)
	require.Len(t, items, TopContentLimit)
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Engagement, items[i].Engagement)
	}
	assert.Equal(t, 14, items[0].Engagement)
}

func TestTopContentProjection(t *testing.T) {
	records := []Record{{
		ID:         "p1",
		Platform:   "twitter",
		Engagement: 10,
		Counters:   Counters{Impressions: 200, Reach: 150, Likes: 6, Comments: 2, Shares: 2, Views: 80},
		Raw: publisher.RawPost{
			Content:     "launch day",
			PublishedAt: "2026-08-20T10:00:00Z",
			Thumbnail:   "https://cdn.example.com/t.jpg",
			Permalink:   "https://twitter.example.com/p1",
		},
	}}

	items := TopContent(records)
	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, "launch day", item.Content)
	assert.Equal(t, "5.0%", item.EngagementRate)
	assert.Equal(t, "https://cdn.example.com/t.jpg", item.Thumbnail)
	assert.Equal(t, 80, item.Views)
}

func TestTopContentDefaultsAndTruncation(t *testing.T) {
	long := strings.Repeat("字", 150)
	records := []Record{
		{ID: "p1", Engagement: 2, Raw: publisher.RawPost{Content: long}},
		{ID: "p2", Engagement: 1},
	}

	items := TopContent(records)
	require.Len(t, items, 2)
	assert.Equal(t, strings.Repeat("字", 100)+"...", items[0].Content)
	assert.Equal(t, "(no content)", items[1].Content)
}

func TestTopContentZeroImpressionsRate(t *testing.T) {
	items := TopContent([]Record{{ID: "p1", Engagement: 5}})
	require.Len(t, items, 1)
	assert.Equal(t, "0.0%", items[0].EngagementRate)
}

func TestTopContentEmptyInput(t *testing.T) {
	assert.Empty(t, TopContent(nil))
}
