package insight

import (
	"testing"

	"Beacon/internal/pkg/publisher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDerivesEngagement(t *testing.T) {
	records := Normalize([]publisher.RawPost{{
		ID:          "p1",
		Platform:    "Instagram",
		PublishedAt: "2026-08-20T10:30:00Z",
		Analytics: &publisher.RawCounters{
			Impressions: 100,
			Likes:       4,
			Comments:    3,
			Shares:      2,
			Saves:       1,
		},
	}})

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "2026-08-20", r.Date)
	assert.Equal(t, "instagram", r.Platform)
	assert.Equal(t, 10, r.Engagement)
	assert.Equal(t, 100, r.Counters.Impressions)
}

func TestNormalizeEmptyRecord(t *testing.T) {
	records := Normalize([]publisher.RawPost{{}})

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "", r.Date)
	assert.Equal(t, "unknown", r.Platform)
	assert.Equal(t, 0, r.Engagement)
	assert.Equal(t, Counters{}, r.Counters)
}

func TestNormalizeDateFallsBackToSchedule(t *testing.T) {
	records := Normalize([]publisher.RawPost{{
		ScheduledFor: "2026-09-01T08:00:00Z",
	}})
	assert.Equal(t, "2026-09-01", records[0].Date)
}

func TestNormalizePlatformFallsBackToEntries(t *testing.T) {
	records := Normalize([]publisher.RawPost{{
		Platforms: []publisher.PlatformEntry{{Platform: "TikTok"}},
	}})
	assert.Equal(t, "tiktok", records[0].Platform)
}
