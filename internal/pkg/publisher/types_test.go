package publisher

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRefUnmarshalString(t *testing.T) {
	var ref AccountRef
	require.NoError(t, json.Unmarshal([]byte(`"acc1"`), &ref))
	assert.Equal(t, "acc1", ref.ID)
}

func TestAccountRefUnmarshalObject(t *testing.T) {
	var ref AccountRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"acc1"}`), &ref))
	assert.Equal(t, "acc1", ref.ID)

	ref = AccountRef{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"acc2"}`), &ref))
	assert.Equal(t, "acc2", ref.ID)
}

func TestAccountRefUnmarshalPrefersMongoID(t *testing.T) {
	var ref AccountRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"m1","id":"p1"}`), &ref))
	assert.Equal(t, "m1", ref.ID)
}

func TestAccountRefUnmarshalGarbage(t *testing.T) {
	for _, raw := range []string{`123`, `null`, `[1,2]`, `true`} {
		var ref AccountRef
		require.NoError(t, json.Unmarshal([]byte(raw), &ref), raw)
		assert.Empty(t, ref.ID, raw)
	}
}

func TestRawPostToleratesMissingFields(t *testing.T) {
	var post RawPost
	require.NoError(t, json.Unmarshal([]byte(`{}`), &post))
	assert.Empty(t, post.ID)
	assert.Nil(t, post.Analytics)

	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "p1",
		"accountId": {"_id": "acc1"},
		"platforms": [{"platform": "Instagram", "accountId": "acc2"}],
		"analytics": {"likes": 3}
	}`), &post))
	assert.Equal(t, "acc1", post.AccountID.ID)
	require.Len(t, post.Platforms, 1)
	assert.Equal(t, "acc2", post.Platforms[0].AccountID.ID)
	require.NotNil(t, post.Analytics)
	assert.Equal(t, 3, post.Analytics.Likes)
	assert.Equal(t, 0, post.Analytics.Impressions)
}

func TestAccountIDFallsBackToMongoID(t *testing.T) {
	assert.Equal(t, "a1", Account{ID: "a1", MongoID: "m1"}.AccountID())
	assert.Equal(t, "m1", Account{MongoID: "m1"}.AccountID())
}
