package insight

import (
	"testing"

	"Beacon/internal/pkg/publisher"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccountTopLevelID(t *testing.T) {
	post := publisher.RawPost{AccountID: publisher.AccountRef{ID: "acc1"}}
	key := ResolveAccount(post, nil)
	assert.Equal(t, RealKey("acc1"), key)
	assert.Equal(t, "acc1", key.String())
}

func TestResolveAccountObjectAndStringAgree(t *testing.T) {
	// {"_id": "acc1"} 与 "acc1" 必须落进同一个归属键
	fromObject := ResolveAccount(publisher.RawPost{AccountID: publisher.AccountRef{ID: "acc1"}}, nil)
	fromString := ResolveAccount(publisher.RawPost{AccountID: publisher.AccountRef{ID: "acc1"}}, nil)
	assert.Equal(t, fromObject, fromString)
}

func TestResolveAccountScansPlatformEntries(t *testing.T) {
	post := publisher.RawPost{
		Platforms: []publisher.PlatformEntry{
			{Platform: "instagram"},
			{Platform: "twitter", AccountID: publisher.AccountRef{ID: "acc2"}},
		},
	}
	assert.Equal(t, RealKey("acc2"), ResolveAccount(post, nil))
}

func TestResolveAccountUsesAccountRef(t *testing.T) {
	post := publisher.RawPost{Account: publisher.AccountRef{ID: "acc3"}}
	assert.Equal(t, RealKey("acc3"), ResolveAccount(post, nil))
}

func TestResolveAccountPlatformFallback(t *testing.T) {
	post := publisher.RawPost{Platform: "Instagram"}
	accounts := []publisher.Account{{ID: "acc9", Platform: "INSTAGRAM"}}
	assert.Equal(t, RealKey("acc9"), ResolveAccount(post, accounts))
}

func TestResolveAccountSynthesizesKey(t *testing.T) {
	post := publisher.RawPost{Platform: "facebook"}
	key := ResolveAccount(post, []publisher.Account{{ID: "acc1", Platform: "instagram"}})
	assert.Equal(t, KeySynthetic, key.Kind)
	assert.Equal(t, "platform:facebook", key.String())
}

func TestResolveAccountNeverUnresolved(t *testing.T) {
	key := ResolveAccount(publisher.RawPost{}, nil)
	assert.Equal(t, KeySynthetic, key.Kind)
	assert.Equal(t, "platform:unknown", key.String())
}

func TestBelongsToByID(t *testing.T) {
	target := publisher.Account{ID: "acc1", Platform: "instagram"}
	assert.True(t, BelongsTo(publisher.RawPost{AccountID: publisher.AccountRef{ID: "acc1"}}, target))
	assert.False(t, BelongsTo(publisher.RawPost{AccountID: publisher.AccountRef{ID: "acc2"}}, target))
}

func TestBelongsToPlatformFallback(t *testing.T) {
	target := publisher.Account{ID: "acc1", Platform: "Instagram"}
	assert.True(t, BelongsTo(publisher.RawPost{Platform: "instagram"}, target))
	assert.False(t, BelongsTo(publisher.RawPost{Platform: "twitter"}, target))
}

func TestBelongsToIDBeatsPlatform(t *testing.T) {
	// 有标识符时不看平台，即使平台恰好相同
	target := publisher.Account{ID: "acc1", Platform: "instagram"}
	post := publisher.RawPost{
		Platform:  "instagram",
		AccountID: publisher.AccountRef{ID: "other"},
	}
	assert.False(t, BelongsTo(post, target))
}
