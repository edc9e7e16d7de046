package insight

import (
	"strings"

	"Beacon/internal/pkg/publisher"
)

// KeyKind 归属键的种类
type KeyKind int

const (
	// KeyReal 命中了已知账号 id
	KeyReal KeyKind = iota
	// KeySynthetic 无任何标识符，按平台名合成
	KeySynthetic
)

// AccountKey 归属结果。真实 id 与合成键用 Kind 区分，
// 下游不会把两者混在一起比较。
type AccountKey struct {
	Kind KeyKind
	ID   string // Real 时为账号 id，Synthetic 时为平台名
}

func RealKey(id string) AccountKey {
	return AccountKey{Kind: KeyReal, ID: id}
}

func SyntheticKey(platform string) AccountKey {
	return AccountKey{Kind: KeySynthetic, ID: platform}
}

// String 输出对外展示用的键。合成键带 platform: 前缀，
// 保证与真实 id 不会撞名。
func (k AccountKey) String() string {
	if k.Kind == KeySynthetic {
		return "platform:" + k.ID
	}
	return k.ID
}

// recordAccountID 按优先级提取记录里的账号标识符：
// 顶层 accountId → platforms[].accountId → account 引用。
// 上游对标识符放在哪里并不一致，所以要逐级找。
func recordAccountID(p publisher.RawPost) string {
	if p.AccountID.ID != "" {
		return p.AccountID.ID
	}
	for _, entry := range p.Platforms {
		if entry.AccountID.ID != "" {
			return entry.AccountID.ID
		}
	}
	return p.Account.ID
}

// ResolveAccount 把一条原始记录归属到唯一的 AccountKey，永不失败。
// 找不到任何标识符时退回平台名匹配，再退到合成键，保证没有记录
// 会被静默丢掉（上游的分析负载确实会整体缺失账号标识）。
func ResolveAccount(p publisher.RawPost, accounts []publisher.Account) AccountKey {
	if id := recordAccountID(p); id != "" {
		return RealKey(id)
	}

	platform := platformOf(p)
	for _, acc := range accounts {
		if strings.EqualFold(acc.Platform, platform) {
			return RealKey(acc.AccountID())
		}
	}
	return SyntheticKey(platform)
}

// BelongsTo 判断记录是否属于目标账号，用于账号维度过滤。
// 解析顺序与 ResolveAccount 一致，只是短路成布尔结果。
func BelongsTo(p publisher.RawPost, target publisher.Account) bool {
	if id := recordAccountID(p); id != "" {
		return id == target.AccountID()
	}
	return strings.EqualFold(platformOf(p), target.Platform)
}
