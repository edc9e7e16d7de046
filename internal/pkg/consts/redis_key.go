package consts

const (
	InsightSummaryKey = "insight:summary:"
	InsightGrowthKey  = "insight:growth:"
	TokenRevokedKey   = "token:revoked:"
)

const (
	InsightWarmLock = "lock:insight:warm"
)
