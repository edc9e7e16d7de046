package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	Publisher PublisherConfig `mapstructure:"publisher"`
	Insight   InsightConfig   `mapstructure:"insight"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志远程上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// PublisherConfig 上游发布平台 API 配置
type PublisherConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	Timeout   int    `mapstructure:"timeout"`    // 秒
	PageLimit int    `mapstructure:"page_limit"` // 单次分析拉取的最大帖子数
}

// InsightConfig 聚合引擎配置
type InsightConfig struct {
	CacheTTL int `mapstructure:"cache_ttl"` // 秒
	WarmDays int `mapstructure:"warm_days"` // 预热任务的默认窗口天数
}
