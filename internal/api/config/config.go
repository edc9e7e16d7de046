package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	Cfg = &cfg

	return nil
}

// applyDefaults 对缺省项填默认值，保证引擎参数永远可用
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Publisher.Timeout == 0 {
		cfg.Publisher.Timeout = 15
	}
	if cfg.Publisher.PageLimit == 0 {
		cfg.Publisher.PageLimit = 200
	}
	if cfg.Insight.CacheTTL == 0 {
		cfg.Insight.CacheTTL = 300
	}
	if cfg.Insight.WarmDays == 0 {
		cfg.Insight.WarmDays = 30
	}
}
