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

	viper.SetDefault("ga.endpoint", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("ga.timeout", 30)
	viper.SetDefault("facebook.endpoint", "https://graph.facebook.com")
	viper.SetDefault("facebook.api_version", "v24.0")
	viper.SetDefault("facebook.timeout", 30)
	viper.SetDefault("sync.schedule", "@daily")
	viper.SetDefault("sync.backfill_days", 2)
	viper.SetDefault("sync.lock_seconds", 300)
	viper.SetDefault("sync.push_interval", 5)

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

	Cfg = &cfg

	return nil
}
