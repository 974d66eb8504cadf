package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	GA       GAConfig       `mapstructure:"ga"`
	Facebook FacebookConfig `mapstructure:"facebook"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Logstash LogstashConfig `mapstructure:"logstash"`
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

// GAConfig GA4 实时数据源配置
type GAConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	PropertyID  string `mapstructure:"property_id"`
	AccessToken string `mapstructure:"access_token"`
	Timeout     int    `mapstructure:"timeout"` // 单位秒
}

// FacebookConfig Facebook Graph API 配置
type FacebookConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	APIVersion  string `mapstructure:"api_version"`
	PageID      string `mapstructure:"page_id"`
	AccessToken string `mapstructure:"access_token"`
	Timeout     int    `mapstructure:"timeout"` // 单位秒
}

// SyncConfig 粉丝页指标同步配置
type SyncConfig struct {
	Schedule     string `mapstructure:"schedule"`      // cron 表达式
	BackfillDays int    `mapstructure:"backfill_days"` // 定时同步回补的天数
	LockSeconds  int    `mapstructure:"lock_seconds"`  // 同步锁的过期时间
	PushInterval int    `mapstructure:"push_interval"` // 实时快照 WS 推送间隔，单位秒
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
