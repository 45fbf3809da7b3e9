package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cron     CronConfig     `mapstructure:"cron"`
	Logiless LogilessConfig `mapstructure:"logiless"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

type CronConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	OrderSync string `mapstructure:"order_sync"`
}

// LogilessConfig holds upstream API and OAuth2 application settings.
// ClientID/ClientSecret come from the environment in practice
// (LS_LOGILESS_CLIENT_ID etc.), never from a committed config file.
type LogilessConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	AuthURL      string        `mapstructure:"auth_url"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	RedirectURI  string        `mapstructure:"redirect_uri"`
	MerchantID   int           `mapstructure:"merchant_id"`
	Timeout      time.Duration `mapstructure:"timeout"`
	PageLimit    int           `mapstructure:"page_limit"`
}

type SyncConfig struct {
	FallbackSince string        `mapstructure:"fallback_since"`
	Window        time.Duration `mapstructure:"window"`
	TokenKey      string        `mapstructure:"token_key"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", "2s")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.order_sync", "@every 1h")
	v.SetDefault("logiless.base_url", "https://app2.logiless.com")
	v.SetDefault("logiless.auth_url", "https://app2.logiless.com/oauth/v2/auth")
	// Credentials only ever arrive via LS_LOGILESS_* env vars; the empty
	// defaults register the keys so AutomaticEnv surfaces them through
	// Unmarshal.
	v.SetDefault("logiless.client_id", "")
	v.SetDefault("logiless.client_secret", "")
	v.SetDefault("logiless.redirect_uri", "")
	v.SetDefault("logiless.merchant_id", 1394)
	v.SetDefault("logiless.timeout", "30s")
	v.SetDefault("logiless.page_limit", 50)
	v.SetDefault("sync.fallback_since", "2024-04-01")
	v.SetDefault("sync.window", "24h")
	v.SetDefault("sync.token_key", "LOGILESS_TOKEN")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
