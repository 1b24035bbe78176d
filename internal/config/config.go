package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/superchain/token-explorer/internal/domain"
)

const envPrefix = "TOKEN_EXPLORER"

// Config holds the full application configuration shared by the
// ingestion worker and the API server.
type Config struct {
	Debug bool `mapstructure:"debug"`

	Sentry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"sentry"`

	Database struct {
		URI string `mapstructure:"uri"`
	} `mapstructure:"database"`

	Server struct {
		Addr    string   `mapstructure:"addr"`
		APIKeys []string `mapstructure:"api_keys"`
	} `mapstructure:"server"`

	CoinGecko struct {
		BaseURL     string        `mapstructure:"base_url"`
		APIKey      string        `mapstructure:"api_key"`
		MinInterval time.Duration `mapstructure:"min_interval"`
	} `mapstructure:"coingecko"`

	Ingest struct {
		Interval   time.Duration `mapstructure:"interval"`
		TokenPause time.Duration `mapstructure:"token_pause"`
		RetryMax   int           `mapstructure:"retry_max"`
		RetryDelay time.Duration `mapstructure:"retry_delay"`
	} `mapstructure:"ingest"`

	Chains []ChainEntry `mapstructure:"chains"`
}

// ChainEntry configures a single chain the worker ingests from.
type ChainEntry struct {
	Name              string   `mapstructure:"name"`
	Slug              string   `mapstructure:"slug"`
	ChainID           int64    `mapstructure:"chain_id"`
	RPCURL            string   `mapstructure:"rpc_url"`
	CoinGeckoPlatform string   `mapstructure:"coingecko_platform"`
	Tokens            []string `mapstructure:"tokens"`
}

// ChainConfig converts the entry into the domain representation.
func (e ChainEntry) ChainConfig() domain.ChainConfig {
	return domain.ChainConfig{
		Name:              e.Name,
		Slug:              e.Slug,
		ChainID:           e.ChainID,
		RPCURL:            e.RPCURL,
		CoinGeckoPlatform: e.CoinGeckoPlatform,
	}
}

// Load reads configuration from the given YAML file, optionally
// overlaying variables from an env file, and applies TOKEN_EXPLORER_*
// environment overrides.
func Load(configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindAllEnvVars(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.Chains) == 0 {
		cfg.Chains = builtinChains()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("database.uri is required")
	}
	seen := make(map[string]struct{}, len(c.Chains))
	for _, chain := range c.Chains {
		if chain.Slug == "" {
			return fmt.Errorf("chain %q is missing a slug", chain.Name)
		}
		if _, ok := seen[chain.Slug]; ok {
			return fmt.Errorf("duplicate chain slug %q", chain.Slug)
		}
		seen[chain.Slug] = struct{}{}
		// An empty rpc_url is allowed; the worker skips the chain each
		// cycle until an endpoint is configured.
		for _, addr := range chain.Tokens {
			if !domain.IsHexAddress(addr) {
				return fmt.Errorf("chain %q has an invalid token address %q", chain.Slug, addr)
			}
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("coingecko.base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("coingecko.min_interval", time.Second)
	v.SetDefault("ingest.interval", 5*time.Minute)
	v.SetDefault("ingest.token_pause", 500*time.Millisecond)
	v.SetDefault("ingest.retry_max", 3)
	v.SetDefault("ingest.retry_delay", time.Second)
}

// bindAllEnvVars binds every config key explicitly. AutomaticEnv alone
// does not pick up env overrides for keys absent from the config file.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry.dsn",
		"database.uri",
		"server.addr",
		"server.api_keys",
		"coingecko.base_url",
		"coingecko.api_key",
		"coingecko.min_interval",
		"ingest.interval",
		"ingest.token_pause",
		"ingest.retry_max",
		"ingest.retry_delay",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			panic(fmt.Sprintf("failed to bind env var %s: %v", key, err))
		}
	}
}
