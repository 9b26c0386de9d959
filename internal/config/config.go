package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "SWAPBOT"
	configName = "swapbot"

	BackendFile  = "file"
	BackendRedis = "redis"
)

type Account struct {
	Name     string
	Password string
}

type Records struct {
	URL     string
	Timeout time.Duration
}

type Offers struct {
	Command        string
	Script         string
	Delay          time.Duration
	WindowsTimeout time.Duration
}

type Friends struct {
	WelcomeDelay    time.Duration
	WelcomeGap      time.Duration
	AutoRemoveAfter time.Duration
}

type History struct {
	MaxPages int
	Output   string
}

type State struct {
	Backend       string
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Config is the resolved bot configuration.
type Config struct {
	Account      Account
	ProfileID    string
	OwnerID      string
	Blacklist    []string
	Whitelist    []string
	HMACSecret   string
	Environment  string
	CommunityURL string

	Records Records
	Offers  Offers
	Friends Friends
	History History
	State   State

	MaxTradeMessages  int
	MetricsListen     string
	ReconnectInterval time.Duration
	LogLevel          string

	// File is the config file that was read, empty when only defaults and env apply.
	File string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("environment", "linux")
	v.SetDefault("community_url", "http://steamcommunity.com")
	v.SetDefault("records.timeout", 30*time.Second)
	v.SetDefault("offers.command", "casperjs")
	v.SetDefault("offers.script", "accept-trade-offers.js")
	v.SetDefault("offers.delay", 10*time.Second)
	v.SetDefault("offers.windows_timeout", 5*time.Minute)
	v.SetDefault("friends.welcome_delay", 5*time.Second)
	v.SetDefault("friends.welcome_gap", time.Second)
	v.SetDefault("friends.auto_remove_after", 6*time.Hour)
	v.SetDefault("trade.max_messages", 50)
	v.SetDefault("history.max_pages", 300)
	v.SetDefault("history.output", "trades.csv")
	v.SetDefault("state.backend", BackendFile)
	v.SetDefault("state.redis_addr", "127.0.0.1:6379")
	v.SetDefault("state.redis_prefix", "swapbot:")
	v.SetDefault("reconnect.interval", time.Minute)
	v.SetDefault("log.level", "info")
}

// Load reads the config file (explicit path, or swapbot.toml in the default search paths),
// then overlays SWAPBOT_* environment variables.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Account: Account{
			Name:     v.GetString("account.name"),
			Password: v.GetString("account.password"),
		},
		ProfileID:    v.GetString("profile_id"),
		OwnerID:      v.GetString("owner_id"),
		Blacklist:    v.GetStringSlice("blacklist"),
		Whitelist:    v.GetStringSlice("whitelist"),
		HMACSecret:   v.GetString("hmac_secret"),
		Environment:  v.GetString("environment"),
		CommunityURL: v.GetString("community_url"),
		Records: Records{
			URL:     v.GetString("records.url"),
			Timeout: v.GetDuration("records.timeout"),
		},
		Offers: Offers{
			Command:        v.GetString("offers.command"),
			Script:         v.GetString("offers.script"),
			Delay:          v.GetDuration("offers.delay"),
			WindowsTimeout: v.GetDuration("offers.windows_timeout"),
		},
		Friends: Friends{
			WelcomeDelay:    v.GetDuration("friends.welcome_delay"),
			WelcomeGap:      v.GetDuration("friends.welcome_gap"),
			AutoRemoveAfter: v.GetDuration("friends.auto_remove_after"),
		},
		History: History{
			MaxPages: v.GetInt("history.max_pages"),
			Output:   v.GetString("history.output"),
		},
		State: State{
			Backend:       strings.ToLower(v.GetString("state.backend")),
			Path:          v.GetString("state.path"),
			RedisAddr:     v.GetString("state.redis_addr"),
			RedisPassword: v.GetString("state.redis_password"),
			RedisDB:       v.GetInt("state.redis_db"),
			RedisPrefix:   v.GetString("state.redis_prefix"),
		},
		MaxTradeMessages:  v.GetInt("trade.max_messages"),
		MetricsListen:     v.GetString("metrics.listen"),
		ReconnectInterval: v.GetDuration("reconnect.interval"),
		LogLevel:          v.GetString("log.level"),
		File:              v.ConfigFileUsed(),
	}
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.ProfileID) == "" {
		errs = append(errs, errors.New("profile_id is required"))
	}
	switch c.Environment {
	case "linux", "windows":
	default:
		errs = append(errs, fmt.Errorf("unknown environment %q (want linux or windows)", c.Environment))
	}
	switch c.State.Backend {
	case BackendFile, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown state.backend %q (want file or redis)", c.State.Backend))
	}
	if c.MaxTradeMessages <= 0 {
		errs = append(errs, errors.New("trade.max_messages must be positive"))
	}
	if c.History.MaxPages <= 0 {
		errs = append(errs, errors.New("history.max_pages must be positive"))
	}

	return errors.Join(errs...)
}
