package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	recordsadapter "github.com/bnema/swapbot/internal/adapters/records"
	redisstate "github.com/bnema/swapbot/internal/adapters/state/redis"
	tomlstate "github.com/bnema/swapbot/internal/adapters/state/toml"
	"github.com/bnema/swapbot/internal/application"
	"github.com/bnema/swapbot/internal/config"
	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg           config.Config
	logger        *slog.Logger
	store         ports.StateStore
	stateLocation string
	closeStore    func() error
	records       *recordsadapter.HTTPSink
	httpClient    *http.Client
	now           func() time.Time
}

type wireFunc func(configFile string, logOutput io.Writer) (*app, error)

func wireApp(configFile string, logOutput io.Writer) (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:        cfg,
		logger:     logging.New(logOutput, level),
		closeStore: func() error { return nil },
		httpClient: &http.Client{Timeout: 2 * time.Second},
		now:        time.Now,
	}

	switch cfg.State.Backend {
	case config.BackendRedis:
		store := redisstate.New(cfg.State.RedisAddr, cfg.State.RedisPassword, cfg.State.RedisDB, redisstate.WithPrefix(cfg.State.RedisPrefix))
		a.store = store
		a.stateLocation = cfg.State.RedisAddr
		a.closeStore = store.Close
	default:
		store, err := tomlstate.NewStore(v)
		if err != nil {
			return nil, fmt.Errorf("wire state store: %w", err)
		}
		a.store = store
		a.stateLocation = store.Path()
	}

	if cfg.Records.URL != "" {
		a.records = recordsadapter.NewHTTPSink(cfg.Records.URL, cfg.Records.Timeout)
	}

	return a, nil
}

func (a *app) policy() domain.Policy {
	return domain.Policy{
		Owner:     domain.UserID(a.cfg.OwnerID),
		Blacklist: userIDs(a.cfg.Blacklist),
		Whitelist: userIDs(a.cfg.Whitelist),
	}
}

// recordSink falls back to a sink that only logs when no record service is configured.
func (a *app) recordSink() ports.RecordSink {
	if a.records == nil {
		return loggingRecordSink{logger: a.logger}
	}
	return a.records
}

func (a *app) links() application.InventoryLinks {
	return application.NewInventoryLinks(a.cfg.CommunityURL, a.cfg.ProfileID)
}

func userIDs(raw []string) []domain.UserID {
	ids := make([]domain.UserID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, domain.UserID(id))
	}
	return ids
}
