package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
	backend "github.com/redis/go-redis/v9"
)

const DefaultPrefix = "swapbot:"

// Store keeps the restart state in Redis so several hosts can share one bot identity.
type Store struct {
	client *backend.Client
	prefix string
}

var _ ports.StateStore = (*Store)(nil)

type Option func(*Store)

func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

func New(address, password string, db int, opts ...Option) *Store {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{client: client, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) serversKey() string { return s.prefix + "servers" }
func (s *Store) sentryKey() string  { return s.prefix + "sentry" }
func (s *Store) webKey() string     { return s.prefix + "web_session" }

func (s *Store) Servers(ctx context.Context) ([]string, error) {
	servers, err := s.client.LRange(ctx, s.serversKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load servers from redis: %w", err)
	}
	if len(servers) == 0 {
		return nil, domain.ErrStateNotFound
	}

	return servers, nil
}

func (s *Store) SaveServers(ctx context.Context, servers []string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.serversKey())
	if len(servers) > 0 {
		values := make([]interface{}, 0, len(servers))
		for _, server := range servers {
			values = append(values, server)
		}
		pipe.RPush(ctx, s.serversKey(), values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save servers to redis: %w", err)
	}

	return nil
}

func (s *Store) Sentry(ctx context.Context) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.sentryKey()).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("load sentry from redis: %w", err)
	}

	return blob, nil
}

func (s *Store) SaveSentry(ctx context.Context, blob []byte) error {
	if err := s.client.Set(ctx, s.sentryKey(), blob, 0).Err(); err != nil {
		return fmt.Errorf("save sentry to redis: %w", err)
	}

	return nil
}

type webSessionRecord struct {
	SessionID string   `json:"sessionId"`
	Cookies   []string `json:"cookies"`
}

func (s *Store) WebSession(ctx context.Context) (domain.WebSession, error) {
	val, err := s.client.Get(ctx, s.webKey()).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.WebSession{}, domain.ErrStateNotFound
		}
		return domain.WebSession{}, fmt.Errorf("load web session from redis: %w", err)
	}

	var record webSessionRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return domain.WebSession{}, fmt.Errorf("decode web session: %w", err)
	}

	return domain.WebSession{SessionID: record.SessionID, Cookies: record.Cookies}, nil
}

func (s *Store) SaveWebSession(ctx context.Context, session domain.WebSession) error {
	data, err := json.Marshal(webSessionRecord{SessionID: session.SessionID, Cookies: session.Cookies})
	if err != nil {
		return fmt.Errorf("encode web session: %w", err)
	}

	if err := s.client.Set(ctx, s.webKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("save web session to redis: %w", err)
	}

	return nil
}
