package toml

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	statePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".swapbot"
	stateFileName   = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// Store keeps the bot's restart state in a single TOML file.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.StateStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(statePathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, stateConfigDir, stateFileName)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	path = filepath.Clean(absPath)

	return &Store{path: path, mu: lockForPath(path)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Servers(ctx context.Context) ([]string, error) {
	file, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if len(file.Servers) == 0 {
		return nil, domain.ErrStateNotFound
	}

	return file.Servers, nil
}

func (s *Store) SaveServers(ctx context.Context, servers []string) error {
	return s.update(ctx, func(file *fileSchema) {
		file.Servers = append([]string(nil), servers...)
	})
}

func (s *Store) Sentry(ctx context.Context) ([]byte, error) {
	file, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if file.Sentry == "" {
		return nil, domain.ErrStateNotFound
	}

	blob, err := base64.StdEncoding.DecodeString(file.Sentry)
	if err != nil {
		return nil, fmt.Errorf("decode sentry: %w", err)
	}

	return blob, nil
}

func (s *Store) SaveSentry(ctx context.Context, blob []byte) error {
	return s.update(ctx, func(file *fileSchema) {
		file.Sentry = base64.StdEncoding.EncodeToString(blob)
	})
}

func (s *Store) WebSession(ctx context.Context) (domain.WebSession, error) {
	file, err := s.read(ctx)
	if err != nil {
		return domain.WebSession{}, err
	}
	if file.WebSession == nil {
		return domain.WebSession{}, domain.ErrStateNotFound
	}

	return domain.WebSession{
		SessionID: file.WebSession.SessionID,
		Cookies:   append([]string(nil), file.WebSession.Cookies...),
	}, nil
}

func (s *Store) SaveWebSession(ctx context.Context, session domain.WebSession) error {
	return s.update(ctx, func(file *fileSchema) {
		file.WebSession = &webSessionSchema{
			SessionID: session.SessionID,
			Cookies:   append([]string(nil), session.Cookies...),
		}
	})
}

func (s *Store) read(ctx context.Context) (fileSchema, error) {
	if err := ctx.Err(); err != nil {
		return fileSchema{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readSchema()
}

func (s *Store) update(ctx context.Context, mutate func(file *fileSchema)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	mutate(&file)

	return s.writeSchema(file)
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read state file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode state file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
