package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int               `toml:"version"`
	Servers    []string          `toml:"servers,omitempty"`
	Sentry     string            `toml:"sentry,omitempty"`
	WebSession *webSessionSchema `toml:"web_session,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type webSessionSchema struct {
	SessionID string   `toml:"session_id"`
	Cookies   []string `toml:"cookies"`
}
