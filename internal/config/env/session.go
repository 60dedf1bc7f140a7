package env

import (
	"fmt"
	"linecheck/internal/config"
	"os"
	"time"
)

const (
	sessionTTLEnvName = "SESSION_TTL"
	defaultSessionTTL = 24 * time.Hour
)

type sessionConfig struct {
	ttl         time.Duration
	maxSessions int
}

// NewSessionConfig TTL берётся из окружения, лимит сессий из config.yaml
func NewSessionConfig(path string) (config.SessionConfig, error) {
	ttl := defaultSessionTTL
	if raw := os.Getenv(sessionTTLEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
		ttl = parsed
	}

	file, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	maxSessions := file.Session.MaxSessions
	if maxSessions <= 0 {
		return nil, fmt.Errorf("session.max_sessions must be positive, got %d", maxSessions)
	}

	return &sessionConfig{
		ttl:         ttl,
		maxSessions: maxSessions,
	}, nil
}

func (cfg *sessionConfig) TTL() time.Duration {
	return cfg.ttl
}

func (cfg *sessionConfig) MaxSessions() int {
	return cfg.maxSessions
}
