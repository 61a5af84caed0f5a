package ctxkeys

import (
	"context"
	"time"

	"github.com/cheickthiam/portfolio/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	AdminIDKey contextKey = "admin_id"
	SessionKey contextKey = "session"
	ConfigKey  contextKey = "config"
)

// Session identifies the token a request was authenticated with.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

func AdminID(ctx context.Context) string {
	id, _ := ctx.Value(AdminIDKey).(string)
	return id
}

func WithAdminID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, AdminIDKey, id)
}

func SessionOf(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(SessionKey).(Session)
	return s, ok
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
