package session

import (
	"context"
	"errors"
	"time"

	"glowdesk/backend"
	"glowdesk/models"
	"glowdesk/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrUnauthenticated reports a missing, expired or invalid dashboard session.
// Corrupt persisted sessions degrade to this error rather than failing hard.
var ErrUnauthenticated = errors.New("not authenticated")

// ErrNoToken reports a backend login response that carried no token. The
// backend contract is unstable here; the provider refuses to fabricate one.
var ErrNoToken = errors.New("login response contained no token")

// BackendAuth is the slice of the backend client the provider uses.
type BackendAuth interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResponse, error)
	Register(ctx context.Context, input models.RegisterInput) error
}

// Store persists dashboard sessions keyed by token hash.
type Store interface {
	Save(ctx context.Context, tokenHash string, session models.Session, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (*models.Session, error)
	Delete(ctx context.Context, tokenHash string) error
}

// LoginResult is a freshly issued dashboard session plus its bearer token.
type LoginResult struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
}

// SessionService resolves the current stylist identity. All persisted state
// lives behind the Store; nothing else touches it directly.
type SessionService interface {
	Register(ctx context.Context, input models.RegisterInput) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Current(ctx context.Context, token string) (*models.Session, error)
	IsAuthenticated(ctx context.Context, token string) bool
	Logout(ctx context.Context, token string) error
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Auth   BackendAuth
	Store  Store
	TTL    time.Duration
	Logger *zap.Logger
}

// RedisStore is the Redis-backed session store.
type RedisStore struct {
	Client *redis.Client
}

func (s *RedisStore) Save(ctx context.Context, tokenHash string, session models.Session, ttl time.Duration) error {
	return utils.SaveSession(ctx, s.Client, tokenHash, session, ttl)
}

func (s *RedisStore) Get(ctx context.Context, tokenHash string) (*models.Session, error) {
	sess, err := utils.GetSession(ctx, s.Client, tokenHash)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, tokenHash string) error {
	return utils.DeleteSession(ctx, s.Client, tokenHash)
}
