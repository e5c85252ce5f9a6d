package translation

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dabingnn/QSanguosha/internal/errors"
	"github.com/dabingnn/QSanguosha/internal/redis"
)

//go:generate mockgen -destination=mock/mock_store.go -package=translationmock github.com/dabingnn/QSanguosha/internal/translation Store

const (
	tableKeyPrefix = "translation:"
	localesKey     = "translation:locales"
)

// SaveInput defines the input for saving a locale table
type SaveInput struct {
	Locale   string
	Messages map[string]string
	// Replace drops keys that are not in Messages
	Replace bool
}

// SaveOutput defines the output of saving a locale table
type SaveOutput struct {
	Saved int
}

// LoadInput defines the input for loading a locale table
type LoadInput struct {
	Locale string
}

// LoadOutput defines the output of loading a locale table
type LoadOutput struct {
	Locale   string
	Messages map[string]string
}

// ListLocalesInput defines the input for listing stored locales
type ListLocalesInput struct{}

// ListLocalesOutput defines the output of listing stored locales
type ListLocalesOutput struct {
	Locales []string
}

// Store persists locale tables so they can be shared between processes
type Store interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	ListLocales(ctx context.Context, input ListLocalesInput) (*ListLocalesOutput, error)
}

// RedisConfig holds the configuration for the redis store
type RedisConfig struct {
	Client redis.Client
}

// Validate validates the config
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisStore struct {
	client redis.Client
}

// NewRedis creates a redis-backed Store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis store config")
	}

	return &redisStore{client: cfg.Client}, nil
}

func tableKey(locale string) string {
	return tableKeyPrefix + locale
}

// Save writes a locale table as a redis hash
func (s *redisStore) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Locale", input.Locale, vb)
	if len(input.Messages) == 0 {
		vb.Field("Messages", "at least one message is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, len(input.Messages))
	for k, v := range input.Messages {
		fields[k] = v
	}

	key := tableKey(input.Locale)
	pipe := s.client.TxPipeline()
	if input.Replace {
		pipe.Del(ctx, key)
	}
	pipe.HSet(ctx, key, fields)
	pipe.SAdd(ctx, localesKey, input.Locale)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to save translations", "locale", input.Locale, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to save translations").
			WithMeta("locale", input.Locale)
	}

	slog.DebugContext(ctx, "saved translations", "locale", input.Locale, "messages", len(fields))
	return &SaveOutput{Saved: len(fields)}, nil
}

// Load reads a locale table
func (s *redisStore) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Locale == "" {
		return nil, errors.InvalidArgument("locale is required")
	}

	messages, err := s.client.HGetAll(ctx, tableKey(input.Locale)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load translations").
			WithMeta("locale", input.Locale)
	}
	if len(messages) == 0 {
		return nil, errors.NotFoundf("no translations for locale %s", input.Locale).
			WithMeta("locale", input.Locale)
	}

	return &LoadOutput{Locale: input.Locale, Messages: messages}, nil
}

// ListLocales returns the stored locales in sorted order
func (s *redisStore) ListLocales(ctx context.Context, _ ListLocalesInput) (*ListLocalesOutput, error) {
	locales, err := s.client.SMembers(ctx, localesKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list locales")
	}
	sort.Strings(locales)

	return &ListLocalesOutput{Locales: locales}, nil
}
