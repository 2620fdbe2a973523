// Package user содержит бизнес-логику чтения профиля пользователя с кешированием.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/taskpay/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// UserService реализует чтение профиля пользователя, используя кеш или хранилище.
type UserService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр UserService.
func New(repo UserRepository, cache Cache, log *slog.Logger) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// CacheKey возвращает ключ кеша для документа пользователя.
// Используется и сервисом платежей для инвалидации после активации тарифа.
func CacheKey(uid string) string {
	return fmt.Sprintf("user:%s", uid)
}

// Get возвращает пользователя по uid, используя кеш или репозиторий.
func (s *UserService) Get(ctx context.Context, uid string) (*models.User, error) {
	var result *models.User
	cacheKey := CacheKey(uid)
	found, err := s.cache.Get(ctx, cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read user from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
