package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"warga-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheSerieSaldo(userID uint, window string, dayKey string, serie interface{}, expiration time.Duration) error
	GetSerieSaldo(userID uint, window string, dayKey string, dest interface{}) error
	InvalidateSerieSaldo(userID uint) error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// serieSaldoKey builds the cache key for one user's balance series. The civil
// day key is part of the key so entries roll over at midnight in the report
// timezone without explicit invalidation.
func serieSaldoKey(userID uint, window, dayKey string) string {
	return fmt.Sprintf("serie_saldo:%d:%s:%s", userID, window, dayKey)
}

// 4 CacheSerieSaldo caches a derived balance series
func (s *RedisService) CacheSerieSaldo(userID uint, window string, dayKey string, serie interface{}, expiration time.Duration) error {
	return s.Set(serieSaldoKey(userID, window, dayKey), serie, expiration)
}

// 5 GetSerieSaldo gets a cached balance series
func (s *RedisService) GetSerieSaldo(userID uint, window string, dayKey string, dest interface{}) error {
	return s.Get(serieSaldoKey(userID, window, dayKey), dest)
}

// 6 InvalidateSerieSaldo drops every cached series for one user
func (s *RedisService) InvalidateSerieSaldo(userID uint) error {
	pattern := fmt.Sprintf("serie_saldo:%d:*", userID)
	keys, err := s.Client.Keys(s.Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(s.Ctx, keys...).Err()
}
