package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	rdb          *redis.Client
	keyGenerator *RedisKeyGenerator
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	Database    int
	MaxRetries  int
	PoolSize    int
	PoolTimeout time.Duration
}

func NewClient(config *RedisConfig, keyGenerator *RedisKeyGenerator) (*Client, error) {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.Database,
		MaxRetries:   config.MaxRetries,
		PoolSize:     config.PoolSize,
		PoolTimeout:  config.PoolTimeout,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MinIdleConns: 2,
	}

	return &Client{
		rdb:          redis.NewClient(opts),
		keyGenerator: keyGenerator,
	}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return fmt.Errorf("Redis client is nil")
	}

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

func (c *Client) Close() {
	if c.rdb != nil {
		c.rdb.Close()
	}
}

func (c *Client) Client() *redis.Client {
	return c.rdb
}

func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}

	// Vérifier les statistiques de pool
	stats := c.rdb.PoolStats()
	if stats.TotalConns == 0 {
		return fmt.Errorf("no Redis connections available")
	}

	return nil
}

// ============================================
// MÉTHODES AVEC GÉNÉRATION AUTOMATIQUE DE CLÉS
// ============================================

// SetWithPattern sauvegarde une valeur avec un pattern standardisé
func (c *Client) SetWithPattern(ctx context.Context, patternName string, value interface{}, identifier ...string) error {
	key, err := c.keyGenerator.GenerateKey(patternName, identifier...)
	if err != nil {
		return fmt.Errorf("erreur génération clé: %w", err)
	}

	ttl, err := c.keyGenerator.GetTTL(patternName)
	if err != nil {
		return fmt.Errorf("erreur récupération TTL: %w", err)
	}

	return c.rdb.Set(ctx, key, value, time.Duration(ttl)*time.Second).Err()
}

// GetWithPattern récupère une valeur; redis.Nil est conservé pour une clé absente
func (c *Client) GetWithPattern(ctx context.Context, patternName string, identifier ...string) (string, error) {
	key, err := c.keyGenerator.GenerateKey(patternName, identifier...)
	if err != nil {
		return "", fmt.Errorf("erreur génération clé: %w", err)
	}

	result := c.rdb.Get(ctx, key)
	if errors.Is(result.Err(), redis.Nil) {
		return "", redis.Nil
	}
	return result.Val(), result.Err()
}

// DelWithPattern supprime une valeur avec un pattern standardisé
func (c *Client) DelWithPattern(ctx context.Context, patternName string, identifier ...string) error {
	key, err := c.keyGenerator.GenerateKey(patternName, identifier...)
	if err != nil {
		return fmt.Errorf("erreur génération clé: %w", err)
	}

	return c.rdb.Del(ctx, key).Err()
}

// InvalidatePattern supprime toutes les clés d'un domaine/context
func (c *Client) InvalidatePattern(ctx context.Context, domain, scope string) error {
	pattern := c.keyGenerator.GenerateWildcardPattern(domain, scope)

	var keys []string
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("erreur récupération clés pattern: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	return c.rdb.Del(ctx, keys...).Err()
}
