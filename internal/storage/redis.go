package storage

import (
	"context"
	"fmt"

	redisClient "github.com/go-redis/redis"
)

// Redis stores slots as plain string keys under a prefix.
type Redis struct {
	client *redisClient.Client
	prefix string
}

func NewRedis(host string, port int, password string, db int, prefix string) *Redis {
	client := redisClient.NewClient(&redisClient.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})
	if prefix == "" {
		prefix = "rjm"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

func (r *Redis) Get(_ context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(r.key(key)).Result()
	if err == redisClient.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(_ context.Context, key, value string) error {
	return r.client.Set(r.key(key), value, 0).Err()
}

func (r *Redis) Delete(_ context.Context, key string) error {
	return r.client.Del(r.key(key)).Err()
}

func (r *Redis) Clear(_ context.Context) error {
	keys, err := r.client.Keys(r.prefix + ":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(keys...).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
