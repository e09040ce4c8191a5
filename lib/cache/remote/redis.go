package remote

import (
	"fmt"

	"github.com/go-redis/redis"
	"gitlab.com/hanul-informatics/medsearch/lib/cache"
)

type RedisConfig struct {
	Host string
	Port int
}

func NewRedisStore(conf RedisConfig) cache.Store {
	return &redisStore{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
	}
}

type redisStore struct {
	*redis.Client
}

func (r *redisStore) Get(key string) ([]byte, bool, error) {
	b, err := r.Client.Get(key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *redisStore) Set(key string, data []byte) error {
	return r.Client.Set(key, data, 0).Err()
}

func (r *redisStore) Ready() bool {
	return r.Ping().Err() == nil
}
