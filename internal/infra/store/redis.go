package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis persists session records in Redis, keyed per tenant+session, with the
// combined record and the separate favorites/cart keys written together.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(addr, password string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Load(ctx context.Context, tenantID, sessionID string) (Record, error) {
	raw, err := r.client.Get(ctx, stateKey(tenantID, sessionID)).Bytes()
	if err == nil {
		var rec Record
		if jerr := json.Unmarshal(raw, &rec); jerr == nil {
			return rec, nil
		}
		log.Printf("store tenant=%s session=%s corrupt state record, trying split keys", tenantID, sessionID)
	} else if !errors.Is(err, redis.Nil) {
		return Record{}, err
	}

	var rec Record
	found := false
	if raw, err := r.client.Get(ctx, favoritesKey(tenantID, sessionID)).Bytes(); err == nil {
		if json.Unmarshal(raw, &rec.Favorites) == nil {
			found = true
		}
	}
	if raw, err := r.client.Get(ctx, cartKey(tenantID, sessionID)).Bytes(); err == nil {
		if json.Unmarshal(raw, &rec.Cart) == nil {
			found = true
		}
	}
	if !found {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *Redis) Save(ctx context.Context, tenantID, sessionID string, rec Record) error {
	combined, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	favorites, err := json.Marshal(rec.Favorites)
	if err != nil {
		return err
	}
	cart, err := json.Marshal(rec.Cart)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, stateKey(tenantID, sessionID), combined, r.ttl)
	pipe.Set(ctx, favoritesKey(tenantID, sessionID), favorites, r.ttl)
	pipe.Set(ctx, cartKey(tenantID, sessionID), cart, r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) Close() error { return r.client.Close() }
