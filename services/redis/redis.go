package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_models "Ruleta/models/redis"
	redis_utils "Ruleta/services/redis/utils"
	"Ruleta/services/tables"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles all table document operations. Each table lives as a
// single RedisJSON value under "tables:<id>" with a TTL fixed at creation.
// The store knows nothing about game rules: it is a field-addressable
// document with expiry, and Redis serializes concurrent writes per key.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// CreateTable persists a brand new table document with the given TTL.
// JSON.SET runs in NX mode so an existing room code fails with a conflict
// instead of silently overwriting another room (practically unreachable
// given code generation, but handled).
func (rc *RedisClient) CreateTable(table *redis_models.Table, ttl time.Duration) error {
	key := redis_utils.FormatTableKey(table.Id)

	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("error marshaling table %s: %w", table.Id, err)
	}

	set := rc.client.JSONSetMode(rc.ctx, key, redis_utils.RootPath, string(data), "NX")
	// A failed NX write replies null, which go-redis surfaces as redis.Nil.
	if err := set.Err(); err == redis.Nil {
		return tables.ErrConflict(fmt.Sprintf("table %s already exists", table.Id))
	} else if err != nil {
		return tables.ErrStoreUnavailable(fmt.Sprintf("failed to create table %s: %v", table.Id, err))
	}
	if set.Val() == "" {
		return tables.ErrConflict(fmt.Sprintf("table %s already exists", table.Id))
	}

	if err := rc.client.Expire(rc.ctx, key, ttl).Err(); err != nil {
		return tables.ErrStoreUnavailable(fmt.Sprintf("failed to set TTL on table %s: %v", table.Id, err))
	}
	return nil
}

// GetTable retrieves the current table document. A missing or expired room
// is a not_found error, not a store failure.
func (rc *RedisClient) GetTable(tableId string) (*redis_models.Table, error) {
	key := redis_utils.FormatTableKey(tableId)

	data, err := rc.client.JSONGet(rc.ctx, key, redis_utils.RootPath).Result()
	if err == redis.Nil || (err == nil && data == "") {
		return nil, tables.ErrNotFound(fmt.Sprintf("table %s not found", tableId))
	}
	if err != nil {
		return nil, tables.ErrStoreUnavailable(fmt.Sprintf("failed to get table %s: %v", tableId, err))
	}

	var table redis_models.Table
	if err := json.Unmarshal([]byte(data), &table); err != nil {
		return nil, fmt.Errorf("error unmarshaling table %s: %w", tableId, err)
	}
	if table.Participants == nil {
		table.Participants = make(map[string]*redis_models.Participant)
	}
	return &table, nil
}

// TableExists reports whether a live (non-expired) document exists for the
// given room code. Used by room code generation.
func (rc *RedisClient) TableExists(tableId string) (bool, error) {
	n, err := rc.client.Exists(rc.ctx, redis_utils.FormatTableKey(tableId)).Result()
	if err != nil {
		return false, tables.ErrStoreUnavailable(fmt.Sprintf("failed to check table %s: %v", tableId, err))
	}
	return n > 0, nil
}

// PatchTableField atomically overwrites one sub-field of the table document
// (e.g. ".participants.<id>.bet") without a full read-modify-write cycle.
func (rc *RedisClient) PatchTableField(tableId string, path string, value interface{}) error {
	key := redis_utils.FormatTableKey(tableId)

	exists, err := rc.TableExists(tableId)
	if err != nil {
		return err
	}
	if !exists {
		return tables.ErrNotFound(fmt.Sprintf("table %s not found", tableId))
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling value for table %s path %s: %w", tableId, path, err)
	}

	if err := rc.client.JSONSet(rc.ctx, key, path, string(data)).Err(); err != nil {
		return tables.ErrStoreUnavailable(
			fmt.Sprintf("failed to patch table %s path %s: %v", tableId, path, err))
	}
	return nil
}

// DeleteTableField atomically removes one sub-field of the table document.
// Used to remove a participant.
func (rc *RedisClient) DeleteTableField(tableId string, path string) error {
	key := redis_utils.FormatTableKey(tableId)

	exists, err := rc.TableExists(tableId)
	if err != nil {
		return err
	}
	if !exists {
		return tables.ErrNotFound(fmt.Sprintf("table %s not found", tableId))
	}

	if err := rc.client.JSONDel(rc.ctx, key, path).Err(); err != nil {
		return tables.ErrStoreUnavailable(
			fmt.Sprintf("failed to delete table %s path %s: %v", tableId, path, err))
	}
	return nil
}

// DeleteTable drops the whole document. Rooms normally just expire; this
// exists for tests and manual cleanup.
func (rc *RedisClient) DeleteTable(tableId string) error {
	if err := rc.client.Del(rc.ctx, redis_utils.FormatTableKey(tableId)).Err(); err != nil {
		return tables.ErrStoreUnavailable(fmt.Sprintf("failed to delete table %s: %v", tableId, err))
	}
	return nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
