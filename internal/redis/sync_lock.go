package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"github.com/studybuddy/studybuddy-backend/internal/config"
)

// SyncLockRepository serializes reconciliation per owner. The identity index
// build-then-act protocol is not safe against interleaved writers, so a
// second Reconcile for the same owner must be refused, not queued.
type SyncLockRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewSyncLockRepository(pool *redis.Pool, logger *zap.SugaredLogger) *SyncLockRepository {
	return &SyncLockRepository{
		pool:   pool,
		logger: logger,
	}
}

func lockKey(ownerID int64) string {
	return fmt.Sprintf("sync_lock:%d", ownerID)
}

// Acquire takes the per-owner lock. The TTL guards against a crashed run
// holding the lock forever.
func (r *SyncLockRepository) Acquire(ctx context.Context, ownerID int64) (bool, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return false, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	ttl := int(config.SyncLockTTL().Seconds())
	_, err = redis.String(conn.Do("SET", lockKey(ownerID), "1", "NX", "EX", ttl))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return false, nil
		}
		return false, fmt.Errorf("SET: %w", err)
	}

	return true, nil
}

func (r *SyncLockRepository) Release(ctx context.Context, ownerID int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", lockKey(ownerID)); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}
