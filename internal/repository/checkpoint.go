package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const checkpointKeyPrefix = "checkpoint:"

type CheckpointRepository interface {
	CreateOrUpdate(ctx context.Context, checkpoint *entity.Checkpoint) error
	GetByID(ctx context.Context, id string) (*entity.Checkpoint, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbCheckpoint struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckpointRepository stores checkpoints as JSON; ttl 0 keeps them until deleted.
func NewCheckpointRepository(client *redis.Client, ttl time.Duration) CheckpointRepository {
	return &dbCheckpoint{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbCheckpoint) CreateOrUpdate(ctx context.Context, checkpoint *entity.Checkpoint) error {
	checkpointJSON, err := json.Marshal(checkpoint)
	if err != nil {
		return fmt.Errorf("could not marshal checkpoint: %w", err)
	}

	err = that.client.Set(ctx, checkpointKeyPrefix+checkpoint.ID, checkpointJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set checkpoint: %w", err)
	}

	return nil
}

func (that *dbCheckpoint) GetByID(ctx context.Context, id string) (*entity.Checkpoint, error) {
	response, err := that.client.Get(ctx, checkpointKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrCheckpointNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get checkpoint by id: %w", err)
	}

	checkpoint := entity.Checkpoint{Grid: entity.NewGrid()}
	if err = json.Unmarshal([]byte(response), &checkpoint); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkpoint: %w", err)
	}

	return &checkpoint, nil
}

func (that *dbCheckpoint) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, checkpointKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrCheckpointNotFound
	}

	return nil
}
