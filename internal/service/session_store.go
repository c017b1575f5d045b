package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
)

// WorkflowStore persists in-progress survey workflows between requests.
// Each session owns its workflow exclusively; nothing here is shared
// across actors.
type WorkflowStore interface {
	Get(ctx context.Context, id string) (*survey.Workflow, error)
	Save(ctx context.Context, w *survey.Workflow) error
	Delete(ctx context.Context, id string) error
}

type redisWorkflowStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisWorkflowStore(rdb *redis.Client, ttl time.Duration) WorkflowStore {
	return &redisWorkflowStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("survey_session:%s", id)
}

func (s *redisWorkflowStore) Get(ctx context.Context, id string) (*survey.Workflow, error) {
	payload, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: session %s", apperror.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load session from redis: %w", err)
	}

	var w survey.Workflow
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}

	return &w, nil
}

func (s *redisWorkflowStore) Save(ctx context.Context, w *survey.Workflow) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", w.ID, err)
	}

	if err := s.rdb.Set(ctx, sessionKey(w.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

func (s *redisWorkflowStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}
