package settings

import (
	"context"
	"encoding/json"

	"github.com/redis/rueidis"

	model "task-planner.com/task-planner/internal/models"
)

// RedisStore keeps each user's settings as one JSON blob under
// <prefix><userID>.
type RedisStore struct {
	client rueidis.Client
	prefix string
}

func NewRedisStore(client rueidis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
	}
}

func (r *RedisStore) Load(ctx context.Context, userID string) (model.ScheduleSettings, bool, error) {
	cmd := r.client.B().Get().Key(r.prefix + userID).Build()
	result := r.client.Do(ctx, cmd)

	raw, err := result.AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return model.ScheduleSettings{}, false, nil
		}
		return model.ScheduleSettings{}, false, err
	}

	var s model.ScheduleSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.ScheduleSettings{}, false, err
	}

	return s, true, nil
}

func (r *RedisStore) Save(ctx context.Context, userID string, s model.ScheduleSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(r.prefix + userID).Value(string(raw)).Build()
	return r.client.Do(ctx, cmd).Error()
}
