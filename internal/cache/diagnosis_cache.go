package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"bizbalance/internal/model"
)

// sessionTTL bounds how long an in-progress diagnosis survives between start
// and complete. Losing the session just makes the VIP redo the survey.
const sessionTTL = 30 * time.Minute

// DiagnosisSessionCache holds a VIP's in-flight survey answers between the
// start and complete calls. Not crash-safe and not meant to be.
type DiagnosisSessionCache interface {
	SaveAnswer(ctx context.Context, vipID, questionID string, ans model.AnswerValue) error
	Answers(ctx context.Context, vipID string) (map[string]model.AnswerValue, error)
	Clear(ctx context.Context, vipID string) error
}

type diagnosisSessionCache struct {
	client *redis.Client
}

func NewDiagnosisSessionCache(client *redis.Client) DiagnosisSessionCache {
	return &diagnosisSessionCache{client: client}
}

func (c *diagnosisSessionCache) key(vipID string) string {
	return "diagnosis:" + vipID
}

func (c *diagnosisSessionCache) SaveAnswer(ctx context.Context, vipID, questionID string, ans model.AnswerValue) error {
	answers, err := c.Answers(ctx, vipID)
	if err != nil {
		return err
	}
	answers[questionID] = ans

	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	// Each save refreshes the TTL so a slow respondent keeps their session.
	return c.client.Set(ctx, c.key(vipID), data, sessionTTL).Err()
}

func (c *diagnosisSessionCache) Answers(ctx context.Context, vipID string) (map[string]model.AnswerValue, error) {
	data, err := c.client.Get(ctx, c.key(vipID)).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]model.AnswerValue{}, nil
	}
	if err != nil {
		return nil, err
	}

	var answers map[string]model.AnswerValue
	if err := json.Unmarshal([]byte(data), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (c *diagnosisSessionCache) Clear(ctx context.Context, vipID string) error {
	return c.client.Del(ctx, c.key(vipID)).Err()
}
