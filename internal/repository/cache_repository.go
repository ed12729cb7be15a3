package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"scheduling-web-server/config"
	"scheduling-web-server/internal/model"
	"scheduling-web-server/internal/util"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetTemplate(ctx context.Context, template *model.TemplateSchedule) error {
	data, err := json.Marshal(template)
	if err != nil {
		return util.LogError("ошибка сериализации шаблона", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(template.ID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetTemplate(ctx context.Context, id int64) (*model.TemplateSchedule, error) {
	val, err := r.client.Client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения шаблона из Redis", err)
	}

	var template model.TemplateSchedule
	if err := json.Unmarshal([]byte(val), &template); err != nil {
		return nil, util.LogError("ошибка десериализации шаблона из кэша", err)
	}
	return &template, nil
}

func (r *CacheRepository) DeleteTemplate(ctx context.Context, id int64) error {
	if err := r.client.Client.Del(ctx, r.key(id)).Err(); err != nil {
		return util.LogError("ошибка удаления шаблона из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(id int64) string {
	return fmt.Sprintf("template:%d", id)
}
