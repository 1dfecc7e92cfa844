package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"stayhub/internal/cache"
	"stayhub/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// 測試可覆寫以下變數
var (
	uuidNewString = uuid.NewString
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// SessionData 是存在 Redis 的伺服端會話內容
type SessionData struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

func sessionKey(id string) string { return "session:" + id }

// CreateSession 產生不透明的會話 ID 並寫入 Redis，登出時可在伺服端撤銷
func CreateSession(ctx context.Context, rdb cache.Cache, user model.User, ttl time.Duration) (string, error) {
	id := uuidNewString()
	data, err := jsonMarshal(SessionData{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", err
	}
	if err := rdb.Set(ctx, sessionKey(id), data, ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// GetSession 讀取會話，不存在回傳 ErrSessionNotFound
func GetSession(ctx context.Context, rdb cache.Cache, id string) (*SessionData, error) {
	val, err := rdb.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var data SessionData
	if err := jsonUnmarshal([]byte(val), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DeleteSession 刪除會話（登出）
func DeleteSession(ctx context.Context, rdb cache.Cache, id string) error {
	return rdb.Del(ctx, sessionKey(id)).Err()
}
