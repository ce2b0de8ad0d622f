package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type Cmdable interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionManagerRedis keeps a sessionID -> userID record next to every
// issued token, so a token stops working once its record is gone.
type SessionManagerRedis struct {
	rdb Cmdable
	jwt SessionManager
}

func NewSessionManagerRedis(rdb Cmdable, jwt SessionManager) *SessionManagerRedis {
	return &SessionManagerRedis{rdb: rdb, jwt: jwt}
}

func (sm *SessionManagerRedis) Create(ctx context.Context, u *User, sessID string, expiresAt int64) (string, error) {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl <= 0 {
		return "", fmt.Errorf("session %s already expired", sessID)
	}

	token, err := sm.jwt.Create(ctx, u, sessID, expiresAt)
	if err != nil {
		return "", err
	}

	err = sm.rdb.Set(ctx, sessID, u.ID, ttl).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

func (sm *SessionManagerRedis) Check(ctx context.Context, token string) (*Session, error) {
	sess, err := sm.jwt.Check(ctx, token)
	if err != nil {
		return nil, err
	}

	userIDStr, err := sm.rdb.Get(ctx, sess.SessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	if userID != sess.User.ID {
		return nil, ErrWrongUser
	}

	return sess, nil
}

func (sm *SessionManagerRedis) Destroy(ctx context.Context, sess *Session) error {
	return sm.rdb.Del(ctx, sess.SessionID).Err()
}
