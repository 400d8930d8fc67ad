package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

const keyPrefix = "booking_session:"

// Repository хранилище сессий бронирования в redis
type Repository struct {
	client RedisClient
	loc    *time.Location
}

// NewRepository создает репозиторий сессий
// loc часовой пояс площадок, в нем восстанавливается дата сессии
func NewRepository(client RedisClient, loc *time.Location) *Repository {
	return &Repository{client: client, loc: loc}
}

func key(id string) string {
	return keyPrefix + id
}

// Save сохраняет сессию и продлевает ее время жизни
func (r *Repository) Save(ctx context.Context, s *domain.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(toRecord(s))
	if err != nil {
		return fmt.Errorf("%w: Save - session_id=%s: %v", ErrEncode, s.ID, err)
	}

	if err := r.client.Set(ctx, key(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - session_id=%s: %v", ErrRedis, s.ID, err)
	}
	return nil
}

// Get получает сессию по ID
func (r *Repository) Get(ctx context.Context, id string) (*domain.BookingSession, error) {
	val, err := r.client.Get(ctx, key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - session_id=%s: %v", ErrRedis, id, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("%w: Get - session_id=%s: %v", ErrDecode, id, err)
	}

	s, err := fromRecord(rec, r.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - session_id=%s: %v", ErrDecode, id, err)
	}
	return s, nil
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete - session_id=%s: %v", ErrRedis, id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
