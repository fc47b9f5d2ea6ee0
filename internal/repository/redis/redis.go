package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"moviebot/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// Options configures the Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect creates a client and checks the connection
func Connect(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}

// WatchedRepo implements repository.WatchedRepository on Redis sets
type WatchedRepo struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewWatchedRepo creates a new watched repository
func NewWatchedRepo(client *goredis.Client, ttl time.Duration) *WatchedRepo {
	return &WatchedRepo{client: client, ttl: ttl}
}

func watchedKey(userID int64) string {
	return "watched:" + strconv.FormatInt(userID, 10)
}

// Mark adds movie to the user's set
func (r *WatchedRepo) Mark(ctx context.Context, userID int64, movieID domain.MovieID) error {
	key := watchedKey(userID)
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, key, string(movieID))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark movie %s: %w", movieID, err)
	}
	return nil
}

// Unmark removes movie from the user's set
func (r *WatchedRepo) Unmark(ctx context.Context, userID int64, movieID domain.MovieID) error {
	if err := r.client.SRem(ctx, watchedKey(userID), string(movieID)).Err(); err != nil {
		return fmt.Errorf("failed to unmark movie %s: %w", movieID, err)
	}
	return nil
}

// IsMarked checks membership
func (r *WatchedRepo) IsMarked(ctx context.Context, userID int64, movieID domain.MovieID) (bool, error) {
	marked, err := r.client.SIsMember(ctx, watchedKey(userID), string(movieID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check movie %s: %w", movieID, err)
	}
	return marked, nil
}

// PendingRepo implements repository.PendingRepository on plain Redis keys
type PendingRepo struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewPendingRepo creates a new pending repository
func NewPendingRepo(client *goredis.Client, ttl time.Duration) *PendingRepo {
	return &PendingRepo{client: client, ttl: ttl}
}

func pendingKey(userID int64) string {
	return "pending:" + strconv.FormatInt(userID, 10)
}

// Record stores destination chat for the user, replacing any previous one
func (r *PendingRepo) Record(ctx context.Context, userID int64, chatID int64) error {
	if err := r.client.Set(ctx, pendingKey(userID), chatID, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to record pending search: %w", err)
	}
	return nil
}

// Take returns and clears the user's pending destination using GETDEL
func (r *PendingRepo) Take(ctx context.Context, userID int64) (int64, bool, error) {
	val, err := r.client.GetDel(ctx, pendingKey(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to take pending search: %w", err)
	}

	chatID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid pending destination %q: %w", val, err)
	}
	return chatID, true, nil
}
