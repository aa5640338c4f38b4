package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrUnfinishedGame = errors.New("game is not finished")

const scoreboardKeyPrefix = "scoreboard:"

type ScoreboardRepository interface {
	Record(ctx context.Context, name string, outcome entity.Outcome) (entity.Score, error)
	GetByName(ctx context.Context, name string) (entity.Score, error)
	DeleteByName(ctx context.Context, name string) error
}

type dbScoreboard struct {
	client *redis.Client
}

func NewScoreboardRepository(client *redis.Client) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
	}
}

// Record counts a finished game and returns the updated tally.
func (that *dbScoreboard) Record(ctx context.Context, name string, outcome entity.Outcome) (entity.Score, error) {
	field, err := scoreField(outcome)
	if err != nil {
		return entity.Score{}, err
	}

	key := scoreboardKeyPrefix + name

	pipe := that.client.TxPipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	all := pipe.HGetAll(ctx, key)

	if _, err = pipe.Exec(ctx); err != nil {
		return entity.Score{}, fmt.Errorf("failed to record outcome: %w", err)
	}

	var score entity.Score
	if err = all.Scan(&score); err != nil {
		return entity.Score{}, fmt.Errorf("failed to scan scoreboard: %w", err)
	}

	return score, nil
}

func (that *dbScoreboard) GetByName(ctx context.Context, name string) (entity.Score, error) {
	var score entity.Score

	// a missing key scans into a zero score
	if err := that.client.HGetAll(ctx, scoreboardKeyPrefix+name).Scan(&score); err != nil {
		return entity.Score{}, fmt.Errorf("failed to get scoreboard by name: %w", err)
	}

	return score, nil
}

func (that *dbScoreboard) DeleteByName(ctx context.Context, name string) error {
	if err := that.client.Del(ctx, scoreboardKeyPrefix+name).Err(); err != nil {
		return fmt.Errorf("failed to delete scoreboard by name: %w", err)
	}

	return nil
}

type memoryScoreboard struct {
	mu     sync.Mutex
	scores map[string]entity.Score
}

// NewMemoryScoreboardRepository keeps scores for the lifetime of the process.
func NewMemoryScoreboardRepository() ScoreboardRepository {
	return &memoryScoreboard{
		scores: make(map[string]entity.Score),
	}
}

func (that *memoryScoreboard) Record(_ context.Context, name string, outcome entity.Outcome) (entity.Score, error) {
	if _, err := scoreField(outcome); err != nil {
		return entity.Score{}, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	score := that.scores[name]
	score.Record(outcome)
	that.scores[name] = score

	return score, nil
}

func (that *memoryScoreboard) GetByName(_ context.Context, name string) (entity.Score, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.scores[name], nil
}

func (that *memoryScoreboard) DeleteByName(_ context.Context, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.scores, name)

	return nil
}

func scoreField(outcome entity.Outcome) (string, error) {
	switch {
	case outcome.Status == entity.StatusDraw:
		return "draws", nil
	case outcome.Status == entity.StatusWin && outcome.Winner == entity.SideX:
		return "x", nil
	case outcome.Status == entity.StatusWin && outcome.Winner == entity.SideO:
		return "o", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnfinishedGame, outcome)
	}
}
