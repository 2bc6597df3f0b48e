package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

// RosterRepository keeps the players of a session after the session itself is
// gone, so the same group can start a rematch.
type RosterRepository interface {
	Save(ctx context.Context, sessionID string, players []entity.Player) error
	GetByID(ctx context.Context, sessionID string) ([]entity.Player, error)
}

type dbRoster struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRosterRepository(client *redis.Client, ttl time.Duration) RosterRepository {
	return &dbRoster{
		client: client,
		ttl:    ttl,
	}
}

func rosterKey(id string) string {
	return "roster:" + id
}

func (that *dbRoster) Save(ctx context.Context, sessionID string, players []entity.Player) error {
	playersJSON, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err = that.client.Set(ctx, rosterKey(sessionID), playersJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set roster: %w", err)
	}

	return nil
}

func (that *dbRoster) GetByID(ctx context.Context, sessionID string) ([]entity.Player, error) {
	response, err := that.client.Get(ctx, rosterKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get roster by id: %w", err)
	}

	var players []entity.Player
	if err = json.Unmarshal([]byte(response), &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	return players, nil
}
