package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

const (
	MinPlayers = 2
	MaxPlayers = 6

	minWinLength = 3
	maxCapped    = 4
)

type WinPolicy string

const (
	// PolicyFullLine needs a run as long as the board side.
	PolicyFullLine WinPolicy = "full-line"
	// PolicyCapped needs max(3, min(4, players-1)) in a row.
	PolicyCapped WinPolicy = "capped"
	// PolicyFixed needs Length in a row, clamped to [3, size].
	PolicyFixed WinPolicy = "fixed"
)

// WinRule decides the winning run length for a game.
type WinRule struct {
	Policy WinPolicy
	Length int
}

// ParseWinRule reads "full-line", "capped" or "fixed:<n>".
func ParseWinRule(raw string) (WinRule, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))

	switch {
	case raw == string(PolicyFullLine):
		return WinRule{Policy: PolicyFullLine}, nil
	case raw == string(PolicyCapped):
		return WinRule{Policy: PolicyCapped}, nil
	case strings.HasPrefix(raw, string(PolicyFixed)+":"):
		length, err := strconv.Atoi(strings.TrimPrefix(raw, string(PolicyFixed)+":"))
		if err != nil || length < minWinLength {
			return WinRule{}, fmt.Errorf("%w: unknown win rule %q", apperror.ErrInvalidConfig, raw)
		}
		return WinRule{Policy: PolicyFixed, Length: length}, nil
	default:
		return WinRule{}, fmt.Errorf("%w: unknown win rule %q", apperror.ErrInvalidConfig, raw)
	}
}

func (that WinRule) String() string {
	if that.Policy == PolicyFixed {
		return fmt.Sprintf("%s:%d", that.Policy, that.Length)
	}
	return string(that.Policy)
}

// WinLength applies the rule to a board of the given size.
func (that WinRule) WinLength(playerCount, size int) int {
	switch that.Policy {
	case PolicyCapped:
		return min(size, max(minWinLength, min(maxCapped, playerCount-1)))
	case PolicyFixed:
		return min(size, max(minWinLength, that.Length))
	default:
		return size
	}
}

// ParseDiagonalScope reads "any" or "corner".
func ParseDiagonalScope(raw string) (entity.DiagonalScope, error) {
	switch scope := entity.DiagonalScope(strings.TrimSpace(strings.ToLower(raw))); scope {
	case entity.DiagonalAny, entity.DiagonalCorner:
		return scope, nil
	default:
		return "", fmt.Errorf("%w: unknown diagonal scope %q", apperror.ErrInvalidConfig, raw)
	}
}

// Rules resolves board configs for new games.
type Rules struct {
	WinRule       WinRule
	DiagonalScope entity.DiagonalScope
}

func NewRules(winRule WinRule, scope entity.DiagonalScope) *Rules {
	return &Rules{
		WinRule:       winRule,
		DiagonalScope: scope,
	}
}

// BoardSize returns the side of the board for the number of players.
func BoardSize(playerCount int) int {
	switch {
	case playerCount <= 3:
		return 3
	case playerCount <= 5:
		return 4
	default:
		return 5
	}
}

// ResolveConfig derives the board config for a game with playerCount players.
func (that *Rules) ResolveConfig(playerCount int) (entity.BoardConfig, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return entity.BoardConfig{}, &apperror.ConfigError{PlayerCount: playerCount}
	}

	size := BoardSize(playerCount)

	return entity.BoardConfig{
		Size:          size,
		WinLength:     that.WinRule.WinLength(playerCount, size),
		DiagonalScope: that.DiagonalScope,
	}, nil
}

func validateConfig(config entity.BoardConfig) error {
	if config.Size < minWinLength {
		return fmt.Errorf("%w: size %d", apperror.ErrInvalidConfig, config.Size)
	}

	if config.WinLength < minWinLength || config.WinLength > config.Size {
		return fmt.Errorf("%w: win length %d on size %d", apperror.ErrInvalidConfig, config.WinLength, config.Size)
	}

	if config.DiagonalScope != entity.DiagonalAny && config.DiagonalScope != entity.DiagonalCorner {
		return fmt.Errorf("%w: diagonal scope %q", apperror.ErrInvalidConfig, config.DiagonalScope)
	}

	return nil
}
