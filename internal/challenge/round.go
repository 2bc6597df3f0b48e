package challenge

import (
	"fmt"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

// NewRound opens the post-game flow for a finished game.
func NewRound(result *entity.MoveResult) (*entity.ChallengeRound, error) {
	if result == nil || !result.IsFinal() {
		return nil, apperror.ErrGameIsNotFinished
	}

	round := &entity.ChallengeRound{
		Losers: append([]entity.Player(nil), result.Losers...),
		Mode:   entity.ModeWaiting,
	}

	if result.Winner != nil {
		winner := *result.Winner
		round.Winner = &winner
	}

	return round, nil
}

func SelectMode(round *entity.ChallengeRound, mode entity.ChallengeMode) error {
	if err := ensureOpen(round); err != nil {
		return err
	}

	if round.Mode != entity.ModeWaiting {
		return fmt.Errorf("%w: %s", apperror.ErrModeAlreadySelected, round.Mode)
	}

	switch mode {
	case entity.ModeGroup, entity.ModeIndividual:
		round.Mode = mode
		round.CurrentLoser = 0
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownChallengeMode, mode)
	}
}

// Choose picks truth or dare and draws a prompt for it.
func Choose(round *entity.ChallengeRound, kind entity.ChallengeKind, picker *Picker) error {
	if err := ensurePlaying(round); err != nil {
		return err
	}

	prompt, err := picker.Pick(kind)
	if err != nil {
		return fmt.Errorf("failed to pick %s: %w", kind, err)
	}

	round.Kind = kind
	round.Prompt = prompt
	round.Answer = ""

	return nil
}

// Reroll draws another prompt of the chosen kind.
func Reroll(round *entity.ChallengeRound, picker *Picker) error {
	if err := ensurePlaying(round); err != nil {
		return err
	}

	if round.Kind == entity.KindNone {
		return apperror.ErrChallengeNotChosen
	}

	return Choose(round, round.Kind, picker)
}

// Submit records a truth answer once validate accepts it.
func Submit(round *entity.ChallengeRound, answer string, validate Validator) error {
	if err := ensurePlaying(round); err != nil {
		return err
	}

	switch round.Kind {
	case entity.KindNone:
		return apperror.ErrChallengeNotChosen
	case entity.KindDare:
		return apperror.ErrAnswerNotRequired
	}

	if validate != nil {
		if err := validate(answer); err != nil {
			return err
		}
	}

	round.Answer = answer

	return nil
}

// Next moves to the following loser, or finishes the round after the last one.
// A group challenge is played once by everybody, so Next finishes it.
func Next(round *entity.ChallengeRound) error {
	if err := ensurePlaying(round); err != nil {
		return err
	}

	if round.Mode == entity.ModeGroup || round.CurrentLoser >= len(round.Losers)-1 {
		round.Finished = true
		return nil
	}

	round.CurrentLoser++
	round.Kind = entity.KindNone
	round.Prompt = ""
	round.Answer = ""

	return nil
}

func ensureOpen(round *entity.ChallengeRound) error {
	if round == nil {
		return apperror.ErrChallengeNotAvailable
	}

	if round.Finished {
		return apperror.ErrChallengeFinished
	}

	return nil
}

func ensurePlaying(round *entity.ChallengeRound) error {
	if err := ensureOpen(round); err != nil {
		return err
	}

	if round.Mode == entity.ModeWaiting {
		return apperror.ErrModeNotSelected
	}

	return nil
}
