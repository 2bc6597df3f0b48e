package challenge

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
)

// Validator decides whether a truth answer is honest enough to accept.
type Validator func(answer string) error

// MinWords rejects answers with fewer than n words.
func MinWords(n int) Validator {
	return func(answer string) error {
		if words := len(strings.Fields(answer)); words < n {
			return fmt.Errorf("%w: %d words, need at least %d", apperror.ErrAnswerNotConvincing, words, n)
		}
		return nil
	}
}

// MinLines rejects answers with fewer than n non-blank lines.
func MinLines(n int) Validator {
	return func(answer string) error {
		lines := 0
		for _, line := range strings.Split(answer, "\n") {
			if strings.TrimSpace(line) != "" {
				lines++
			}
		}

		if lines < n {
			return fmt.Errorf("%w: %d lines, need at least %d", apperror.ErrAnswerNotConvincing, lines, n)
		}
		return nil
	}
}

// All runs validators in order and returns the first failure.
func All(validators ...Validator) Validator {
	return func(answer string) error {
		for _, validate := range validators {
			if validate == nil {
				continue
			}
			if err := validate(answer); err != nil {
				return err
			}
		}
		return nil
	}
}
