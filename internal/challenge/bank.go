package challenge

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

// Bank holds the prompts a round picks from.
type Bank struct {
	Truths []string
	Dares  []string
}

func DefaultBank() Bank {
	return Bank{
		Truths: []string{
			"What's the most embarrassing thing you've ever done?",
			"What's your biggest fear?",
			"What's a secret you've never told anyone?",
			"Who do you have a crush on right now?",
			"What's the worst lie you've ever told?",
			"What's your most unusual talent?",
			"What's your biggest regret?",
			"What's the strangest dream you've ever had?",
			"What's the last lie you told?",
			"What's the weirdest thing you've done when you were alone?",
		},
		Dares: []string{
			"Do your best impression of another player",
			"Let another player post anything they want on your social media",
			"Call someone and sing them Happy Birthday, even if it's not their birthday",
			"Do 20 jumping jacks",
			"Speak in an accent for the next three rounds",
			"Let the group go through your phone for 1 minute",
			"Eat a spoonful of the spiciest condiment available",
			"Send a text to your crush or a random contact",
			"Wear your clothes backwards for the rest of the game",
			"Do your best dance move right now",
		},
	}
}

// WithDefaults fills an empty side of the bank from DefaultBank.
func (that Bank) WithDefaults() Bank {
	defaults := DefaultBank()
	if len(that.Truths) == 0 {
		that.Truths = defaults.Truths
	}
	if len(that.Dares) == 0 {
		that.Dares = defaults.Dares
	}
	return that
}

func (that Bank) prompts(kind entity.ChallengeKind) ([]string, error) {
	switch kind {
	case entity.KindTruth:
		return that.Truths, nil
	case entity.KindDare:
		return that.Dares, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownChallengeKind, kind)
	}
}

// Picker draws prompts from a bank with an injectable random source.
// It is safe for concurrent use.
type Picker struct {
	bank Bank

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPicker(bank Bank, src rand.Source) *Picker {
	return &Picker{
		bank: bank,
		rnd:  rand.New(src),
	}
}

// NewSeededPicker returns a picker whose sequence is fixed by seed.
func NewSeededPicker(bank Bank, seed uint64) *Picker {
	return NewPicker(bank, rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (that *Picker) Pick(kind entity.ChallengeKind) (string, error) {
	prompts, err := that.bank.prompts(kind)
	if err != nil {
		return "", err
	}

	if len(prompts) == 0 {
		return "", fmt.Errorf("%w: %s", apperror.ErrEmptyChallengeBank, kind)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return prompts[that.rnd.IntN(len(prompts))], nil
}
