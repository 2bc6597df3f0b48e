package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
)

type Mood string

const (
	MoodAngry   Mood = "angry"
	MoodSad     Mood = "sad"
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
)

const maxSymbolLength = 2

var moodSymbols = map[Mood]string{
	MoodAngry:   "😠",
	MoodSad:     "😢",
	MoodHappy:   "😊",
	MoodNeutral: "😐",
}

// Player is one seat at the board. Mood is carried through untouched by the rules.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Mood   Mood   `json:"mood"`
}

func (that Mood) IsKnown() bool {
	_, ok := moodSymbols[that]
	return ok
}

// Symbol returns the default board symbol for the mood.
func (that Mood) Symbol() string {
	return moodSymbols[that]
}

// Normalize fills a missing symbol from the mood and trims the name.
func (that *Player) Normalize() {
	that.Name = strings.TrimSpace(that.Name)
	if that.Name == "" {
		that.Name = fmt.Sprintf("Player %d", that.ID)
	}

	if that.Symbol == "" {
		that.Symbol = that.Mood.Symbol()
	}
}

func (that *Player) Validate() error {
	if that.ID <= EmptyCell {
		return fmt.Errorf("%w: id must be positive, got %d", apperror.ErrInvalidPlayer, that.ID)
	}

	if !that.Mood.IsKnown() {
		return fmt.Errorf("%w: unknown mood %q", apperror.ErrInvalidPlayer, that.Mood)
	}

	if n := utf8.RuneCountInString(that.Symbol); n == 0 || n > maxSymbolLength {
		return fmt.Errorf("%w: symbol %q must be 1-%d characters", apperror.ErrInvalidPlayer, that.Symbol, maxSymbolLength)
	}

	return nil
}
