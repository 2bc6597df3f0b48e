package entity

type ChallengeMode string

const (
	ModeWaiting    ChallengeMode = "waiting"
	ModeGroup      ChallengeMode = "group"
	ModeIndividual ChallengeMode = "individual"
)

type ChallengeKind string

const (
	KindNone  ChallengeKind = ""
	KindTruth ChallengeKind = "truth"
	KindDare  ChallengeKind = "dare"
)

// ChallengeRound is the truth-or-dare flow played by the losers of a finished game.
// Winner is nil after a draw.
type ChallengeRound struct {
	Winner       *Player       `json:"winner,omitempty"`
	Losers       []Player      `json:"losers"`
	Mode         ChallengeMode `json:"mode"`
	CurrentLoser int           `json:"current_loser"`
	Kind         ChallengeKind `json:"kind,omitempty"`
	Prompt       string        `json:"prompt,omitempty"`
	Answer       string        `json:"answer,omitempty"`
	Finished     bool          `json:"finished"`
}

// Loser returns the loser currently facing the challenge, or nil in group mode.
func (that *ChallengeRound) Loser() *Player {
	if that.Mode != ModeIndividual || that.CurrentLoser >= len(that.Losers) {
		return nil
	}
	return &that.Losers[that.CurrentLoser]
}
