package pkg

import (
	"strings"

	"github.com/google/uuid"
)

const gameIDLength = 8

// GenerateGameID returns a short id suitable for sharing a game by link or QR code.
func GenerateGameID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:gameIDLength])
}
