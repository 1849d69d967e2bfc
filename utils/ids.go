package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	game_constants "Ruleta/constants/game"
)

// NewTableCode generates a random 6-character room code over [0-9A-Z].
// Uniqueness against live rooms is the caller's job, checked with a loop
// against the store.
func NewTableCode() (string, error) {
	return randomString(game_constants.TableCodeAlphabet, game_constants.TableCodeLength)
}

// userIDAlphabet matches the URL-safe nanoid alphabet; 21 characters keeps
// collisions out of reach without coordination.
const userIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
const userIDLength = 21

// NewUserID generates a globally unique participant id.
func NewUserID() (string, error) {
	return randomString(userIDAlphabet, userIDLength)
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating random id: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
