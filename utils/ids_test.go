package utils

import (
	"strings"
	"testing"

	game_constants "Ruleta/constants/game"

	"github.com/stretchr/testify/assert"
)

func TestNewTableCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := NewTableCode()
		assert.NoError(t, err)
		assert.Len(t, code, game_constants.TableCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(game_constants.TableCodeAlphabet, r),
				"unexpected character %q in code %s", r, code)
		}
		seen[code] = true
	}
	// 100 draws out of 36^6 codes colliding would point at a broken generator.
	assert.Greater(t, len(seen), 95)
}

func TestNewUserID(t *testing.T) {
	a, err := NewUserID()
	assert.NoError(t, err)
	b, err := NewUserID()
	assert.NoError(t, err)

	assert.Len(t, a, 21)
	assert.NotEqual(t, a, b)
}
