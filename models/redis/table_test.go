package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	table := NewTable("AB12CD", 1000, 100, "creator")

	assert.Equal(t, "AB12CD", table.Id)
	assert.Equal(t, "creator", table.AdminId)
	assert.False(t, table.HasStarted)
	assert.Empty(t, table.Participants, "the creator only becomes a participant on connect")
}

// Admin status is a pure function of the stored table, recomputed on every
// privileged command rather than cached on a connection.
func TestIsAdmin(t *testing.T) {
	table := NewTable("AB12CD", 1000, 100, "creator")

	assert.True(t, table.IsAdmin("creator"))
	assert.False(t, table.IsAdmin("someone-else"))

	table.AdminId = "someone-else"
	assert.False(t, table.IsAdmin("creator"), "a stale admin loses the role immediately")
}

func TestRouletteColorIsBettable(t *testing.T) {
	assert.True(t, ColorRed.IsBettable())
	assert.True(t, ColorBlack.IsBettable())
	assert.True(t, ColorGreen.IsBettable())
	assert.False(t, ColorNone.IsBettable())
	assert.False(t, RouletteColor("purple").IsBettable())
}
