package game_constants

import "time"

// Creation bounds, validated at the HTTP boundary before anything reaches
// the table logic.
const (
	MinInitialCredits = 10
	MaxInitialCredits = 100000
	MinMaxBet         = 10
	MaxMaxBet         = 100000
	MinNameLength     = 1
	MaxNameLength     = 25
)

// Room codes: 6 characters, digits and uppercase letters.
const TableCodeLength = 6
const TableCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultTableTTL applies when SESSION_DURATION is unset. The TTL is fixed
// at creation and never refreshed by activity.
const DefaultTableTTL = 2 * time.Hour

// Roulette wheel: numbers 0..36.
const MaxRouletteNumber = 36

// Round driver pacing. StopChance is the per-tick stop probability, so the
// round length is geometrically distributed with no upper bound.
const (
	RouletteTickInterval = 300 * time.Millisecond
	RouletteStopChance   = 0.125
)
