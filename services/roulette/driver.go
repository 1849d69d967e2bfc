package roulette

import (
	"context"
	"math/rand"
	"time"

	game_constants "Ruleta/constants/game"
)

/*
 * The round driver produces the live number sequence of a spinning round:
 * one random wheel number per tick, broadcast to the room as a cosmetic
 * countdown, until the spin stops. Each tick stops the spin with a fixed
 * probability, so round length is geometric and has no hard ceiling (an
 * accepted policy; an operator-configurable cap is a known candidate).
 */

type Driver struct {
	Interval   time.Duration
	StopChance float64
	rng        *rand.Rand
}

// NewDriver builds a driver with the default pacing. A nil-safe rng is
// seeded per driver so concurrent rooms do not share a lock on a global
// source.
func NewDriver() *Driver {
	return &Driver{
		Interval:   game_constants.RouletteTickInterval,
		StopChance: game_constants.RouletteStopChance,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewDriverWithSource builds a driver over a caller-provided source.
func NewDriverWithSource(src rand.Source, interval time.Duration, stopChance float64) *Driver {
	return &Driver{
		Interval:   interval,
		StopChance: stopChance,
		rng:        rand.New(src),
	}
}

// Spin runs the tick loop, calling tick with each intermediate number. It
// returns the final number and true once the spin stops on its own, or
// (0, false) if ctx is cancelled first (admin disconnected, room emptied or
// the round was settled manually).
func (d *Driver) Spin(ctx context.Context, tick func(number int)) (int, bool) {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, false
		case <-ticker.C:
			number := d.rng.Intn(game_constants.MaxRouletteNumber + 1)
			tick(number)
			if d.rng.Float64() < d.StopChance {
				return number, true
			}
		}
	}
}
