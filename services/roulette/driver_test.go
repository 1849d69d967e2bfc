package roulette

import (
	"context"
	"math/rand"
	"testing"
	"time"

	game_constants "Ruleta/constants/game"

	"github.com/stretchr/testify/assert"
)

func TestSpinStopsAndReturnsLastTick(t *testing.T) {
	driver := NewDriverWithSource(rand.NewSource(42), time.Millisecond, 0.5)

	var ticks []int
	final, finished := driver.Spin(context.Background(), func(number int) {
		ticks = append(ticks, number)
	})

	assert.True(t, finished)
	assert.NotEmpty(t, ticks)
	assert.Equal(t, ticks[len(ticks)-1], final, "the settled number is the last broadcast tick")
	for _, n := range ticks {
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, game_constants.MaxRouletteNumber)
	}
}

func TestSpinCancelled(t *testing.T) {
	// StopChance 0 would spin forever; cancellation is the only way out.
	driver := NewDriverWithSource(rand.NewSource(1), time.Millisecond, 0)

	ctx, cancel := context.WithCancel(context.Background())
	ticked := make(chan struct{}, 1)
	go func() {
		<-ticked
		cancel()
	}()

	done := make(chan struct{})
	var finished bool
	go func() {
		_, finished = driver.Spin(ctx, func(int) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		})
		close(done)
	}()

	select {
	case <-done:
		assert.False(t, finished)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled spin did not stop")
	}
}
