package roulette

import (
	"fmt"

	game_constants "Ruleta/constants/game"
	models "Ruleta/models/redis"
	"Ruleta/services/tables"
)

// ColorOf maps a roulette number to its wheel color:
//
//	0            -> green
//	1-10, 19-28  -> black if even, red if odd
//	11-18, 29-36 -> red if even, black if odd
//
// Numbers outside 0..36 violate the input contract and fail the round.
func ColorOf(number int) (models.RouletteColor, error) {
	switch {
	case number == 0:
		return models.ColorGreen, nil
	case (number >= 1 && number <= 10) || (number >= 19 && number <= 28):
		if number%2 == 0 {
			return models.ColorBlack, nil
		}
		return models.ColorRed, nil
	case (number >= 11 && number <= 18) || (number >= 29 && number <= game_constants.MaxRouletteNumber):
		if number%2 == 0 {
			return models.ColorRed, nil
		}
		return models.ColorBlack, nil
	default:
		return models.ColorNone, tables.ErrInvalidArgument(
			fmt.Sprintf("number %d is not on the wheel", number))
	}
}
