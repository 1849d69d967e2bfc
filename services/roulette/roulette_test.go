package roulette

import (
	"testing"

	models "Ruleta/models/redis"
	"Ruleta/services/tables"

	"github.com/stretchr/testify/assert"
)

func TestColorOf(t *testing.T) {
	cases := []struct {
		number int
		want   models.RouletteColor
	}{
		{0, models.ColorGreen},
		{1, models.ColorRed},
		{5, models.ColorRed},
		{10, models.ColorBlack},
		{2, models.ColorBlack},
		{11, models.ColorBlack},
		{12, models.ColorRed},
		{17, models.ColorBlack},
		{18, models.ColorRed},
		{19, models.ColorRed},
		{24, models.ColorBlack},
		{28, models.ColorBlack},
		{29, models.ColorBlack},
		{30, models.ColorRed},
		{36, models.ColorRed},
	}

	for _, tc := range cases {
		got, err := ColorOf(tc.number)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "number %d", tc.number)
	}
}

func TestColorOfOutOfRange(t *testing.T) {
	for _, number := range []int{-1, 37, 100, -36} {
		_, err := ColorOf(number)
		assert.Error(t, err, "number %d", number)
		assert.Equal(t, tables.KindInvalidArgument, tables.KindOf(err))
	}
}
