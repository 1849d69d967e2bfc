package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'RoundResult' is the durable record of one settled roulette round.
 * The Redis table document expires with its TTL, so settled rounds are
 * copied here for history queries.
 */
type RoundResult struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TableID      string         `gorm:"size:6;not null;index:idx_round_results_table" json:"table_id"`
	Number       int            `gorm:"not null" json:"number"`
	WinningColor string         `gorm:"size:10;not null" json:"winning_color"`
	// Per-participant snapshot at settlement time: bets, colors and the
	// resulting credit balances.
	Outcomes  datatypes.JSON `json:"outcomes"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
