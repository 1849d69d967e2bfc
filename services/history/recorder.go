package history

import (
	"encoding/json"
	"fmt"

	models "Ruleta/models/postgres"
	redis_models "Ruleta/models/redis"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ParticipantOutcome is the per-participant snapshot stored with a settled
// round: the bet and color as they were when the wheel stopped, plus the
// resulting balance.
type ParticipantOutcome struct {
	UserID      string                     `json:"user_id"`
	Name        string                     `json:"name"`
	Bet         int                        `json:"bet"`
	ChosenColor redis_models.RouletteColor `json:"chosenColor"`
	Credits     int                        `json:"credits"`
}

// Recorder copies settled rounds from the (expiring) Redis document into
// PostgreSQL so history outlives the room.
type Recorder struct {
	DB *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{DB: db}
}

// Record inserts one settled round. Callers treat failures as log-only:
// history must never block or undo a settlement broadcast.
func (r *Recorder) Record(tableId string, number int, winning redis_models.RouletteColor,
	outcomes []ParticipantOutcome) error {

	data, err := json.Marshal(outcomes)
	if err != nil {
		return fmt.Errorf("error marshaling round outcomes for table %s: %w", tableId, err)
	}

	result := models.RoundResult{
		TableID:      tableId,
		Number:       number,
		WinningColor: string(winning),
		Outcomes:     datatypes.JSON(data),
	}
	if err := r.DB.Create(&result).Error; err != nil {
		return fmt.Errorf("error recording round for table %s: %w", tableId, err)
	}
	return nil
}

// Recent returns the latest settled rounds of a table, newest first.
func (r *Recorder) Recent(tableId string, limit int) ([]models.RoundResult, error) {
	var results []models.RoundResult
	err := r.DB.Where("table_id = ?", tableId).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("error querying round history for table %s: %w", tableId, err)
	}
	return results, nil
}
