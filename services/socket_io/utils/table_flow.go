package socketio_utils

import (
	"log"

	redis_models "Ruleta/models/redis"
	"Ruleta/services/history"
	"Ruleta/services/redis"
	redis_utils "Ruleta/services/redis/utils"
	socketio_types "Ruleta/services/socket_io/types"
	"Ruleta/services/tables"

	"github.com/zishang520/socket.io/v2/socket"
)

// BroadcastTable emits the full updated table document to every connection
// in the room. Always the whole snapshot, never a diff: receivers replace
// their local view wholesale, so broadcasts are idempotent and clients need
// no merge logic.
func BroadcastTable(sio *socketio_types.SocketServer, tableId string, table *redis_models.Table) {
	sio.Sio_server.To(socket.Room(tableId)).Emit("table_updated", table)
}

// ManualSettleNumber marks a settlement that was issued directly by the
// admin (end_game) rather than derived from a wheel number.
const ManualSettleNumber = -1

// ApplySettlement runs the settlement transition and writes it back: one
// participant-object patch per participant, then the phase flip, then the
// history row, then the room broadcast.
//
// The write sequence is NOT atomic as a whole. A store failure mid-way
// leaves the table mixed (some participants reset, hasStarted possibly
// still true) and a removal racing this loop can be missed; both are
// accepted limitations of the single-admin, low-stakes design.
func ApplySettlement(rc *redis.RedisClient, recorder *history.Recorder,
	sio *socketio_types.SocketServer, tableId string, number int,
	winning redis_models.RouletteColor) error {

	table, err := rc.GetTable(tableId)
	if err != nil {
		return err
	}

	// Snapshot bets and colors before Settle resets them.
	outcomes := make([]history.ParticipantOutcome, 0, len(table.Participants))
	preBets := make(map[string]redis_models.Participant, len(table.Participants))
	for id, p := range table.Participants {
		preBets[id] = *p
	}

	if err := tables.Settle(table, winning); err != nil {
		return err
	}

	for id, p := range table.Participants {
		if err := rc.PatchTableField(tableId, redis_utils.FormatParticipantPath(id), p); err != nil {
			log.Printf("[SETTLE-ERROR] Table %s: failed to write participant %s, table left mixed: %v",
				tableId, id, err)
			return err
		}
		pre := preBets[id]
		outcomes = append(outcomes, history.ParticipantOutcome{
			UserID:      id,
			Name:        p.Name,
			Bet:         pre.Bet,
			ChosenColor: pre.ChosenColor,
			Credits:     p.Credits,
		})
	}

	if err := rc.PatchTableField(tableId, redis_utils.HasStartedPath, false); err != nil {
		log.Printf("[SETTLE-ERROR] Table %s: participants written but phase flip failed: %v", tableId, err)
		return err
	}

	// History is best effort: a Postgres hiccup must not block the broadcast.
	if recorder != nil {
		if err := recorder.Record(tableId, number, winning, outcomes); err != nil {
			log.Printf("[HISTORY-ERROR] %v", err)
		}
	}

	updated, err := rc.GetTable(tableId)
	if err != nil {
		return err
	}
	BroadcastTable(sio, tableId, updated)
	log.Printf("[SETTLE] Table %s settled on %s (number %d)", tableId, winning, number)
	return nil
}
