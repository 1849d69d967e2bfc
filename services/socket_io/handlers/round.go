package handlers

import (
	"context"
	"log"

	redis_models "Ruleta/models/redis"
	"Ruleta/services/history"
	"Ruleta/services/redis"
	redis_utils "Ruleta/services/redis/utils"
	"Ruleta/services/roulette"
	socketio_types "Ruleta/services/socket_io/types"
	socketio_utils "Ruleta/services/socket_io/utils"
	"Ruleta/services/tables"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleStartGame processes "start_game" (admin only). On success the table
// flips into the in-round phase and a server-side driver goroutine starts
// spinning: it broadcasts one "game_number" per tick and, when the spin
// stops, settles the round with the color of the final number. The spin is
// cancelled if the admin disconnects, the room empties, or the admin
// settles manually with "end_game" first.
func HandleStartGame(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer,
	recorder *history.Recorder) func(args ...interface{}) {
	return func(args ...interface{}) {
		table, ok := socketio_utils.RequireAdmin(rc, client, tableId, userId)
		if !ok {
			return
		}

		if err := tables.StartRound(table); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		if err := rc.PatchTableField(tableId, redis_utils.HasStartedPath, true); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		updated, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}
		socketio_utils.BroadcastTable(sio, tableId, updated)
		log.Printf("[ROUND] Table %s round started by admin %s", tableId, userId)

		ctx, cancel := context.WithCancel(context.Background())
		sio.SetRoundCancel(tableId, cancel)

		go func() {
			driver := roulette.NewDriver()
			final, finished := driver.Spin(ctx, func(number int) {
				sio.Sio_server.To(socket.Room(tableId)).Emit("game_number", number)
			})
			if !finished {
				log.Printf("[ROUND] Spin for table %s cancelled", tableId)
				return
			}
			sio.ClearRoundCancel(tableId)

			winning, err := roulette.ColorOf(final)
			if err != nil {
				// Spin numbers come from the wheel range, so this would be
				// a programming error; the round dies with it.
				log.Printf("[ROUND-ERROR] Table %s: %v", tableId, err)
				return
			}
			if err := socketio_utils.ApplySettlement(rc, recorder, sio, tableId, final, winning); err != nil {
				log.Printf("[ROUND-ERROR] Table %s settlement failed: %v", tableId, err)
			}
		}()
	}
}

// HandleEndGame processes "end_game" {color} (admin only): the manual
// settlement path. Any live server-side spin is cancelled first so the
// round cannot settle twice.
func HandleEndGame(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer,
	recorder *history.Recorder) func(args ...interface{}) {
	return func(args ...interface{}) {
		if _, ok := socketio_utils.RequireAdmin(rc, client, tableId, userId); !ok {
			return
		}

		payload, ok := eventPayload(args)
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("missing color payload"))
			return
		}
		colorStr, ok := payloadString(payload, "color")
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("color must be a string"))
			return
		}
		winning := redis_models.RouletteColor(colorStr)
		if !winning.IsBettable() {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("invalid winning color"))
			return
		}

		sio.CancelRound(tableId)

		if err := socketio_utils.ApplySettlement(rc, recorder, sio, tableId,
			socketio_utils.ManualSettleNumber, winning); err != nil {
			socketio_utils.EmitException(client, err)
		}
	}
}

// HandleRouletteNumber processes "roulette_number" {number} (admin only):
// a cosmetic tick broadcast for admins driving the spin from their own
// client. No table state is touched.
func HandleRouletteNumber(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if _, ok := socketio_utils.RequireAdmin(rc, client, tableId, userId); !ok {
			return
		}

		payload, ok := eventPayload(args)
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("missing number payload"))
			return
		}
		number, ok := payloadInt(payload, "number")
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("number must be an integer"))
			return
		}
		if _, err := roulette.ColorOf(number); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		sio.Sio_server.To(socket.Room(tableId)).Emit("game_number", number)
	}
}
