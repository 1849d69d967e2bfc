package handlers

import (
	"log"

	redis_models "Ruleta/models/redis"
	"Ruleta/services/redis"
	redis_utils "Ruleta/services/redis/utils"
	socketio_types "Ruleta/services/socket_io/types"
	socketio_utils "Ruleta/services/socket_io/utils"
	"Ruleta/services/tables"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandlePlaceBet processes "place_bet" {amount}. Only valid before the
// round starts; the bet is capped by the table maximum and the caller's own
// balance, which is what keeps settlement from ever going negative.
func HandlePlaceBet(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := eventPayload(args)
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("missing bet payload"))
			return
		}
		amount, ok := payloadInt(payload, "amount")
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("bet amount must be an integer"))
			return
		}

		table, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		if err := tables.PlaceBet(table, userId, amount); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		path := redis_utils.FormatParticipantFieldPath(userId, "bet")
		if err := rc.PatchTableField(tableId, path, amount); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		updated, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}
		socketio_utils.BroadcastTable(sio, tableId, updated)
		log.Printf("[BET] User %s bet %d on table %s", userId, amount, tableId)
	}
}

// HandleChooseColor processes "choose_color" {color}.
func HandleChooseColor(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
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
		color := redis_models.RouletteColor(colorStr)

		table, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		if err := tables.ChooseColor(table, userId, color); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		path := redis_utils.FormatParticipantFieldPath(userId, "chosenColor")
		if err := rc.PatchTableField(tableId, path, color); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		updated, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}
		socketio_utils.BroadcastTable(sio, tableId, updated)
		log.Printf("[COLOR] User %s chose %s on table %s", userId, color, tableId)
	}
}
