package handlers

import (
	"log"

	"Ruleta/services/redis"
	redis_utils "Ruleta/services/redis/utils"
	socketio_types "Ruleta/services/socket_io/types"
	socketio_utils "Ruleta/services/socket_io/utils"
	"Ruleta/services/tables"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleConnection admits an authenticated connection into its room:
// joining the broadcast group and creating the participant happen together,
// so a connection never receives room broadcasts without being a
// participant or vice versa.
func HandleConnection(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId, name string, sio *socketio_types.SocketServer) bool {

	table, err := rc.GetTable(tableId)
	if err != nil {
		// Expired or never existed; nothing to join.
		socketio_utils.EmitException(client, err)
		return false
	}

	participant := tables.AddParticipant(table, userId, name)
	if err := rc.PatchTableField(tableId, redis_utils.FormatParticipantPath(userId), participant); err != nil {
		socketio_utils.EmitException(client, err)
		return false
	}

	client.Join(socket.Room(tableId))
	sio.AddConnection(userId, client)
	count := sio.JoinRoom(tableId)
	log.Printf("[JOIN] User %s joined table %s (%d connections in room)", userId, tableId, count)

	updated, err := rc.GetTable(tableId)
	if err != nil {
		// The caller disconnects us without a "disconnecting" handler ever
		// being registered, so the bookkeeping must be unwound here or the
		// room count and connection entry leak for good.
		client.Leave(socket.Room(tableId))
		sio.LeaveRoom(tableId)
		sio.RemoveConnection(userId)
		socketio_utils.EmitException(client, err)
		return false
	}
	socketio_utils.BroadcastTable(sio, tableId, updated)
	return true
}

// HandleDisconnecting removes the participant when their connection goes
// away. While a round is in progress the table keeps the participant (the
// settlement needs them) and no broadcast happens; a later removal attempt
// after the round ends will succeed.
func HandleDisconnecting(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] User %s leaving table %s", userId, tableId)

		remaining := sio.LeaveRoom(tableId)
		sio.RemoveConnection(userId)

		table, err := rc.GetTable(tableId)
		if err != nil {
			// Room already expired; nothing to clean up.
			log.Printf("[DISCONNECT] Table %s gone: %v", tableId, err)
			return
		}

		if table.IsAdmin(userId) || remaining == 0 {
			// Nobody is left to drive or watch the spin.
			sio.CancelRound(tableId)
		}

		if removed := tables.RemoveParticipant(table, userId); !removed {
			log.Printf("[DISCONNECT] Removal of %s from table %s deferred (round in progress)",
				userId, tableId)
			return
		}

		if err := rc.DeleteTableField(tableId, redis_utils.FormatParticipantPath(userId)); err != nil {
			log.Printf("[DISCONNECT-ERROR] Failed to remove %s from table %s: %v", userId, tableId, err)
			return
		}

		updated, err := rc.GetTable(tableId)
		if err != nil {
			log.Printf("[DISCONNECT-ERROR] Failed to re-read table %s: %v", tableId, err)
			return
		}
		socketio_utils.BroadcastTable(sio, tableId, updated)
		log.Printf("[DISCONNECT-DONE] User %s removed from table %s", userId, tableId)
	}
}
