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

// HandleRemoveParticipant processes "remove_participant" {id} (admin only).
// Mid-round the removal is deferred, exactly like a disconnect: the target
// stays in the table and keeps receiving broadcasts until the round ends.
func HandleRemoveParticipant(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		table, ok := socketio_utils.RequireAdmin(rc, client, tableId, userId)
		if !ok {
			return
		}

		payload, ok := eventPayload(args)
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("missing participant payload"))
			return
		}
		targetId, ok := payloadString(payload, "id")
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("participant id must be a string"))
			return
		}

		if removed := tables.RemoveParticipant(table, targetId); !removed {
			log.Printf("[KICK] Removal of %s from table %s deferred or not needed", targetId, tableId)
			return
		}

		if err := rc.DeleteTableField(tableId, redis_utils.FormatParticipantPath(targetId)); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		// Tell the room who is out, then drop the evicted socket from the
		// broadcast group so it cannot linger as a phantom listener. The
		// socket itself stays connected, so the room count is left alone:
		// its "disconnecting" handler decrements it exactly once.
		sio.Sio_server.To(socket.Room(tableId)).Emit("participant_removed", targetId)
		if target, exists := sio.GetConnection(targetId); exists {
			target.Leave(socket.Room(tableId))
			sio.RemoveConnection(targetId)
		}

		updated, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}
		socketio_utils.BroadcastTable(sio, tableId, updated)
		log.Printf("[KICK] User %s removed from table %s by admin %s", targetId, tableId, userId)
	}
}

// HandleUpdateCredits processes "update_credits" {id, credits} (admin only),
// the direct balance override. With no id the admin adjusts their own row.
func HandleUpdateCredits(rc *redis.RedisClient, client *socket.Socket,
	userId, tableId string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		table, ok := socketio_utils.RequireAdmin(rc, client, tableId, userId)
		if !ok {
			return
		}

		payload, ok := eventPayload(args)
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("missing credits payload"))
			return
		}
		credits, ok := payloadInt(payload, "credits")
		if !ok {
			socketio_utils.EmitException(client, tables.ErrInvalidArgument("credits must be an integer"))
			return
		}
		targetId, ok := payloadString(payload, "id")
		if !ok {
			targetId = userId
		}

		if err := tables.UpdateCredits(table, targetId, credits); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		path := redis_utils.FormatParticipantFieldPath(targetId, "credits")
		if err := rc.PatchTableField(tableId, path, credits); err != nil {
			socketio_utils.EmitException(client, err)
			return
		}

		updated, err := rc.GetTable(tableId)
		if err != nil {
			socketio_utils.EmitException(client, err)
			return
		}
		socketio_utils.BroadcastTable(sio, tableId, updated)
		log.Printf("[CREDITS] Admin %s set credits of %s to %d on table %s",
			userId, targetId, credits, tableId)
	}
}
