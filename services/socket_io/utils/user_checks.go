package socketio_utils

import (
	"errors"
	"log"

	"Ruleta/middleware"
	redis_models "Ruleta/models/redis"
	"Ruleta/services/redis"
	"Ruleta/services/tables"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// EmitException reports a command failure to the offending client only.
// Room members never see other clients' errors.
func EmitException(client *socket.Socket, err error) {
	var gameErr *tables.Error
	if !errors.As(err, &gameErr) {
		// Redis/Postgres failures surface as a generic internal error;
		// the detail stays in the server log.
		log.Printf("[SIO-ERROR] internal error on socket %s: %v", client.Id(), err)
		gameErr = tables.ErrStoreUnavailable("internal server error")
	}
	client.Emit("exception", gin.H{
		"kind":    gameErr.Kind,
		"message": gameErr.Message,
	})
}

// VerifyTableConnection authenticates a socket.io client from its handshake
// auth token and resolves the (userID, tableID, name) triple it is bound to.
// The token is the only thing trusted from the handshake.
func VerifyTableConnection(client *socket.Socket) (success bool, userId, tableId, name string) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		log.Printf("[AUTH-ERROR] No auth data provided in handshake, socket %s", client.Id())
		EmitException(client, tables.ErrUnauthorized("authentication failed: missing auth data"))
		return false, "", "", ""
	}

	userId, tableId, name, err := middleware.SocketioJWTDecoder(authData)
	if err != nil {
		log.Printf("[AUTH-ERROR] Invalid token on socket %s: %v", client.Id(), err)
		EmitException(client, tables.ErrUnauthorized("authentication failed: invalid or missing token"))
		return false, "", "", ""
	}

	return true, userId, tableId, name
}

// RequireAdmin re-fetches the table and checks that the calling user is its
// current admin. The role is deliberately never cached on the connection:
// deriving it from the stored document on every privileged call closes the
// window where a stale admin could keep driving the room.
func RequireAdmin(rc *redis.RedisClient, client *socket.Socket,
	tableId, userId string) (*redis_models.Table, bool) {

	table, err := rc.GetTable(tableId)
	if err != nil {
		EmitException(client, err)
		return nil, false
	}
	if !table.IsAdmin(userId) {
		EmitException(client, tables.ErrUnauthorized("admin privileges required"))
		return nil, false
	}
	return table, true
}
