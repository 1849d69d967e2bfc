package socket_io

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Ruleta/services/history"
	"Ruleta/services/redis"
	"Ruleta/services/socket_io/handlers"
	socketio_types "Ruleta/services/socket_io/types"
	socketio_utils "Ruleta/services/socket_io/utils"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and wires every
// room-scoped command. Each accepted connection is bound to the
// (userID, tableID, name) triple from its verified token; the closures
// below capture that binding, so no handler ever trusts identity data from
// an event payload.
func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	recorder := history.NewRecorder(db)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, userId, tableId, name := socketio_utils.VerifyTableConnection(client)
		if !success {
			client.Disconnect(true)
			return
		}

		server := (*socketio_types.SocketServer)(sio)

		// Room join + participant creation happen together on admission.
		if !handlers.HandleConnection(redisClient, client, userId, tableId, name, server) {
			client.Disconnect(true)
			return
		}

		// Betting phase commands
		client.On("place_bet", handlers.HandlePlaceBet(redisClient, client, userId, tableId, server))
		client.On("choose_color", handlers.HandleChooseColor(redisClient, client, userId, tableId, server))

		// Admin commands (role re-checked against the stored table per call)
		client.On("remove_participant", handlers.HandleRemoveParticipant(redisClient, client, userId, tableId, server))
		client.On("update_credits", handlers.HandleUpdateCredits(redisClient, client, userId, tableId, server))
		client.On("start_game", handlers.HandleStartGame(redisClient, client, userId, tableId, server, recorder))
		client.On("end_game", handlers.HandleEndGame(redisClient, client, userId, tableId, server, recorder))
		client.On("roulette_number", handlers.HandleRouletteNumber(redisClient, client, userId, tableId, server))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(redisClient, client, userId, tableId, server))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
