package socketio_types

import (
	"context"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and the
// per-process connection bookkeeping: which socket belongs to which user,
// how many connections each room has, and the cancel handle of the round
// driver currently spinning for a room (if any).
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track userID -> socket connections
	UserConnections map[string]*socket.Socket
	roomCounts      map[string]int
	roundCancels    map[string]context.CancelFunc
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
		roomCounts:      make(map[string]int),
		roundCancels:    make(map[string]context.CancelFunc),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(userId string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[userId] = client
}

func (s *SocketServer) RemoveConnection(userId string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, userId)
}

func (s *SocketServer) GetConnection(userId string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.UserConnections[userId]
	return client, exists
}

// JoinRoom bumps the room's connection count and returns the new count.
func (s *SocketServer) JoinRoom(tableId string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.roomCounts[tableId]++
	return s.roomCounts[tableId]
}

// LeaveRoom decrements the room's connection count and returns the
// remaining count (never below zero).
func (s *SocketServer) LeaveRoom(tableId string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.roomCounts[tableId] > 0 {
		s.roomCounts[tableId]--
	}
	remaining := s.roomCounts[tableId]
	if remaining == 0 {
		delete(s.roomCounts, tableId)
	}
	return remaining
}

// SetRoundCancel registers the cancel handle of a spinning round, replacing
// (and cancelling) any previous one for the same room.
func (s *SocketServer) SetRoundCancel(tableId string, cancel context.CancelFunc) {
	s.mutex.Lock()
	prev := s.roundCancels[tableId]
	s.roundCancels[tableId] = cancel
	s.mutex.Unlock()
	if prev != nil {
		prev()
	}
}

// CancelRound stops the round driver of a room, if one is spinning.
func (s *SocketServer) CancelRound(tableId string) {
	s.mutex.Lock()
	cancel := s.roundCancels[tableId]
	delete(s.roundCancels, tableId)
	s.mutex.Unlock()
	if cancel != nil {
		cancel()
	}
}

// ClearRoundCancel drops the handle once a spin finished on its own.
func (s *SocketServer) ClearRoundCancel(tableId string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.roundCancels, tableId)
}
