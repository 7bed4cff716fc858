package ws

import (
	"othello/internal/game"
	"othello/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	State(r *room.Room) room.State
	ApplyMove(r *room.Room, playerID string, row, col int) (room.State, error)
	BotMove(r *room.Room, botID string) (game.Move, room.State, error)
}
