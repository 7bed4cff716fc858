package room

import (
	"sync"
	"time"

	"othello/internal/game"
)

type Player struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	IsBot bool        `json:"isBot"`
	Color game.Player `json:"color"`
	Depth int         `json:"depth,omitempty"`
}

// State is the serialisable view of a room.
type State struct {
	ID        string      `json:"id"`
	Code      string      `json:"code"`
	Board     game.Board  `json:"board"`
	Rows      []string    `json:"rows"`
	Players   []Player    `json:"players"`
	Turn      game.Player `json:"turn"`
	Finished  bool        `json:"finished"`
	WinnerID  *string     `json:"winnerId,omitempty"`
	Draw      bool        `json:"draw"`
	LastMove  *game.Move  `json:"lastMove,omitempty"`
	Passes    int         `json:"passes"`
	Black     int         `json:"black"`
	White     int         `json:"white"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Room owns the authoritative board of one game. All access goes
// through Manager, which holds mu.
type Room struct {
	mu    sync.Mutex
	state State
}

func (r *Room) Code() string { return r.state.Code }

// snapshot copies the state; callers hold mu.
func (r *Room) snapshot() State {
	s := r.state
	s.Players = append([]Player(nil), r.state.Players...)
	if r.state.LastMove != nil {
		m := *r.state.LastMove
		s.LastMove = &m
	}
	if r.state.WinnerID != nil {
		w := *r.state.WinnerID
		s.WinnerID = &w
	}
	s.Rows = r.state.Board.Rows()
	s.Black, s.White = r.state.Board.DiskCounts()
	return s
}

func (r *Room) player(id string) *Player {
	for i := range r.state.Players {
		if r.state.Players[i].ID == id {
			return &r.state.Players[i]
		}
	}
	return nil
}

func (r *Room) seated(color game.Player) *Player {
	for i := range r.state.Players {
		if r.state.Players[i].Color == color {
			return &r.state.Players[i]
		}
	}
	return nil
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	ListRooms() []*Room
}
