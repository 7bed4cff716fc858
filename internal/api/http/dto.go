package http

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode" binding:"required"`
	PlayerName string `json:"playerName"`
}

// PlayRequest seats a bot in a room.
type PlayRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	Depth    int    `json:"depth"`
}

// MoveRequest represents a player move.
type MoveRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// MoveBotRequest represents a bot move.
type MoveBotRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	BotID    string `json:"botId" binding:"required"`
}

// AnalyzeRequest asks for the best move on an arbitrary position.
// Board uses one string per row of B, W and '.'.
type AnalyzeRequest struct {
	Board  []string `json:"board" binding:"required"`
	Player string   `json:"player" binding:"required"`
	Depth  int      `json:"depth"`
}
