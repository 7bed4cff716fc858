package http

import (
	"errors"
	"net/http"

	"othello/internal/game"
	"othello/internal/room"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidMove), errors.Is(err, game.ErrBadBoard), errors.Is(err, game.ErrBadPlayer):
		return http.StatusBadRequest
	case errors.Is(err, room.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrNotYourTurn), errors.Is(err, room.ErrGameOver),
		errors.Is(err, room.ErrRoomFull), errors.Is(err, room.ErrWaiting), errors.Is(err, room.ErrNotBot):
		return http.StatusConflict
	case errors.Is(err, game.ErrNoLegalMoves):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func lookup(c *gin.Context, rm *room.Manager, code string) (*room.Room, bool) {
	rx, ok := rm.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	}
	return rx, ok
}

// @Summary Create new room
// @Description Create a room with its creator seated as Black
// @Tags Room
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		st := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{
			"roomCode": st.Code,
			"playerId": st.Players[0].ID,
			"room":     st,
		})
	}
}

// @Summary Join a room as White
// @Tags Room
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		st, p, err := rm.JoinRoom(rx, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"playerId": p.ID, "room": st})
	}
}

// @Summary Add a bot to a room
// @Description Seat an engine opponent as White at the requested depth
// @Tags Room
// @Router /play [post]
func PlayHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		st, bot, err := rm.AddBot(rx, req.Depth)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"botId": bot.ID, "depth": bot.Depth, "room": st})
	}
}

// @Summary Get room state
// @Tags Room
// @Param roomCode query string true "Room Code"
// @Router /room [get]
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookup(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rm.State(rx)})
	}
}

// @Summary List rooms
// @Tags Room
// @Router /rooms [get]
func RoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := rm.List()
		out := make([]gin.H, 0, len(list))
		for _, st := range list {
			out = append(out, gin.H{
				"code":     st.Code,
				"players":  len(st.Players),
				"finished": st.Finished,
				"black":    st.Black,
				"white":    st.White,
			})
		}
		c.JSON(http.StatusOK, gin.H{"rooms": out})
	}
}

// @Summary Get legal moves for player
// @Tags Game
// @Param roomCode query string true "Room Code"
// @Param playerId query string true "Player ID"
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookup(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		moves, err := rm.PossibleMoves(rx, c.Query("playerId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves})
	}
}

// @Summary Player makes a move
// @Tags Game
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		st, err := rm.ApplyMove(rx, req.PlayerID, req.Row, req.Col)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"room":   st,
			"winner": st.WinnerID,
			"draw":   st.Draw,
		})
	}
}

// @Summary Let bot make its move
// @Description Bot searches with negamax and alpha-beta pruning
// @Tags Game
// @Router /move-bot [post]
func MoveBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := lookup(c, rm, req.RoomCode)
		if !ok {
			return
		}
		mv, st, err := rm.BotMove(rx, req.BotID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"row": mv.Row, "col": mv.Col,
			"lastState": gin.H{"winner": st.WinnerID, "draw": st.Draw},
			"room":      st,
		})
	}
}

// @Summary Analyse a position
// @Description Score every legal move of player on the given board
// @Tags Engine
// @Router /analyze [post]
func AnalyzeHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "board and player required"})
			return
		}
		b, err := game.ParseBoard(req.Board)
		if err != nil {
			fail(c, err)
			return
		}
		p, err := game.ParsePlayer(req.Player)
		if err != nil {
			fail(c, err)
			return
		}
		best, scores, err := rm.Analyze(c.Request.Context(), b, p, req.Depth)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"best": best, "scores": scores})
	}
}
