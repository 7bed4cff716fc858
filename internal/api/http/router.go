package http

import (
	"othello/internal/api/ws"
	"othello/internal/config"
	"othello/internal/room"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()
	if cfg.Pprof {
		pprof.Register(r)
	}

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.POST("/play", PlayHandler(rm))
	r.GET("/room", RoomHandler(rm))
	r.GET("/rooms", RoomsHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/move-bot", MoveBotHandler(rm))

	// --- ENGINE ENDPOINTS ---
	r.POST("/analyze", AnalyzeHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/search", NewConfigHandler(cfg).GetSearchHandler)

	return r
}
