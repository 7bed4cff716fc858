package ws

import (
	"log"
	"net/http"
	"sync"

	"othello/internal/room"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

// SetRoomManager breaks the construction cycle between Hub and Manager.
func (h *Hub) SetRoomManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type inbound struct {
	Action string `json:"action"`
	Data   struct {
		PlayerID string `json:"player_id"`
		BotID    string `json:"bot_id"`
		Row      int    `json:"row"`
		Col      int    `json:"col"`
	} `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if _, ok := h.roomManager.Get(roomCode); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("WebSocket connection established for room: %s", roomCode)

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		if len(h.rooms[roomCode]) == 0 {
			delete(h.rooms, roomCode)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading WebSocket message: %v", err)
			}
			break
		}
		var msg inbound
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			log.Printf("Invalid WebSocket message: %v", err)
			continue
		}

		switch msg.Action {
		case "human_move":
			h.handleHumanMove(conn, roomCode, msg)
		case "bot_move":
			h.handleBotMove(conn, roomCode, msg.Data.BotID)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

// Broadcast sends {action, data} to every connection of the room.
// Connections that fail to receive are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}
	payload, err := sonic.Marshal(map[string]interface{}{
		"action": action,
		"data":   data,
	})
	if err != nil {
		log.Printf("Failed to encode %s message: %v", action, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[roomCode] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(h.rooms[roomCode], conn)
		}
	}
}

func (h *Hub) reply(conn *websocket.Conn, action string, data interface{}) {
	payload, err := sonic.Marshal(map[string]interface{}{"action": action, "data": data})
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Printf("Failed to send reply: %v", err)
	}
}

func (h *Hub) handleHumanMove(conn *websocket.Conn, roomCode string, msg inbound) {
	rx, ok := h.roomManager.Get(roomCode)
	if !ok {
		h.reply(conn, "error", gin.H{"error": "room not found"})
		return
	}

	// The manager broadcasts the applied move itself.
	st, err := h.roomManager.ApplyMove(rx, msg.Data.PlayerID, msg.Data.Row, msg.Data.Col)
	if err != nil {
		log.Printf("Failed to apply move: %v", err)
		h.reply(conn, "error", gin.H{"error": err.Error()})
		return
	}

	if st.Finished {
		return
	}
	for _, p := range st.Players {
		if p.IsBot && p.Color == st.Turn {
			go h.playBot(rx, p)
		}
	}
}

// playBot keeps moving for the bot while the human has to pass.
func (h *Hub) playBot(rx *room.Room, bot room.Player) {
	for {
		_, st, err := h.roomManager.BotMove(rx, bot.ID)
		if err != nil {
			log.Printf("Failed to process bot move: %v", err)
			return
		}
		if st.Finished || st.Turn != bot.Color {
			return
		}
	}
}

func (h *Hub) handleBotMove(conn *websocket.Conn, roomCode, botID string) {
	rx, ok := h.roomManager.Get(roomCode)
	if !ok {
		h.reply(conn, "error", gin.H{"error": "room not found"})
		return
	}
	if botID == "" {
		st := h.roomManager.State(rx)
		for _, p := range st.Players {
			if p.IsBot && p.Color == st.Turn {
				botID = p.ID
			}
		}
	}
	if _, _, err := h.roomManager.BotMove(rx, botID); err != nil {
		log.Printf("Failed to process bot move: %v", err)
		h.reply(conn, "error", gin.H{"error": err.Error()})
	}
}

var _ room.Broadcaster = (*Hub)(nil)
