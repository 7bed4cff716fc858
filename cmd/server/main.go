package main

import (
	"log"

	httpapi "othello/internal/api/http"
	"othello/internal/api/ws"
	"othello/internal/config"
	"othello/internal/room"
	"othello/internal/store"
)

func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub(nil)
	rm := room.NewManager(mem, cfg, hub)
	hub.SetRoomManager(rm)
	r := httpapi.NewRouter(rm, hub, cfg)

	log.Printf("search depth %d, bot depth %d, max depth %d, parallel root %v",
		cfg.Search.Depth, cfg.Search.BotDepth, cfg.Search.MaxDepth, cfg.Search.ParallelRoot)
	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
