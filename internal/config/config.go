package config

import (
	"os"
	"strconv"
)

// Search holds the engine knobs exposed through the environment.
type Search struct {
	Depth        int  `json:"depth"`
	BotDepth     int  `json:"botDepth"`
	MaxDepth     int  `json:"maxDepth"`
	ParallelRoot bool `json:"parallelRoot"`
}

type Config struct {
	HTTPAddr string
	Pprof    bool
	Search   Search
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	cfg := Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		Pprof:    getenvBool("PPROF", false),
		Search: Search{
			Depth:        getenvInt("SEARCH_DEPTH", 5),
			BotDepth:     getenvInt("BOT_DEPTH", 4),
			MaxDepth:     getenvInt("MAX_DEPTH", 8),
			ParallelRoot: getenvBool("PARALLEL_ROOT", false),
		},
	}
	if cfg.Search.MaxDepth < 1 {
		cfg.Search.MaxDepth = 1
	}
	cfg.Search.Depth = cfg.Search.Clamp(cfg.Search.Depth)
	cfg.Search.BotDepth = cfg.Search.Clamp(cfg.Search.BotDepth)
	return cfg
}

// Clamp bounds a requested depth to [1, MaxDepth]. Zero or negative
// requests fall back to Depth.
func (s Search) Clamp(depth int) int {
	if depth <= 0 {
		depth = s.Depth
	}
	if depth < 1 {
		depth = 1
	}
	if s.MaxDepth > 0 && depth > s.MaxDepth {
		depth = s.MaxDepth
	}
	return depth
}
