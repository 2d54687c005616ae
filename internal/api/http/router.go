package http

import (
	"net/http"
	"time"

	"checkers-server/internal/api/ws"
	"checkers-server/internal/config"
	"checkers-server/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	// WebSocket: the whole game protocol
	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	// --- DIAGNOSTICS ---
	r.GET("/healthz", HealthHandler(rm, hub))
	r.GET("/debug/rooms", DebugRoomsHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", NewConfigHandler(cfg).GetConfigHandler)

	return r
}

// NewHandler wraps h with CORS for the given origins.
func NewHandler(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(h)
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		// Upgraded sockets log their own lifecycle.
		if c.FullPath() == "/ws" {
			return
		}
		log.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
