package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/hearts/internal/config"
	"github.com/palemoky/hearts/internal/game/room"
	"github.com/palemoky/hearts/internal/server/handler"
	"github.com/palemoky/hearts/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 服务器
type Server struct {
	config      *config.Config
	redis       *redis.Client
	redisStore  *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	roomManager *room.RoomManager
	handler     *handler.Handler

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	s := &Server{
		config:      cfg,
		redis:       rdb,
		redisStore:  storage.NewRedisStore(rdb),
		leaderboard: storage.NewLeaderboardManager(rdb),
		clients:     make(map[string]*Client),
	}

	s.roomManager = room.NewRoomManager(s.redisStore, s.leaderboard, cfg.Game)
	s.handler = handler.NewHandler(s.roomManager)

	return s, nil
}

// Router 构建 HTTP 路由
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/rooms", s.handleCreateRoom)
	r.Get("/ws/{roomCode}", s.handleWebSocket)
	r.Get("/health", s.handleHealth)

	return r
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	log.Printf("🚀 服务器启动在 ws://%s/ws (CPU核心数: %d)", addr, runtime.NumCPU())
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		IdleTimeout:       60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown 关闭服务器：停收新连接、断开现有客户端、关闭 Redis
func (s *Server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		_ = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	_ = s.redis.Close()
	log.Println("服务器已关闭")
}

// GetOnlineCount 当前在线人数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		log.Printf("❌ 玩家 %s (%s) 已断开", client.Name, client.ID)
	}
}
