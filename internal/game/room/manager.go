package room

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/config"
	"github.com/palemoky/hearts/internal/server/storage"
	"github.com/palemoky/hearts/internal/types"
)

// RoomManager 房间管理器：进程内唯一的房间注册表，按需创建、超时回收
type RoomManager struct {
	store       *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	gameCfg     config.GameConfig
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewRoomManager 创建房间管理器
func NewRoomManager(store *storage.RedisStore, lb *storage.LeaderboardManager, gameCfg config.GameConfig) *RoomManager {
	rm := &RoomManager{
		store:       store,
		leaderboard: lb,
		gameCfg:     gameCfg,
		rooms:       make(map[string]*Room),
	}

	// 启动房间清理协程
	go rm.cleanupLoop()

	return rm
}

// CreateRoom 创建房间
func (rm *RoomManager) CreateRoom() *Room {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code := rm.generateRoomCode()
	room := &Room{
		Code:        code,
		CreatedAt:   time.Now(),
		lastActive:  time.Now(),
		playDelay:   rm.gameCfg.BotPlayDelayDuration(),
		trickDelay:  rm.gameCfg.TrickClearDelayDuration(),
		store:       rm.store,
		leaderboard: rm.leaderboard,
	}
	rm.rooms[code] = room

	log.Printf("🏠 房间 %s 已创建", code)
	return room
}

// GetRoom 获取房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// JoinRoom 玩家加入房间
func (rm *RoomManager) JoinRoom(client types.ClientInterface, code string) (*Room, error) {
	room := rm.GetRoom(code)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if err := room.AddHuman(client); err != nil {
		return nil, err
	}
	client.SetRoom(code)

	log.Printf("👤 玩家 %s 加入房间 %s", client.GetName(), code)
	return room, nil
}

// LeaveRoom 玩家离开（连接断开）。房间没有活连接时立即回收。
func (rm *RoomManager) LeaveRoom(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	room := rm.GetRoom(code)
	if room == nil {
		return
	}

	room.HandleDisconnect(client.GetID())
	client.SetRoom("")

	if room.Empty() {
		rm.removeRoom(code)
	}
}

// removeRoom 删除房间并清理 Redis 快照
func (rm *RoomManager) removeRoom(code string) {
	rm.mu.Lock()
	room, exists := rm.rooms[code]
	if exists {
		delete(rm.rooms, code)
	}
	rm.mu.Unlock()
	if !exists {
		return
	}

	room.stopBotTimer()
	if rm.store != nil {
		go func() { _ = rm.store.DeleteRoom(context.Background(), code) }()
	}
	log.Printf("🏠 房间 %s 已解散", code)
}

// RoomCount 当前房间数量
func (rm *RoomManager) RoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// generateRoomCode 生成唯一房间号
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// cleanupLoop 定期清理无人房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

// cleanup 回收超时没有任何活连接的房间。
// 上游实现从不回收房间，这里按空闲时长兜底，防止注册表无限增长。
func (rm *RoomManager) cleanup() {
	timeout := rm.gameCfg.RoomTimeoutDuration()

	rm.mu.RLock()
	var stale []string
	for code, room := range rm.rooms {
		if room.Empty() && time.Since(room.IdleSince()) > timeout {
			stale = append(stale, code)
		}
	}
	rm.mu.RUnlock()

	for _, code := range stale {
		rm.removeRoom(code)
		log.Printf("🧹 房间 %s 超时已清理", code)
	}
}
