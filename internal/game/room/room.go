package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/hearts"
	"github.com/palemoky/hearts/internal/server/storage"
	"github.com/palemoky/hearts/internal/types"
)

const (
	roomCodeLength = 6                      // 房间号长度
	roomCodeChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // 房间号字符集（去掉易混淆字符）

	// MaxPlayers 每个房间固定四个座位
	MaxPlayers = hearts.Seats
)

// Seat 房间中的一个座位
type Seat struct {
	ID     string
	Name   string
	IsBot  bool
	Client types.ClientInterface // 人类玩家的连接，机器人或掉线后为 nil
}

// Room 游戏房间：一个可变的游戏聚合和它的互斥门。
// 所有改状态的入口都持 mu 串行执行，并发到达的人类操作和
// 定时器触发的机器人操作不会交错各自的读-改-写序列。
type Room struct {
	Code      string
	CreatedAt time.Time

	mu         sync.Mutex
	seats      []*Seat // 按入座顺序，下标即游戏座位号
	hostID     string
	game       *hearts.Game
	lastActive time.Time

	// bot tick：每个房间至多一个未触发的定时器
	timerMu  sync.Mutex
	botTimer *time.Timer

	playDelay  time.Duration // 普通机器人出牌延迟
	trickDelay time.Duration // 一墩打完后的展示延迟

	store       *storage.RedisStore
	leaderboard *storage.LeaderboardManager
}

// AddHuman 人类玩家入座。只在游戏开始前有效。
func (r *Room) AddHuman(client types.ClientInterface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game != nil {
		return apperrors.ErrGameStarted
	}
	if len(r.seats) >= MaxPlayers {
		return apperrors.ErrRoomFull
	}

	seat := &Seat{
		ID:     client.GetID(),
		Name:   client.GetName(),
		Client: client,
	}
	r.seats = append(r.seats, seat)
	if r.hostID == "" {
		r.hostID = seat.ID
	}

	r.touchLocked()
	r.persistLocked()
	r.broadcastLocked()
	return nil
}

// seatIndex 返回玩家的座位号，不在房间时返回 -1
func (r *Room) seatIndex(playerID string) int {
	for i, s := range r.seats {
		if s.ID == playerID {
			return i
		}
	}
	return -1
}

// botCount 已入座的机器人数量
func (r *Room) botCount() int {
	n := 0
	for _, s := range r.seats {
		if s.IsBot {
			n++
		}
	}
	return n
}

// hasLiveClientLocked 房间里是否还有活着的连接
func (r *Room) hasLiveClientLocked() bool {
	for _, s := range r.seats {
		if s.Client != nil {
			return true
		}
	}
	return false
}

// Empty 房间里是否已无任何活连接（供管理器回收判断）
func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.hasLiveClientLocked()
}

// IdleSince 最后一次有效操作的时间
func (r *Room) IdleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastActive
}

func (r *Room) touchLocked() {
	r.lastActive = time.Now()
}

// newBotSeat 创建一个机器人座位
func (r *Room) newBotSeat() *Seat {
	return &Seat{
		ID:    uuid.New().String(),
		Name:  fmt.Sprintf("Bot %d", r.botCount()+1),
		IsBot: true,
	}
}

// stopBotTimer 停掉尚未触发的 bot tick（如有）。
// 对已触发的定时器调用 Stop 是无害的空操作。
func (r *Room) stopBotTimer() {
	r.timerMu.Lock()
	defer r.timerMu.Unlock()
	if r.botTimer != nil {
		r.botTimer.Stop()
		r.botTimer = nil
	}
}

// toRoomDataLocked 构建用于 Redis 的房间快照
func (r *Room) toRoomDataLocked() *storage.RoomData {
	data := &storage.RoomData{
		Code:      r.Code,
		Phase:     hearts.PhaseLobby.String(),
		HostID:    r.hostID,
		CreatedAt: r.CreatedAt.Unix(),
	}
	if r.game != nil {
		data.Phase = r.game.Phase().String()
		data.Round = r.game.RoundIndex()
	}
	for i, s := range r.seats {
		score := 0
		if r.game != nil {
			score = r.game.Score(i)
		}
		data.Players = append(data.Players, storage.PlayerData{
			ID:    s.ID,
			Name:  s.Name,
			Seat:  i,
			IsBot: s.IsBot,
			Score: score,
		})
	}
	return data
}

// persistLocked 异步保存房间快照到 Redis
func (r *Room) persistLocked() {
	if r.store == nil {
		return
	}
	data := r.toRoomDataLocked()
	go func() { _ = r.store.SaveRoom(context.Background(), data.Code, data) }()
}
